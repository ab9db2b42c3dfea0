package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookkeeping/internal/domain/record"
	"bookkeeping/internal/infrastructure/jsonfile"
)

const usage = `Bookkeeping Admin CLI - Offline management commands for a ledger file

Usage:
  admin <command> [options]

Commands:
  list      Print the records in a ledger file
  summary   Print the per-user summary for a ledger file
  verify    Check a ledger file for invariant violations

Examples:
  # List every record in the default ledger
  admin list

  # List one user's records in a specific ledger file
  admin list --file=/var/lib/bookkeeping/transactions.json --user=alice

  # Per-user totals
  admin summary --user=alice

  # Check for duplicate IDs, blank fields and non-finite amounts
  admin verify --file=backup.json
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "list":
		runList(os.Args[2:])
	case "summary":
		runSummary(os.Args[2:])
	case "verify":
		runVerify(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func openService(file string) *record.Service {
	store := jsonfile.Open(file)
	return record.NewService(jsonfile.NewRecordRepository(store))
}

func runList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	file := fs.String("file", "transactions.json", "Ledger file to read")
	user := fs.String("user", "", "Only show records for this user")
	fs.Parse(args)

	service := openService(*file)
	ctx := context.Background()

	var records []record.Record
	var err error
	if *user != "" {
		var summary *record.UserSummary
		summary, err = service.UserSummary(ctx, *user)
		if summary != nil {
			records = summary.Records
		}
	} else {
		records, err = service.List(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No records")
		return
	}

	for _, rec := range records {
		fmt.Printf("%s  %-20s  %-20s  %10.2f  %s\n",
			rec.ID, rec.User, rec.Item, rec.Amount,
			time.Unix(rec.Timestamp, 0).UTC().Format(time.RFC3339))
	}
	fmt.Printf("\n%d record(s)\n", len(records))
}

func runSummary(args []string) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	file := fs.String("file", "transactions.json", "Ledger file to read")
	user := fs.String("user", "", "User to summarize (required)")
	fs.Parse(args)

	if *user == "" {
		fmt.Fprintln(os.Stderr, "--user is required")
		fs.Usage()
		os.Exit(1)
	}

	service := openService(*file)
	summary, err := service.UserSummary(context.Background(), *user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error summarizing ledger: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User:   %s\n", summary.User)
	fmt.Printf("Count:  %d\n", summary.Count)
	fmt.Printf("Total:  %.2f\n", summary.TotalAmount)
}

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	file := fs.String("file", "transactions.json", "Ledger file to check")
	fs.Parse(args)

	service := openService(*file)
	records, err := service.List(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		os.Exit(1)
	}

	var violations []string
	seen := make(map[uuid.UUID]bool, len(records))
	for i, rec := range records {
		if seen[rec.ID] {
			violations = append(violations, fmt.Sprintf("record %d: duplicate ID %s", i, rec.ID))
		}
		seen[rec.ID] = true

		if strings.TrimSpace(rec.User) == "" || rec.User != strings.TrimSpace(rec.User) {
			violations = append(violations, fmt.Sprintf("record %d (%s): user %q is blank or untrimmed", i, rec.ID, rec.User))
		}
		if strings.TrimSpace(rec.Item) == "" || rec.Item != strings.TrimSpace(rec.Item) {
			violations = append(violations, fmt.Sprintf("record %d (%s): item %q is blank or untrimmed", i, rec.ID, rec.Item))
		}
		if math.IsNaN(rec.Amount) || math.IsInf(rec.Amount, 0) {
			violations = append(violations, fmt.Sprintf("record %d (%s): amount is not finite", i, rec.ID))
		}
	}

	if len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintln(os.Stderr, v)
		}
		fmt.Fprintf(os.Stderr, "\n%d violation(s) in %d record(s)\n", len(violations), len(records))
		os.Exit(1)
	}

	fmt.Printf("OK: %d record(s), no violations\n", len(records))
}
