package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/bursar"
	"github.com/google/subcommands"
)

// openingDateLayout is the entry format for opening dates on the command line.
const openingDateLayout = "2006/01/02 15:04"

type newAccountCmd struct {
	balance string
}

func (*newAccountCmd) Name() string     { return "new-account" }
func (*newAccountCmd) Synopsis() string { return "create a new account in the ledger" }
func (*newAccountCmd) Usage() string {
	return `bsr new-account [-balance <amount>] <name> <opening date>

  Appends a new account with an empty journal. The opening date is entered as
  YYYY/MM/DD HH:MM (UTC). Fails when an account with that exact name already
  exists.
  Example: bsr new-account -balance 250.00 "Stripe" "2020/01/01 00:00"
`
}

func (c *newAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.balance, "balance", "0", "Opening balance for the account")
}

func (c *newAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Please provide the account name and its opening date.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	opened, err := time.Parse(openingDateLayout, f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid opening date, expected format YYYY/MM/DD HH:MM: %v\n", err)
		return subcommands.ExitUsageError
	}
	balance, err := bursar.ParseMoney(c.balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid opening balance:", err)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := ledger.NewAccount(name, balance, opened); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created account %q with opening balance %s\n", name, balance)
	return subcommands.ExitSuccess
}
