package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the current balance of an account" }
func (*balanceCmd) Usage() string {
	return `bsr balance <account>

  Computes the account balance: opening balance, plus incomes, minus expenses,
  minus every fee.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the account name.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account := ledger.Account(name)
	if account == nil {
		fmt.Fprintf(os.Stderr, "Account %q not found in the ledger.\n", name)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: %s\n", name, account.Balance())
	return subcommands.ExitSuccess
}
