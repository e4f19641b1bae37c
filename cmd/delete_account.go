package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteAccountCmd struct {
	force bool
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account from the ledger" }
func (*deleteAccountCmd) Usage() string {
	return `bsr delete-account [-F] <name>

  Removes the named account and its whole journal from the ledger.
  Without -F the command refuses to delete an account that still has
  transactions.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "F", false, "Bypass all warnings")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the name of the account to delete.")
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
	if len(account.Transactions) > 0 && !c.force {
		fmt.Fprintf(os.Stderr, "Account %q still has %d transactions, use -F to delete it anyway.\n", name, len(account.Transactions))
		return subcommands.ExitFailure
	}
	ledger.RemoveAccount(name)
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted account %q\n", name)
	return subcommands.ExitSuccess
}
