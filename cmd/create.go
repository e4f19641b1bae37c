package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bursar"
	"github.com/google/subcommands"
)

type createCmd struct{}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a blank ledger file" }
func (*createCmd) Usage() string {
	return `bsr [-ledger-file <path>] create

  Writes an empty ledger document at the ledger file path.
`
}

func (*createCmd) SetFlags(f *flag.FlagSet) {}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(*ledgerFile); err == nil {
		fmt.Fprintf(os.Stderr, "A ledger already exists at %q, refusing to overwrite it.\n", *ledgerFile)
		return subcommands.ExitFailure
	}
	if err := bursar.Save(bursar.NewLedger(), *ledgerFile); err != nil {
		fmt.Fprintln(os.Stderr, "Error creating ledger:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created a blank ledger at %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}
