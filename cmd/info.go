package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/bursar"
	"github.com/google/subcommands"
)

type infoCmd struct{}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "display gross receipts for a set of accounts" }
func (*infoCmd) Usage() string {
	return `bsr info <account,account,...>

  Sums the amount of every income (general or donation) across the named
  accounts. Fees are not netted out: the figure is gross.
`
}

func (*infoCmd) SetFlags(f *flag.FlagSet) {}

func (c *infoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide a comma-separated list of accounts.")
		return subcommands.ExitUsageError
	}
	names := strings.Split(f.Arg(0), ",")

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	gross, err := bursar.GrossReceipts(ledger, names...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Gross receipts: %s\n", gross)
	return subcommands.ExitSuccess
}
