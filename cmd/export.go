package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bursar"
	"github.com/google/subcommands"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger to an accountant-friendly CSV" }
func (*exportCmd) Usage() string {
	return `bsr export <output.csv>

  Flattens the whole ledger into a single CSV report: one opening row per
  account followed by its transactions in journal order. The ledger is not
  modified.
`
}

func (*exportCmd) SetFlags(f *flag.FlagSet) {}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the path to write the report to.")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening report file %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := bursar.Export(out, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Export failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
