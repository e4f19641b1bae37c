package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bursar/payouts"
	"github.com/google/subcommands"
)

type importPayoutsCmd struct{}

func (*importPayoutsCmd) Name() string     { return "import-payouts" }
func (*importPayoutsCmd) Synopsis() string { return "import a payout processor export" }
func (*importPayoutsCmd) Usage() string {
	return `bsr import-payouts <origin> <file.csv>

  Parses a payout processor CSV export and records each payout as two legs:
  an expense on the processor account and a matching income on the bank
  account. Origin is one of: stripe, paypal.
`
}

func (*importPayoutsCmd) SetFlags(f *flag.FlagSet) {}

func (c *importPayoutsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Please provide the origin and the path to the export file.")
		return subcommands.ExitUsageError
	}
	origin := payouts.ParseOrigin(f.Arg(0))

	data, err := os.Open(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export file %q: %v\n", f.Arg(1), err)
		return subcommands.ExitFailure
	}
	defer data.Close()

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := payouts.Import(ledger, origin, data); err != nil {
		fmt.Fprintln(os.Stderr, "Import failed:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
