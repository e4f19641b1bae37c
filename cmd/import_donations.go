package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bursar/donations"
	"github.com/google/subcommands"
)

type importDonationsCmd struct{}

func (*importDonationsCmd) Name() string     { return "import-donations" }
func (*importDonationsCmd) Synopsis() string { return "import a donation platform export" }
func (*importDonationsCmd) Usage() string {
	return `bsr import-donations <origin> <file.csv>

  Parses a donation platform CSV export and appends the donations it carries
  to the ledger. Origin is one of: donorbox, opencollective.
  Rows already in the ledger are skipped with a warning; a row that fails to
  parse aborts the import and nothing is saved.
`
}

func (*importDonationsCmd) SetFlags(f *flag.FlagSet) {}

func (c *importDonationsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Please provide the origin and the path to the export file.")
		return subcommands.ExitUsageError
	}
	origin := donations.ParseOrigin(f.Arg(0))

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
	if err := donations.Import(ledger, origin, data); err != nil {
		fmt.Fprintln(os.Stderr, "Import failed:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
