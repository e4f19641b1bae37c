package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/bursar"
	"github.com/google/subcommands"
)

// withLedgerFile points the global ledger file at a scratch path for the test.
func withLedgerFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.json")
	old := *ledgerFile
	*ledgerFile = path
	t.Cleanup(func() { *ledgerFile = old })
	return path
}

// run executes a command the way the commander would, with the given
// positional arguments.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: could not parse args %q: %v", cmd.Name(), args, err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestCreateAndNewAccount(t *testing.T) {
	path := withLedgerFile(t)

	if got := run(t, &createCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("create: exit %v", got)
	}
	// create refuses to clobber an existing ledger.
	if got := run(t, &createCmd{}); got != subcommands.ExitFailure {
		t.Fatalf("create on an existing file: exit %v, want failure", got)
	}

	if got := run(t, &newAccountCmd{}, "-balance", "250.00", "Stripe", "2020/01/01 00:00"); got != subcommands.ExitSuccess {
		t.Fatalf("new-account: exit %v", got)
	}
	if got := run(t, &newAccountCmd{}, "Stripe", "2020/01/01 00:00"); got != subcommands.ExitFailure {
		t.Fatalf("new-account on a taken name: exit %v, want failure", got)
	}
	if got := run(t, &newAccountCmd{}, "Stripe"); got != subcommands.ExitUsageError {
		t.Fatalf("new-account without a date: exit %v, want usage error", got)
	}
	if got := run(t, &newAccountCmd{}, "PayPal", "January 1st"); got != subcommands.ExitUsageError {
		t.Fatalf("new-account with a bad date: exit %v, want usage error", got)
	}

	ledger, err := bursar.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	stripe := ledger.Account("Stripe")
	if stripe == nil {
		t.Fatal("Stripe account was not persisted")
	}
	if !stripe.OpeningBalance.Equal(bursar.M(250, 1)) {
		t.Errorf("opening balance = %s, want $250.00", stripe.OpeningBalance)
	}
}

func TestImportDonationsCommand(t *testing.T) {
	path := withLedgerFile(t)
	if got := run(t, &createCmd{}); got != subcommands.ExitSuccess {
		t.Fatal("create failed")
	}
	for _, name := range []string{"Stripe", "PayPal"} {
		if got := run(t, &newAccountCmd{}, name, "2020/01/01 00:00"); got != subcommands.ExitSuccess {
			t.Fatalf("new-account %s failed", name)
		}
	}

	export := filepath.Join(t.TempDir(), "donations.csv")
	csv := "Name,Date Donated,Amount,Processing Fee,Net Amount,Receipt Id,Donation Type\n" +
		"Alice,2020-02-01 10:30:00 UTC,10.00,0.50,9.50,r1,stripe\n"
	if err := os.WriteFile(export, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := run(t, &importDonationsCmd{}, "donorbox", export); got != subcommands.ExitSuccess {
		t.Fatalf("import-donations: exit %v", got)
	}

	ledger, err := bursar.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(ledger.Account("Stripe").Transactions); n != 1 {
		t.Errorf("Stripe has %d transactions after import, want 1", n)
	}

	if got := run(t, &importDonationsCmd{}, "donorbox", "no-such-file.csv"); got != subcommands.ExitFailure {
		t.Errorf("import-donations with a missing file: exit %v, want failure", got)
	}
}

func TestBalanceCommand(t *testing.T) {
	withLedgerFile(t)
	if got := run(t, &createCmd{}); got != subcommands.ExitSuccess {
		t.Fatal("create failed")
	}
	if got := run(t, &newAccountCmd{}, "-balance", "42.00", "Chase", "2020/01/01 00:00"); got != subcommands.ExitSuccess {
		t.Fatal("new-account failed")
	}

	if got := run(t, &balanceCmd{}, "Chase"); got != subcommands.ExitSuccess {
		t.Errorf("balance: exit %v", got)
	}
	if got := run(t, &balanceCmd{}, "Venmo"); got != subcommands.ExitFailure {
		t.Errorf("balance on a missing account: exit %v, want failure", got)
	}
}
