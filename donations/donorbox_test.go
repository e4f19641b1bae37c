package donations

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/etnz/bursar"
)

const donorBoxHeader = "Name,Date Donated,Amount,Processing Fee,Net Amount,Receipt Id,Donation Type\n"

func newTestLedger(t *testing.T, names ...string) *bursar.Ledger {
	t.Helper()
	ledger := bursar.NewLedger()
	opening := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, name := range names {
		if _, err := ledger.NewAccount(name, bursar.M(0, 1), opening); err != nil {
			t.Fatal(err)
		}
	}
	return ledger
}

func TestImportDonorBox(t *testing.T) {
	ledger := newTestLedger(t, "Stripe", "PayPal")
	input := donorBoxHeader +
		"Alice,2020-02-01 10:30:00 UTC,10.00,0.50,9.50,r1,stripe\n" +
		"Bob,2020-01-15 08:00:00 UTC,20.00,1.00,19.00,r2,paypal\n" +
		"Carol,2020-01-10 09:00:00 UTC,5.00,0.25,4.75,r3,paypal_express\n"

	if err := Import(ledger, OriginDonorBox, strings.NewReader(input)); err != nil {
		t.Fatalf("Import() unexpected error: %v", err)
	}

	stripe := ledger.Account("Stripe")
	if len(stripe.Transactions) != 1 {
		t.Fatalf("Stripe has %d transactions, want 1", len(stripe.Transactions))
	}
	tx := stripe.Transactions[0]
	if tx.Description != "Donation made through the DonorBox platform" {
		t.Errorf("description = %q", tx.Description)
	}
	if !tx.Amount.Equal(bursar.M(10, 1)) {
		t.Errorf("amount = %s, want $10.00", tx.Amount)
	}
	if !tx.Date.Equal(time.Date(2020, 2, 1, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("date = %v", tx.Date)
	}
	in, ok := tx.Meta.(bursar.Income)
	if !ok || in.From != "Alice" || !in.IsDonation() {
		t.Errorf("meta = %+v, want a donation income from Alice", tx.Meta)
	}
	if wantID := bursar.Fingerprint("DonorBox", "Alice", "2020-02-01 10:30:00 UTC", "9.50", "r1"); !in.Donation.Equal(wantID) {
		t.Errorf("donation id = %s, want %s", in.Donation, wantID)
	}
	if len(tx.Fees) != 1 || !tx.Fees[0].Equal(bursar.Fee{Amount: bursar.M(50, 100), Towards: "DonorBox Processing"}) {
		t.Errorf("fees = %+v", tx.Fees)
	}

	// paypal and paypal_express rows both route to PayPal, sorted by date.
	paypal := ledger.Account("PayPal")
	if len(paypal.Transactions) != 2 {
		t.Fatalf("PayPal has %d transactions, want 2", len(paypal.Transactions))
	}
	if from := paypal.Transactions[0].Meta.(bursar.Income).From; from != "Carol" {
		t.Errorf("first PayPal transaction is from %q, want Carol (earliest date)", from)
	}

	if !stripe.Balance().Equal(bursar.M(950, 100)) {
		t.Errorf("Stripe balance = %s, want $9.50", stripe.Balance())
	}
}

func TestImportDonorBox_Dedup(t *testing.T) {
	ledger := newTestLedger(t, "Stripe", "PayPal")
	row := "Alice,2020-02-01 10:30:00 UTC,10.00,0.50,9.50,r1,stripe\n"

	// The same row twice in one file must be recorded once.
	if err := Import(ledger, OriginDonorBox, strings.NewReader(donorBoxHeader+row+row)); err != nil {
		t.Fatal(err)
	}
	stripe := ledger.Account("Stripe")
	if len(stripe.Transactions) != 1 {
		t.Fatalf("duplicate row within one file was imported: %d transactions", len(stripe.Transactions))
	}

	// Running the same file again must be a no-op.
	if err := Import(ledger, OriginDonorBox, strings.NewReader(donorBoxHeader+row)); err != nil {
		t.Fatal(err)
	}
	if len(stripe.Transactions) != 1 {
		t.Fatalf("second run was not idempotent: %d transactions", len(stripe.Transactions))
	}
}

func TestImportDonorBox_UnknownProcessor(t *testing.T) {
	ledger := newTestLedger(t, "Stripe", "PayPal")
	input := donorBoxHeader +
		"Alice,2020-02-01 10:30:00 UTC,10.00,0.50,9.50,r1,venmo\n" +
		"Bob,2020-02-02 10:30:00 UTC,20.00,1.00,19.00,r2,stripe\n"

	// An unknown donation method drops the row with a warning, the rest of the
	// file still goes through.
	if err := Import(ledger, OriginDonorBox, strings.NewReader(input)); err != nil {
		t.Fatalf("Import() unexpected error: %v", err)
	}
	if n := len(ledger.Account("Stripe").Transactions); n != 1 {
		t.Errorf("Stripe has %d transactions, want 1", n)
	}
	if n := len(ledger.Account("PayPal").Transactions); n != 0 {
		t.Errorf("PayPal has %d transactions, want 0", n)
	}
}

func TestImportDonorBox_BadRowAborts(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"bad amount", "Alice,2020-02-01 10:30:00 UTC,ten,0.50,9.50,r1,stripe\n"},
		{"bad fee", "Alice,2020-02-01 10:30:00 UTC,10.00,half,9.50,r1,stripe\n"},
		{"bad date", "Alice,yesterday,10.00,0.50,9.50,r1,stripe\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ledger := newTestLedger(t, "Stripe", "PayPal")
			good := "Bob,2020-02-02 10:30:00 UTC,20.00,1.00,19.00,r2,stripe\n"
			err := Import(ledger, OriginDonorBox, strings.NewReader(donorBoxHeader+good+c.row))
			if err == nil {
				t.Fatal("Import() should fail on an unparsable row")
			}
			if !strings.Contains(err.Error(), "entry 1") {
				t.Errorf("error does not name the failing entry: %v", err)
			}
			// Nothing is appended when any row is fatal.
			if n := len(ledger.Account("Stripe").Transactions); n != 0 {
				t.Errorf("failed import appended %d transactions", n)
			}
		})
	}
}

func TestImportDonorBox_MissingColumn(t *testing.T) {
	ledger := newTestLedger(t, "Stripe", "PayPal")
	input := "Name,Amount\nAlice,10.00\n"
	if err := Import(ledger, OriginDonorBox, strings.NewReader(input)); err == nil {
		t.Fatal("Import() should fail when a contract column is missing")
	}
}

func TestImportDonorBox_MissingAccount(t *testing.T) {
	err := Import(newTestLedger(t, "Stripe"), OriginDonorBox, strings.NewReader(donorBoxHeader))
	if !errors.Is(err, bursar.ErrAccountNotFound) {
		t.Errorf("Import() without a PayPal account = %v, want ErrAccountNotFound", err)
	}
}

func TestImport_UnknownOrigin(t *testing.T) {
	ledger := newTestLedger(t, "Stripe", "PayPal")
	if err := Import(ledger, ParseOrigin("gofundme"), strings.NewReader("anything")); err != nil {
		t.Fatalf("unknown origin should be a no-op, got %v", err)
	}
	if n := len(ledger.Account("Stripe").Transactions); n != 0 {
		t.Errorf("unknown origin imported %d transactions", n)
	}
}

func TestParseOrigin(t *testing.T) {
	cases := []struct {
		in   string
		want Origin
	}{
		{"donorbox", OriginDonorBox},
		{"opencollective", OriginOpenCollective},
		{"DonorBox", OriginUnknown},
		{"", OriginUnknown},
	}
	for _, c := range cases {
		if got := ParseOrigin(c.in); got != c.want {
			t.Errorf("ParseOrigin(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
