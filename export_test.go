package bursar

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"
)

func TestExport(t *testing.T) {
	ledger := NewLedger()
	stripe, err := ledger.NewAccount("Stripe", M(5000, 100), day("2020-01-01"))
	if err != nil {
		t.Fatal(err)
	}
	stripe.Append(
		Transaction{
			Date:        time.Date(2020, 2, 1, 10, 30, 0, 0, time.UTC),
			Description: "Donation from Alice",
			Amount:      M(950, 100),
			Meta:        Income{Donation: Fingerprint("DonorBox", "Alice"), From: "Alice"},
			Fees:        []Fee{{Amount: M(30, 100), Towards: "DonorBox Processing"}, {Amount: M(20, 100), Towards: "Stripe"}},
		},
		Transaction{
			Date:        time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
			Description: "Consulting income",
			Amount:      M(100, 1),
			Meta:        Income{From: "Acme Corp"},
		},
		Transaction{
			Date:        time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC),
			Description: "Automated payout to the Chase account",
			Amount:      M(80, 1),
			Meta:        Expense{Payout: Fingerprint("Stripe", "po_1"), Towards: "Chase", Requester: "[AUTOMATED]"},
		},
		Transaction{
			Date:        time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC),
			Description: "Hosting bill",
			Amount:      M(12, 1),
			Meta:        Expense{Towards: "Hosting", Requester: "Bob"},
		},
	)

	var buf bytes.Buffer
	if err := Export(&buf, ledger); err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("report is not valid CSV: %v", err)
	}

	want := [][]string{
		{"account", "kind", "date", "amount", "fees", "description", "paid_to", "paid_by"},
		{"Stripe", "Opening", "2020-01-01T00:00:00Z", "-$50.00", "", "", "", ""},
		{"Stripe", "Donation", "2020-02-01T10:30:00Z", "-$9.50", "$0.30[DonorBox Processing];$0.20[Stripe]", "Donation from Alice", "", "Alice"},
		{"Stripe", "Income", "2020-03-01T00:00:00Z", "-$100.00", "", "Consulting income", "", "Acme Corp"},
		{"Stripe", "Payout", "2020-04-01T00:00:00Z", "$80.00", "", "Automated payout to the Chase account", "Chase", ""},
		{"Stripe", "Expense", "2020-05-01T00:00:00Z", "$12.00", "", "Hosting bill", "Hosting", ""},
	}
	if len(records) != len(want) {
		t.Fatalf("report has %d rows, want %d:\n%q", len(records), len(want), records)
	}
	for i, w := range want {
		for j, cell := range w {
			if records[i][j] != cell {
				t.Errorf("row %d column %q: got %q, want %q", i, want[0][j], records[i][j], cell)
			}
		}
	}
}

func TestExport_EmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, NewLedger()); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("empty ledger should export the header only, got %d rows", len(records))
	}
}
