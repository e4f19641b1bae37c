package bursar

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// MetaTag identifies the variant of a transaction's metadata.
type MetaTag string

const (
	MetaIncome  MetaTag = "income"
	MetaExpense MetaTag = "expense"
)

// ID is a 32-byte content hash identifying an imported external record
// (a donation or a payout). It carries no ownership semantics, it only
// exists to be compared against ids already recorded in the ledger.
type ID []byte

func (id ID) Equal(other ID) bool { return bytes.Equal(id, other) }

// String returns the hexadecimal form of the id.
func (id ID) String() string { return hex.EncodeToString(id) }

// MarshalJSON encodes the id as a hexadecimal string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(id))
}

// UnmarshalJSON decodes the hexadecimal string form.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("id must be a hex string: %w", err)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", s, err)
	}
	*id = b
	return nil
}

// Metadata classifies a transaction as an income or an expense. The stored
// transaction amount is always a non-negative magnitude; the sign of its
// contribution to a balance is decided here, at the type boundary, and
// nowhere else.
type Metadata interface {
	Tag() MetaTag
	// EffectOnBalance returns the signed contribution of a transaction
	// amount to the account balance: the amount itself for an income, its
	// negation for an expense.
	EffectOnBalance(amount Money) Money
	Equal(Metadata) bool
}

// Income is money received. A nil Donation id means a general income; a
// non-nil id marks the record as an imported donation and serves as its
// deduplication key.
type Income struct {
	Donation ID     `json:"donation,omitempty"`
	From     string `json:"from"`
}

func (in Income) Tag() MetaTag { return MetaIncome }

// IsDonation reports whether the income was imported from a donation platform.
func (in Income) IsDonation() bool { return len(in.Donation) > 0 }

func (in Income) EffectOnBalance(amount Money) Money { return amount }

func (in Income) Equal(other Metadata) bool {
	o, ok := other.(Income)
	return ok && in.Donation.Equal(o.Donation) && in.From == o.From
}

// MarshalJSON writes the tagged form {"tag":"income",...}.
func (in Income) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("tag", MetaIncome)
	w.Optional("donation", in.Donation)
	w.Append("from", in.From)
	return w.MarshalJSON()
}

// Expense is money spent. A nil Payout id means a general expense; a non-nil
// id marks the record as an imported processor payout and serves as its
// deduplication key.
type Expense struct {
	Payout    ID     `json:"payout,omitempty"`
	Towards   string `json:"towards"`
	Requester string `json:"requester"`
}

func (ex Expense) Tag() MetaTag { return MetaExpense }

// IsPayout reports whether the expense was imported from a payout processor.
func (ex Expense) IsPayout() bool { return len(ex.Payout) > 0 }

func (ex Expense) EffectOnBalance(amount Money) Money { return amount.Neg() }

func (ex Expense) Equal(other Metadata) bool {
	o, ok := other.(Expense)
	return ok && ex.Payout.Equal(o.Payout) && ex.Towards == o.Towards && ex.Requester == o.Requester
}

// MarshalJSON writes the tagged form {"tag":"expense",...}.
func (ex Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("tag", MetaExpense)
	w.Optional("payout", ex.Payout)
	w.Append("towards", ex.Towards)
	w.Append("requester", ex.Requester)
	return w.MarshalJSON()
}

// decodeMetadata decodes the tagged union form written by the Metadata
// implementations.
func decodeMetadata(data []byte) (Metadata, error) {
	var probe struct {
		Tag MetaTag `json:"tag"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("could not identify metadata tag: %w", err)
	}
	switch probe.Tag {
	case MetaIncome:
		var in Income
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, err
		}
		return in, nil
	case MetaExpense:
		var ex Expense
		if err := json.Unmarshal(data, &ex); err != nil {
			return nil, err
		}
		return ex, nil
	default:
		return nil, fmt.Errorf("unknown metadata tag: %q", probe.Tag)
	}
}

// Fee is a deduction attached to a transaction. Its amount is subtracted from
// the account balance as stored, whatever its sign: importers use negative
// fees to represent refunded or waived charges.
type Fee struct {
	Amount  Money  `json:"amount"`
	Towards string `json:"towards"`
}

func (f Fee) Equal(other Fee) bool {
	return f.Amount.Equal(other.Amount) && f.Towards == other.Towards
}

// Transaction is a single dated monetary event in an account's journal. The
// amount is a non-negative magnitude, see Metadata for the sign convention.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      Money
	Meta        Metadata
	Fees        []Fee
}

func (t Transaction) Equal(other Transaction) bool {
	if !t.Date.Equal(other.Date) || t.Description != other.Description ||
		!t.Amount.Equal(other.Amount) || !t.Meta.Equal(other.Meta) ||
		len(t.Fees) != len(other.Fees) {
		return false
	}
	for i, f := range t.Fees {
		if !f.Equal(other.Fees[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the transaction in canonical field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	fees := t.Fees
	if fees == nil {
		fees = []Fee{}
	}
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("meta", t.Meta)
	w.Append("fees", fees)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the canonical form, resolving the metadata union by its
// tag.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date        time.Time       `json:"date"`
		Description string          `json:"description"`
		Amount      Money           `json:"amount"`
		Meta        json.RawMessage `json:"meta"`
		Fees        []Fee           `json:"fees"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	meta, err := decodeMetadata(temp.Meta)
	if err != nil {
		return err
	}
	t.Date = temp.Date
	t.Description = temp.Description
	t.Amount = temp.Amount
	t.Meta = meta
	t.Fees = temp.Fees
	return nil
}
