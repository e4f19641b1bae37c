package bursar

import (
	"crypto/sha256"
	"testing"
)

func TestFingerprint(t *testing.T) {
	got := Fingerprint("DonorBox", "Alice", "2020-01-01 10:00:00", "9.50")

	// The id is the SHA-256 of tag and fields concatenated with no separator.
	want := sha256.Sum256([]byte("DonorBox" + "Alice" + "2020-01-01 10:00:00" + "9.50"))
	if !got.Equal(want[:]) {
		t.Errorf("Fingerprint() = %s, want %x", got, want)
	}

	if !Fingerprint("DonorBox", "Alice").Equal(Fingerprint("DonorBox", "Alice")) {
		t.Error("identical inputs must produce identical ids")
	}
	if Fingerprint("DonorBox", "Alice").Equal(Fingerprint("OpenCollective", "Alice")) {
		t.Error("the source tag must participate in the id")
	}
	if Fingerprint("DonorBox", "a", "b").Equal(Fingerprint("DonorBox", "b", "a")) {
		t.Error("field order must participate in the id")
	}
}

func TestIDSet(t *testing.T) {
	a := Fingerprint("Stripe", "po_1")
	b := Fingerprint("Stripe", "po_2")

	set := NewIDSet(a)
	if !set.Has(a) {
		t.Error("seeded id should be present")
	}
	if set.Has(b) {
		t.Error("unseen id should be absent")
	}

	set.Add(b)
	if !set.Has(b) {
		t.Error("added id should be present")
	}
}
