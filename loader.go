package bursar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotFound is returned by Load when the ledger file does not exist.
var ErrNotFound = errors.New("ledger file not found")

// Load reads the whole ledger document from path. A missing file is reported
// as ErrNotFound, an undecodable one as ErrMalformed.
func Load(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%q: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// Save writes the whole ledger document to path, replacing any previous
// content. There is no staleness check: the last writer wins. The write is
// not atomic either; callers needing crash-safety should write to a temporary
// file and rename it themselves.
func Save(ledger *Ledger, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeLedger(f, ledger)
}
