package bursar

import "crypto/sha256"

// Fingerprint derives the content-addressed id of an external record: a
// SHA-256 over the source tag followed by the fields, concatenated verbatim
// with no separator. Field choice and order are part of each source's
// contract; changing either changes every id and breaks deduplication against
// ledgers already on disk, so the bare concatenation is kept as is.
func Fingerprint(sourceTag string, fields ...string) ID {
	h := sha256.New()
	h.Write([]byte(sourceTag))
	for _, f := range fields {
		h.Write([]byte(f))
	}
	return h.Sum(nil)
}

// IDSet is an in-memory set of record ids. Importers seed it with the ids
// already recorded in the target accounts and keep adding to it while a batch
// runs, so a duplicate row is caught whether it comes from a previous run or
// from earlier in the same file.
type IDSet map[string]struct{}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...ID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Has reports whether the id is in the set.
func (s IDSet) Has(id ID) bool {
	_, ok := s[string(id)]
	return ok
}

// Add records the id in the set.
func (s IDSet) Add(id ID) {
	s[string(id)] = struct{}{}
}
