package effect

import "errors"

var (
	// ErrWindow indicates a relocation would move bytes outside the
	// addressable extent of the backing store. Fatal for the transaction:
	// better to abort than to under-copy trailing data.
	ErrWindow = errors.New("effect: relocation window exceeds backing store")

	// ErrSectionBounds indicates a section span reaches outside the store.
	ErrSectionBounds = errors.New("effect: section span outside backing store")

	// ErrRecordSize indicates a fixed-record section whose length is not a
	// whole number of records.
	ErrRecordSize = errors.New("effect: section length not a whole number of records")

	// ErrStructuralEdit indicates a structural edit was requested against a
	// container whose header failed validation.
	ErrStructuralEdit = errors.New("effect: structural edit refused on invalid header")
)
