package hmm

import "errors"

var (
	// ErrConfig reports an unusable model configuration: empty inputs or an
	// incomplete transition table. Raised at construction, never later.
	ErrConfig = errors.New("hmm: invalid configuration")

	// ErrLookup reports a transition lookup that should have been ruled out
	// by construction-time validation. Seeing it means a configuration bug.
	ErrLookup = errors.New("hmm: lookup failed")

	// ErrInternal reports a lattice back pointer outside the tag vocabulary,
	// which can only come from a defect in the forward pass.
	ErrInternal = errors.New("hmm: inconsistent lattice")
)
