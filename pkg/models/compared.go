package models

// Compared records the outcome of comparing a resolved local file with its
// proposal counterpart. One Compared exists per divergent file; identical
// pairs leave no record.
type Compared struct {
	// LocalFile is the path of the matched file in the local checkout
	LocalFile string

	// ProposalFile is the path as declared by the proposal, used as the
	// "to" label in diff headers
	ProposalFile string

	// DiffPath is where the unified diff artifact was written
	DiffPath string
}
