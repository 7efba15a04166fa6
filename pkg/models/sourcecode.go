package models

// SourceCode represents a single source file declared by a proposal
type SourceCode struct {
	// FileName is the path as declared by the proposal, relative to a
	// project root whose location inside the local checkout is unknown
	FileName string

	// Content holds the file's text split into lines, in original order
	Content []string
}
