package elc

import "errors"

// Sentinel errors, matching the teacher's habit (lambda.go) of exporting a
// handful of package-level errors for the handful of failures callers might
// want to distinguish with errors.Is, while everything else (malformed
// syntax, unbound names) stays an inline fmt.Errorf string — spec.md treats
// all of those uniformly as "first error wins", never a typed taxonomy.
var (
	// ErrNoOutput is returned when a document never binds "out".
	ErrNoOutput = errors.New("Output is produced through a variable named 'out', but no such variable exists.")

	// ErrReaderDelimMissing is returned when a ~reader chunk has a leading
	// delimiter word but splitting on it yields fewer than four fields.
	ErrReaderDelimMissing = errors.New("Unexpected end of input 4.")
)
