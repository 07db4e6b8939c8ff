package elc

import (
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"
)

var (
	reSplitAtReader     = regexp.MustCompile(`\s~reader`)
	reReaderDelimFinder = regexp.MustCompile(`^\w+`)
	reAssignment        = regexp.MustCompile(`\w+\W*:=`)
	reAssignmentVarname = regexp.MustCompile(`\w+`)
)

// assignmentSpan is a single "name := rhs" slice of a chunk's source text.
type assignmentSpan struct {
	name string
	rhs  string
}

// CompileDocument splits a document into reader-declaring sections, compiles
// each section's readers and assignments in order, and returns the fully
// reduced term bound to "out" (spec §4.G). logger may be nil.
func CompileDocument(logger hclog.Logger, input string) (Term, error) {
	ctx := NewContext(logger)
	reducer := NewReducer(ctx)

	chunks := reSplitAtReader.Split(input, -1)

	for i, chunk := range chunks {
		rest := chunk

		if i > 0 {
			var err error
			rest, err = registerReader(ctx, reducer, chunk)
			if err != nil {
				return nil, err
			}
		}

		for _, a := range splitAssignments(rest) {
			term, err := Parse(ctx, reducer, a.rhs)
			if err != nil {
				return nil, err
			}
			ctx.Assignments[a.name] = term
		}
	}

	out, ok := ctx.Assignments["out"]
	if !ok {
		return nil, ErrNoOutput
	}
	return reducer.Reduce(out), nil
}

// registerReader parses the "<DELIM> <matcher> <DELIM> <compiler> <DELIM>"
// header that followed "~reader" at the front of chunk (the split in
// CompileDocument has already removed "~reader"), appends the resulting Reader to
// ctx, and returns the remainder of the chunk (spec §4.G.2, §6.2).
//
// The delimiter literal is reused verbatim as the text-split key (spec §9's
// documented quirk): it must not recur inside the embedded matcher or
// compiler source, or the field boundaries shift early.
//
// If chunk doesn't start with a delimiter word at all, no reader is
// registered and chunk is returned unchanged as plain text, matching
// original_source's compile_lc (a failed READER_DELIM_FINDER match falls
// through rather than erroring); a delimiter that IS found but whose
// fields don't all show up is still a hard error.
func registerReader(ctx *Context, reducer *Reducer, chunk string) (string, error) {
	delim := reReaderDelimFinder.FindString(chunk)
	if delim == "" {
		return chunk, nil
	}

	fields := strings.SplitN(chunk, delim, 4)
	if len(fields) < 4 {
		return "", ErrReaderDelimMissing
	}

	matcher, err := Parse(ctx, reducer, fields[1])
	if err != nil {
		return "", err
	}
	compiler, err := Parse(ctx, reducer, fields[2])
	if err != nil {
		return "", err
	}

	ctx.Readers = append(ctx.Readers, Reader{Matcher: matcher, Compiler: compiler})
	return fields[3], nil
}

// splitAssignments scans src for "name := ..." assignments (spec §4.G.3):
// each covers the bytes from just after its ":=" to the start of the next
// assignment, or the end of src.
func splitAssignments(src string) []assignmentSpan {
	matches := reAssignment.FindAllStringIndex(src, -1)

	type boundary struct {
		name  string
		start int
		end   int
	}
	bounds := make([]boundary, 0, len(matches)+1)
	for _, m := range matches {
		text := src[m[0]:m[1]]
		name := reAssignmentVarname.FindString(text)
		bounds = append(bounds, boundary{name: name, start: m[0], end: m[1]})
	}
	bounds = append(bounds, boundary{name: "", start: len(src), end: len(src)})

	var spans []assignmentSpan
	for i := 0; i < len(bounds)-1; i++ {
		spans = append(spans, assignmentSpan{
			name: bounds[i].name,
			rhs:  src[bounds[i].end:bounds[i+1].start],
		})
	}
	return spans
}
