package elc

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-uuid"
)

// Reader is a user-defined lexer-plus-macro: a pair of terms that extend the
// tokenizer (spec §3.2). Matcher classifies a codepoint-list prefix into
// {reject, need-more, accept}; Compiler turns an accepted span into a term.
type Reader struct {
	Matcher  Term
	Compiler Term
}

// Context holds the mutable state of a single document compilation: the
// registered readers (in declaration/priority order), the name->term
// assignment table, and the fresh-variable counter (spec §3.3). A Context is
// never shared between concurrent compilations.
type Context struct {
	Readers     []Reader
	Assignments map[string]Term

	varCounter VarID

	logger    hclog.Logger
	SessionID string
}

// NewContext creates an empty compilation context. logger may be nil, in
// which case diagnostics are discarded.
func NewContext(logger hclog.Logger) *Context {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	id, err := uuid.GenerateUUID()
	if err != nil {
		id = "unidentified"
	}
	logger = logger.Named("elc").With("session", id)
	logger.Debug("compilation context created")

	return &Context{
		Assignments: make(map[string]Term),
		logger:      logger,
		SessionID:   id,
	}
}

// NewVar allocates the next fresh variable index. The counter is strictly
// monotone for the lifetime of the Context (spec §3.1 invariant).
func (c *Context) NewVar() VarID {
	v := c.varCounter
	c.varCounter++
	c.logger.Trace("fresh variable allocated", "index", v)
	return v
}
