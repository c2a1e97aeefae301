package contract

import (
	"errors"
	"strings"

	"stakeplug/internal/domain"
)

// maxDepth bounds how deeply transitions may nest child contracts.
const maxDepth = 32

var (
	// ErrNoSpendPaths is returned when a contract declares no guards or transitions.
	ErrNoSpendPaths = errors.New("contract has no spend paths")
	// ErrUnsatisfiable is returned when every path reduces to false.
	ErrUnsatisfiable = errors.New("contract policy can never be satisfied")
	// ErrInsufficientFunds is returned when a template spends more than the contract holds.
	ErrInsufficientFunds = errors.New("template outputs exceed available funds")
	// ErrRecursionLimit is returned when child contracts nest too deeply.
	ErrRecursionLimit = errors.New("contract nesting exceeds recursion limit")
)

// Contract is a template that can be compiled into a spending policy.
type Contract interface {
	// Name identifies the contract kind in compiled output.
	Name() string
	// Guards returns the finish paths.
	Guards(ctx Context) ([]Guard, error)
	// Transitions returns the template-committed paths.
	Transitions(ctx Context) ([]Transition, error)
}

// Guard is a named finish path.
type Guard struct {
	Name   string
	Clause Clause
}

// Transition is a named then path: satisfying Guard spends into Outputs.
type Transition struct {
	Name     string
	Guard    Clause
	Sequence uint32
	Outputs  []Output
}

// Output sends Amount either to a child Contract or, when Contract is nil,
// to an unspendable OP_RETURN carrying Data.
type Output struct {
	Amount   domain.Amount
	Contract Contract
	Data     string
}

// Context carries the funds and location of the contract being compiled.
type Context struct {
	Funds domain.Amount
	path  []string
}

// NewContext returns a root context holding funds.
func NewContext(funds domain.Amount) Context {
	return Context{Funds: funds}
}

// Path is the slash-joined location of the contract within its parent tree.
func (c Context) Path() string {
	if len(c.path) == 0 {
		return "/"
	}
	return "/" + strings.Join(c.path, "/")
}

// Derive returns the context of a child holding funds under name.
func (c Context) Derive(name string, funds domain.Amount) Context {
	path := make([]string, 0, len(c.path)+1)
	path = append(path, c.path...)
	return Context{Funds: funds, path: append(path, name)}
}

func (c Context) depth() int { return len(c.path) }
