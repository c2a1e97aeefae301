package contract

import (
	"encoding/hex"
	"fmt"

	"stakeplug/internal/crypto"
	"stakeplug/internal/domain"
)

// Clause is a node in a spending condition.
type Clause interface {
	fmt.Stringer
	isClause()
}

// Satisfied is always true.
type Satisfied struct{}

// Unsatisfiable is always false.
type Unsatisfiable struct{}

// Key requires a signature from PublicKey.
type Key struct {
	PublicKey domain.PublicKey
}

// Preimage requires the sha256 preimage of Hash.
type Preimage struct {
	Hash [32]byte
}

// TemplateHash requires the spending transaction to match a committed template.
type TemplateHash struct {
	Hash [32]byte
}

// Older requires a relative lock to have elapsed.
type Older struct {
	Lock domain.RelTimeLock
}

// After requires an absolute lock time (height or unix time) to be reached.
type After struct {
	LockTime uint32
}

// And requires both A and B.
type And struct {
	A, B Clause
}

// Or requires either A or B.
type Or struct {
	A, B Clause
}

func (Satisfied) isClause()     {}
func (Unsatisfiable) isClause() {}
func (Key) isClause()           {}
func (Preimage) isClause()      {}
func (TemplateHash) isClause()  {}
func (Older) isClause()         {}
func (After) isClause()         {}
func (And) isClause()           {}
func (Or) isClause()            {}

func (Satisfied) String() string     { return "1" }
func (Unsatisfiable) String() string { return "0" }
func (c Key) String() string         { return "pk(" + c.PublicKey.String() + ")" }
func (c Preimage) String() string    { return "sha256(" + hex.EncodeToString(c.Hash[:]) + ")" }
func (c TemplateHash) String() string {
	return "txtmpl(" + hex.EncodeToString(c.Hash[:]) + ")"
}
func (c Older) String() string { return fmt.Sprintf("older(%d)", c.Lock.Sequence()) }
func (c After) String() string { return fmt.Sprintf("after(%d)", c.LockTime) }
func (c And) String() string   { return "and(" + c.A.String() + "," + c.B.String() + ")" }
func (c Or) String() string    { return "or(" + c.A.String() + "," + c.B.String() + ")" }

// AndOf folds clauses into a right-leaning And. No clauses yields Satisfied.
func AndOf(cs ...Clause) Clause {
	switch len(cs) {
	case 0:
		return Satisfied{}
	case 1:
		return cs[0]
	}
	return And{A: cs[0], B: AndOf(cs[1:]...)}
}

// OrOf folds clauses into a right-leaning Or. No clauses yields Unsatisfiable.
func OrOf(cs ...Clause) Clause {
	switch len(cs) {
	case 0:
		return Unsatisfiable{}
	case 1:
		return cs[0]
	}
	return Or{A: cs[0], B: OrOf(cs[1:]...)}
}

// fragment renders the script for one atomic clause.
func fragment(c Clause) string {
	switch c := c.(type) {
	case Key:
		return c.PublicKey.String() + " CHECKSIGVERIFY"
	case Preimage:
		return "SHA256 " + hex.EncodeToString(c.Hash[:]) + " EQUALVERIFY"
	case TemplateHash:
		return hex.EncodeToString(c.Hash[:]) + " CHECKTEMPLATEVERIFY DROP"
	case Older:
		return fmt.Sprintf("%d CHECKSEQUENCEVERIFY DROP", c.Lock.Sequence())
	case After:
		return fmt.Sprintf("%d CHECKLOCKTIMEVERIFY DROP", c.LockTime)
	default:
		panic(fmt.Sprintf("contract: no script fragment for %T", c))
	}
}

// witness names the stack items an atomic clause consumes.
func witness(c Clause) []string {
	switch c := c.(type) {
	case Key:
		return []string{"sig(" + crypto.Fingerprint(c.PublicKey).String() + ")"}
	case Preimage:
		return []string{"preimage(" + hex.EncodeToString(c.Hash[:]) + ")"}
	default:
		return nil
	}
}
