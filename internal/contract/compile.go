package contract

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"stakeplug/internal/crypto"
	"stakeplug/internal/domain"
)

var templateTag = []byte("stakeplug/template")

// Compile expands c, and every contract reachable through its transitions,
// into a domain.Compiled.
func Compile(c Contract, ctx Context) (*domain.Compiled, error) {
	if ctx.depth() > maxDepth {
		return nil, ErrRecursionLimit
	}

	guards, err := c.Guards(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s guards: %w", c.Name(), err)
	}
	transitions, err := c.Transitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s transitions: %w", c.Name(), err)
	}
	if len(guards) == 0 && len(transitions) == 0 {
		return nil, ErrNoSpendPaths
	}

	out := &domain.Compiled{
		Name:   c.Name(),
		Path:   ctx.Path(),
		Amount: ctx.Funds,
	}
	paths := make([]Clause, 0, len(guards)+len(transitions))

	for _, g := range guards {
		out.Finishers = append(out.Finishers, domain.Finisher{Name: g.Name, Guard: g.Clause.String()})
		paths = append(paths, g.Clause)
	}

	for _, t := range transitions {
		tmpl, err := compileTemplate(t, ctx)
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", c.Name(), t.Name, err)
		}
		h, err := HashTemplate(tmpl)
		if err != nil {
			return nil, err
		}
		out.Transitions = append(out.Transitions, domain.Transition{
			Name:         t.Name,
			Guard:        t.Guard.String(),
			TemplateHash: hex.EncodeToString(h[:]),
			Template:     tmpl,
		})
		paths = append(paths, And{A: t.Guard, B: TemplateHash{Hash: h}})
	}

	policy := OrOf(paths...)
	branches := Branches(policy)
	if len(branches) == 0 {
		return nil, ErrUnsatisfiable
	}

	out.Policy = policy.String()
	out.Script = Script(branches)
	out.Branches = make([]domain.Branch, len(branches))
	for i, b := range branches {
		out.Branches[i] = domain.Branch{
			Index:   i,
			Policy:  PolicyOf(b),
			Witness: Witness(b, i, len(branches)),
		}
	}
	return out, nil
}

func compileTemplate(t Transition, ctx Context) (domain.Template, error) {
	var spent domain.Amount
	outputs := make([]domain.Output, 0, len(t.Outputs))
	for i, o := range t.Outputs {
		if o.Amount > ctx.Funds-spent {
			return domain.Template{}, ErrInsufficientFunds
		}
		spent += o.Amount

		out := domain.Output{Amount: o.Amount, Data: o.Data}
		if o.Contract != nil {
			child, err := Compile(o.Contract, ctx.Derive(t.Name+"."+strconv.Itoa(i), o.Amount))
			if err != nil {
				return domain.Template{}, err
			}
			out.Contract = child
			out.Data = ""
		}
		outputs = append(outputs, out)
	}
	return domain.Template{
		Sequence: t.Sequence,
		Fee:      ctx.Funds - spent,
		Outputs:  outputs,
	}, nil
}

// HashTemplate commits to a template's canonical JSON encoding.
func HashTemplate(t domain.Template) ([32]byte, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return [32]byte{}, fmt.Errorf("encode template: %w", err)
	}
	return crypto.TaggedHash(templateTag, b), nil
}
