package contract_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"stakeplug/internal/contract"
	"stakeplug/internal/domain"
)

// vault is a two-stage test contract: the owner can sweep into a timelocked
// child, and the child pays out after the lock.
type vault struct {
	owner contract.Key
	lock  domain.RelTimeLock
	child bool
	split domain.Amount
	err   error
}

func (v vault) Name() string {
	if v.child {
		return "vault[locked]"
	}
	return "vault"
}

func (v vault) Guards(contract.Context) ([]contract.Guard, error) {
	if !v.child {
		return nil, nil
	}
	return []contract.Guard{{
		Name:   "withdraw",
		Clause: contract.AndOf(v.owner, contract.Older{Lock: v.lock}),
	}}, nil
}

func (v vault) Transitions(ctx contract.Context) ([]contract.Transition, error) {
	if v.err != nil {
		return nil, v.err
	}
	if v.child {
		return nil, nil
	}
	locked := v
	locked.child = true
	outs := []contract.Output{{Amount: ctx.Funds - v.split, Contract: locked}}
	if v.split > 0 {
		outs = append(outs, contract.Output{Amount: v.split, Data: "memo"})
	}
	return []contract.Transition{{Name: "sweep", Guard: v.owner, Outputs: outs}}, nil
}

type empty struct{}

func (empty) Name() string                                                { return "empty" }
func (empty) Guards(contract.Context) ([]contract.Guard, error)           { return nil, nil }
func (empty) Transitions(contract.Context) ([]contract.Transition, error) { return nil, nil }

func TestCompile_NestsChildContracts(t *testing.T) {
	v := vault{owner: key(7), lock: domain.RelHeight(6)}
	out, err := contract.Compile(v, contract.NewContext(100_000))
	require.NoError(t, err)

	require.Equal(t, "vault", out.Name)
	require.Equal(t, "/", out.Path)
	require.Equal(t, domain.Amount(100_000), out.Amount)
	require.Len(t, out.Transitions, 1)
	require.Empty(t, out.Finishers)

	tr := out.Transitions[0]
	require.Equal(t, "sweep", tr.Name)
	require.Len(t, tr.TemplateHash, 64)
	require.Equal(t, domain.Amount(0), tr.Template.Fee)
	require.Len(t, tr.Template.Outputs, 1)

	child := tr.Template.Outputs[0].Contract
	require.NotNil(t, child)
	require.Equal(t, "vault[locked]", child.Name)
	require.Equal(t, "/sweep.0", child.Path)
	require.Equal(t, "and("+key(7).String()+",older(6))", child.Policy)
	require.Len(t, child.Finishers, 1)

	h, err := contract.HashTemplate(tr.Template)
	require.NoError(t, err)
	require.Equal(t, "and("+key(7).String()+","+contract.TemplateHash{Hash: h}.String()+")", out.Policy)
	require.Len(t, out.Branches, 1)
}

func TestCompile_IsDeterministic(t *testing.T) {
	v := vault{owner: key(7), lock: domain.RelHeight(6), split: 10}
	a, err := contract.Compile(v, contract.NewContext(1_000))
	require.NoError(t, err)
	b, err := contract.Compile(v, contract.NewContext(1_000))
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, "memo", a.Transitions[0].Template.Outputs[1].Data)
}

func TestCompile_Errors(t *testing.T) {
	_, err := contract.Compile(empty{}, contract.NewContext(1))
	require.ErrorIs(t, err, contract.ErrNoSpendPaths)

	_, err = contract.Compile(vault{owner: key(1), lock: domain.RelHeight(1), split: 2}, contract.NewContext(1))
	require.ErrorIs(t, err, contract.ErrInsufficientFunds)

	boom := errors.New("boom")
	_, err = contract.Compile(vault{err: boom}, contract.NewContext(1))
	require.ErrorIs(t, err, boom)
}

// loop transitions into itself forever.
type loop struct{}

func (loop) Name() string                                      { return "loop" }
func (loop) Guards(contract.Context) ([]contract.Guard, error) { return nil, nil }
func (loop) Transitions(ctx contract.Context) ([]contract.Transition, error) {
	return []contract.Transition{{
		Name:    "again",
		Guard:   key(1),
		Outputs: []contract.Output{{Amount: ctx.Funds, Contract: loop{}}},
	}}, nil
}

func TestCompile_RecursionLimit(t *testing.T) {
	_, err := contract.Compile(loop{}, contract.NewContext(1))
	require.ErrorIs(t, err, contract.ErrRecursionLimit)
}

func TestContext_Derive(t *testing.T) {
	root := contract.NewContext(50)
	child := root.Derive("a", 20).Derive("b", 10)
	require.Equal(t, "/", root.Path())
	require.Equal(t, "/a/b", child.Path())
	require.Equal(t, domain.Amount(10), child.Funds)
}
