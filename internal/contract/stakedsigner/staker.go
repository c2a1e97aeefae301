package stakedsigner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"stakeplug/internal/contract"
	"stakeplug/internal/crypto"
	"stakeplug/internal/domain"
)

// BurnMessage is the OP_RETURN payload of a burn.
const BurnMessage = "evidence of cheating"

var (
	// ErrTrailingData is returned when a staker document has extra JSON after it.
	ErrTrailingData = errors.New("unexpected data after staker arguments")
)

// StakingState is the phantom state parameter of Staker.
type StakingState interface {
	Operational | Closing
}

// Operational is a live bond. The signer is staked and may begin redeeming.
type Operational struct{}

// Closing is a bond being redeemed. It pays out after the timeout.
type Closing struct{}

// Staker is the staked signer contract in state S.
type Staker[S StakingState] struct {
	Timeout      domain.RelTimeLock `json:"timeout" jsonschema:"delay between beginning and finishing a redeem"`
	SigningKey   domain.PublicKey   `json:"signing_key" jsonschema:"key whose disclosure lets anyone burn the bond"`
	RedeemingKey domain.PublicKey   `json:"redeeming_key" jsonschema:"key that may redeem the bond"`
}

// params mirrors Staker's fields for decoding.
type params struct {
	Timeout      domain.RelTimeLock `json:"timeout"`
	SigningKey   domain.PublicKey   `json:"signing_key"`
	RedeemingKey domain.PublicKey   `json:"redeeming_key"`
}

var (
	_ contract.Contract = Staker[Operational]{}
	_ contract.Contract = Staker[Closing]{}
)

// UnmarshalJSON decodes a staker and enforces Check. Unknown fields are
// rejected.
func (s *Staker[S]) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var p params
	if err := dec.Decode(&p); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return ErrTrailingData
	}
	out := Staker[S]{Timeout: p.Timeout, SigningKey: p.SigningKey, RedeemingKey: p.RedeemingKey}
	if err := out.Check(); err != nil {
		return err
	}
	*s = out
	return nil
}

// Check reports whether the timeout and both keys are usable.
func (s Staker[S]) Check() error {
	if err := s.Timeout.Check(); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	if err := crypto.ValidatePublicKey(s.SigningKey); err != nil {
		return fmt.Errorf("signing_key: %w", err)
	}
	if err := crypto.ValidatePublicKey(s.RedeemingKey); err != nil {
		return fmt.Errorf("redeeming_key: %w", err)
	}
	return nil
}

// Name implements contract.Contract.
func (s Staker[S]) Name() string {
	return "staker[" + stateName[S]() + "]"
}

// Guards implements contract.Contract.
func (s Staker[S]) Guards(contract.Context) ([]contract.Guard, error) {
	if !closing[S]() {
		return nil, nil
	}
	return []contract.Guard{{
		Name: "finish_redeem",
		Clause: contract.AndOf(
			contract.Key{PublicKey: s.RedeemingKey},
			contract.Older{Lock: s.Timeout},
		),
	}}, nil
}

// Transitions implements contract.Contract.
func (s Staker[S]) Transitions(ctx contract.Context) ([]contract.Transition, error) {
	var out []contract.Transition
	if !closing[S]() {
		out = append(out, contract.Transition{
			Name:  "begin_redeem",
			Guard: contract.Key{PublicKey: s.RedeemingKey},
			Outputs: []contract.Output{{
				Amount:   ctx.Funds,
				Contract: s.closing(),
			}},
		})
	}
	out = append(out, contract.Transition{
		Name:    "burn",
		Guard:   s.cheated(),
		Outputs: []contract.Output{{Amount: 0, Data: BurnMessage}},
	})
	return out, nil
}

// cheated is satisfied by anyone who learned the signing key.
func (s Staker[S]) cheated() contract.Clause {
	return contract.Key{PublicKey: s.SigningKey}
}

func (s Staker[S]) closing() Staker[Closing] {
	return Staker[Closing]{
		Timeout:      s.Timeout,
		SigningKey:   s.SigningKey,
		RedeemingKey: s.RedeemingKey,
	}
}

func closing[S StakingState]() bool {
	_, ok := any(*new(S)).(Closing)
	return ok
}

func stateName[S StakingState]() string {
	if closing[S]() {
		return "closing"
	}
	return "operational"
}
