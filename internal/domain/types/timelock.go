package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// BIP-68 relative lock-time encoding.
const (
	SequenceLockTimeTypeFlag    = 1 << 22
	SequenceLockTimeMask        = 0x0000ffff
	SequenceLockTimeGranularity = 9 // 512 seconds
)

var (
	// ErrTimeLockVariant is returned when a relative time lock sets neither or both variants.
	ErrTimeLockVariant = errors.New("relative timelock must set exactly one of RH or RT")
	// ErrTimeLockZero is returned for a zero-length relative time lock.
	ErrTimeLockZero = errors.New("relative timelock must be non-zero")
)

// RelTimeLock is a relative time lock measured either in blocks (RH) or in
// 512-second intervals (RT). Exactly one variant is set.
type RelTimeLock struct {
	Height *uint16 `json:"RH,omitempty"`
	Time   *uint16 `json:"RT,omitempty"`
}

// RelHeight returns a lock of n blocks.
func RelHeight(n uint16) RelTimeLock { return RelTimeLock{Height: &n} }

// RelTime returns a lock of n 512-second intervals.
func RelTime(n uint16) RelTimeLock { return RelTimeLock{Time: &n} }

// Check enforces the single-variant, non-zero invariant.
func (l RelTimeLock) Check() error {
	if (l.Height == nil) == (l.Time == nil) {
		return ErrTimeLockVariant
	}
	if l.value() == 0 {
		return ErrTimeLockZero
	}
	return nil
}

// Sequence returns the BIP-68 nSequence value for the lock.
func (l RelTimeLock) Sequence() uint32 {
	v := uint32(l.value()) & SequenceLockTimeMask
	if l.Time != nil {
		v |= SequenceLockTimeTypeFlag
	}
	return v
}

// String renders the lock for humans, e.g. "144 blocks".
func (l RelTimeLock) String() string {
	switch {
	case l.Height != nil:
		return fmt.Sprintf("%d blocks", *l.Height)
	case l.Time != nil:
		return fmt.Sprintf("%ds", uint32(*l.Time)<<SequenceLockTimeGranularity)
	default:
		return "unset"
	}
}

// Equal reports whether both locks encode the same sequence.
func (l RelTimeLock) Equal(o RelTimeLock) bool {
	return l.Check() == nil && o.Check() == nil && l.Sequence() == o.Sequence()
}

// UnmarshalJSON decodes {"RH": n} or {"RT": n} and enforces Check.
func (l *RelTimeLock) UnmarshalJSON(b []byte) error {
	type alias RelTimeLock
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	out := RelTimeLock(a)
	if err := out.Check(); err != nil {
		return err
	}
	*l = out
	return nil
}

func (l RelTimeLock) value() uint16 {
	switch {
	case l.Height != nil:
		return *l.Height
	case l.Time != nil:
		return *l.Time
	default:
		return 0
	}
}
