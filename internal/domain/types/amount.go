package types

import "fmt"

// SatoshisPerBitcoin is the number of satoshis in one bitcoin.
const SatoshisPerBitcoin = 100_000_000

// Amount is a quantity of satoshis.
type Amount uint64

// String formats the amount in BTC with full precision.
func (a Amount) String() string {
	return fmt.Sprintf("%d.%08d BTC", uint64(a)/SatoshisPerBitcoin, uint64(a)%SatoshisPerBitcoin)
}
