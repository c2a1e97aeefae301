package crypto

import (
	"crypto/subtle"
	"runtime"
)

// Wipe overwrites each buffer with zeros. It is best-effort: the runtime may
// already have copied the secret elsewhere.
//
//go:noinline
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
		runtime.KeepAlive(b)
	}
}
