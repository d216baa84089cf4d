//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !spinx_disable_padding && !spinx_enable_padding

package opt

import "sync/atomic"

// Word_ is an atomic lock-state word.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
type Word_ struct {
	atomic.Uint32
}
