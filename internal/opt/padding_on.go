//go:build !(amd64 || 386 || arm || mips || mipsle || wasm) && !spinx_disable_padding && !spinx_enable_padding

package opt

import (
	"sync/atomic"
	"unsafe"
)

// Word_ is an atomic lock-state word that occupies a whole cache line, so two
// words written by different cores (reader count, writer flag) never share one.
// Padding is automatically enabled for architectures that are NOT:
// - amd64 (x86_64): Hardware optimizations often make padding less critical
// - 32-bit architectures (386, arm, mips, mipsle, wasm): Smaller cache lines/memory constraints
//
// Enabled for: arm64, s390x, ppc64, ppc64le, riscv64, loong64, mips64, mips64le, etc.
type Word_ struct {
	atomic.Uint32
	_ [(CacheLineSize_ - unsafe.Sizeof(atomic.Uint32{})%CacheLineSize_) % CacheLineSize_]byte
}
