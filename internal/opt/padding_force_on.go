//go:build spinx_enable_padding && !spinx_disable_padding

package opt

import (
	"sync/atomic"
	"unsafe"
)

// Word_ is an atomic lock-state word that occupies a whole cache line.
// Padding is force-enabled via the spinx_enable_padding build tag.
// Use: go build -tags=spinx_enable_padding
type Word_ struct {
	atomic.Uint32
	_ [(CacheLineSize_ - unsafe.Sizeof(atomic.Uint32{})%CacheLineSize_) % CacheLineSize_]byte
}
