//go:build spinx_disable_padding

package opt

import "sync/atomic"

// Word_ is an atomic lock-state word.
// Padding is force-disabled via the spinx_disable_padding build tag.
// Use: go build -tags=spinx_disable_padding
type Word_ struct {
	atomic.Uint32
}
