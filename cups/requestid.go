package cups

import "sync/atomic"

// requestIDCounter hands out unique, monotonically increasing request
// ids, shared safely across goroutines using the same Client.
type requestIDCounter struct{ n uint32 }

func (c *requestIDCounter) next() uint32 {
	return atomic.AddUint32(&c.n, 1)
}
