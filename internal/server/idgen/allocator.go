// Package idgen allocates user identifiers. Identifiers are decimal strings of
// a counter that only moves forward, so an identifier freed by a delete is
// never handed out again.
package idgen

import (
	"context"
	"strconv"
	"sync/atomic"
)

// Allocator returns a fresh identifier on every call. Concurrent calls never
// return the same value; gaps are allowed.
type Allocator interface {
	Next(ctx context.Context) (string, error)
}

// SequenceAllocator is an in-process counter starting at 1.
type SequenceAllocator struct {
	last atomic.Uint64
}

func NewSequenceAllocator() *SequenceAllocator {
	return &SequenceAllocator{}
}

func (a *SequenceAllocator) Next(_ context.Context) (string, error) {
	return strconv.FormatUint(a.last.Add(1), 10), nil
}
