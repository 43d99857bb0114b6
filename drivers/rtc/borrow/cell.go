// Package borrow provides a cell that hands out at most one borrow of its
// value at a time.
//
// Boot firmware runs without a scheduler, so a second borrow can only come
// from re-entrance into code already holding the value. Waiting for the first
// borrow to end would never finish. The cell panics instead.
package borrow

import (
	"errors"
	"sync/atomic"

	"github.com/hvfw/firmware/debug"
)

// ErrAlreadyBorrowed is the panic value of a second concurrent borrow.
var ErrAlreadyBorrowed = errors.New("borrow: value already borrowed")

// Cell holds a value of type T that is accessed through Borrow.
type Cell[T any] struct {
	busy atomic.Bool
	v    T
}

// NewCell returns a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Borrow returns the value and a function ending the borrow. The value must
// not be retained after calling release. Borrow panics with
// ErrAlreadyBorrowed if the previous borrow hasn't been released.
func (c *Cell[T]) Borrow() (v T, release func()) {
	if !c.busy.CompareAndSwap(false, true) {
		panic(ErrAlreadyBorrowed)
	}
	return c.v, c.release
}

func (c *Cell[T]) release() {
	released := c.busy.Swap(false)
	debug.Assert(released, "borrow: release without borrow")
}

// Do calls f with the borrowed value and releases it when f returns or
// panics.
func (c *Cell[T]) Do(f func(v T)) {
	v, release := c.Borrow()
	defer release()
	f(v)
}

// Borrowed reports whether a borrow is active.
func (c *Cell[T]) Borrowed() bool {
	return c.busy.Load()
}
