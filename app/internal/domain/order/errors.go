package order

import "errors"

var (
	ErrEmptyCart     = errors.New("no items to checkout")
	ErrHandoffFailed = errors.New("checkout handoff failed")
)
