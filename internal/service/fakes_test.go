package service

import (
	"context"
	"sync"
	"sync/atomic"

	"storefront/internal/model"
)

type fakeFinder struct {
	products []model.Product
	err      error
	calls    atomic.Int32
}

func (f *fakeFinder) FindAll(ctx context.Context) ([]model.Product, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

type fakeCart struct {
	err   error
	mu    sync.Mutex
	calls []cartCall
}

type cartCall struct {
	token     string
	productID string
}

func (f *fakeCart) Add(ctx context.Context, token, productID string) error {
	f.mu.Lock()
	f.calls = append(f.calls, cartCall{token: token, productID: productID})
	f.mu.Unlock()
	return f.err
}

func (f *fakeCart) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type countingCounter struct {
	n atomic.Int64
}

func (c *countingCounter) Increment() { c.n.Add(1) }

type recordingNotifier struct {
	mu       sync.Mutex
	outcomes []Outcome
}

func (r *recordingNotifier) Notify(ctx context.Context, o Outcome) {
	r.mu.Lock()
	r.outcomes = append(r.outcomes, o)
	r.mu.Unlock()
}

type staticImages string

func (s staticImages) ImageURL(p model.Product) string { return string(s) + p.Image }
