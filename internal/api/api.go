// Package api is the marketplace facade: the callable surface standing in
// for a real backend. Operations read and write the entity store, optionally
// after a configurable artificial latency that emulates a network round
// trip. Callers are expected to await each call before issuing the next;
// two overlapping mutations of the same record are not serialized beyond
// what the store's own locking provides.
package api

import (
	"context"
	"time"

	"skillswap-backend/internal/auth"
	"skillswap-backend/internal/store"
)

// SearchPageSize caps how many users a single search returns.
const SearchPageSize = 20

// API groups the facade namespaces over a shared store and token issuer.
type API struct {
	Auth     *AuthAPI
	Users    *UsersAPI
	Skills   *SkillsAPI
	Swaps    *SwapsAPI
	Messages *MessagesAPI
}

// Option configures the API.
type Option func(*base)

// WithLatency sets the artificial delay applied before each operation.
// Zero disables it.
func WithLatency(d time.Duration) Option {
	return func(b *base) { b.latency = d }
}

// WithAdminEmail sets the email whose identity carries the admin flag.
func WithAdminEmail(email string) Option {
	return func(b *base) { b.adminEmail = email }
}

// New creates the facade over the given store and issuer.
func New(st store.Store, issuer *auth.Issuer, opts ...Option) *API {
	b := &base{
		store:      st,
		issuer:     issuer,
		adminEmail: "admin@skillswap.com",
	}
	for _, opt := range opts {
		opt(b)
	}
	return &API{
		Auth:     &AuthAPI{b},
		Users:    &UsersAPI{b},
		Skills:   &SkillsAPI{b},
		Swaps:    &SwapsAPI{b},
		Messages: &MessagesAPI{b},
	}
}

type base struct {
	store      store.Store
	issuer     *auth.Issuer
	latency    time.Duration
	adminEmail string
}

// delay simulates network latency. It honors context cancellation, which the
// original timer-based delay never did.
func (b *base) delay(ctx context.Context) error {
	if b.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(b.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
