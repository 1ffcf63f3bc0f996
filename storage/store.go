// Package storage is the typed read/write boundary over the two key-value stores a
// browser owns: a session scoped store and a persistent store.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/MonkyMars/gecho"
)

// Scope selects the backing store of a key
type Scope int

const (
	// Session values live until the browsing session ends
	Session Scope = iota
	// Persistent values survive restarts until removed
	Persistent
)

func (s Scope) String() string {
	switch s {
	case Session:
		return "session"
	case Persistent:
		return "persistent"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

var ErrUnknownScope = errors.New("unknown storage scope")

// Backend stores string values grouped by namespace. A namespace is one browsing
// session or one browser profile.
type Backend interface {
	Get(ctx context.Context, namespace, key string) (string, bool, error)
	Set(ctx context.Context, namespace, key, value string) error
	Remove(ctx context.Context, namespace, key string) error
	Ping(ctx context.Context) error
}

// Accessor binds a session namespace and a profile namespace to their backends.
// It is encoding-agnostic; typed access goes through Key.
type Accessor struct {
	session    Backend
	sessionID  string
	persistent Backend
	profileID  string
	logger     *gecho.Logger
}

func NewAccessor(session Backend, sessionID string, persistent Backend, profileID string) *Accessor {
	return &Accessor{
		session:    session,
		sessionID:  sessionID,
		persistent: persistent,
		profileID:  profileID,
	}
}

// WithLogger attaches a logger used to report values dropped as malformed
func (a *Accessor) WithLogger(logger *gecho.Logger) *Accessor {
	a.logger = logger
	return a
}

func (a *Accessor) SessionID() string { return a.sessionID }

func (a *Accessor) ProfileID() string { return a.profileID }

func (a *Accessor) resolve(scope Scope) (Backend, string, error) {
	switch scope {
	case Session:
		return a.session, a.sessionID, nil
	case Persistent:
		return a.persistent, a.profileID, nil
	default:
		return nil, "", ErrUnknownScope
	}
}

// Get returns the raw value of key and whether it is present
func (a *Accessor) Get(ctx context.Context, scope Scope, key string) (string, bool, error) {
	backend, ns, err := a.resolve(scope)
	if err != nil {
		return "", false, err
	}
	val, ok, err := backend.Get(ctx, ns, key)
	if err != nil {
		return "", false, fmt.Errorf("%s get %q failed: %w", scope, key, err)
	}
	return val, ok, nil
}

func (a *Accessor) Set(ctx context.Context, scope Scope, key, value string) error {
	backend, ns, err := a.resolve(scope)
	if err != nil {
		return err
	}
	if err := backend.Set(ctx, ns, key, value); err != nil {
		return fmt.Errorf("%s set %q failed: %w", scope, key, err)
	}
	return nil
}

// Remove deletes key; removing an absent key is not an error
func (a *Accessor) Remove(ctx context.Context, scope Scope, key string) error {
	backend, ns, err := a.resolve(scope)
	if err != nil {
		return err
	}
	if err := backend.Remove(ctx, ns, key); err != nil {
		return fmt.Errorf("%s remove %q failed: %w", scope, key, err)
	}
	return nil
}
