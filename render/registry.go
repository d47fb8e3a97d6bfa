// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ContextFactory creates a render context for one backend.
// It must return a usable Context; NewContext rejects a nil one.
type ContextFactory func() Context

var (
	// ErrUnknownContext is returned by NewContext for a backend name nobody
	// registered.
	ErrUnknownContext = errors.New("render: unknown context")

	// ErrNilContext is returned by NewContext when a backend factory
	// produced no context.
	ErrNilContext = errors.New("render: context factory returned nil")
)

// backends, keyed by name.
var (
	registryMu sync.RWMutex
	contexts   = make(map[string]ContextFactory)
)

// Register registers a context factory with the given name.
// It is typically called from init() in backend packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    render.Register("soft", func() render.Context {
//	        return soft.New(nil)
//	    })
//	}
//
// Register panics if name is empty, if factory is nil or if a context with
// the same name is already registered.
func Register(name string, factory ContextFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" {
		panic("render: Register called with an empty backend name")
	}
	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := contexts[name]; dup {
		panic("render: Register called twice for " + name)
	}
	contexts[name] = factory
}

// Unregister removes a context from the registry.
// If the name is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(contexts, name)
}

// NewContext creates a new context instance by name.
//
//	import _ "github.com/gogpu/forward/backend/soft"
//
//	ctx, err := render.NewContext("soft")
//
// An unregistered name yields an error wrapping ErrUnknownContext whose
// message hints at a forgotten backend import. A factory that returns nil
// yields ErrNilContext instead of a context that would panic on the first
// culling call.
func NewContext(name string) (Context, error) {
	registryMu.RLock()
	factory, ok := contexts[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownContext, name)
	}
	ctx := factory()
	if ctx == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilContext, name)
	}
	return ctx, nil
}

// MustContext creates a new context instance by name, panicking on error.
func MustContext(name string) Context {
	c, err := NewContext(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Contexts returns the registered backend names in alphabetical order.
func Contexts() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(contexts))
	for name := range contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a context with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := contexts[name]
	return ok
}
