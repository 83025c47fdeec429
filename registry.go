// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggplot

import (
	"fmt"
	"sort"
	"sync"
)

// EngineFactory creates an engine for a surface of the given size.
type EngineFactory func(width, height int) (Engine, error)

var (
	registryMu sync.RWMutex
	engines    = make(map[string]EngineFactory)
)

// RegisterEngine registers an engine factory under name.
// It is typically called from init() in engine packages, following the
// database/sql driver pattern:
//
//	import _ "github.com/gogpu/ggplot/raster" // registers "raster"
//
// RegisterEngine panics if factory is nil or name is already registered.
func RegisterEngine(name string, factory EngineFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("ggplot: RegisterEngine factory is nil")
	}
	if _, dup := engines[name]; dup {
		panic("ggplot: RegisterEngine called twice for " + name)
	}
	engines[name] = factory
}

// UnregisterEngine removes an engine from the registry.
// This is primarily useful for tests. Unknown names are a no-op.
func UnregisterEngine(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(engines, name)
}

// NewEngine creates an engine by registered name.
// The error mentions a forgotten import when the name is unknown.
func NewEngine(name string, width, height int) (Engine, error) {
	registryMu.RLock()
	factory, ok := engines[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("ggplot: unknown engine %q (forgotten import?)", name)
	}
	return factory(width, height)
}

// Engines returns the registered engine names in sorted order.
func Engines() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsEngineRegistered reports whether name is registered.
func IsEngineRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := engines[name]
	return ok
}
