// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggplot

import (
	"slices"
	"strings"
	"testing"
)

func TestRegisterEngine(t *testing.T) {
	const name = "test-fake"
	t.Cleanup(func() { UnregisterEngine(name) })

	RegisterEngine(name, func(width, height int) (Engine, error) {
		e := &fakeEngine{}
		e.SetWidthHeight(float32(width), float32(height))
		return e, nil
	})

	if !IsEngineRegistered(name) {
		t.Fatalf("IsEngineRegistered(%q) = false", name)
	}
	if !slices.Contains(Engines(), name) {
		t.Errorf("Engines() = %v, missing %q", Engines(), name)
	}

	engine, err := NewEngine(name, 64, 32)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	fe := engine.(*fakeEngine)
	if fe.width != 64 || fe.height != 32 {
		t.Errorf("engine size = %vx%v, want 64x32", fe.width, fe.height)
	}
}

func TestRegisterEnginePanics(t *testing.T) {
	const name = "test-dup"
	t.Cleanup(func() { UnregisterEngine(name) })

	factory := func(int, int) (Engine, error) { return &fakeEngine{}, nil }
	RegisterEngine(name, factory)

	tests := []struct {
		name    string
		factory EngineFactory
	}{
		{"duplicate", factory},
		{"nil factory", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("RegisterEngine did not panic")
				}
			}()
			RegisterEngine(name, tt.factory)
		})
	}
}

func TestNewEngineUnknown(t *testing.T) {
	_, err := NewEngine("does-not-exist", 1, 1)
	if err == nil {
		t.Fatal("NewEngine() error = nil for unknown engine")
	}
	if !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("error = %q, want a hint about imports", err)
	}
}

func TestEnginesSorted(t *testing.T) {
	for _, n := range []string{"test-zz", "test-aa", "test-mm"} {
		RegisterEngine(n, func(int, int) (Engine, error) { return &fakeEngine{}, nil })
		t.Cleanup(func() { UnregisterEngine(n) })
	}
	if names := Engines(); !slices.IsSorted(names) {
		t.Errorf("Engines() = %v, not sorted", names)
	}
	UnregisterEngine("never-registered")
}
