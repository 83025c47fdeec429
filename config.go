// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggplot

import (
	"fmt"

	"github.com/gogpu/ggplot/drawlist"
)

// Default buffer capacities used when a Config leaves them at zero.
const (
	DefaultLineCapacity = 10000
	DefaultMeshCapacity = 1000
)

// Config configures a Backend.
type Config struct {
	// Width and Height are the initial surface size in pixels.
	Width, Height float32

	// LineCapacity preallocates line vertices per frame.
	// Zero means DefaultLineCapacity.
	LineCapacity int

	// MeshCapacity preallocates draw records per frame.
	// Zero means DefaultMeshCapacity.
	MeshCapacity int
}

// withDefaults returns c with zero capacities replaced by the defaults.
func (c Config) withDefaults() Config {
	if c.LineCapacity <= 0 {
		c.LineCapacity = DefaultLineCapacity
	}
	if c.MeshCapacity <= 0 {
		c.MeshCapacity = DefaultMeshCapacity
	}
	return c
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width=%v, height=%v", ErrInvalidDimensions, c.Width, c.Height)
	}
	return nil
}

func (c Config) capacity() drawlist.Capacity {
	return drawlist.Capacity{
		Vertices: c.LineCapacity,
		Commands: c.MeshCapacity,
	}
}
