// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggplot

import (
	"errors"
	"fmt"
)

// Construction errors.
var (
	// ErrNilDevice is returned when a nil device context is passed to New.
	ErrNilDevice = errors.New("ggplot: nil device context")

	// ErrNilEngine is returned when a nil engine is passed to New.
	ErrNilEngine = errors.New("ggplot: nil engine")

	// ErrNilLayout is returned when a nil layout service is passed to New.
	ErrNilLayout = errors.New("ggplot: nil layout")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("ggplot: invalid dimensions")
)

// ErrorKind classifies a DrawingError.
type ErrorKind uint8

const (
	// KindDrawing reports a rendering engine failure during present.
	KindDrawing ErrorKind = iota
	// KindFont reports that text could not be measured.
	KindFont
)

// String returns the string representation of an ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindDrawing:
		return "drawing"
	case KindFont:
		return "font"
	default:
		return "unknown"
	}
}

// DrawingError is returned by DrawingBackend operations.
// Err is never retried by the backend.
type DrawingError struct {
	Kind ErrorKind
	Err  error
}

func (e *DrawingError) Error() string {
	return fmt.Sprintf("ggplot: %s error: %v", e.Kind, e.Err)
}

// Unwrap returns the engine or layout error.
func (e *DrawingError) Unwrap() error {
	return e.Err
}
