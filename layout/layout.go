// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFont is the Go Regular TrueType font.
var DefaultFont = goregular.TTF

var (
	// ErrNoFont is returned when a layout service is created without font data.
	ErrNoFont = errors.New("layout: no font data")

	// ErrInvalidText is returned for strings that are not valid UTF-8.
	ErrInvalidText = errors.New("layout: invalid UTF-8 text")

	// ErrInvalidSize is returned for non-positive font sizes.
	ErrInvalidSize = errors.New("layout: invalid font size")
)

func checkInput(s string, size float64) error {
	if !utf8.ValidString(s) {
		return ErrInvalidText
	}
	if size <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return nil
}
