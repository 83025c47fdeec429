// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layout measures text for ggplot.
//
// Two implementations of ggplot.Layout are provided:
//
//   - Faces measures with gg/text face metrics and advances. It is cheap
//     and matches what the raster engine draws.
//   - Shaper shapes the text with go-text/typesetting (HarfBuzz), so
//     kerning and ligatures are reflected in the measured width.
//
// Both return a line box measured from its top-left corner: MinY is 0 and
// MaxY is the ascent plus the descent, so the baseline lies one ascent down.
//
//	faces, err := layout.NewFaces(layout.DefaultFont)
//	if err != nil {
//	    return err
//	}
//	defer faces.Close()
//	box, _ := faces.LayoutBox("Hello", 16)
package layout
