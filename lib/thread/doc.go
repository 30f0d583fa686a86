// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

// Package thread models embroidery threads and thread palettes.
//
// A [Thread] is a color plus catalog identity (brand, chart, catalog
// number). Format codecs deal in palettes: ordered thread lists indexed
// by color-change ordinal. Two palette operations live here because they
// are shared across formats:
//
//   - [FindNearestColor] / [DistanceRedMean] -- perceptual nearest-color
//     lookup using the red-mean weighted metric
//     (https://www.compuphase.com/cmetric.htm)
//   - [BuildUniquePalette] -- write-side index assignment: maps a
//     design's thread list onto distinct slots of a fixed machine
//     palette
//
// Chart files (LoadChart/SaveChart) are YAML sidecars carrying an
// external thread list, used when a container format supplies its own
// color chart for an embedded stitch section.
package thread
