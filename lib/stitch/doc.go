// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

// Package stitch defines the machine-level instruction vocabulary shared
// by all embroidery format codecs.
//
// An embroidery design is an ordered sequence of [Event] values: an
// instruction [Kind] applied at an absolute design-space coordinate
// (machine units, typically 0.1mm). The vocabulary is deliberately more
// general than any single binary format — format codecs are responsible
// for mapping their wire instructions onto these kinds and back.
package stitch
