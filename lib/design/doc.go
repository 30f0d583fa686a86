// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

// Package design holds the in-memory representation of an embroidery
// design: an ordered stitch-instruction stream, a thread palette, and
// metadata (name, free-form text, opaque graphics blocks).
//
// The mutator API is relative: decoders feed deltas straight off the
// wire ([Design.Stitch], [Design.Jump], ...) and the design accumulates
// them onto an internal cursor, storing absolute events. Encoders walk
// the absolute event list ([Design.Stitches]) and re-derive deltas.
//
// The normalization passes translate between format conventions and the
// general instruction vocabulary. PEC-family formats have no Stop
// opcode — a machine stop is expressed as a color change to the same
// thread — so the writer calls [Design.InterpolateStopAsDuplicateColor]
// before encoding and the reader calls
// [Design.InterpolateDuplicateColorAsStop] after decoding.
package design
