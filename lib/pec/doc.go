// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

// Package pec reads and writes the PEC embroidery machine format.
//
// PEC stores a fixed-layout header (design name, thumbnail geometry,
// thread palette indices), a delta-encoded stitch instruction stream,
// and one thumbnail bitmap block per thread plus one for the whole
// design. The package is organized by wire concern:
//
//   - signed.go: 7-bit and 12-bit two's-complement delta packing with
//     embedded JUMP/TRIM control flags
//   - reconcile.go: resolution of the file's per-event color indices
//     against the default Brother palette and an optional external
//     color chart
//   - reader.go: Read/ReadContent — header, palette, instruction
//     stream, thumbnail blocks
//   - writer.go: Write/WriteContent — header with patched-back
//     instruction block length, the stateful stream encoder, placeholder
//     thumbnails
//
// The instruction stream is stateful in an asymmetric way: the first
// needle-up travel move is written as a plain JUMP, every later one as
// TRIM+JUMP (thread is cut before any travel except the initial needle
// placement), and explicit Trim/Stop events in the input are not
// independently representable on the wire. See the writer documentation
// for the exact state machine.
//
// Format reference: https://github.com/frno7/libpes/wiki/PEC-section
package pec
