// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package pec

// DecodeError reports a malformed PEC stream: a bad magic string or an
// instruction stream the decoder cannot make sense of. I/O errors from
// the underlying source are not wrapped in DecodeError; they propagate
// as-is. Extract with errors.As:
//
//	var decodeErr *pec.DecodeError
//	if errors.As(err, &decodeErr) { ... }
type DecodeError struct {
	// Reason describes what was malformed.
	Reason string
}

func (e *DecodeError) Error() string {
	return "pec: decoding: " + e.Reason
}

// CompatibilityError reports a design that cannot be represented in the
// PEC format, such as a palette with more than 255 threads or a stitch
// displacement outside the 12-bit delta range.
type CompatibilityError struct {
	// Reason describes which format limit was exceeded.
	Reason string
}

func (e *CompatibilityError) Error() string {
	return "pec: incompatible design: " + e.Reason
}
