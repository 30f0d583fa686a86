// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the project's standard CBOR configuration.
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys, smallest integer encoding, no indefinite-length items. The same
// logical data always produces identical bytes, which is what makes
// design snapshots fingerprintable — byte-identical snapshots mean
// identical designs. Decoding accepts standard CBOR and silently
// ignores unknown fields for forward compatibility.
package codec
