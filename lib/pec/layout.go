// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package pec

// Fixed layout of the PEC section. Every span here is a format
// constant; the reserved spans carry bytes no known machine interprets,
// written as fixed filler and skipped on read.
const (
	// magic is the standalone-file signature. Absent when the PEC
	// section is embedded inside a container format.
	magic = "#PEC0001"

	// labelTag precedes the design name.
	labelTag = "LA:"

	// labelLength is the space-padded design name width.
	labelLength = 16

	// reservedAfterLabel is the span between the name field and the
	// thumbnail geometry bytes. The first byte is the label's CR
	// terminator.
	reservedAfterLabel = 0x0F

	// reservedAfterIcon is the span between the thumbnail geometry
	// bytes and the color-change count.
	reservedAfterIcon = 0x0C

	// paletteSpan is the fixed width of the color-index region: the
	// index bytes plus space padding always total paletteSpan plus one
	// byte beyond the stored color-change count.
	paletteSpan = 0x1D0

	// instructionHeaderLength is the span between the 3-byte
	// instruction block length and the first instruction: 3 filler
	// bytes, design width, design height, and two fixed u16 values.
	instructionHeaderLength = 0x0B

	// thumbnailWidth and thumbnailHeight are the icon dimensions in
	// pixels; thumbnailStride is the icon row stride in bytes (1 bit
	// per pixel).
	thumbnailWidth  = 48
	thumbnailHeight = 38
	thumbnailStride = thumbnailWidth / 8
)

// Two-byte sentinels inside the instruction stream.
const (
	// endMarker1/endMarker2 terminate the stream.
	endMarker1 = 0xFF
	endMarker2 = 0x00

	// colorChangeMarker1/colorChangeMarker2 introduce a thread change.
	// A third byte follows — an alternating 0x02/0x01 marker written
	// by encoders and ignored by decoders.
	colorChangeMarker1 = 0xFE
	colorChangeMarker2 = 0xB0
)
