// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package pec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/stitchfoundry/embroidery/lib/design"
	"github.com/stitchfoundry/embroidery/lib/stitch"
	"github.com/stitchfoundry/embroidery/lib/thread"
)

// WriteFile writes d as a standalone PEC file at path.
func WriteFile(d *design.Design, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()
	if err := Write(d, file); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}

// Write writes d as a standalone PEC stream: the 8-byte magic followed
// by the content section.
func Write(d *design.Design, w io.WriteSeeker) error {
	if _, err := w.Write([]byte(magic)); err != nil {
		return fmt.Errorf("writing magic: %w", err)
	}
	_, err := WriteContent(d, w)
	return err
}

// WriteContent encodes d's PEC content section (no magic) to w and
// returns the default-palette indices stored for the design's threads,
// which container formats embed in their own color sections.
//
// The design is normalized first: [design.Design.FixColorCount] grows
// the palette to cover every color block, and
// [design.Design.InterpolateStopAsDuplicateColor] rewrites Stop events
// into the duplicate-color convention PEC uses for machine stops.
//
// The instruction block's 3-byte length field is written as a
// placeholder, then patched with one backward seek once the stream
// length is known.
func WriteContent(d *design.Design, w io.WriteSeeker) ([]int, error) {
	d.FixColorCount()
	d.InterpolateStopAsDuplicateColor()

	threads := d.Threads()
	if len(threads) > 255 {
		return nil, &CompatibilityError{
			Reason: fmt.Sprintf("%d threads exceed the format maximum of 255", len(threads)),
		}
	}

	// Palette slot assignment runs over the real entries (entry 0 is
	// the reserved "Unknown" thread), then shifts back to full-table
	// indices so the stored bytes match the reader's lookup.
	defaults := thread.PECThreads()
	indices := thread.BuildUniquePalette(defaults[1:], threads)
	for i := range indices {
		indices[i]++
	}

	if err := writeHeader(d, w, indices); err != nil {
		return nil, err
	}

	lengthPosition, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("locating instruction block: %w", err)
	}

	blockHeader := make([]byte, 0, 3+instructionHeaderLength)
	blockHeader = append(blockHeader, 0, 0, 0) // length placeholder
	blockHeader = append(blockHeader, 0x31, 0xFF, 0xF0)
	minX, minY, maxX, maxY := d.Bounds()
	blockHeader = binary.LittleEndian.AppendUint16(blockHeader, uint16(maxX-minX))
	blockHeader = binary.LittleEndian.AppendUint16(blockHeader, uint16(maxY-minY))
	blockHeader = binary.LittleEndian.AppendUint16(blockHeader, 0x1E0)
	blockHeader = binary.LittleEndian.AppendUint16(blockHeader, 0x1B0)
	if _, err := w.Write(blockHeader); err != nil {
		return nil, fmt.Errorf("writing instruction block header: %w", err)
	}

	stream, err := encodeInstructions(d.Stitches())
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(stream); err != nil {
		return nil, fmt.Errorf("writing instruction stream: %w", err)
	}

	end, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("locating instruction block end: %w", err)
	}
	// The reader computes the thumbnail offset as length - 5 from the
	// end of the length field; patch the placeholder accordingly.
	blockLength := end - (lengthPosition + 3) + 5
	if blockLength >= 1<<24 {
		return nil, &CompatibilityError{
			Reason: fmt.Sprintf("instruction block length %d exceeds the 3-byte field maximum", blockLength),
		}
	}
	var lengthField [3]byte
	lengthField[0] = byte(blockLength)
	lengthField[1] = byte(blockLength >> 8)
	lengthField[2] = byte(blockLength >> 16)
	if _, err := w.Seek(lengthPosition, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to length field: %w", err)
	}
	if _, err := w.Write(lengthField[:]); err != nil {
		return nil, fmt.Errorf("patching instruction block length: %w", err)
	}
	if _, err := w.Seek(end, io.SeekStart); err != nil {
		return nil, fmt.Errorf("returning to instruction block end: %w", err)
	}

	if err := writeGraphics(w, len(threads)); err != nil {
		return nil, err
	}
	return indices, nil
}

// writeHeader writes the fixed-layout header: label, reserved spans,
// thumbnail geometry, color count, palette index bytes, and the space
// padding that keeps the palette region at its fixed width.
func writeHeader(d *design.Design, w io.Writer, indices []int) error {
	header := make([]byte, 0, 64+paletteSpan)
	header = append(header, labelTag...)
	header = append(header, padLabel(d.Metadata().Name())...)
	header = append(header, '\r')
	header = append(header, make([]byte, 12)...)
	header = append(header, 0xFF, 0x00)
	header = append(header, thumbnailStride, thumbnailHeight)
	header = append(header, bytes.Repeat([]byte{' '}, reservedAfterIcon)...)

	// Stored as palette size minus one: an empty palette wraps to
	// 0xFF, which the reader unwraps back to zero.
	colorChanges := byte(len(indices) - 1)
	header = append(header, colorChanges)
	for _, index := range indices {
		header = append(header, byte(index))
	}
	header = append(header, bytes.Repeat([]byte{' '}, paletteSpan-int(colorChanges))...)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// padLabel truncates or right-pads the design name to the fixed
// 16-byte label width. An unnamed design is labeled "Untitled".
func padLabel(name string) []byte {
	if name == "" {
		name = "Untitled"
	}
	label := make([]byte, labelLength)
	copied := copy(label, name)
	for i := copied; i < labelLength; i++ {
		label[i] = ' '
	}
	return label
}

// encoderState tracks the needle through the stream encoder. Making
// the states explicit names the format's central asymmetry: a travel
// move from stateInitial is a plain JUMP, while a travel move from any
// later state means the thread is cut first and is written TRIM-flagged.
type encoderState int

const (
	// stateInitial holds until the first event is processed.
	stateInitial encoderState = iota

	// stateStitching: the needle is down and sewing.
	stateStitching

	// stateTraveling: the needle is up after a travel move. A stitch
	// or color change leaving this state may need a zero-delta settle
	// stitch first.
	stateTraveling
)

// encodeInstructions encodes the absolute event list as the PEC delta
// stream. Trim and Stop events have no standalone wire form and are
// skipped: trims reach the wire only as the TRIM flag on a non-initial
// travel move, and stops were already rewritten as duplicate color
// changes by the writer's normalization pass.
func encodeInstructions(events []stitch.Event) ([]byte, error) {
	var out []byte
	var err error
	state := stateInitial
	var x, y int32
	marker := byte(0x02)

	for _, event := range events {
		dx := event.X - x
		dy := event.Y - y
		x, y = event.X, event.Y

		switch event.Kind {
		case stitch.Stitch:
			if state == stateTraveling && dx != 0 && dy != 0 {
				// Settle the machine with a zero-delta stitch before
				// sewing diagonally out of a travel move.
				out = appendZeroStitch(out)
			}
			if out, err = appendDelta(out, dx, 0); err != nil {
				return nil, err
			}
			if out, err = appendDelta(out, dy, 0); err != nil {
				return nil, err
			}
			state = stateStitching

		case stitch.Jump:
			flag := FlagTrim
			if state == stateInitial {
				flag = FlagJump
			}
			if out, err = appendDelta(out, dx, flag); err != nil {
				return nil, err
			}
			if out, err = appendDelta(out, dy, flag); err != nil {
				return nil, err
			}
			state = stateTraveling

		case stitch.ColorChange:
			if state == stateTraveling {
				out = appendZeroStitch(out)
			}
			out = append(out, colorChangeMarker1, colorChangeMarker2, marker)
			if marker == 0x02 {
				marker = 0x01
			} else {
				marker = 0x02
			}
			state = stateStitching

		case stitch.End:
			out = append(out, endMarker1)
			return out, nil

		default:
			// Trim and Stop: not emitted. They still end stateInitial,
			// so a travel move after them is TRIM-flagged.
			if state == stateInitial {
				state = stateStitching
			}
		}
	}

	// The event list had no End; synthesize the terminator.
	out = append(out, endMarker1)
	return out, nil
}

// appendZeroStitch appends a (0,0) stitch pair in short form.
func appendZeroStitch(out []byte) []byte {
	return append(out, 0x00, 0x00)
}

// writeGraphics writes the trailing thumbnail blocks: one whole-design
// block plus one per thread, all zero-filled at the fixed 48x38
// 1-bit geometry. Real bitmap content is never encoded.
func writeGraphics(w io.Writer, threadCount int) error {
	block := make([]byte, thumbnailStride*thumbnailHeight)
	for i := 0; i <= threadCount; i++ {
		if _, err := w.Write(block); err != nil {
			return fmt.Errorf("writing thumbnail block %d: %w", i, err)
		}
	}
	return nil
}
