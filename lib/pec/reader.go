// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package pec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/stitchfoundry/embroidery/lib/design"
	"github.com/stitchfoundry/embroidery/lib/thread"
)

// ReadFile reads a standalone PEC file at path.
func ReadFile(path string) (*design.Design, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()
	d, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return d, nil
}

// Read reads a standalone PEC stream: the 8-byte magic followed by the
// PEC content section. Any other magic is rejected.
func Read(r io.ReadSeeker) (*design.Design, error) {
	return ReadWithChart(r, nil)
}

// ReadWithChart is [Read] with an external color chart applied during
// palette reconciliation. Standalone PEC files carry no chart of their
// own; the chart typically comes from the container format the file was
// extracted from.
func ReadWithChart(r io.ReadSeeker, chart []thread.Thread) (*design.Design, error) {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if string(header) != magic {
		return nil, &DecodeError{Reason: fmt.Sprintf("bad magic %q, want %q", header, magic)}
	}
	d := design.New()
	if err := ReadContent(d, r, chart); err != nil {
		return nil, err
	}
	return d, nil
}

// ReadContent decodes a PEC content section (no magic) into d. Use
// this when the section is embedded in a container format; chart is the
// container-supplied color chart, nil or empty when the container has
// none. The reader must be positioned at the first byte of the section.
//
// After decoding, color changes back to the same thread are normalized
// into Stop events via [design.Design.InterpolateDuplicateColorAsStop].
func ReadContent(d *design.Design, r io.ReadSeeker, chart []thread.Thread) error {
	if _, err := r.Seek(int64(len(labelTag)), io.SeekCurrent); err != nil {
		return fmt.Errorf("skipping label tag: %w", err)
	}
	label := make([]byte, labelLength)
	if _, err := io.ReadFull(r, label); err != nil {
		return fmt.Errorf("reading label: %w", err)
	}
	d.Metadata().SetName(strings.TrimRight(string(label), " \t\r\x00"))

	if _, err := r.Seek(reservedAfterLabel, io.SeekCurrent); err != nil {
		return fmt.Errorf("skipping reserved header bytes: %w", err)
	}

	var geometry [2]byte
	if _, err := io.ReadFull(r, geometry[:]); err != nil {
		return fmt.Errorf("reading thumbnail geometry: %w", err)
	}
	graphicsStride := geometry[0]
	graphicsHeight := geometry[1]

	if _, err := r.Seek(reservedAfterIcon, io.SeekCurrent); err != nil {
		return fmt.Errorf("skipping reserved header bytes: %w", err)
	}

	var countField [1]byte
	if _, err := io.ReadFull(r, countField[:]); err != nil {
		return fmt.Errorf("reading color count: %w", err)
	}
	colorChanges := countField[0]
	// The stored value is palette size minus one, so 0xFF wraps to an
	// empty palette, not 256 entries.
	colorCount := int(colorChanges + 1)

	indices := make([]byte, colorCount)
	if _, err := io.ReadFull(r, indices); err != nil {
		return fmt.Errorf("reading palette indices: %w", err)
	}

	palette := reconcilePalette(thread.PECThreads(), chart, indices)
	for _, t := range palette {
		d.AddThread(t)
	}

	if _, err := r.Seek(int64(paletteSpan-int(colorChanges)), io.SeekCurrent); err != nil {
		return fmt.Errorf("skipping palette padding: %w", err)
	}

	var lengthField [3]byte
	if _, err := io.ReadFull(r, lengthField[:]); err != nil {
		return fmt.Errorf("reading instruction block length: %w", err)
	}
	blockLength := int64(lengthField[0]) | int64(lengthField[1])<<8 | int64(lengthField[2])<<16
	position, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("locating instruction block: %w", err)
	}
	// The length counts from five bytes before the current position,
	// so the thumbnail blocks start here:
	graphicsStart := blockLength - 5 + position

	if _, err := r.Seek(instructionHeaderLength, io.SeekCurrent); err != nil {
		return fmt.Errorf("skipping instruction block header: %w", err)
	}
	if err := readInstructions(d, r); err != nil {
		return err
	}

	if _, err := r.Seek(graphicsStart, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to thumbnail blocks: %w", err)
	}
	readGraphics(d, r, int(graphicsStride)*int(graphicsHeight), graphicsStride, palette)

	d.InterpolateDuplicateColorAsStop()
	return nil
}

// readInstructions decodes the delta-encoded stitch stream. The stream
// normally terminates with the 0xFF 0x00 sentinel; running out of bytes
// while expecting an instruction byte is treated the same way, not as
// an error. One End event is always appended.
func readInstructions(d *design.Design, r io.ReadSeeker) error {
	read := func() (byte, bool, error) {
		var buf [1]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return 0, false, nil
			}
			return 0, false, fmt.Errorf("reading instruction byte: %w", err)
		}
		return buf[0], true, nil
	}

decode:
	for {
		value1, ok, err := read()
		if err != nil || !ok {
			if err != nil {
				return err
			}
			break
		}
		value2, ok, err := read()
		if err != nil || !ok {
			if err != nil {
				return err
			}
			break
		}

		if value1 == endMarker1 && value2 == endMarker2 {
			break
		}
		if value1 == colorChangeMarker1 && value2 == colorChangeMarker2 {
			// Skip the alternating 0x02/0x01 marker byte.
			if _, err := r.Seek(1, io.SeekCurrent); err != nil {
				return fmt.Errorf("skipping color change marker: %w", err)
			}
			d.ColorChange(0, 0)
			continue
		}

		var flags Flags
		var dx, dy int32

		if isLongForm(value1) {
			delta := unpackLong(value1, value2)
			flags |= delta.Flags
			dx = int32(delta.Magnitude)
			// value2 was consumed as the long form's low byte; the y
			// component starts at the next byte.
			value2, ok, err = read()
			if err != nil || !ok {
				if err != nil {
					return err
				}
				break decode
			}
		} else {
			dx = int32(unpackShort(value1).Magnitude)
		}

		if isLongForm(value2) {
			value3, ok, err := read()
			if err != nil || !ok {
				if err != nil {
					return err
				}
				break decode
			}
			delta := unpackLong(value2, value3)
			flags |= delta.Flags
			dy = int32(delta.Magnitude)
		} else {
			dy = int32(unpackShort(value2).Magnitude)
		}

		switch {
		case flags&FlagTrim != 0:
			d.Trim()
			d.Jump(dx, dy)
		case flags&FlagJump != 0:
			d.Jump(dx, dy)
		default:
			d.Stitch(dx, dy)
		}
	}

	d.End()
	return nil
}

// readGraphics reads the trailing thumbnail blocks: one whole-design
// block, then one per palette thread, each blockSize bytes. Thumbnails
// are cosmetic, so a truncated file simply yields fewer stored blocks.
func readGraphics(d *design.Design, r io.Reader, blockSize int, stride uint8, palette []thread.Thread) {
	for i := 0; i <= len(palette); i++ {
		image := make([]byte, blockSize)
		if _, err := io.ReadFull(r, image); err != nil {
			return
		}
		graphics := design.Graphics{Image: image, Stride: stride}
		if i > 0 {
			t := palette[i-1]
			graphics.Thread = &t
		}
		d.Metadata().InsertGraphics(fmt.Sprintf("pec_graphic_%d", i), graphics)
	}
}
