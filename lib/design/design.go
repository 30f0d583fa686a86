// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package design

import (
	"github.com/stitchfoundry/embroidery/lib/stitch"
	"github.com/stitchfoundry/embroidery/lib/thread"
)

// Design is an in-memory embroidery design under construction or
// inspection. The zero value is not usable; call [New].
type Design struct {
	events  []stitch.Event
	threads []thread.Thread

	metadata Metadata

	// cursor is the absolute position of the most recent event. All
	// relative mutators advance it.
	cursorX int32
	cursorY int32
}

// New returns an empty design positioned at the origin.
func New() *Design {
	return &Design{
		metadata: Metadata{
			texts:    make(map[string]string),
			graphics: make(map[string]Graphics),
		},
	}
}

// Stitch appends a puncture displaced (dx, dy) from the current
// position.
func (d *Design) Stitch(dx, dy int32) {
	d.appendRelative(dx, dy, stitch.Stitch)
}

// Jump appends a needle-up travel move displaced (dx, dy) from the
// current position.
func (d *Design) Jump(dx, dy int32) {
	d.appendRelative(dx, dy, stitch.Jump)
}

// Trim appends a thread cut at the current position.
func (d *Design) Trim() {
	d.appendRelative(0, 0, stitch.Trim)
}

// Stop appends a machine stop at the current position.
func (d *Design) Stop() {
	d.appendRelative(0, 0, stitch.Stop)
}

// ColorChange appends a thread change displaced (dx, dy) from the
// current position. Formats that cannot move during a color change pass
// (0, 0).
func (d *Design) ColorChange(dx, dy int32) {
	d.appendRelative(dx, dy, stitch.ColorChange)
}

// End appends the end-of-design marker at the current position.
func (d *Design) End() {
	d.appendRelative(0, 0, stitch.End)
}

func (d *Design) appendRelative(dx, dy int32, kind stitch.Kind) {
	d.cursorX += dx
	d.cursorY += dy
	d.events = append(d.events, stitch.Event{X: d.cursorX, Y: d.cursorY, Kind: kind})
}

// AddThread appends a thread to the design palette.
func (d *Design) AddThread(t thread.Thread) {
	d.threads = append(d.threads, t)
}

// Stitches returns the absolute event list. The slice is owned by the
// design; callers must not modify it.
func (d *Design) Stitches() []stitch.Event {
	return d.events
}

// Threads returns the design's thread palette in color-change order.
// The slice is owned by the design; callers must not modify it.
func (d *Design) Threads() []thread.Thread {
	return d.threads
}

// Metadata returns the design's mutable metadata.
func (d *Design) Metadata() *Metadata {
	return &d.metadata
}

// Bounds returns the bounding box (minX, minY, maxX, maxY) over
// coordinate-carrying events (stitches and jumps). A design without any
// such event has zero bounds.
func (d *Design) Bounds() (minX, minY, maxX, maxY int32) {
	first := true
	for _, e := range d.events {
		if e.Kind != stitch.Stitch && e.Kind != stitch.Jump {
			continue
		}
		if first {
			minX, minY, maxX, maxY = e.X, e.Y, e.X, e.Y
			first = false
			continue
		}
		minX = min(minX, e.X)
		minY = min(minY, e.Y)
		maxX = max(maxX, e.X)
		maxY = max(maxY, e.Y)
	}
	return minX, minY, maxX, maxY
}

// ThreadOrFiller returns the index-th palette thread. When the palette
// is shorter than index+1 it returns a deterministic filler from the
// default PEC table instead, so encoders always have a concrete thread
// per color block even for underspecified designs.
func (d *Design) ThreadOrFiller(index int) thread.Thread {
	if index < len(d.threads) {
		return d.threads[index]
	}
	palette := thread.PECThreads()
	// Entry 0 is the reserved "Unknown" thread; fillers cycle through
	// the real entries.
	return palette[1+index%(len(palette)-1)]
}
