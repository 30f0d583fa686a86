// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package design

import (
	"slices"

	"github.com/stitchfoundry/embroidery/lib/stitch"
)

// FixColorCount grows the thread palette until it covers every color
// block implied by the stitch sequence. A color block starts at the
// first stitch after a color change (or at the first stitch overall).
// Missing threads are filled via [Design.ThreadOrFiller]. Writers call
// this before encoding so the palette and the stream agree.
func (d *Design) FixColorCount() {
	needed := 0
	blockOpen := true
	for _, e := range d.events {
		switch e.Kind {
		case stitch.Stitch:
			if blockOpen {
				needed++
				blockOpen = false
			}
		case stitch.ColorChange:
			blockOpen = true
		}
	}
	for len(d.threads) < needed {
		d.threads = append(d.threads, d.ThreadOrFiller(len(d.threads)))
	}
}

// InterpolateStopAsDuplicateColor rewrites every Stop event as a
// ColorChange and duplicates the active thread at that point in the
// palette. This is the writer-side half of the PEC stop convention:
// the wire has no stop opcode, a repeated color is what makes the
// machine pause.
func (d *Design) InterpolateStopAsDuplicateColor() {
	threadIndex := 0
	for i := range d.events {
		switch d.events[i].Kind {
		case stitch.ColorChange:
			threadIndex++
		case stitch.Stop:
			if threadIndex >= len(d.threads) {
				// No active thread to duplicate; the stop is dropped.
				continue
			}
			d.threads = slices.Insert(d.threads, threadIndex, d.threads[threadIndex])
			threadIndex++
			d.events[i].Kind = stitch.ColorChange
		}
	}
}

// InterpolateDuplicateColorAsStop rewrites a ColorChange whose incoming
// and outgoing threads are identical as a Stop and drops the duplicate
// thread. This is the reader-side inverse of
// [Design.InterpolateStopAsDuplicateColor]. Scanning stops when the
// stream references more threads than the palette holds.
func (d *Design) InterpolateDuplicateColorAsStop() {
	threadIndex := 0
	for i := range d.events {
		if d.events[i].Kind != stitch.ColorChange {
			continue
		}
		threadIndex++
		if threadIndex >= len(d.threads) {
			return
		}
		if d.threads[threadIndex-1] == d.threads[threadIndex] {
			d.threads = slices.Delete(d.threads, threadIndex, threadIndex+1)
			threadIndex--
			d.events[i].Kind = stitch.Stop
		}
	}
}

// CommandBlocks splits the event list into consecutive runs of the same
// instruction kind, preserving order. The returned slices alias the
// design's event storage.
func (d *Design) CommandBlocks() [][]stitch.Event {
	var blocks [][]stitch.Event
	start := 0
	for i := 1; i <= len(d.events); i++ {
		if i == len(d.events) || d.events[i].Kind != d.events[start].Kind {
			blocks = append(blocks, d.events[start:i])
			start = i
		}
	}
	return blocks
}
