// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package design

import (
	"slices"
	"testing"

	"github.com/stitchfoundry/embroidery/lib/stitch"
	"github.com/stitchfoundry/embroidery/lib/thread"
)

func testThread(name string, r uint8) thread.Thread {
	return thread.Thread{Color: thread.Color{R: r}, Description: name}
}

func TestFixColorCountGrowsPalette(t *testing.T) {
	t.Parallel()
	d := New()
	d.AddThread(testThread("one", 10))
	d.Stitch(1, 0)
	d.ColorChange(0, 0)
	d.Stitch(1, 0)
	d.ColorChange(0, 0)
	d.Stitch(1, 0)
	d.End()

	d.FixColorCount()
	if len(d.Threads()) != 3 {
		t.Fatalf("threads: got %d, want 3", len(d.Threads()))
	}
	// The original thread is untouched; fillers are appended after it.
	if d.Threads()[0] != testThread("one", 10) {
		t.Errorf("thread 0 changed: %v", d.Threads()[0])
	}
}

func TestFixColorCountIgnoresEmptyBlocks(t *testing.T) {
	t.Parallel()
	// A color change with no stitch after it opens no block.
	d := New()
	d.Stitch(1, 0)
	d.ColorChange(0, 0)
	d.End()

	d.FixColorCount()
	if len(d.Threads()) != 1 {
		t.Errorf("threads: got %d, want 1", len(d.Threads()))
	}
}

func TestInterpolateStopAsDuplicateColor(t *testing.T) {
	t.Parallel()
	one := testThread("one", 10)
	two := testThread("two", 20)

	d := New()
	d.AddThread(one)
	d.AddThread(two)
	d.Stitch(1, 0)
	d.ColorChange(0, 0)
	d.Stitch(1, 0)
	d.Stop()
	d.Stitch(1, 0)
	d.End()

	d.InterpolateStopAsDuplicateColor()

	// The stop became a color change to a duplicate of the active
	// thread, so the machine pauses without a visible color switch.
	wantThreads := []thread.Thread{one, two, two}
	if !slices.Equal(d.Threads(), wantThreads) {
		t.Errorf("threads: got %v, want %v", d.Threads(), wantThreads)
	}
	kinds := make([]stitch.Kind, 0, len(d.Stitches()))
	for _, e := range d.Stitches() {
		kinds = append(kinds, e.Kind)
	}
	wantKinds := []stitch.Kind{
		stitch.Stitch, stitch.ColorChange, stitch.Stitch,
		stitch.ColorChange, stitch.Stitch, stitch.End,
	}
	if !slices.Equal(kinds, wantKinds) {
		t.Errorf("kinds: got %v, want %v", kinds, wantKinds)
	}
}

func TestInterpolateStopWithoutThreadsDropsNothing(t *testing.T) {
	t.Parallel()
	d := New()
	d.Stitch(1, 0)
	d.Stop()
	d.End()

	d.InterpolateStopAsDuplicateColor()

	// No palette to duplicate from: the stop stays a Stop event and the
	// palette stays empty.
	if len(d.Threads()) != 0 {
		t.Errorf("threads: got %d, want 0", len(d.Threads()))
	}
	if d.Stitches()[1].Kind != stitch.Stop {
		t.Errorf("event 1: got %v, want Stop", d.Stitches()[1].Kind)
	}
}

func TestInterpolateDuplicateColorAsStop(t *testing.T) {
	t.Parallel()
	one := testThread("one", 10)
	two := testThread("two", 20)

	d := New()
	d.AddThread(one)
	d.AddThread(two)
	d.AddThread(two)
	d.Stitch(1, 0)
	d.ColorChange(0, 0)
	d.Stitch(1, 0)
	d.ColorChange(0, 0)
	d.Stitch(1, 0)
	d.End()

	d.InterpolateDuplicateColorAsStop()

	wantThreads := []thread.Thread{one, two}
	if !slices.Equal(d.Threads(), wantThreads) {
		t.Errorf("threads: got %v, want %v", d.Threads(), wantThreads)
	}
	if d.Stitches()[3].Kind != stitch.Stop {
		t.Errorf("event 3: got %v, want Stop", d.Stitches()[3].Kind)
	}
	if d.Stitches()[1].Kind != stitch.ColorChange {
		t.Errorf("event 1: got %v, want ColorChange", d.Stitches()[1].Kind)
	}
}

func TestStopInterpolationRoundTrip(t *testing.T) {
	t.Parallel()
	one := testThread("one", 10)
	two := testThread("two", 20)

	d := New()
	d.AddThread(one)
	d.AddThread(two)
	d.Stitch(1, 0)
	d.Stop()
	d.Stitch(1, 0)
	d.ColorChange(0, 0)
	d.Stitch(1, 0)
	d.Stop()
	d.Stitch(1, 0)
	d.End()
	wantEvents := slices.Clone(d.Stitches())
	wantThreads := slices.Clone(d.Threads())

	d.InterpolateStopAsDuplicateColor()
	d.InterpolateDuplicateColorAsStop()

	if !slices.Equal(d.Stitches(), wantEvents) {
		t.Errorf("events:\n got %v\nwant %v", d.Stitches(), wantEvents)
	}
	if !slices.Equal(d.Threads(), wantThreads) {
		t.Errorf("threads: got %v, want %v", d.Threads(), wantThreads)
	}
}
