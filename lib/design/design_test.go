// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package design

import (
	"slices"
	"testing"

	"github.com/stitchfoundry/embroidery/lib/stitch"
	"github.com/stitchfoundry/embroidery/lib/thread"
)

func TestRelativeMutatorsAccumulate(t *testing.T) {
	t.Parallel()
	d := New()
	d.Jump(10, 20)
	d.Stitch(5, -5)
	d.Trim()
	d.ColorChange(1, 1)
	d.Stop()
	d.End()

	want := []stitch.Event{
		{X: 10, Y: 20, Kind: stitch.Jump},
		{X: 15, Y: 15, Kind: stitch.Stitch},
		{X: 15, Y: 15, Kind: stitch.Trim},
		{X: 16, Y: 16, Kind: stitch.ColorChange},
		{X: 16, Y: 16, Kind: stitch.Stop},
		{X: 16, Y: 16, Kind: stitch.End},
	}
	if !slices.Equal(d.Stitches(), want) {
		t.Errorf("events:\n got %v\nwant %v", d.Stitches(), want)
	}
}

func TestBoundsCoverStitchesAndJumps(t *testing.T) {
	t.Parallel()
	d := New()
	d.Jump(-10, 5)
	d.Stitch(30, 0)
	d.Stitch(0, -25)
	// End sits at the cursor but carries no geometry.
	d.End()

	minX, minY, maxX, maxY := d.Bounds()
	if minX != -10 || minY != -20 || maxX != 20 || maxY != 5 {
		t.Errorf("bounds: got (%d, %d, %d, %d), want (-10, -20, 20, 5)", minX, minY, maxX, maxY)
	}
}

func TestBoundsEmptyDesign(t *testing.T) {
	t.Parallel()
	d := New()
	d.Trim()
	d.End()

	minX, minY, maxX, maxY := d.Bounds()
	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Errorf("bounds: got (%d, %d, %d, %d), want zeros", minX, minY, maxX, maxY)
	}
}

func TestThreadOrFiller(t *testing.T) {
	t.Parallel()
	d := New()
	red := thread.Thread{Color: thread.Color{R: 200}, Description: "red"}
	d.AddThread(red)

	if got := d.ThreadOrFiller(0); got != red {
		t.Errorf("index 0: got %v, want the palette thread", got)
	}

	// Beyond the palette: a deterministic filler, stable across calls.
	filler := d.ThreadOrFiller(7)
	if filler == (thread.Thread{}) {
		t.Error("filler is the zero thread")
	}
	if again := d.ThreadOrFiller(7); again != filler {
		t.Error("filler is not deterministic")
	}
	if other := d.ThreadOrFiller(8); other == filler {
		t.Error("adjacent filler indices returned the same thread")
	}
}

func TestCommandBlocks(t *testing.T) {
	t.Parallel()
	d := New()
	d.Stitch(1, 0)
	d.Stitch(1, 0)
	d.Jump(5, 0)
	d.Stitch(1, 0)
	d.End()

	blocks := d.CommandBlocks()
	wantLengths := []int{2, 1, 1, 1}
	if len(blocks) != len(wantLengths) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(wantLengths))
	}
	for i, block := range blocks {
		if len(block) != wantLengths[i] {
			t.Errorf("block %d: got %d events, want %d", i, len(block), wantLengths[i])
		}
		for _, e := range block[1:] {
			if e.Kind != block[0].Kind {
				t.Errorf("block %d mixes kinds", i)
			}
		}
	}
}

func TestMetadataTextsAndGraphics(t *testing.T) {
	t.Parallel()
	d := New()
	m := d.Metadata()

	m.SetName("Rose")
	m.SetText("author", "jk")
	if m.Name() != "Rose" || m.Text("author") != "jk" {
		t.Errorf("metadata: name %q, author %q", m.Name(), m.Text("author"))
	}
	if m.Text("missing") != "" {
		t.Errorf("missing text: got %q, want empty", m.Text("missing"))
	}

	m.InsertGraphics("icon", Graphics{Image: []byte{1, 2, 3}, Stride: 6})
	g, ok := m.Graphics("icon")
	if !ok || g.Stride != 6 || len(g.Image) != 3 {
		t.Errorf("graphics: got %+v, ok=%v", g, ok)
	}
	if _, ok := m.Graphics("absent"); ok {
		t.Error("absent graphics reported present")
	}
	if m.GraphicsCount() != 1 {
		t.Errorf("graphics count: got %d, want 1", m.GraphicsCount())
	}
}
