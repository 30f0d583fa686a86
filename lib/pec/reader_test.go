// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package pec

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/stitchfoundry/embroidery/lib/design"
	"github.com/stitchfoundry/embroidery/lib/stitch"
	"github.com/stitchfoundry/embroidery/lib/thread"
)

func TestReadRejectsBadMagic(t *testing.T) {
	t.Parallel()
	data := []byte("#PES0001 not a pec file, plus some padding to read past")
	_, err := Read(bytes.NewReader(data))
	if err == nil {
		t.Fatal("Read accepted a non-PEC magic")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("error %v is not a DecodeError", err)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	d := design.New()
	d.Metadata().SetName("Sampler")
	d.AddThread(thread.PECThreads()[5])
	d.AddThread(thread.PECThreads()[2])
	d.Jump(10, 10)
	d.Stitch(5, 0)
	d.Stitch(0, 5)
	d.Trim()
	d.Jump(50, 0)
	d.Stitch(5, 0)
	d.ColorChange(0, 0)
	d.Stitch(0, -5)
	d.End()
	wantEvents := slices.Clone(d.Stitches())

	data := writeToBytes(t, d)
	got, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if name := got.Metadata().Name(); name != "Sampler" {
		t.Errorf("name: got %q, want %q", name, "Sampler")
	}
	if !slices.Equal(got.Stitches(), wantEvents) {
		t.Errorf("events:\n got %v\nwant %v", got.Stitches(), wantEvents)
	}

	// Both threads are exact default-table entries, so they come back
	// identical after index resolution.
	threads := got.Threads()
	if len(threads) != 2 {
		t.Fatalf("threads: got %d, want 2", len(threads))
	}
	if threads[0] != thread.PECThreads()[5] || threads[1] != thread.PECThreads()[2] {
		t.Errorf("threads: got %v", threads)
	}

	// One whole-design thumbnail plus one per thread.
	if count := got.Metadata().GraphicsCount(); count != 3 {
		t.Errorf("graphics blocks: got %d, want 3", count)
	}
}

func TestRoundTripStopAsDuplicateColor(t *testing.T) {
	t.Parallel()
	// Stops have no wire opcode: the writer rewrites them as a change
	// to a duplicated color, and the reader folds the duplicate back
	// into a Stop.
	d := design.New()
	d.AddThread(thread.PECThreads()[5])
	d.AddThread(thread.PECThreads()[2])
	d.Stitch(1, 0)
	d.ColorChange(0, 0)
	d.Stitch(1, 0)
	d.Stop()
	d.Stitch(1, 0)
	d.End()
	wantEvents := slices.Clone(d.Stitches())

	data := writeToBytes(t, d)
	got, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if !slices.Equal(got.Stitches(), wantEvents) {
		t.Errorf("events:\n got %v\nwant %v", got.Stitches(), wantEvents)
	}
	threads := got.Threads()
	if len(threads) != 2 {
		t.Fatalf("threads: got %d, want 2 after folding the duplicate", len(threads))
	}
	if threads[0] != thread.PECThreads()[5] || threads[1] != thread.PECThreads()[2] {
		t.Errorf("threads: got %v", threads)
	}
}

func TestRoundTripTrimMergesIntoJump(t *testing.T) {
	t.Parallel()
	// An explicit Trim right before a travel move has no wire form of
	// its own; it reaches the stream as the TRIM flag on the jump and
	// is reconstructed as a separate event on decode.
	d := design.New()
	d.AddThread(thread.PECThreads()[5])
	d.AddThread(thread.PECThreads()[2])
	d.Stitch(0, 0)
	d.Stitch(-2, -3)
	d.ColorChange(0, 0)
	d.Stitch(2, 3)
	d.Trim()
	d.Jump(40, 30)
	d.Stitch(0, 0)
	d.Stitch(1, 1)
	d.End()

	data := writeToBytes(t, d)
	got, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []stitch.Event{
		{X: 0, Y: 0, Kind: stitch.Stitch},
		{X: -2, Y: -3, Kind: stitch.Stitch},
		{X: -2, Y: -3, Kind: stitch.ColorChange},
		{X: 0, Y: 0, Kind: stitch.Stitch},
		{X: 0, Y: 0, Kind: stitch.Trim},
		{X: 40, Y: 30, Kind: stitch.Jump},
		{X: 40, Y: 30, Kind: stitch.Stitch},
		{X: 41, Y: 31, Kind: stitch.Stitch},
		{X: 41, Y: 31, Kind: stitch.End},
	}
	if !slices.Equal(got.Stitches(), want) {
		t.Errorf("events:\n got %v\nwant %v", got.Stitches(), want)
	}
}

func TestReadTrimFlaggedJump(t *testing.T) {
	t.Parallel()
	d := design.New()
	d.AddThread(thread.PECThreads()[5])
	d.Jump(100, 0)
	d.Stitch(1, 0)
	d.Jump(50, 0)
	d.End()

	data := writeToBytes(t, d)
	got, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	// The second jump was TRIM-flagged on the wire, which decodes as an
	// explicit Trim followed by the jump.
	want := []stitch.Event{
		{X: 100, Y: 0, Kind: stitch.Jump},
		{X: 101, Y: 0, Kind: stitch.Stitch},
		{X: 101, Y: 0, Kind: stitch.Trim},
		{X: 151, Y: 0, Kind: stitch.Jump},
		{X: 151, Y: 0, Kind: stitch.End},
	}
	if !slices.Equal(got.Stitches(), want) {
		t.Errorf("events:\n got %v\nwant %v", got.Stitches(), want)
	}
}

func TestReadSettleStitchKept(t *testing.T) {
	t.Parallel()
	d := design.New()
	d.AddThread(thread.PECThreads()[5])
	d.Jump(10, 10)
	d.Stitch(3, 3)
	d.End()

	data := writeToBytes(t, d)
	got, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	// The settle stitch the writer inserted is a real zero-delta stitch
	// and survives as its own event.
	want := []stitch.Event{
		{X: 10, Y: 10, Kind: stitch.Jump},
		{X: 10, Y: 10, Kind: stitch.Stitch},
		{X: 13, Y: 13, Kind: stitch.Stitch},
		{X: 13, Y: 13, Kind: stitch.End},
	}
	if !slices.Equal(got.Stitches(), want) {
		t.Errorf("events:\n got %v\nwant %v", got.Stitches(), want)
	}
}

func TestReadTruncatedThumbnailsTolerated(t *testing.T) {
	t.Parallel()
	d := design.New()
	d.AddThread(thread.PECThreads()[5])
	d.AddThread(thread.PECThreads()[2])
	d.Stitch(1, 0)
	d.ColorChange(0, 0)
	d.Stitch(1, 0)
	d.End()

	data := writeToBytes(t, d)

	// The file carries three thumbnail blocks; cut it in the middle of
	// the second one.
	blockSize := thumbnailStride * thumbnailHeight
	truncated := data[:len(data)-blockSize-10]

	got, err := Read(bytes.NewReader(truncated))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !slices.Equal(got.Stitches(), d.Stitches()) {
		t.Errorf("events survived truncation wrong:\n got %v\nwant %v", got.Stitches(), d.Stitches())
	}
	// Only the first (whole-design) thumbnail fit.
	if count := got.Metadata().GraphicsCount(); count != 1 {
		t.Errorf("graphics blocks: got %d, want 1", count)
	}
}

func TestReadMissingTerminatorTreatedAsEnd(t *testing.T) {
	t.Parallel()
	d := design.New()
	d.AddThread(thread.PECThreads()[5])
	d.Stitch(1, 0)
	d.Stitch(2, 3)
	d.End()

	data := writeToBytes(t, d)

	// Drop everything from the end sentinel on. Running out of bytes
	// while expecting an instruction reads as end-of-stream, and the
	// End event is appended regardless.
	blockSize := thumbnailStride * thumbnailHeight
	truncated := data[:len(data)-2*blockSize-1]

	got, err := Read(bytes.NewReader(truncated))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []stitch.Event{
		{X: 1, Y: 0, Kind: stitch.Stitch},
		{X: 3, Y: 3, Kind: stitch.Stitch},
		{X: 3, Y: 3, Kind: stitch.End},
	}
	if !slices.Equal(got.Stitches(), want) {
		t.Errorf("events:\n got %v\nwant %v", got.Stitches(), want)
	}
}

func TestReadWithChartOverridesPalette(t *testing.T) {
	t.Parallel()
	d := design.New()
	d.AddThread(thread.PECThreads()[5])
	d.AddThread(thread.PECThreads()[2])
	d.Stitch(1, 0)
	d.ColorChange(0, 0)
	d.Stitch(1, 0)
	d.End()

	data := writeToBytes(t, d)

	chart := []thread.Thread{
		{Color: thread.Color{R: 1, G: 2, B: 3}, Description: "house red", Chart: "custom"},
		{Color: thread.Color{R: 4, G: 5, B: 6}, Description: "house blue", Chart: "custom"},
	}
	got, err := ReadWithChart(bytes.NewReader(data), chart)
	if err != nil {
		t.Fatalf("ReadWithChart: %v", err)
	}

	threads := got.Threads()
	if len(threads) != 2 {
		t.Fatalf("threads: got %d, want 2", len(threads))
	}
	if threads[0] != chart[0] || threads[1] != chart[1] {
		t.Errorf("threads: got %v, want the chart", threads)
	}
}

func TestReadWriteFileRoundTrip(t *testing.T) {
	t.Parallel()
	d := design.New()
	d.Metadata().SetName("File Trip")
	d.AddThread(thread.PECThreads()[13])
	d.Stitch(4, 0)
	d.Stitch(0, 4)
	d.End()

	path := t.TempDir() + "/trip.pec"
	if err := WriteFile(d, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.Metadata().Name() != "File Trip" {
		t.Errorf("name: got %q", got.Metadata().Name())
	}
	if !slices.Equal(got.Stitches(), d.Stitches()) {
		t.Errorf("events:\n got %v\nwant %v", got.Stitches(), d.Stitches())
	}
}
