// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package design

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"github.com/stitchfoundry/embroidery/lib/codec"
	"github.com/stitchfoundry/embroidery/lib/stitch"
	"github.com/stitchfoundry/embroidery/lib/thread"
)

// snapshotDomainKey is the 32-byte BLAKE3 key for design fingerprints.
// The readable ASCII prefix makes the key inspectable in hex dumps;
// keyed mode treats it as an opaque value either way. Changing it
// invalidates every stored fingerprint.
var snapshotDomainKey = [32]byte{
	's', 't', 'i', 't', 'c', 'h', 'f', 'o', 'u', 'n', 'd', 'r', 'y', '.',
	'd', 'e', 's', 'i', 'g', 'n', '.', 's', 'n', 'a', 'p', 's', 'h', 'o', 't',
	0, 0, 0,
}

// snapshotEvent mirrors stitch.Event for serialization.
type snapshotEvent struct {
	X    int32 `cbor:"x"`
	Y    int32 `cbor:"y"`
	Kind int32 `cbor:"k"`
}

// snapshotThread mirrors thread.Thread for serialization. Colors are
// packed as 0xRRGGBB.
type snapshotThread struct {
	Color         uint32 `cbor:"color"`
	Description   string `cbor:"description,omitempty"`
	CatalogNumber string `cbor:"catalog_number,omitempty"`
	Details       string `cbor:"details,omitempty"`
	Brand         string `cbor:"brand,omitempty"`
	Chart         string `cbor:"chart,omitempty"`
	Weight        string `cbor:"weight,omitempty"`
}

// snapshotGraphics mirrors Graphics for serialization. ThreadIndex is
// the index into the snapshot thread list, or -1 for the whole-design
// thumbnail.
type snapshotGraphics struct {
	Image       []byte `cbor:"image"`
	Stride      uint8  `cbor:"stride"`
	ThreadIndex int32  `cbor:"thread_index"`
}

// snapshotPayload is the CBOR document a snapshot serializes.
type snapshotPayload struct {
	Name     string                      `cbor:"name,omitempty"`
	Texts    map[string]string           `cbor:"texts,omitempty"`
	Events   []snapshotEvent             `cbor:"events"`
	Threads  []snapshotThread            `cbor:"threads"`
	Graphics map[string]snapshotGraphics `cbor:"graphics,omitempty"`
}

// zstd encoder/decoder are package-level and reused across calls; both
// are safe for concurrent use.
var (
	snapshotEncoder *zstd.Encoder
	snapshotDecoder *zstd.Decoder
)

func init() {
	var err error
	snapshotEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("design: zstd encoder initialization failed: " + err.Error())
	}
	snapshotDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("design: zstd decoder initialization failed: " + err.Error())
	}
}

// Snapshot serializes the design to a compact, deterministic byte form:
// deterministic CBOR compressed with zstd. Two designs with equal
// events, threads, and metadata produce byte-identical uncompressed
// payloads, which is what [Design.Fingerprint] hashes.
func (d *Design) Snapshot() ([]byte, error) {
	payload, err := codec.Marshal(d.payload())
	if err != nil {
		return nil, fmt.Errorf("encoding design snapshot: %w", err)
	}
	return snapshotEncoder.EncodeAll(payload, nil), nil
}

// FromSnapshot reconstructs a design from [Design.Snapshot] bytes.
func FromSnapshot(data []byte) (*Design, error) {
	raw, err := snapshotDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing design snapshot: %w", err)
	}
	var payload snapshotPayload
	if err := codec.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decoding design snapshot: %w", err)
	}

	d := New()
	d.metadata.name = payload.Name
	for key, value := range payload.Texts {
		d.metadata.texts[key] = value
	}
	for _, e := range payload.Events {
		d.events = append(d.events, stitch.Event{X: e.X, Y: e.Y, Kind: stitch.Kind(e.Kind)})
	}
	if n := len(d.events); n > 0 {
		d.cursorX = d.events[n-1].X
		d.cursorY = d.events[n-1].Y
	}
	for _, t := range payload.Threads {
		d.threads = append(d.threads, unpackThread(t))
	}
	for name, g := range payload.Graphics {
		graphics := Graphics{Image: g.Image, Stride: g.Stride}
		if g.ThreadIndex >= 0 && int(g.ThreadIndex) < len(d.threads) {
			t := d.threads[g.ThreadIndex]
			graphics.Thread = &t
		}
		d.metadata.graphics[name] = graphics
	}
	return d, nil
}

// Fingerprint returns the keyed BLAKE3 digest of the design's
// uncompressed snapshot payload. Equal designs have equal fingerprints;
// the digest is stable across processes and releases of the zstd layer.
func (d *Design) Fingerprint() ([32]byte, error) {
	payload, err := codec.Marshal(d.payload())
	if err != nil {
		return [32]byte{}, fmt.Errorf("encoding design for fingerprint: %w", err)
	}
	hasher, err := blake3.NewKeyed(snapshotDomainKey[:])
	if err != nil {
		return [32]byte{}, fmt.Errorf("initializing fingerprint hasher: %w", err)
	}
	hasher.Write(payload)
	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

func (d *Design) payload() snapshotPayload {
	payload := snapshotPayload{
		Name:   d.metadata.name,
		Events: make([]snapshotEvent, 0, len(d.events)),
	}
	if len(d.metadata.texts) > 0 {
		payload.Texts = d.metadata.texts
	}
	for _, e := range d.events {
		payload.Events = append(payload.Events, snapshotEvent{X: e.X, Y: e.Y, Kind: int32(e.Kind)})
	}
	payload.Threads = make([]snapshotThread, 0, len(d.threads))
	for _, t := range d.threads {
		payload.Threads = append(payload.Threads, packThread(t))
	}
	if len(d.metadata.graphics) > 0 {
		payload.Graphics = make(map[string]snapshotGraphics, len(d.metadata.graphics))
		for name, g := range d.metadata.graphics {
			entry := snapshotGraphics{Image: g.Image, Stride: g.Stride, ThreadIndex: -1}
			if g.Thread != nil {
				for i, t := range d.threads {
					if t == *g.Thread {
						entry.ThreadIndex = int32(i)
						break
					}
				}
			}
			payload.Graphics[name] = entry
		}
	}
	return payload
}

func packThread(t thread.Thread) snapshotThread {
	color := uint32(t.Color.R)<<16 | uint32(t.Color.G)<<8 | uint32(t.Color.B)
	return snapshotThread{
		Color:         color,
		Description:   t.Description,
		CatalogNumber: t.CatalogNumber,
		Details:       t.Details,
		Brand:         t.Brand,
		Chart:         t.Chart,
		Weight:        t.Weight,
	}
}

func unpackThread(t snapshotThread) thread.Thread {
	return thread.Thread{
		Color: thread.Color{
			R: uint8(t.Color >> 16),
			G: uint8(t.Color >> 8),
			B: uint8(t.Color),
		},
		Description:   t.Description,
		CatalogNumber: t.CatalogNumber,
		Details:       t.Details,
		Brand:         t.Brand,
		Chart:         t.Chart,
		Weight:        t.Weight,
	}
}
