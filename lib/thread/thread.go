// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package thread

import (
	"fmt"
	"math"
)

// Color is an 8-bit RGB thread color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Hex returns the color as a "#RRGGBB" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor parses a "#RRGGBB" or "RRGGBB" string into a Color.
func ParseHexColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("hex color must be 6 digits, got %q", s)
	}
	var c Color
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("parsing hex color %q: %w", s, err)
	}
	return c, nil
}

// Thread is a concrete embroidery thread: a color plus catalog identity.
// Not every format populates every field. Threads compare by value; two
// threads are the same thread exactly when all fields match.
type Thread struct {
	Color Color

	// Description is the shade name ("Prussian Blue").
	Description string

	// CatalogNumber is the thread's number in the manufacturer catalog.
	CatalogNumber string

	// Details carries free-form additional description.
	Details string

	// Brand is the manufacturer name.
	Brand string

	// Chart is the color chart the thread belongs to.
	Chart string

	// Weight is the thread weight class.
	Weight string
}

// DistanceRedMean returns the red-mean weighted squared distance between
// two colors. Cheaper than a proper CIE delta-E while tracking perceived
// difference much better than plain RGB distance.
func DistanceRedMean(a, b Color) int32 {
	redMean := (int32(a.R) + int32(b.R)) / 2
	r := int32(a.R) - int32(b.R)
	g := int32(a.G) - int32(b.G)
	bl := int32(a.B) - int32(b.B)
	return ((512+redMean)*r*r)>>8 + 4*g*g + ((767-redMean)*bl*bl)>>8
}

// FindNearestColor returns the index of the palette entry closest to c.
// Nil entries are skipped (they mark slots already claimed or otherwise
// unavailable). When several entries are equally close the highest index
// wins. Returns false when every entry is nil.
func FindNearestColor(c Color, palette []*Thread) (int, bool) {
	closest := -1
	current := int32(math.MaxInt32)
	for i, t := range palette {
		if t == nil {
			continue
		}
		if d := DistanceRedMean(c, t.Color); d <= current {
			current = d
			closest = i
		}
	}
	if closest < 0 {
		return 0, false
	}
	return closest, true
}

// BuildUniquePalette maps a design's thread list onto distinct slots of
// a fixed machine palette and returns, for every thread in order, the
// claimed palette index.
//
// Assignment is greedy: each distinct design thread claims the nearest
// still-unclaimed palette slot, so two different design threads never
// share an index even when they are both closest to the same palette
// entry. Once slots are claimed, every thread (duplicates included) is
// resolved against the claimed chart.
func BuildUniquePalette(palette, threads []Thread) []int {
	available := make([]*Thread, len(palette))
	for i := range palette {
		available[i] = &palette[i]
	}
	chart := make([]*Thread, len(palette))

	seen := make(map[Thread]struct{}, len(threads))
	for i := range threads {
		t := threads[i]
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		index, ok := FindNearestColor(t.Color, available)
		if !ok {
			// More distinct threads than palette slots: the rest
			// resolve through the chart built so far.
			break
		}
		available[index] = nil
		chart[index] = &threads[i]
	}

	indices := make([]int, 0, len(threads))
	for i := range threads {
		index, _ := FindNearestColor(threads[i].Color, chart)
		indices = append(indices, index)
	}
	return indices
}
