// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package pec

import (
	"slices"

	"github.com/stitchfoundry/embroidery/lib/thread"
)

// reconcilePalette resolves the file's per-event color index bytes
// against the default palette and an optional external chart (supplied
// by a container format such as PES), returning the concrete thread for
// every index byte in order. Pure function: resolving the whole palette
// up front keeps the three merge policies out of the event loop.
//
// Three policies, selected by chart size:
//
//  1. Empty chart: every index byte selects defaults[index mod len].
//  2. Chart at least as long as the index list: the chart wins
//     outright — its threads are returned in chart order and the index
//     byte values are ignored.
//  3. Chart shorter than the index list: the first occurrence of each
//     distinct index value drains one thread from the front of the
//     chart; once the chart is exhausted, new index values fall back to
//     the default table. A per-index cache keeps resolution stable, so
//     a given index byte maps to the same thread for the whole file.
func reconcilePalette(defaults, chart []thread.Thread, indices []byte) []thread.Thread {
	switch {
	case len(chart) == 0:
		resolved := make([]thread.Thread, 0, len(indices))
		for _, index := range indices {
			resolved = append(resolved, defaults[int(index)%len(defaults)])
		}
		return resolved

	case len(chart) >= len(indices):
		return slices.Clone(chart)

	default:
		remaining := chart
		cache := make(map[int]thread.Thread, len(indices))
		resolved := make([]thread.Thread, 0, len(indices))
		for _, index := range indices {
			key := int(index) % len(defaults)
			t, ok := cache[key]
			if !ok {
				if len(remaining) > 0 {
					t = remaining[0]
					remaining = remaining[1:]
				} else {
					t = defaults[key]
				}
				cache[key] = t
			}
			resolved = append(resolved, t)
		}
		return resolved
	}
}
