// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package stitch

import "fmt"

// Kind is a low-level embroidery machine instruction. The numeric values
// are stable identifiers shared with other stitch tooling — changing
// them breaks snapshot compatibility.
type Kind int32

const (
	// NoInstruction marks the absence of an instruction.
	NoInstruction Kind = -1

	// Stitch is a puncture: the needle goes down at the event
	// coordinates with the thread engaged.
	Stitch Kind = 0

	// Jump is a needle translation with the needle up: the frame moves
	// without sewing.
	Jump Kind = 1

	// Trim cuts the thread at the current position.
	Trim Kind = 2

	// Stop halts the machine, typically for a manual thread change or
	// an applique placement.
	Stop Kind = 3

	// End terminates the instruction sequence.
	End Kind = 4

	// ColorChange switches to the next thread in the design palette.
	ColorChange Kind = 5
)

// String returns the human-readable name of an instruction kind.
func (k Kind) String() string {
	switch k {
	case NoInstruction:
		return "none"
	case Stitch:
		return "stitch"
	case Jump:
		return "jump"
	case Trim:
		return "trim"
	case Stop:
		return "stop"
	case End:
		return "end"
	case ColorChange:
		return "color_change"
	default:
		return fmt.Sprintf("unknown(%d)", int32(k))
	}
}

// Event is a single instruction applied at an absolute design-space
// position. Events compare by value.
type Event struct {
	// X and Y are absolute coordinates in machine units. Wire formats
	// generally store deltas between consecutive events; decoders
	// accumulate them back into absolute positions before constructing
	// events.
	X int32
	Y int32

	// Kind is the instruction applied at (X, Y).
	Kind Kind
}

// String formats an event for logs and test failure messages.
func (e Event) String() string {
	return fmt.Sprintf("%s(%d,%d)", e.Kind, e.X, e.Y)
}
