// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package design

import "github.com/stitchfoundry/embroidery/lib/thread"

// Metadata carries the non-stitch content of a design: its name,
// free-form text fields (author, keywords, ...), and named opaque
// graphics blocks (format thumbnails).
type Metadata struct {
	name     string
	texts    map[string]string
	graphics map[string]Graphics
}

// Graphics is an opaque thumbnail bitmap block as stored by a format.
// The image bytes are kept exactly as read; this package never decodes
// them.
type Graphics struct {
	// Image is the raw bitmap block.
	Image []byte

	// Stride is the row stride in bytes.
	Stride uint8

	// Thread is the palette thread the thumbnail belongs to, or nil
	// for a whole-design thumbnail.
	Thread *thread.Thread
}

// Name returns the design name, or the empty string when unset.
func (m *Metadata) Name() string {
	return m.name
}

// SetName sets the design name.
func (m *Metadata) SetName(name string) {
	m.name = name
}

// Text returns the named free-form text field, or the empty string.
func (m *Metadata) Text(key string) string {
	return m.texts[key]
}

// SetText sets a free-form text field.
func (m *Metadata) SetText(key, value string) {
	m.texts[key] = value
}

// Graphics returns the named graphics block. The second result is
// false when no block with that name exists.
func (m *Metadata) Graphics(name string) (Graphics, bool) {
	g, ok := m.graphics[name]
	return g, ok
}

// GraphicsCount returns the number of stored graphics blocks.
func (m *Metadata) GraphicsCount() int {
	return len(m.graphics)
}

// InsertGraphics stores a graphics block under name, replacing any
// existing block with that name.
func (m *Metadata) InsertGraphics(name string, g Graphics) {
	m.graphics[name] = g
}
