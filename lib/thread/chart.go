// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

package thread

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// chartEntry is the YAML representation of one thread in a chart file.
// Colors are stored as "#RRGGBB" strings so chart files stay readable
// and diffable.
type chartEntry struct {
	Color         string `yaml:"color"`
	Description   string `yaml:"description,omitempty"`
	CatalogNumber string `yaml:"catalog_number,omitempty"`
	Details       string `yaml:"details,omitempty"`
	Brand         string `yaml:"brand,omitempty"`
	Chart         string `yaml:"chart,omitempty"`
	Weight        string `yaml:"weight,omitempty"`
}

// LoadChart reads a YAML chart file: a top-level list of threads in
// chart order. The order is significant — chart position maps to
// color-change ordinal during palette reconciliation.
func LoadChart(path string) ([]Thread, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart %s: %w", path, err)
	}
	var entries []chartEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing chart %s: %w", path, err)
	}
	threads := make([]Thread, 0, len(entries))
	for i, entry := range entries {
		color, err := ParseHexColor(entry.Color)
		if err != nil {
			return nil, fmt.Errorf("chart %s entry %d: %w", path, i, err)
		}
		threads = append(threads, Thread{
			Color:         color,
			Description:   entry.Description,
			CatalogNumber: entry.CatalogNumber,
			Details:       entry.Details,
			Brand:         entry.Brand,
			Chart:         entry.Chart,
			Weight:        entry.Weight,
		})
	}
	return threads, nil
}

// SaveChart writes threads to a YAML chart file, overwriting any
// existing file at path.
func SaveChart(path string, threads []Thread) error {
	entries := make([]chartEntry, 0, len(threads))
	for _, t := range threads {
		entries = append(entries, chartEntry{
			Color:         t.Color.Hex(),
			Description:   t.Description,
			CatalogNumber: t.CatalogNumber,
			Details:       t.Details,
			Brand:         t.Brand,
			Chart:         t.Chart,
			Weight:        t.Weight,
		})
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding chart: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing chart %s: %w", path, err)
	}
	return nil
}
