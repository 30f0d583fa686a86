// Copyright 2026 The Stitchfoundry Authors
// SPDX-License-Identifier: Apache-2.0

// pecinfo inspects PEC embroidery files: design name, bounds,
// instruction counts, and the thread palette. It can also export a
// compact design snapshot and print the design fingerprint, which is
// how import pipelines deduplicate designs that arrive under different
// file names.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/stitchfoundry/embroidery/lib/design"
	"github.com/stitchfoundry/embroidery/lib/pec"
	"github.com/stitchfoundry/embroidery/lib/stitch"
	"github.com/stitchfoundry/embroidery/lib/thread"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var chartPath string
	var snapshotPath string
	var fingerprint bool
	var verbose bool

	flagSet := pflag.NewFlagSet("pecinfo", pflag.ContinueOnError)
	flagSet.StringVar(&chartPath, "chart", "", "YAML color chart overriding the default palette")
	flagSet.StringVar(&snapshotPath, "snapshot", "", "write a design snapshot to this path")
	flagSet.BoolVar(&fingerprint, "fingerprint", false, "print the design fingerprint")
	flagSet.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) != 1 {
		printHelp(flagSet)
		return fmt.Errorf("expected exactly one PEC file argument, got %d", len(args))
	}
	path := args[0]

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var d *design.Design
	if chartPath == "" {
		var err error
		d, err = pec.ReadFile(path)
		if err != nil {
			return err
		}
	} else {
		chart, err := thread.LoadChart(chartPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded external chart", "path", chartPath, "threads", len(chart))
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		d, err = pec.ReadWithChart(file, chart)
		file.Close()
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}
	logger.Debug("decoded design", "events", len(d.Stitches()), "threads", len(d.Threads()))

	printSummary(d)

	if snapshotPath != "" {
		data, err := d.Snapshot()
		if err != nil {
			return err
		}
		if err := os.WriteFile(snapshotPath, data, 0o644); err != nil {
			return fmt.Errorf("writing snapshot %s: %w", snapshotPath, err)
		}
		logger.Debug("wrote snapshot", "path", snapshotPath, "bytes", len(data))
	}

	if fingerprint {
		digest, err := d.Fingerprint()
		if err != nil {
			return err
		}
		fmt.Printf("fingerprint: %x\n", digest)
	}
	return nil
}

func printSummary(d *design.Design) {
	name := d.Metadata().Name()
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Printf("name: %s\n", name)

	minX, minY, maxX, maxY := d.Bounds()
	fmt.Printf("bounds: (%d, %d) .. (%d, %d), %dx%d units\n",
		minX, minY, maxX, maxY, maxX-minX, maxY-minY)

	counts := make(map[stitch.Kind]int)
	for _, e := range d.Stitches() {
		counts[e.Kind]++
	}
	for _, kind := range []stitch.Kind{
		stitch.Stitch, stitch.Jump, stitch.Trim,
		stitch.Stop, stitch.ColorChange, stitch.End,
	} {
		if counts[kind] > 0 {
			fmt.Printf("%s: %d\n", kind, counts[kind])
		}
	}

	fmt.Printf("threads: %d\n", len(d.Threads()))
	for i, t := range d.Threads() {
		description := t.Description
		if description == "" {
			description = "(unnamed)"
		}
		fmt.Printf("  %2d  %s  %s", i+1, t.Color.Hex(), description)
		if t.Brand != "" {
			fmt.Printf("  %s %s", t.Brand, t.CatalogNumber)
		}
		fmt.Println()
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `pecinfo inspects PEC embroidery files.

Prints the design name, bounding box, instruction counts, and thread
palette. Container formats that embed PEC sections usually carry their
own color chart; pass it with --chart to see the colors the container
intended.

Usage:
  pecinfo [flags] file.pec

Flags:
%s`, flagSet.FlagUsages())
}
