// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format is the top-level driver tying source, transform, and
// printer together (spec.md §2's end-to-end pipeline), grounded on
// asm.Compiler's Compile entry point.
package format

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/config"
	"github.com/dprintgo/tsfmt/printer"
	"github.com/dprintgo/tsfmt/source"
	"github.com/dprintgo/tsfmt/transform"
)

// Format runs one program through the transformer and printer, producing
// its formatted text.
func Format(src *source.ParsedSource, program *ast.Program, cfg config.Config) (string, error) {
	ctx := transform.NewContext(cfg, src)
	path := transform.Transform(ctx, program)
	p := printer.New(cfg)
	return p.Print(path)
}

// File bundles one already-parsed input for FormatFiles.
type File struct {
	Name    string
	Source  *source.ParsedSource
	Program *ast.Program
}

// Result is one file's formatting outcome.
type Result struct {
	Name string
	Text string
	Err  error
}

// FormatFiles formats every file independently and in parallel, one
// goroutine per file via errgroup.Group: spec.md §5 states formatting
// passes share no state, so there is nothing to synchronize beyond
// collecting results (grounded on the teacher's golang.org/x/sync
// requirement, promoted here from an indirect dependency of
// golang.org/x/tools to a direct, exercised one).
func FormatFiles(ctx context.Context, files []File, cfg config.Config) ([]Result, error) {
	results := make([]Result, len(files))
	g, _ := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			text, err := Format(f.Source, f.Program, cfg)
			if err != nil {
				err = fmt.Errorf("%s: %w", f.Name, err)
			}
			results[i] = Result{Name: f.Name, Text: text, Err: err}
			return nil
		})
	}
	g.Wait() // each goroutine reports failure via its own Result.Err, never a group-wide error
	return results, nil
}
