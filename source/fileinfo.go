// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "sort"

// FileInfo carries the original file bytes plus a line-start byte-offset
// table, so that the core can turn a BytePos into a 1-indexed line/column
// without re-scanning the buffer for every node (spec.md §6).
type FileInfo struct {
	Name       string
	Bytes      []byte
	lineStarts []uint32
}

// NewFileInfo builds the line-start offset table for buf.
func NewFileInfo(name string, buf []byte) *FileInfo {
	fi := &FileInfo{Name: name, Bytes: buf, lineStarts: []uint32{0}}
	for i, b := range buf {
		if b == '\n' {
			fi.lineStarts = append(fi.lineStarts, uint32(i+1))
		}
	}
	return fi
}

// Position converts a byte offset into a 1-indexed line/column pair.
func (fi *FileInfo) Position(pos uint32) Position {
	// Find the last line start <= pos.
	i := sort.Search(len(fi.lineStarts), func(i int) bool {
		return fi.lineStarts[i] > pos
	})
	line := i // 0-indexed search result already accounts for the i-1 line
	lineStart := fi.lineStarts[line-1]
	return Position{Line: line, Column: int(pos-lineStart) + 1}
}

// Text returns the raw source text covered by span.
func (fi *FileInfo) Text(span Span) string {
	return string(fi.Bytes[span.Lo:span.Hi])
}
