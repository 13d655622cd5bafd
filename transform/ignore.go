// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "strings"

// containsIgnoreMarker reports whether text contains marker as a whole
// word - an alphanumeric-boundary-qualified substring match. This mirrors
// the upstream dprint-ignore search exactly (see SPEC_FULL.md's note on
// the Open Question about multi-line block comments): it is a plain
// substring test over the comment's entire text, including a multi-line
// block comment's full body, qualified only by the characters
// immediately surrounding the match.
func containsIgnoreMarker(text, marker string) bool {
	if marker == "" {
		return false
	}
	idx := 0
	for {
		i := strings.Index(text[idx:], marker)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(marker)
		beforeOK := start == 0 || !isWordByte(text[start-1])
		afterOK := end == len(text) || !isWordByte(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
