// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package landmarks

import "strings"

// parseAttributes scans attributes starting at pos (just past the tag or
// end-tag name), invoking onAttr for each one found in source order, until
// the tag's closing '>' or end of source.
//
// Space classes (spec §4.3): attributeSpaces = spaces ∪ {'/'} — a '/'
// between attributes is whitespace, but a '/' inside an unquoted value is
// part of the value. attributeNameEnd = attributeSpaces ∪ {'>', '='}.
// attributeValueEnd = spaces ∪ {'>'}.
//
// Returns closeAngle, the position of the tag's closing '>' (or
// len(src) if the source ran out first); selfClosingPresent, whether the
// byte immediately before that '>' is '/'; and complete, false if source
// ran out before a '>' was found (a truncated tag).
func parseAttributes(src string, pos Position, spaces string, onAttr func(Attribute)) (closeAngle Position, selfClosingPresent bool, complete bool) {
	n := Position(len(src))

	isSpace := func(b byte) bool { return isSpaceByte(spaces, b) }
	isAttrSpace := func(b byte) bool { return isSpace(b) || b == '/' }
	isNameEnd := func(b byte) bool { return isAttrSpace(b) || b == '>' || b == '=' }
	isValueEnd := func(b byte) bool { return isSpace(b) || b == '>' }

	for {
		// 1. Skip attribute_spaces.
		for pos < n && isAttrSpace(src[pos]) {
			pos++
		}
		if pos >= n {
			return n, false, false
		}

		// 2. Exit at the tag close. A '/' immediately preceding '>' was
		// already consumed as an attribute-space by step 1; checking the
		// raw byte right before pos recovers it as the self-closing
		// marker without needing to rewind pos.
		if src[pos] == '>' {
			return pos, selfClosingBefore(src, pos), true
		}

		// 3. Record the name.
		nameStart := pos
		for pos < n && !isNameEnd(src[pos]) {
			pos++
		}
		nameEnd := pos
		attr := Attribute{
			Name:  NewRange(nameStart, nameEnd),
			Value: NewRange(nameEnd, nameEnd),
		}

		if pos >= n {
			attr.Value = NewRange(nameEnd, NPOS)
			attr.All = NewRange(nameStart, NPOS)
			onAttr(attr)
			return n, false, false
		}

		// 4. Value-less attribute sitting right at a close marker.
		if src[pos] == '>' {
			attr.All = NewRange(nameStart, pos)
			onAttr(attr)
			return pos, selfClosingBefore(src, pos), true
		}

		// 5. Skip ordinary spaces (not attribute_spaces: a '/' here
		// belongs to the next attribute-space run, not this attribute).
		for pos < n && isSpace(src[pos]) {
			pos++
		}
		if pos >= n || src[pos] != '=' {
			// Value-less attribute; resume the outer loop at pos.
			attr.All = NewRange(nameStart, nameEnd)
			onAttr(attr)
			continue
		}

		// 6. Past '=' and spaces, read the value.
		pos++ // consume '='
		for pos < n && isSpace(src[pos]) {
			pos++
		}
		if pos >= n {
			attr.Value = NewRange(nameEnd, NPOS)
			attr.All = NewRange(nameStart, NPOS)
			onAttr(attr)
			return n, false, false
		}

		if src[pos] == '"' || src[pos] == '\'' {
			quote := src[pos]
			valueStart := pos + 1
			closeQuote := indexByteFrom(src, valueStart, quote)
			if closeQuote == NPOS {
				attr.Value = NewRange(valueStart, NPOS)
				attr.All = NewRange(nameStart, NPOS)
				onAttr(attr)
				return n, false, false
			}
			attr.Value = NewRange(valueStart, closeQuote)
			pos = closeQuote + 1
			attr.All = NewRange(nameStart, pos)
			onAttr(attr)
			continue
		}

		// Unquoted value: runs until attribute_value_end.
		valueStart := pos
		for pos < n && !isValueEnd(src[pos]) {
			pos++
		}
		attr.Value = NewRange(valueStart, pos)
		attr.All = NewRange(nameStart, pos)
		onAttr(attr)
		if pos < n && src[pos] == '>' {
			return pos, selfClosingBefore(src, pos), true
		}
		// Otherwise pos sits at whitespace; resume the outer loop.
	}
}

func isSpaceByte(spaces string, b byte) bool {
	return strings.IndexByte(spaces, b) >= 0
}

func selfClosingBefore(src string, closeAngle Position) bool {
	return closeAngle > 0 && src[closeAngle-1] == '/'
}

func indexByteFrom(src string, from Position, b byte) Position {
	if int(from) > len(src) {
		return NPOS
	}
	idx := strings.IndexByte(src[from:], b)
	if idx < 0 {
		return NPOS
	}
	return from + Position(idx)
}
