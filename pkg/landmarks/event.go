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

// Attribute is one name[=value] pair found inside an open tag.
//
// Name is empty only when the attribute starts with '=' (as in `<a =x>`).
// Value may be empty (a value-less attribute like the bare `d` in `<a d>`)
// or incomplete (Value.End == NPOS, a missing closing quote). All spans the
// outer extent, from the first byte of Name through the end of Value —
// including the closing quote, if any. For a value-less attribute All
// equals Name.
type Attribute struct {
	Name  Range
	Value Range
	All   Range
}

// TagPrefix holds the part of a start or end tag known as soon as its name
// has been read: the id, the name's own range, and the outer range from
// the opening `<`/`</` through the current known end (growing as more of
// the tag is scanned, final once the corresponding StartTag/EndTag event
// fires).
type TagPrefix struct {
	TagID TagID
	Name  Range
	All   Range
}

// SelfClosingPolicy classifies whether a start tag's `/>` marker is
// meaningful for its element, per Policy.IsVoidElement/IsContentElement.
type SelfClosingPolicy int

const (
	// SelfClosingAllowed: the marker, if present, makes the tag
	// self-closing; if absent, it doesn't.
	SelfClosingAllowed SelfClosingPolicy = iota
	// SelfClosingProhibited: a content element; the tag always opens
	// regardless of any trailing '/'.
	SelfClosingProhibited
	// SelfClosingRequired: a void element; the tag is always
	// self-closing regardless of any trailing '/'.
	SelfClosingRequired
)

// SelfClosingMarker records whether the literal '/' immediately before '>'
// was present in the source, independent of whether it was semantically
// significant (see SelfClosingPolicy).
type SelfClosingMarker int

const (
	SelfClosingAbsent SelfClosingMarker = iota
	SelfClosingPresent
)

// StartTag is a completed start-tag event.
type StartTag struct {
	TagPrefix
	SelfClosingPolicy SelfClosingPolicy
	SelfClosingMarker SelfClosingMarker
}

// IsSelfClosing reports whether this start tag does not open an element:
// true for a void element, or for a content-neutral element whose marker
// was present in the source.
func (t StartTag) IsSelfClosing() bool {
	return t.SelfClosingPolicy == SelfClosingRequired ||
		(t.SelfClosingPolicy == SelfClosingAllowed && t.SelfClosingMarker == SelfClosingPresent)
}

// EndTagState classifies how an end tag was resolved against the
// open-element stack.
type EndTagState int

const (
	// EndTagUnmatched: no open element on the stack matched; nothing
	// was popped.
	EndTagUnmatched EndTagState = iota
	// EndTagMatched: this end tag matched the top of the stack (or, via
	// a sweep, an ancestor whose intervening descendants were
	// autoclosed) and popped it.
	EndTagMatched
	// EndTagAutoclosedByParent: synthesized when an ancestor popped (or
	// input ended) and this element was still open.
	EndTagAutoclosedByParent
	// EndTagAutoclosedBySibling: synthesized when a sibling start tag
	// caused this element to close.
	EndTagAutoclosedBySibling
	// EndTagAutoclosedByAncestor: synthesized because a landmark
	// (autoclosing) end tag above this element in the stack matched.
	EndTagAutoclosedByAncestor
)

// EndTag is a completed end-tag event, either a literal one found in the
// source or one synthesized by the driver to close an element implicitly.
type EndTag struct {
	TagPrefix
	State EndTagState
}

// IsAutoclosed reports whether this EndTag was synthesized by the driver
// rather than matched against literal `</name>` source text.
func (t EndTag) IsAutoclosed() bool {
	switch t.State {
	case EndTagAutoclosedByParent, EndTagAutoclosedBySibling, EndTagAutoclosedByAncestor:
		return true
	default:
		return false
	}
}
