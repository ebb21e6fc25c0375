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

// Policy decides everything about markup that varies between dialects: it
// classifies a TagID and answers the variability questions the tokenizer
// otherwise has no opinion about. A Policy is a plain value — composition,
// not a parser subclass — and must be pure: every method is safe to call
// repeatedly on the same input, and a single Policy instance may be shared
// across concurrent Tokenizer invocations (a Tokenizer invocation itself is
// not reentrant; see spec §5).
//
// Built-in HTML5-ish and XML-style policies live in sibling packages
// (pkg/htmlpolicy, pkg/xmlpolicy); this package only consumes the contract.
type Policy interface {
	// Spaces is the set of characters treated as ASCII whitespace.
	Spaces() string

	// GetElementNameStart returns pos if the byte at pos is a legal
	// name-start character, else NPOS. A policy may skip leading
	// whitespace here — doing so turns "< foo>" into a start tag instead
	// of text.
	GetElementNameStart(source string, pos Position) Position

	// GetTagID maps a source name to an id, typically by lower-casing
	// (HTML-like) or leaving it verbatim (XML-like). This is the only
	// case-folding point in the whole pipeline.
	GetTagID(name string) TagID

	// IsSameElement reports id equality; may be case-insensitive even
	// when GetTagID preserves the original case.
	IsSameElement(a, b TagID) bool

	// IsVoidElement reports whether a start tag for id is implicitly
	// self-closing (e.g. HTML <br>).
	IsVoidElement(id TagID) bool

	// IsContentElement reports whether a self-closing marker on id's
	// start tag is ignored — the tag always opens (e.g. HTML <div/>).
	IsContentElement(id TagID) bool

	// IsOpaqueElement reports whether id's body is scanned as raw bytes
	// up to the matching end tag, without further markup parsing (e.g.
	// HTML <script>, <style>).
	IsOpaqueElement(id TagID) bool

	// IsAutoclosingSibling reports whether seeing a start tag for newID
	// while openID is on the open-element stack implicitly closes
	// openID (e.g. HTML <li> closing a previous open <li>).
	IsAutoclosingSibling(openID, newID TagID) bool

	// IsAutocloseByParent reports whether id auto-closes when its
	// parent closes, or at end of input, if still open (e.g. HTML <p>).
	IsAutocloseByParent(id TagID) bool

	// IsWildcardEndTag reports whether an end tag named id adopts
	// whatever element is currently on top of the open-element stack.
	IsWildcardEndTag(id TagID) bool

	// IsAutoclosingEndTag reports whether matching this end tag closes
	// every open descendant, not just the immediate child ("landmark"
	// end tag).
	IsAutoclosingEndTag(id TagID) bool
}
