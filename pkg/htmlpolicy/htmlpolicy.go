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

// Package htmlpolicy is a built-in landmarks.Policy for HTML5-ish markup:
// case-insensitive names, void/opaque elements, and the autoclose rules
// browsers apply without invoking full tree reconstruction.
//
// It is intentionally simpler than a browser: it has no tree builder, no
// "adoption agency" algorithm, and no foreign-content (SVG/MathML)
// switching. What it gives a landmarks.Tokenizer is enough dialect
// knowledge to tokenize ordinary HTML documents sensibly in one pass.
package htmlpolicy

import (
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/callionica/landmarks/pkg/landmarks"
)

const spaces = " \t\n\f\r"

// Policy is the built-in HTML5-ish landmarks.Policy. It holds no state and
// is safe to share across any number of concurrent Tokenizer invocations.
type Policy struct{}

var _ landmarks.Policy = Policy{}

func (Policy) Spaces() string { return spaces }

// GetElementNameStart accepts an ASCII letter, digit, '_', '-', or ':' as a
// legal name-start character. Leading whitespace after '<' is never
// skipped, so "< a>" folds into text rather than becoming a start tag —
// matching real browser behavior.
func (Policy) GetElementNameStart(source string, pos landmarks.Position) landmarks.Position {
	if int(pos) >= len(source) {
		return landmarks.NPOS
	}
	b := source[pos]
	if isNameChar(b) {
		return pos
	}
	return landmarks.NPOS
}

func isNameChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_' || b == '-' || b == ':':
		return true
	default:
		return false
	}
}

// GetTagID lower-cases name and, for well-known elements, interns it
// against the atom table so repeated tags don't each allocate their own
// string.
func (Policy) GetTagID(name string) landmarks.TagID {
	lower := strings.ToLower(name)
	if a := atom.Lookup([]byte(lower)); a != 0 {
		return landmarks.TagID{Name: a.String()}
	}
	return landmarks.TagID{Name: lower}
}

func (Policy) IsSameElement(a, b landmarks.TagID) bool {
	return a.Name == b.Name
}

var voidElements = stringSet(
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "source", "track", "wbr",
)

func (Policy) IsVoidElement(id landmarks.TagID) bool {
	return voidElements[id.Name]
}

var opaqueElements = stringSet("script", "style")

func (Policy) IsOpaqueElement(id landmarks.TagID) bool {
	return opaqueElements[id.Name]
}

// IsContentElement reports false uniformly: this table has no element for
// which a trailing '/' on a content tag is defined to be ignored beyond
// what IsVoidElement already captures (void elements take SelfClosingRequired
// regardless of IsContentElement).
func (Policy) IsContentElement(landmarks.TagID) bool {
	return false
}

// autocloseByParent lists elements implicitly closed by their parent
// closing, or by end of input, if still open.
var autocloseByParent = stringSet(
	"p", "li", "dt", "dd",
	"tr", "td", "th", "thead", "tbody", "tfoot",
	"option", "optgroup",
)

func (Policy) IsAutocloseByParent(id landmarks.TagID) bool {
	return autocloseByParent[id.Name]
}

var siblingGroups = []map[string]bool{
	stringSet("li"),
	stringSet("dt", "dd"),
	stringSet("option"),
	stringSet("tr"),
	stringSet("td", "th"),
}

// pClosers lists the elements that implicitly close a still-open <p> when
// they open, mirroring real HTML5 "implied end tag" behavior (e.g. `<p>intro
// <div>` closes the <p> before the <div> starts). Unlike the groups above,
// this rule is one-directional: opening one of these while a <p> is open
// closes the <p>, but opening a <p> never closes one of these.
var pClosers = stringSet(
	"address", "article", "aside", "blockquote", "div", "dl", "fieldset",
	"footer", "form", "h1", "h2", "h3", "h4", "h5", "h6", "header", "hr",
	"menu", "nav", "ol", "p", "pre", "section", "table", "ul",
)

// IsAutoclosingSibling reports whether newID closes a previously open
// openID: a second <li> closes the first, a <dd> closes an open <dt> (and
// vice versa), a block-level element closes an open <p>, and so on.
func (Policy) IsAutoclosingSibling(openID, newID landmarks.TagID) bool {
	if openID.Name == "p" && pClosers[newID.Name] {
		return true
	}
	for _, group := range siblingGroups {
		if group[openID.Name] && group[newID.Name] {
			return true
		}
	}
	return false
}

// IsWildcardEndTag and IsAutoclosingEndTag are both false uniformly: real
// HTML5 parsing resolves mismatched end tags via tree reconstruction
// ("adoption agency"), which this table deliberately does not attempt.
func (Policy) IsWildcardEndTag(landmarks.TagID) bool    { return false }
func (Policy) IsAutoclosingEndTag(landmarks.TagID) bool { return false }

func stringSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
