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

import "testing"

const testSpaces = " \t\n\r"

func collectAttrs(src string, pos Position) (attrs []Attribute, closeAngle Position, selfClosing, complete bool) {
	closeAngle, selfClosing, complete = parseAttributes(src, pos, testSpaces, func(a Attribute) {
		attrs = append(attrs, a)
	})
	return attrs, closeAngle, selfClosing, complete
}

func TestParseAttributes_QuotedAndBareValues(t *testing.T) {
	src := `a href="x" title='y' disabled>`
	attrs, closeAngle, selfClosing, complete := collectAttrs(src, 2)
	if !complete {
		t.Fatal("expected a complete tag")
	}
	if selfClosing {
		t.Error("no trailing '/' before '>', should not be self-closing")
	}
	if closeAngle != Position(len(src)-1) {
		t.Errorf("closeAngle = %d, want %d", closeAngle, len(src)-1)
	}
	if len(attrs) != 3 {
		t.Fatalf("got %d attrs, want 3: %+v", len(attrs), attrs)
	}
	if got := attrs[0].Name.Text(src); got != "href" || attrs[0].Value.Text(src) != "x" {
		t.Errorf("attr 0 = %q=%q", got, attrs[0].Value.Text(src))
	}
	if got := attrs[1].Name.Text(src); got != "title" || attrs[1].Value.Text(src) != "y" {
		t.Errorf("attr 1 = %q=%q", got, attrs[1].Value.Text(src))
	}
	if got := attrs[2].Name.Text(src); got != "disabled" || !attrs[2].Value.IsEmpty() {
		t.Errorf("attr 2 = %q, want value-less 'disabled'", got)
	}
}

func TestParseAttributes_SelfClosingMarker(t *testing.T) {
	src := `br/>`
	_, closeAngle, selfClosing, complete := collectAttrs(src, 2)
	if !complete || !selfClosing {
		t.Fatalf("complete=%v selfClosing=%v, want true/true", complete, selfClosing)
	}
	if closeAngle != Position(len(src)-1) {
		t.Errorf("closeAngle = %d, want %d", closeAngle, len(src)-1)
	}
}

func TestParseAttributes_SlashInsideUnquotedValueIsNotSelfClosing(t *testing.T) {
	// A '/' that is part of an unquoted value (not immediately before '>')
	// is value content, not the self-closing marker.
	src := `a href=a/b>`
	attrs, _, selfClosing, complete := collectAttrs(src, 2)
	if !complete {
		t.Fatal("expected a complete tag")
	}
	if selfClosing {
		t.Error("the '/' belongs to the value, not the close marker")
	}
	if len(attrs) != 1 || attrs[0].Value.Text(src) != "a/b" {
		t.Fatalf("got %+v", attrs)
	}
}

func TestParseAttributes_SlashBetweenAttributesIsSpace(t *testing.T) {
	// attribute_spaces = spaces ∪ {'/'}: a bare '/' between two attributes
	// is whitespace, not part of either attribute's name.
	src := `a b/c>`
	attrs, _, _, complete := collectAttrs(src, 2)
	if !complete {
		t.Fatal("expected a complete tag")
	}
	if len(attrs) != 2 || attrs[0].Name.Text(src) != "b" || attrs[1].Name.Text(src) != "c" {
		t.Fatalf("got %+v", attrs)
	}
}

func TestParseAttributes_TruncatedBeforeCloseAngle(t *testing.T) {
	src := `a href="x"`
	attrs, closeAngle, _, complete := collectAttrs(src, 2)
	if complete {
		t.Fatal("expected an incomplete tag (no '>')")
	}
	if closeAngle != Position(len(src)) {
		t.Errorf("closeAngle = %d, want len(src) = %d", closeAngle, len(src))
	}
	if len(attrs) != 1 || attrs[0].Value.Text(src) != "x" {
		t.Fatalf("got %+v", attrs)
	}
}

func TestParseAttributes_TruncatedInsideUnclosedQuote(t *testing.T) {
	src := `a href="never closed`
	attrs, _, _, complete := collectAttrs(src, 2)
	if complete {
		t.Fatal("expected an incomplete tag (no closing quote)")
	}
	if len(attrs) != 1 {
		t.Fatalf("got %d attrs, want 1: %+v", len(attrs), attrs)
	}
	if attrs[0].Value.End != NPOS {
		t.Errorf("value end = %v, want NPOS", attrs[0].Value.End)
	}
	if got := attrs[0].Value.Text(src); got != "never closed" {
		t.Errorf("clamped value text = %q, want %q", got, "never closed")
	}
}

func TestParseAttributes_EmptyTagHasNoAttributes(t *testing.T) {
	src := `a>`
	attrs, closeAngle, selfClosing, complete := collectAttrs(src, 1)
	if !complete || selfClosing {
		t.Fatalf("complete=%v selfClosing=%v, want true/false", complete, selfClosing)
	}
	if len(attrs) != 0 {
		t.Fatalf("got %+v, want no attrs", attrs)
	}
	if closeAngle != 1 {
		t.Errorf("closeAngle = %d, want 1", closeAngle)
	}
}
