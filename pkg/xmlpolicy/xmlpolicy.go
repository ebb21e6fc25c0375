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

// Package xmlpolicy is a built-in landmarks.Policy for well-formed XML:
// case-sensitive names, no void/opaque/autoclose rules of any kind. Every
// element is an ordinary start/end pair; whether a tag is self-closing is
// purely a function of its own trailing '/'.
package xmlpolicy

import "github.com/callionica/landmarks/pkg/landmarks"

const spaces = " \t\n\r"

// Policy is the built-in XML landmarks.Policy. It holds no state and is
// safe to share across any number of concurrent Tokenizer invocations.
type Policy struct{}

var _ landmarks.Policy = Policy{}

func (Policy) Spaces() string { return spaces }

// GetElementNameStart accepts the common ASCII subset of XML's
// NameStartChar: a letter, '_', or ':'. Full Unicode NameStartChar is a
// table this package does not carry, matching how the teacher's own
// isXMLNameStart is scoped.
func (Policy) GetElementNameStart(source string, pos landmarks.Position) landmarks.Position {
	if int(pos) >= len(source) {
		return landmarks.NPOS
	}
	if isNameStart(source[pos]) {
		return pos
	}
	return landmarks.NPOS
}

func isNameStart(b byte) bool {
	return (b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		b == '_' || b == ':'
}

// GetTagID preserves the name verbatim: XML names are case-sensitive.
func (Policy) GetTagID(name string) landmarks.TagID {
	return landmarks.TagID{Name: name}
}

func (Policy) IsSameElement(a, b landmarks.TagID) bool {
	return a.Name == b.Name
}

func (Policy) IsVoidElement(landmarks.TagID) bool       { return false }
func (Policy) IsContentElement(landmarks.TagID) bool    { return false }
func (Policy) IsOpaqueElement(landmarks.TagID) bool     { return false }
func (Policy) IsAutocloseByParent(landmarks.TagID) bool { return false }

func (Policy) IsAutoclosingSibling(_, _ landmarks.TagID) bool { return false }

func (Policy) IsWildcardEndTag(landmarks.TagID) bool    { return false }
func (Policy) IsAutoclosingEndTag(landmarks.TagID) bool { return false }
