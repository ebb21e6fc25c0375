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

// TagID is an opaque identifier a Policy produces from a source name.
//
// Equality between two TagIDs as seen by the driver always goes through
// Policy.IsSameElement, never Go's ==: a case-insensitive policy must be
// free to consider "DIV" and "div" the same element without every caller
// having to pre-normalize. TagID is still a plain comparable struct (no
// interned pointer, no global table) so policies that do want cheap ==
// comparisons — e.g. one that's already lower-cased every name — can get
// them for free.
type TagID struct {
	// Name is the policy-normalized name (e.g. lower-cased for an
	// HTML5-ish policy, verbatim for an XML-style one).
	Name string
}

// unknownName cannot appear as a start-tag name (NUL is not a legal
// name-start character in any policy this package ships), so it does not
// collide with a document that happens to use the literal string "unknown"
// as an element name. End-tag names are not checked for a legal start, so a
// literal "</\x00unknown>" does produce this name.
const unknownName = "\x00unknown"

// UnknownTagID is the canonical sentinel for "no valid name here".
//
// It is deliberately not the zero value TagID{} (which some policies — an
// XML policy classifying the empty local part of a bare ":"-prefixed name,
// for instance — could otherwise produce legitimately), resolving the
// inconsistency the spec's open questions flag between historical
// revisions that used an empty string as the sentinel.
var UnknownTagID = TagID{Name: unknownName}

// IsUnknown reports whether id is the sentinel UnknownTagID.
func (id TagID) IsUnknown() bool {
	return id == UnknownTagID
}

// String implements fmt.Stringer for debugging and log output.
func (id TagID) String() string {
	if id.IsUnknown() {
		return "<unknown>"
	}
	return id.Name
}
