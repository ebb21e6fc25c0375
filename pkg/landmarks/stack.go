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

// openStack is the ordered sequence of TagIDs for start tags seen but not
// yet closed, owned exclusively by a single Parse call. The top (last
// element) is the current element. No sharing, no cycles: a plain slice is
// enough.
type openStack struct {
	ids []TagID
}

func newOpenStack() *openStack {
	return &openStack{ids: make([]TagID, 0, 16)}
}

func (s *openStack) push(id TagID) {
	s.ids = append(s.ids, id)
}

func (s *openStack) pop() TagID {
	n := len(s.ids) - 1
	id := s.ids[n]
	s.ids = s.ids[:n]
	return id
}

func (s *openStack) top() (TagID, bool) {
	if len(s.ids) == 0 {
		return TagID{}, false
	}
	return s.ids[len(s.ids)-1], true
}

func (s *openStack) len() int {
	return len(s.ids)
}

// at returns the id at stack index i (0 is the bottom/outermost element).
func (s *openStack) at(i int) TagID {
	return s.ids[i]
}

// truncate pops every frame above and including index i, returning the
// popped ids in pop order (deepest/most-recently-opened first).
func (s *openStack) truncate(i int) []TagID {
	popped := make([]TagID, len(s.ids)-i)
	for k := range popped {
		popped[k] = s.ids[len(s.ids)-1-k]
	}
	s.ids = s.ids[:i]
	return popped
}

// snapshot returns a copy of the currently open ids, bottom to top, safe
// for the caller to retain after Parse returns.
func (s *openStack) snapshot() []TagID {
	out := make([]TagID, len(s.ids))
	copy(out, s.ids)
	return out
}
