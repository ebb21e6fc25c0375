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

// Handler is the boundary the tokenizer core consumes. Every method is
// called synchronously, on the same goroutine as Parse, in source order
// (see spec §5 for the exact ordering guarantees across attributes and
// synthesized autoclose events). Methods have no return value: there is
// nothing useful for the driver to do with one. An application that wants
// to stop parsing early panics with a value of its choosing — Parse does
// not recover it (see recover.go for a convenience that does, at the call
// boundary).
//
// doc is the full source string, passed to every method so a Handler can
// call Range.Text/DecodedText without holding its own copy.
type Handler interface {
	Text(doc string, r Range)
	Comment(doc string, r Range)
	CData(doc string, r Range)
	Processing(doc string, r Range)
	Declaration(doc string, r Range)

	StartTagPrefix(doc string, prefix TagPrefix)
	StartTagAttribute(doc string, attr Attribute)
	StartTag(doc string, tag StartTag)

	EndTagPrefix(doc string, prefix TagPrefix)
	EndTagAttribute(doc string, attr Attribute)
	EndTag(doc string, tag EndTag)

	// EndOfInput fires exactly once. openIDs lists the elements still
	// open, bottom to top — an empty slice means a "clean" parse. On a
	// clean end of input it fires after the autoclose-by-parent tail: every
	// autoclose-by-parent element at the top of the stack has been closed,
	// stopping at the first one that is not. On a truncated parse no tail
	// is synthesized and the stack is reported as it stood.
	EndOfInput(doc string, openIDs []TagID)
}

// BaseHandler is a no-op Handler. Embed it to implement only the events an
// application cares about.
type BaseHandler struct{}

func (BaseHandler) Text(string, Range)                  {}
func (BaseHandler) Comment(string, Range)                {}
func (BaseHandler) CData(string, Range)                  {}
func (BaseHandler) Processing(string, Range)             {}
func (BaseHandler) Declaration(string, Range)             {}
func (BaseHandler) StartTagPrefix(string, TagPrefix)     {}
func (BaseHandler) StartTagAttribute(string, Attribute)  {}
func (BaseHandler) StartTag(string, StartTag)            {}
func (BaseHandler) EndTagPrefix(string, TagPrefix)       {}
func (BaseHandler) EndTagAttribute(string, Attribute)    {}
func (BaseHandler) EndTag(string, EndTag)                {}
func (BaseHandler) EndOfInput(string, []TagID)           {}

var _ Handler = BaseHandler{}
