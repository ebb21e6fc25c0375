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

const (
	commentOpen  = "<!--"
	commentClose = "-->"
	cdataOpen    = "<![CDATA["
	cdataClose   = "]]>"
	piClose      = "?>"
)

// Tokenizer walks a single source document left to right, dispatching
// typed events to a Handler synchronously as it goes (spec §5: no I/O, no
// asynchrony, single-threaded). One Tokenizer owns exactly one
// open-element stack and is good for exactly one Parse call; construct a
// fresh one per document with New.
type Tokenizer struct {
	doc     string
	policy  Policy
	handler Handler
	stack   *openStack
}

// New constructs a Tokenizer for source, to be driven by policy and
// reported to handler. No configuration beyond the policy is accepted, per
// spec §6.
func New(source string, policy Policy, handler Handler) *Tokenizer {
	return &Tokenizer{
		doc:     source,
		policy:  policy,
		handler: handler,
		stack:   newOpenStack(),
	}
}

// Parse runs the tokenizer to completion, calling Handler methods in
// source order, and returns once EndOfInput has been delivered.
//
// Parse never recovers a panic: if the Handler panics to signal early
// exit (spec §9 "Design Notes — Early exit"), or a contract violation
// (e.g. a malformed Range) panics from within the core, that panic
// propagates to Parse's caller unchanged. See SafeParse in recover.go for
// a convenience that turns such a panic into an error instead.
func (t *Tokenizer) Parse() {
	doc := t.doc
	n := Position(len(doc))
	h := t.handler
	anchor := Position(0)
	pos := Position(0)

	for {
		lt := indexByteFrom(doc, pos, '<')
		if lt == NPOS {
			emitText(h, doc, anchor, n)
			t.finish(true)
			return
		}

		switch {
		case hasPrefixAt(doc, lt, commentOpen):
			emitText(h, doc, anchor, lt)
			newPos, truncated := t.scanComment(lt)
			if truncated {
				t.finish(false)
				return
			}
			pos, anchor = newPos, newPos

		case hasPrefixAt(doc, lt, cdataOpen):
			emitText(h, doc, anchor, lt)
			newPos, truncated := t.scanCData(lt)
			if truncated {
				t.finish(false)
				return
			}
			pos, anchor = newPos, newPos

		case hasPrefixAt(doc, lt, "<?"):
			emitText(h, doc, anchor, lt)
			newPos, truncated := t.scanProcessing(lt)
			if truncated {
				t.finish(false)
				return
			}
			pos, anchor = newPos, newPos

		case hasPrefixAt(doc, lt, "<!"):
			emitText(h, doc, anchor, lt)
			newPos, truncated := t.scanDeclaration(lt)
			if truncated {
				t.finish(false)
				return
			}
			pos, anchor = newPos, newPos

		case hasPrefixAt(doc, lt, "</"):
			emitText(h, doc, anchor, lt)
			newPos, truncated := t.scanEndTag(lt)
			if truncated {
				t.finish(false)
				return
			}
			pos, anchor = newPos, newPos

		default:
			nameStart := t.policy.GetElementNameStart(doc, lt+1)
			if nameStart == NPOS {
				// Invalid name-start: fold this '<' into the surrounding
				// text run. No event, no anchor change.
				pos = lt + 1
				continue
			}
			emitText(h, doc, anchor, lt)
			newPos, truncated := t.scanStartTag(lt, nameStart)
			if truncated {
				t.finish(false)
				return
			}
			pos, anchor = newPos, newPos
		}
	}
}

// finish ends the parse: optionally synthesizing the autoclose-by-parent
// tail (a clean end-of-input reaches every still-open element this way),
// then always delivering exactly one EndOfInput.
//
// sweepTail is false for every truncation path (§4.5/§7: "parse
// terminates", stack reported as-is) and true only when the main loop ran
// out of '<' characters with no token left unfinished.
func (t *Tokenizer) finish(sweepTail bool) {
	doc := t.doc
	h := t.handler
	if sweepTail {
		n := Position(len(doc))
		for {
			top, ok := t.stack.top()
			if !ok || !t.policy.IsAutocloseByParent(top) {
				break
			}
			t.stack.pop()
			emitSynthesizedEndTag(h, doc, top, n, EndTagAutoclosedByParent)
		}
	}
	h.EndOfInput(doc, t.stack.snapshot())
}

// scanComment handles "<!--" ... "-->". The closer is searched for from
// the start of the opener itself (not after it), so that a degenerate
// "<!-->" — whose own trailing "--" doubles as the closer's first two
// bytes — still terminates as one complete, empty comment.
func (t *Tokenizer) scanComment(lt Position) (Position, bool) {
	end, ok := indexAfterString(t.doc, lt, commentClose)
	if !ok {
		t.handler.Comment(t.doc, NewRange(lt, NPOS))
		return Position(len(t.doc)), true
	}
	t.handler.Comment(t.doc, NewRange(lt, end))
	return end, false
}

// scanCData handles "<![CDATA[" ... "]]>".
func (t *Tokenizer) scanCData(lt Position) (Position, bool) {
	end, ok := indexAfterString(t.doc, lt, cdataClose)
	if !ok {
		t.handler.CData(t.doc, NewRange(lt, NPOS))
		return Position(len(t.doc)), true
	}
	t.handler.CData(t.doc, NewRange(lt, end))
	return end, false
}

// scanProcessing handles "<?" ... "?>". As with comments, the closer is
// searched for starting at the opener itself, so "<?>" closes as one
// degenerate processing instruction (its "?" doubles as the closer's
// first byte).
func (t *Tokenizer) scanProcessing(lt Position) (Position, bool) {
	end, ok := indexAfterString(t.doc, lt, piClose)
	if !ok {
		t.handler.Processing(t.doc, NewRange(lt, NPOS))
		return Position(len(t.doc)), true
	}
	t.handler.Processing(t.doc, NewRange(lt, end))
	return end, false
}

// scanDeclaration handles "<!" ... ">" (doctype / declarations), with
// basic quote and "[ ... ]" internal-subset bracket handling so a '>'
// inside a quoted literal or a doctype's internal subset doesn't
// terminate the declaration early. Unlike comments/PIs, there is no
// opener/closer overlap to guard against ("<!" never ends in '>'), so the
// scan starts right after the opener.
func (t *Tokenizer) scanDeclaration(lt Position) (Position, bool) {
	end, ok := scanDeclarationClose(t.doc, lt+2)
	if !ok {
		t.handler.Declaration(t.doc, NewRange(lt, NPOS))
		return Position(len(t.doc)), true
	}
	t.handler.Declaration(t.doc, NewRange(lt, end))
	return end, false
}

func scanDeclarationClose(doc string, from Position) (afterClose Position, ok bool) {
	n := Position(len(doc))
	var quote byte
	bracketDepth := 0
	for i := from; i < n; i++ {
		b := doc[i]
		if quote != 0 {
			if b == quote {
				quote = 0
			}
			continue
		}
		if b == '"' || b == '\'' {
			quote = b
			continue
		}
		switch b {
		case '[':
			bracketDepth++
		case ']':
			if bracketDepth > 0 {
				bracketDepth--
			}
		case '>':
			if bracketDepth == 0 {
				return i + 1, true
			}
		}
	}
	return NPOS, false
}

// scanStartTag handles the "<name ...>" shape once the policy has already
// confirmed a legal name-start character at nameStart.
func (t *Tokenizer) scanStartTag(lt, nameStart Position) (newPos Position, truncated bool) {
	doc := t.doc
	h := t.handler
	spaces := t.policy.Spaces()
	n := Position(len(doc))

	nameEnd := scanElementNameEnd(doc, nameStart, spaces)
	if nameEnd == NPOS {
		tagID := t.policy.GetTagID(doc[nameStart:])
		prefix := TagPrefix{TagID: tagID, Name: NewRange(nameStart, NPOS), All: NewRange(lt, NPOS)}
		h.StartTagPrefix(doc, prefix)
		h.StartTag(doc, StartTag{TagPrefix: prefix})
		return n, true
	}

	tagID := t.policy.GetTagID(doc[nameStart:nameEnd])

	t.autocloseSiblingSweep(tagID, lt)

	prefix := TagPrefix{TagID: tagID, Name: NewRange(nameStart, nameEnd), All: NewRange(lt, nameEnd)}
	h.StartTagPrefix(doc, prefix)

	closeAngle, markerPresent, complete := parseAttributes(doc, nameEnd, spaces, func(a Attribute) {
		h.StartTagAttribute(doc, a)
	})
	if !complete {
		return n, true
	}

	selfPolicy := SelfClosingAllowed
	switch {
	case t.policy.IsVoidElement(tagID):
		selfPolicy = SelfClosingRequired
	case t.policy.IsContentElement(tagID):
		selfPolicy = SelfClosingProhibited
	}
	marker := SelfClosingAbsent
	if markerPresent {
		marker = SelfClosingPresent
	}

	newPos = closeAngle + 1
	tag := StartTag{
		TagPrefix:         TagPrefix{TagID: tagID, Name: NewRange(nameStart, nameEnd), All: NewRange(lt, newPos)},
		SelfClosingPolicy: selfPolicy,
		SelfClosingMarker: marker,
	}
	h.StartTag(doc, tag)

	if tag.IsSelfClosing() {
		return newPos, false
	}

	t.stack.push(tagID)

	if t.policy.IsOpaqueElement(tagID) {
		bodyEnd := t.scanOpaqueBody(tagID, newPos)
		emitText(h, doc, newPos, bodyEnd)
		return bodyEnd, false
	}

	return newPos, false
}

// scanOpaqueBody scans raw bytes after an opaque element's start tag,
// looking for the matching "</name>", without interpreting any markup in
// between. It returns the position just before that "</" (or the end of
// the source if there is none); scanStartTag reports the body up to there
// as one Text event, and the next main-loop iteration takes the end tag
// through the ordinary end-tag path.
func (t *Tokenizer) scanOpaqueBody(openID TagID, from Position) Position {
	doc := t.doc
	n := Position(len(doc))
	pos := from

	for {
		idx := indexByteFrom(doc, pos, '<')
		if idx == NPOS {
			return n
		}
		if !hasPrefixAt(doc, idx, "</") {
			pos = idx + 1
			continue
		}

		nameStart := idx + 2
		// Defensive: nameStart could, in principle, exceed len(doc) here
		// only if idx were the very last byte of doc, which hasPrefixAt
		// above already rules out. Kept because the spec calls this
		// clamp out explicitly as defensive-not-semantic (see DESIGN.md).
		if int(nameStart) > len(doc) {
			return n
		}
		if t.policy.GetElementNameStart(doc, nameStart) == NPOS {
			pos = idx + 1
			continue
		}

		nameEnd := scanElementNameEnd(doc, nameStart, t.policy.Spaces())
		if nameEnd == NPOS {
			// A truncated end tag inside the opaque body: rewind so the
			// ordinary end-tag path reports the truncation.
			return idx
		}

		candidate := t.policy.GetTagID(doc[nameStart:nameEnd])
		if t.policy.IsSameElement(candidate, openID) {
			return idx
		}
		pos = idx + 1
	}
}

// scanEndTag handles the "</name ...>" shape. Unlike start tags, an end
// tag is never reinterpreted as text, even when no legal name follows.
func (t *Tokenizer) scanEndTag(lt Position) (newPos Position, truncated bool) {
	doc := t.doc
	h := t.handler
	spaces := t.policy.Spaces()
	n := Position(len(doc))

	nameStart := lt + 2
	nameEnd := scanElementNameEnd(doc, nameStart, spaces)
	if nameEnd == NPOS {
		prefix := TagPrefix{TagID: UnknownTagID, Name: NewRange(nameStart, NPOS), All: NewRange(lt, NPOS)}
		h.EndTagPrefix(doc, prefix)
		return n, true
	}

	var tagID TagID
	if nameEnd == nameStart {
		tagID = UnknownTagID
	} else {
		tagID = t.policy.GetTagID(doc[nameStart:nameEnd])
	}

	state := t.resolveEndTag(&tagID, lt)

	prefix := TagPrefix{TagID: tagID, Name: NewRange(nameStart, nameEnd), All: NewRange(lt, nameEnd)}
	h.EndTagPrefix(doc, prefix)

	closeAngle, _, complete := parseAttributes(doc, nameEnd, spaces, func(a Attribute) {
		h.EndTagAttribute(doc, a)
	})
	if !complete {
		return n, true
	}

	newPos = closeAngle + 1
	h.EndTag(doc, EndTag{
		TagPrefix: TagPrefix{TagID: tagID, Name: NewRange(nameStart, nameEnd), All: NewRange(lt, newPos)},
		State:     state,
	})
	return newPos, false
}

// resolveEndTag applies the open-element stack discipline for a literal
// end tag: wildcard adoption, direct match against the top of the stack,
// or a bounded sweep through autoclosing ancestors. It mutates the stack
// (popping whatever the resolution closes) and may rewrite *tagID when the
// end tag is a wildcard. It returns the EndTagState for the literal end
// tag itself; any frames closed along the way are reported as separate
// synthesized events before this function returns.
func (t *Tokenizer) resolveEndTag(tagID *TagID, at Position) EndTagState {
	if t.stack.len() == 0 {
		return EndTagUnmatched
	}

	if t.policy.IsWildcardEndTag(*tagID) {
		top, _ := t.stack.top()
		*tagID = top
	}

	top, _ := t.stack.top()
	if t.policy.IsSameElement(*tagID, top) {
		t.stack.pop()
		return EndTagMatched
	}

	landmark := t.policy.IsAutoclosingEndTag(*tagID)
	perPopState := EndTagAutoclosedByParent
	if landmark {
		perPopState = EndTagAutoclosedByAncestor
	}

	idx := -1
	for i := t.stack.len() - 1; i >= 0; i-- {
		e := t.stack.at(i)
		if t.policy.IsSameElement(e, *tagID) {
			idx = i
			break
		}
		if !(landmark || t.policy.IsAutocloseByParent(e)) {
			break
		}
	}
	if idx < 0 {
		return EndTagUnmatched
	}

	above := t.stack.truncate(idx + 1)
	for _, id := range above {
		emitSynthesizedEndTag(t.handler, t.doc, id, at, perPopState)
	}
	t.stack.pop()
	return EndTagMatched
}

// autocloseSiblingSweep implements the sibling-autoclose rule: seeing a
// start tag for newID while some openID is on the stack closes openID
// (and, transitively, everything above it) if the policy says so. The
// stack is scanned top-down; the first match found closes itself and
// every frame above it.
func (t *Tokenizer) autocloseSiblingSweep(newID TagID, at Position) {
	for i := t.stack.len() - 1; i >= 0; i-- {
		if t.policy.IsAutoclosingSibling(t.stack.at(i), newID) {
			popped := t.stack.truncate(i)
			for _, id := range popped {
				emitSynthesizedEndTag(t.handler, t.doc, id, at, EndTagAutoclosedBySibling)
			}
			return
		}
	}
}

func emitSynthesizedEndTag(h Handler, doc string, id TagID, at Position, state EndTagState) {
	prefix := TagPrefix{TagID: id, Name: NewRange(at, at), All: NewRange(at, at)}
	h.EndTagPrefix(doc, prefix)
	h.EndTag(doc, EndTag{TagPrefix: prefix, State: state})
}

func emitText(h Handler, doc string, start, end Position) {
	if end > start {
		h.Text(doc, NewRange(start, end))
	}
}

// scanElementNameEnd finds the first element_name_end boundary
// (attribute_spaces ∪ {'>'}, i.e. spaces, '/', or '>') at or after from.
// It returns NPOS if the source ends first.
func scanElementNameEnd(doc string, from Position, spaces string) Position {
	n := Position(len(doc))
	pos := from
	for pos < n {
		b := doc[pos]
		if isSpaceByte(spaces, b) || b == '/' || b == '>' {
			return pos
		}
		pos++
	}
	return NPOS
}

func hasPrefixAt(doc string, pos Position, prefix string) bool {
	end := int(pos) + len(prefix)
	return end <= len(doc) && doc[pos:end] == prefix
}

func indexAfterString(doc string, from Position, needle string) (Position, bool) {
	if int(from) > len(doc) {
		return NPOS, false
	}
	idx := strings.Index(doc[from:], needle)
	if idx < 0 {
		return NPOS, false
	}
	return from + Position(idx) + Position(len(needle)), true
}
