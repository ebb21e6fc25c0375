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

// Package landmarksjson is a reference landmarks.Handler that accumulates
// every event emitted by a Tokenizer into a JSON-serializable slice. It
// exists to give the core something concrete to drive in demonstrations
// and in the cmd/landmarks-dump CLI; applications with their own output
// model implement landmarks.Handler directly instead.
package landmarksjson

import "github.com/callionica/landmarks/pkg/landmarks"

// AttrEvent is one attribute reported between a tag prefix and its
// completed tag.
type AttrEvent struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Pos   int    `json:"pos"`
	Len   int    `json:"len"`
}

// Event is one tagged entry in a Collector's trace. Type, Pos and Len are
// always written (an endOfInput entry has Pos and Len 0); which of the
// other fields are populated depends on Type, and those that don't apply
// are left zero and omitted from JSON.
type Event struct {
	Type string `json:"type"`
	Pos  int    `json:"pos"`
	Len  int    `json:"len"`

	Text string `json:"text,omitempty"`

	TagID      string      `json:"tagID,omitempty"`
	Attrs      []AttrEvent `json:"attrs,omitempty"`
	SelfClosed bool        `json:"selfClosed,omitempty"`
	State      string      `json:"state,omitempty"`

	OpenAtEnd []string `json:"openAtEnd,omitempty"`
}

// Collector is a landmarks.Handler that records every event it is given,
// in the order received, as a flat []Event. The zero value is ready to use.
type Collector struct {
	landmarks.BaseHandler
	Events []Event
}

func rangeEvent(typ string, doc string, r landmarks.Range) Event {
	return Event{Type: typ, Pos: int(r.Start), Len: rangeLen(r), Text: r.Text(doc)}
}

func rangeLen(r landmarks.Range) int {
	if !r.IsComplete() || r.Start == landmarks.NPOS {
		return -1
	}
	return int(r.End - r.Start)
}

func (c *Collector) Text(doc string, r landmarks.Range) {
	c.Events = append(c.Events, rangeEvent("text", doc, r))
}

func (c *Collector) Comment(doc string, r landmarks.Range) {
	c.Events = append(c.Events, rangeEvent("comment", doc, r))
}

func (c *Collector) CData(doc string, r landmarks.Range) {
	c.Events = append(c.Events, rangeEvent("cdata", doc, r))
}

func (c *Collector) Processing(doc string, r landmarks.Range) {
	c.Events = append(c.Events, rangeEvent("processing", doc, r))
}

func (c *Collector) Declaration(doc string, r landmarks.Range) {
	c.Events = append(c.Events, rangeEvent("declaration", doc, r))
}

func (c *Collector) StartTagPrefix(doc string, p landmarks.TagPrefix) {
	c.Events = append(c.Events, Event{
		Type: "startTagPrefix",
		Pos:  int(p.All.Start),
		Len:  rangeLen(p.All),
		TagID: p.TagID.String(),
	})
}

func (c *Collector) StartTagAttribute(doc string, a landmarks.Attribute) {
	n := len(c.Events)
	if n == 0 {
		return
	}
	c.Events[n-1].Attrs = append(c.Events[n-1].Attrs, toAttrEvent(doc, a))
}

func (c *Collector) StartTag(doc string, tag landmarks.StartTag) {
	c.Events = append(c.Events, Event{
		Type:       "startTag",
		Pos:        int(tag.All.Start),
		Len:        rangeLen(tag.All),
		TagID:      tag.TagID.String(),
		SelfClosed: tag.IsSelfClosing(),
	})
}

func (c *Collector) EndTagPrefix(doc string, p landmarks.TagPrefix) {
	c.Events = append(c.Events, Event{
		Type:  "endTagPrefix",
		Pos:   int(p.All.Start),
		Len:   rangeLen(p.All),
		TagID: p.TagID.String(),
	})
}

func (c *Collector) EndTagAttribute(doc string, a landmarks.Attribute) {
	n := len(c.Events)
	if n == 0 {
		return
	}
	c.Events[n-1].Attrs = append(c.Events[n-1].Attrs, toAttrEvent(doc, a))
}

func (c *Collector) EndTag(doc string, tag landmarks.EndTag) {
	c.Events = append(c.Events, Event{
		Type:  "endTag",
		Pos:   int(tag.All.Start),
		Len:   rangeLen(tag.All),
		TagID: tag.TagID.String(),
		State: endTagStateName(tag.State),
	})
}

func (c *Collector) EndOfInput(doc string, openIDs []landmarks.TagID) {
	names := make([]string, len(openIDs))
	for i, id := range openIDs {
		names[i] = id.String()
	}
	c.Events = append(c.Events, Event{Type: "endOfInput", OpenAtEnd: names})
}

func toAttrEvent(doc string, a landmarks.Attribute) AttrEvent {
	return AttrEvent{
		Name:  a.Name.Text(doc),
		Value: a.Value.Text(doc),
		Pos:   int(a.All.Start),
		Len:   rangeLen(a.All),
	}
}

func endTagStateName(s landmarks.EndTagState) string {
	switch s {
	case landmarks.EndTagMatched:
		return "matched"
	case landmarks.EndTagAutoclosedByParent:
		return "autoclosedByParent"
	case landmarks.EndTagAutoclosedBySibling:
		return "autoclosedBySibling"
	case landmarks.EndTagAutoclosedByAncestor:
		return "autoclosedByAncestor"
	default:
		return "unmatched"
	}
}

var _ landmarks.Handler = (*Collector)(nil)
