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

// Package conformance cross-checks the tokenizer's built-in policies
// against independent, unrelated parsing libraries already present in the
// wider example corpus: golang.org/x/net/html (a full HTML5 tree builder)
// for pkg/htmlpolicy, and github.com/beevik/etree for pkg/xmlpolicy. Both
// checks compare the element nesting order each library discovers against
// what a landmarks.Tokenizer reports for the same input — agreement here
// is evidence the tokenizer's simplified element-classification tables
// aren't silently diverging from how these documents are "really" parsed.
package conformance

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/callionica/landmarks/pkg/htmlpolicy"
	"github.com/callionica/landmarks/pkg/landmarks"
	"github.com/callionica/landmarks/pkg/xmlpolicy"
)

// tagRecorder collects the TagID of every StartTag event, in document
// order — the sequence a correct parser's pre-order element walk should
// reproduce too.
type tagRecorder struct {
	landmarks.BaseHandler
	tags []string
}

func (r *tagRecorder) StartTag(_ string, tag landmarks.StartTag) {
	r.tags = append(r.tags, tag.TagID.String())
}

func TestHTMLConformance_MatchesXNetHTMLElementOrder(t *testing.T) {
	src := `<div class="outer"><p>Hello <b>world</b>, <i>friend</i>.</p><ul><li>one<li>two</ul></div>`

	rec := &tagRecorder{}
	landmarks.New(src, htmlpolicy.Policy{}, rec).Parse()

	bodyContext := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), bodyContext)
	require.NoError(t, err)

	var want []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			want = append(want, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}

	if diff := cmp.Diff(want, rec.tags); diff != "" {
		t.Errorf("element order mismatch (-xnet/html +landmarks):\n%s", diff)
	}
}

// elemRecorder collects each start tag's TagID together with its attribute
// key/value pairs, in document order, so element shape (not just nesting)
// can be diffed against another library.
type elemRecorder struct {
	landmarks.BaseHandler
	elems []elemInfo
}

type elemInfo struct {
	Tag   string
	Attrs map[string]string
}

func (r *elemRecorder) StartTagPrefix(_ string, p landmarks.TagPrefix) {
	r.elems = append(r.elems, elemInfo{Tag: p.TagID.String(), Attrs: map[string]string{}})
}

func (r *elemRecorder) StartTagAttribute(doc string, a landmarks.Attribute) {
	if len(r.elems) == 0 {
		return
	}
	last := &r.elems[len(r.elems)-1]
	last.Attrs[a.Name.Text(doc)] = a.Value.Text(doc)
}

func TestXMLConformance_MatchesEtreeElementOrder(t *testing.T) {
	src := `<catalog><book id="1" lang="en"><title>Foo</title><author>Bar</author></book><book id="2"><title>Baz</title></book></catalog>`

	rec := &tagRecorder{}
	landmarks.New(src, xmlpolicy.Policy{}, rec).Parse()

	elems := &elemRecorder{}
	landmarks.New(src, xmlpolicy.Policy{}, elems).Parse()

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(src))

	var want []string
	var wantElems []elemInfo
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		want = append(want, e.Tag)
		attrs := map[string]string{}
		for _, a := range e.Attr {
			attrs[a.Key] = a.Value
		}
		wantElems = append(wantElems, elemInfo{Tag: e.Tag, Attrs: attrs})
		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	walk(doc.Root())

	require.Equal(t, want, rec.tags)
	require.Equal(t, wantElems, elems.elems)
}

func TestHTMLConformance_ParagraphClosedByBlockSibling(t *testing.T) {
	src := `<div><p>intro<div>nested</div></div>`

	rec := &tagRecorder{}
	landmarks.New(src, htmlpolicy.Policy{}, rec).Parse()

	bodyContext := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), bodyContext)
	require.NoError(t, err)

	var want []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			want = append(want, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}

	if diff := cmp.Diff(want, rec.tags); diff != "" {
		t.Errorf("element order mismatch (-xnet/html +landmarks):\n%s", diff)
	}
}

func TestHTMLConformance_VoidElementsDoNotNest(t *testing.T) {
	src := `<p>line one<br>line two</p>`

	rec := &tagRecorder{}
	landmarks.New(src, htmlpolicy.Policy{}, rec).Parse()

	bodyContext := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), bodyContext)
	require.NoError(t, err)

	var want []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			want = append(want, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}

	require.Equal(t, want, rec.tags)
}
