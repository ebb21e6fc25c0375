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

func TestNewRange_PanicsOnInvertedBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewRange(5, 2) to panic")
		}
	}()
	NewRange(5, 2)
}

func TestNewRange_AllowsIncompleteBounds(t *testing.T) {
	r := NewRange(5, NPOS)
	if r.Start != 5 || r.End != NPOS {
		t.Fatalf("got %+v", r)
	}
}

func TestRange_IsComplete(t *testing.T) {
	if NewRange(0, 3).IsComplete() != true {
		t.Error("want complete")
	}
	if NewRange(0, NPOS).IsComplete() != false {
		t.Error("want incomplete")
	}
}

func TestRange_IsEmpty(t *testing.T) {
	cases := []struct {
		r    Range
		want bool
	}{
		{NewRange(3, 3), true},
		{NewRange(3, 4), false},
		{NewRange(NPOS, NPOS), true},
	}
	for _, c := range cases {
		if got := c.r.IsEmpty(); got != c.want {
			t.Errorf("%+v.IsEmpty() = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestRange_Text(t *testing.T) {
	src := "hello world"
	if got := NewRange(0, 5).Text(src); got != "hello" {
		t.Errorf("got %q", got)
	}
	if got := NewRange(6, NPOS).Text(src); got != "world" {
		t.Errorf("got %q", got)
	}
	// Stale/out-of-range bounds clamp instead of panicking.
	if got := NewRange(6, 999).Text("xx"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRange_DecodedText_StripsCDATAFences(t *testing.T) {
	src := "<![CDATA[a&b]]>"
	r := NewRange(0, Position(len(src)))
	got := r.DecodedText(src, true, func(s string) string {
		t.Fatal("decode must not be called for CDATA")
		return s
	})
	if got != "a&b" {
		t.Errorf("got %q", got)
	}
}

func TestRange_DecodedText_AppliesDecodeForNonCDATA(t *testing.T) {
	src := "a&amp;b"
	r := NewRange(0, Position(len(src)))
	got := r.DecodedText(src, false, func(s string) string { return "DECODED:" + s })
	if got != "DECODED:a&amp;b" {
		t.Errorf("got %q", got)
	}
}

func TestQualifiedName(t *testing.T) {
	cases := []struct {
		in, prefix, local string
	}{
		{"div", "", "div"},
		{"xlink:href", "xlink", "href"},
		{":weird", "", "weird"},
	}
	for _, c := range cases {
		prefix, local := QualifiedName(c.in)
		if prefix != c.prefix || local != c.local {
			t.Errorf("QualifiedName(%q) = (%q, %q), want (%q, %q)", c.in, prefix, local, c.prefix, c.local)
		}
	}
}
