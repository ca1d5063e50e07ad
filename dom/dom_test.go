// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package dom_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"akhil.cc/wikiscope/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDocument(t *testing.T) {
	doc := dom.NewDocument()
	box := doc.CreateElement("div", "node")
	name := doc.CreateElement("span", "name")
	name.AppendText("a < b")
	box.AppendElement(name)
	box.AppendText(" tail")
	doc.Body().AppendElement(box)

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Equal(t,
		`<!DOCTYPE html><html><head></head><body><div class="node"><span class="name">a &lt; b</span> tail</div></body></html>`,
		buf.String())

	body := doc.Body().(*dom.MemoryElement)
	require.Len(t, body.Children(), 1)
	got := body.Children()[0]
	assert.Same(t, box, got)
	assert.Equal(t, "div", got.Tag())
	assert.Equal(t, "node", got.ClassName())
	assert.Equal(t, 2, got.ChildCount())
	assert.Equal(t, "a < b tail", got.TextContent())
}

func TestSetTextContent(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("div").(*dom.MemoryElement)
	el.AppendElement(doc.CreateElement("span"))
	el.AppendText("x")
	el.SetTextContent("")
	assert.Equal(t, 0, el.ChildCount())
	el.SetTextContent("<b>")
	assert.Equal(t, "<div>&lt;b&gt;</div>", el.OuterHTML())
}

func TestAppendMoves(t *testing.T) {
	doc := dom.NewDocument()
	a := doc.CreateElement("div").(*dom.MemoryElement)
	b := doc.CreateElement("div").(*dom.MemoryElement)
	c := doc.CreateElement("span")
	a.AppendElement(c)
	b.AppendElement(c)
	assert.Equal(t, 0, a.ChildCount())
	assert.Equal(t, 1, b.ChildCount())
}

func TestAppendForeign(t *testing.T) {
	a, b := dom.NewDocument(), dom.NewDocument()
	assert.Panics(t, func() {
		a.Body().AppendElement(b.CreateElement("div"))
	})
}

func TestInput(t *testing.T) {
	doc := dom.NewDocument()
	in := doc.CreateElement("textarea").(*dom.MemoryElement)
	var seen []string
	in.OnInput(func() { seen = append(seen, in.Value()) })
	in.DispatchInput("a")
	in.DispatchInput("ab")
	assert.Equal(t, []string{"a", "ab"}, seen)
	assert.Nil(t, doc.Focused())
	in.Focus()
	assert.Same(t, in, doc.Focused())
	// values are properties, not markup
	assert.Equal(t, "<textarea></textarea>", in.OuterHTML())
}

func TestMemoryHistory(t *testing.T) {
	var h dom.MemoryHistory
	_, ok := h.State()
	assert.False(t, ok)
	h.ReplaceState("foo", 0)
	s, ok := h.State()
	assert.True(t, ok)
	assert.Equal(t, "foo", s)
	assert.Equal(t, 1, h.Replaced())

	s, ok = dom.NewMemoryHistory("").State()
	assert.True(t, ok)
	assert.Equal(t, "", s)
}

func TestFileHistory(t *testing.T) {
	h := &dom.FileHistory{Path: filepath.Join(t.TempDir(), "state", "wikiscope.yaml")}
	_, ok := h.State()
	assert.False(t, ok)
	assert.NoError(t, h.Err())

	h.ReplaceState("== a ==\n'' b", 0)
	require.NoError(t, h.Err())
	s, ok := (&dom.FileHistory{Path: h.Path}).State()
	assert.True(t, ok)
	assert.Equal(t, "== a ==\n'' b", s)
}

func TestFileHistoryMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("state: [1, 2"), 0o600))
	h := &dom.FileHistory{Path: path}
	_, ok := h.State()
	assert.False(t, ok)
	assert.Error(t, h.Err())

	require.NoError(t, os.WriteFile(path, []byte("other: 1\n"), 0o600))
	h = &dom.FileHistory{Path: path}
	_, ok = h.State()
	assert.False(t, ok)
	assert.NoError(t, h.Err())
}
