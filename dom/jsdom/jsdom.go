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

//go:build js && wasm

// Package jsdom implements the dom interfaces for a browser page through
// syscall/js.
package jsdom // import "akhil.cc/wikiscope/dom/jsdom"

import (
	"fmt"
	"strings"
	"syscall/js"

	"akhil.cc/wikiscope/dom"
)

// Document wraps the page's document object.
type Document struct {
	v js.Value
}

// Global returns the page's document.
func Global() *Document {
	return &Document{v: js.Global().Get("document")}
}

func (d *Document) CreateElement(tag string, classes ...string) dom.Element {
	v := d.v.Call("createElement", tag)
	if len(classes) > 0 {
		v.Set("className", strings.Join(classes, " "))
	}
	return &Element{v: v}
}

func (d *Document) Body() dom.Element {
	return &Element{v: d.v.Get("body")}
}

// Element wraps a DOM element.
type Element struct {
	v       js.Value
	handler js.Func
}

func (e *Element) AppendElement(child dom.Element) {
	c, ok := child.(*Element)
	if !ok {
		panic(fmt.Sprintf("jsdom: cannot append %T", child))
	}
	e.v.Call("append", c.v)
}

func (e *Element) AppendText(text string) {
	e.v.Call("append", text)
}

func (e *Element) SetTextContent(text string) {
	e.v.Set("innerText", text)
}

func (e *Element) SetValue(v string) {
	e.v.Set("value", v)
}

func (e *Element) Value() string {
	return e.v.Get("value").String()
}

// OnInput installs handler as the element's oninput callback. The callback
// is never released; it lives as long as the page.
func (e *Element) OnInput(handler func()) {
	e.handler = js.FuncOf(func(js.Value, []js.Value) interface{} {
		handler()
		return nil
	})
	e.v.Set("oninput", e.handler)
}

func (e *Element) Focus() {
	e.v.Call("focus")
}

// History wraps the page's history object.
type History struct {
	v js.Value
}

// GlobalHistory returns the page's history.
func GlobalHistory() *History {
	return &History{v: js.Global().Get("history")}
}

func (h *History) State() (string, bool) {
	s := h.v.Get("state")
	if s.Type() != js.TypeString {
		return "", false
	}
	return s.String(), true
}

func (h *History) ReplaceState(state string, junk int) {
	h.v.Call("replaceState", state, junk)
}
