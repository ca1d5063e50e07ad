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

// Package dom is a small façade over a document object model. The
// inspector only creates elements, appends element and text children,
// replaces text content, reads and writes an input's value, listens for
// input events and moves focus.
//
// Two implementations exist: an in-memory document built on
// golang.org/x/net/html (this package), and a browser document reached
// through syscall/js (package jsdom).
package dom // import "akhil.cc/wikiscope/dom"

// Element is an element of a document.
type Element interface {
	// AppendElement appends child as the last child, detaching it from
	// any previous parent.
	AppendElement(child Element)
	// AppendText appends a text node holding text.
	AppendText(text string)
	// SetTextContent replaces all children with plain text. Markup in
	// text is not interpreted.
	SetTextContent(text string)
	SetValue(v string)
	Value() string
	// OnInput replaces the element's input event handler.
	OnInput(handler func())
	Focus()
}

// Document creates elements and exposes the page body.
type Document interface {
	// CreateElement returns a new element with the given tag. When
	// classes are given they are joined with spaces into its class name.
	CreateElement(tag string, classes ...string) Element
	Body() Element
}

// History is the per-page state that survives reloads.
type History interface {
	// State reports the current state, and false when there is none or
	// it is not a string.
	State() (string, bool)
	// ReplaceState overwrites the current state. junk mirrors the unused
	// title argument of the browser API.
	ReplaceState(state string, junk int)
}
