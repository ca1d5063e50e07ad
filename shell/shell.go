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

// Package shell wires an input area to a result panel: every edit is saved
// to the page history and re-rendered as an inspection tree.
package shell // import "akhil.cc/wikiscope/shell"

import (
	"context"

	"akhil.cc/wikiscope/ast"
	"akhil.cc/wikiscope/dom"
	"akhil.cc/wikiscope/inspect"
	"akhil.cc/wikiscope/logger"
	"akhil.cc/wikiscope/parser"
)

// DefaultSeed is the input shown when the history holds no state.
const DefaultSeed = "Hello, [[World]]!"

// A Shell is a running input area and result panel.
type Shell struct {
	ctx     context.Context
	doc     dom.Document
	history dom.History
	cfg     *parser.Configuration
	seed    string

	input   dom.Element
	result  dom.Element
	output  *ast.Output
	renders int
}

// An Option configures a Shell before it starts.
type Option func(*Shell)

// WithParser parses input with cfg instead of the default configuration.
func WithParser(cfg *parser.Configuration) Option {
	return func(s *Shell) { s.cfg = cfg }
}

// WithSeed replaces DefaultSeed.
func WithSeed(seed string) Option {
	return func(s *Shell) { s.seed = seed }
}

// Start creates the input and result panel, seeds the input from history,
// renders it, attaches both to the body, starts listening for input and
// focuses the input.
//
// The input handler is never removed; it lives as long as doc.
func Start(ctx context.Context, doc dom.Document, history dom.History, opts ...Option) *Shell {
	s := &Shell{
		ctx:     ctx,
		doc:     doc,
		history: history,
		seed:    DefaultSeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	log := logger.FromContext(ctx)

	s.input = doc.CreateElement("textarea")
	s.result = doc.CreateElement("div", inspect.ResultClass)

	text, ok := history.State()
	if !ok {
		text = s.seed
	}
	log.V(1).Info("start", "restored", ok, "bytes", len(text))
	s.input.SetValue(text)
	s.render(text)

	body := doc.Body()
	body.AppendElement(s.input)
	body.AppendElement(s.result)

	s.input.OnInput(func() {
		v := s.input.Value()
		s.history.ReplaceState(v, 0)
		s.render(v)
	})
	s.input.Focus()
	return s
}

func (s *Shell) render(text string) {
	s.output = inspect.Render(s.ctx, s.doc, s.cfg, text, s.result)
	s.renders++
}

// Input returns the input area.
func (s *Shell) Input() dom.Element { return s.input }

// Result returns the result panel.
func (s *Shell) Result() dom.Element { return s.result }

// Output returns the parse of the last render.
func (s *Shell) Output() *ast.Output { return s.output }

// Renders returns the number of renders so far.
func (s *Shell) Renders() int { return s.renders }
