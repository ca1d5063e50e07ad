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

// Package html renders the inspection tree of wiki text as HTML.
//
// The tree is built in an in-memory document by package inspect and
// serialized with golang.org/x/net/html, either as a standalone page or as
// the bare result panel. Parser warnings are also written to standard
// error, one per line, as "start:end: message".
//
// The output can be piped through a filter command, whose command line is
// parsed according to the Bourne shell's word-splitting rules.
package html // import "akhil.cc/wikiscope/gen/html"

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"akhil.cc/wikiscope/dom"
	"akhil.cc/wikiscope/gen"
	"akhil.cc/wikiscope/inspect"
	"akhil.cc/wikiscope/logger"
	"akhil.cc/wikiscope/parser"
	"golang.org/x/net/html"
)

// DefaultTitle is the page title used when Generator.Title is empty.
const DefaultTitle = "wikiscope"

// Style is the stylesheet of a standalone page.
const Style = `.node { margin-left: 1em; border-left: 1px solid #ccc; padding-left: .5em; }
.name { font-weight: bold; }
.position { color: #888; }
.result { font-family: monospace; }
textarea { width: 100%; height: 10em; }
`

type syncWriter struct {
	m sync.Mutex
	w io.Writer
}

func (s *syncWriter) Write(p []byte) (n int, err error) {
	s.m.Lock()
	defer s.m.Unlock()
	n, err = s.w.Write(p)
	return
}

type stickyCountWriter struct {
	n   int64
	err error
	w   io.Writer
}

func (c *stickyCountWriter) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err = c.w.Write(p)
	c.err = err
	c.n += int64(n)
	return
}

// Generator represents a non-reusable HTML output generator for a piece of
// wiki text.
type Generator struct {
	// Stdout and Stderr specify the generator's standard output and standard error.
	//
	// HTML output will be written to standard out. Parser warnings and the
	// standard error of the filter command are written to standard error.
	//
	// If Stdout == Stderr, at most one goroutine at a time will call Write.
	Stdout io.Writer
	Stderr io.Writer

	// Fragment writes only the result panel instead of a whole page.
	Fragment bool
	// Title is the title of a standalone page.
	Title string
	// Filter, when set, is a command line the HTML is piped through
	// before it reaches Stdout.
	Filter string
	// Parser is the parser configuration. Nil means the defaults.
	Parser *parser.Configuration

	ctx      context.Context
	text     string
	waitdone chan error

	m     sync.Mutex
	pipes []io.Closer
}

// Gen returns the Generator struct to convert the given wiki text into
// HTML output.
//
// It sets only the text in the returned structure.
func Gen(text string) *Generator {
	return &Generator{ctx: context.TODO(), text: text}
}

// GenContext is like Gen but includes a context.
//
// The provided context is used both to halt HTML generation before and
// after rendering, and to kill the filter command.
func GenContext(ctx context.Context, text string) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, text: text}
}

// Start starts the generator but does not wait for it to complete.
func (g *Generator) Start() error {
	if g.Stdout == nil {
		g.Stdout = io.Discard
	}
	if g.Stderr == nil {
		g.Stderr = io.Discard
	}
	if g.Stdout == g.Stderr {
		g.Stdout = &syncWriter{w: g.Stdout}
		g.Stderr = g.Stdout
	}
	g.waitdone = make(chan error)
	go func() {
		err := g.gen()
		for _, p := range g.pipes {
			p.Close()
		}
		g.m.Lock()
		g.pipes = nil
		g.m.Unlock()
		g.waitdone <- err
	}()
	return nil
}

// Wait waits for the generator to complete and finish copying to
// Stdout and Stderr. It is an error to call Wait before Start
// has been called.
//
// Wait will release any resources associated with the generator.
func (g *Generator) Wait() error {
	if g.waitdone == nil {
		return fmt.Errorf("not started")
	}
	// prevent callers to Wait from a deadlock via not waiting for pipes to close
	g.m.Lock()
	if g.pipes != nil {
		g.m.Unlock()
		return fmt.Errorf("all reads from the pipe have not completed")
	}
	g.m.Unlock()
	err := <-g.waitdone
	close(g.waitdone)
	return err
}

// Run starts the generator and waits for it to complete, returning
// any errors encountered.
func (g *Generator) Run() error {
	if err := g.Start(); err != nil {
		return err
	}
	return g.Wait()
}

// StdoutPipe returns a pipe that is connected to the generator's
// standard output.
//
// It is invalid to call Wait until all reads from the pipe have completed.
// For the same reason, it is invalid to call Run when using StdoutPipe.
func (g *Generator) StdoutPipe() (io.Reader, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	pr, pw := io.Pipe()
	g.Stdout = pw
	g.pipes = append(g.pipes, pw)
	return pr, nil
}

// StderrPipe returns a pipe that is connected to the generator's
// standard error.
//
// It is invalid to call Wait until all reads from the pipe have completed.
// For the same reason, it is invalid to call Run when using StderrPipe.
func (g *Generator) StderrPipe() (io.Reader, error) {
	if g.Stderr != nil {
		return nil, fmt.Errorf("Stderr already set")
	}
	pr, pw := io.Pipe()
	g.Stderr = pw
	g.pipes = append(g.pipes, pw)
	return pr, nil
}

// Output runs the generator and returns its standard output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	var stdout bytes.Buffer
	g.Stdout = &stdout
	err := g.Run()
	return stdout.Bytes(), err
}

// CombinedOutput runs the generator and returns its combined
// standard output and standard error.
func (g *Generator) CombinedOutput() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	if g.Stderr != nil {
		return nil, fmt.Errorf("Stderr already set")
	}
	var b bytes.Buffer
	g.Stdout = &b
	g.Stderr = &b
	err := g.Run()
	return b.Bytes(), err
}

func (g *Generator) gen() error {
	if err := g.ctx.Err(); err != nil {
		return err
	}
	doc := dom.NewDocument()
	result := doc.CreateElement("div", inspect.ResultClass).(*dom.MemoryElement)
	out := inspect.Render(g.ctx, doc, g.Parser, g.text, result)
	for _, w := range out.Warnings {
		if _, err := fmt.Fprintln(g.Stderr, w); err != nil {
			return err
		}
	}
	if err := g.ctx.Err(); err != nil {
		return err
	}

	var page bytes.Buffer
	if g.Fragment {
		if err := html.Render(&page, result.Node()); err != nil {
			return err
		}
	} else {
		g.head(doc)
		doc.Body().AppendElement(result)
		if err := doc.Render(&page); err != nil {
			return err
		}
	}
	logger.FromContext(g.ctx).V(1).Info("generated", "bytes", page.Len(), "fragment", g.Fragment)

	cw := &stickyCountWriter{0, nil, g.Stdout}
	if g.Filter == "" {
		page.WriteTo(cw)
		return cw.err
	}
	c := &gen.Command{Line: g.Filter, Ctx: g.ctx, Stderr: g.Stderr}
	if err := c.Gen(&page, cw); err != nil {
		return err
	}
	return cw.err
}

func (g *Generator) head(doc *dom.MemoryDocument) {
	head := doc.Head()
	meta := doc.CreateElement("meta").(*dom.MemoryElement)
	meta.Node().Attr = append(meta.Node().Attr, html.Attribute{Key: "charset", Val: "utf-8"})
	head.AppendElement(meta)
	title := doc.CreateElement("title")
	if g.Title != "" {
		title.AppendText(g.Title)
	} else {
		title.AppendText(DefaultTitle)
	}
	head.AppendElement(title)
	style := doc.CreateElement("style")
	style.AppendText(Style)
	head.AppendElement(style)
}
