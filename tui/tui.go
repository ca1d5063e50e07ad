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

// Package tui runs the inspector in a terminal. The input area sits above
// a scrollable inspection tree that is rebuilt on every edit, and the text
// is saved to the history so the next session starts where this one ended.
package tui // import "akhil.cc/wikiscope/tui"

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"akhil.cc/wikiscope/dom"
	"akhil.cc/wikiscope/gen/tree"
	"akhil.cc/wikiscope/logger"
	"akhil.cc/wikiscope/parser"
	"akhil.cc/wikiscope/shell"
)

// Options configures a Model.
type Options struct {
	// Seed is shown when the history holds no state.
	Seed string
	// Parser is the parser configuration. Nil means the defaults.
	Parser *parser.Configuration
	// Width and InputHeight size the layout until the terminal reports
	// its size.
	Width       int
	InputHeight int
}

type errorer interface {
	Err() error
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the Bubble Tea model of the live loop. It drives a shell over
// an in-memory document: edits in the textarea are dispatched as input
// events on the shell's input element.
type Model struct {
	ctx     context.Context
	history dom.History
	shell   *shell.Shell

	input textarea.Model
	tree  viewport.Model

	width       int
	height      int
	inputHeight int
	quitting    bool
}

// New starts a shell against history and returns a model showing it.
func New(ctx context.Context, history dom.History, opts Options) *Model {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.InputHeight <= 0 {
		opts.InputHeight = 8
	}
	shellOpts := []shell.Option{shell.WithParser(opts.Parser)}
	if opts.Seed != "" {
		shellOpts = append(shellOpts, shell.WithSeed(opts.Seed))
	}
	s := shell.Start(ctx, dom.NewDocument(), history, shellOpts...)

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = shell.DefaultSeed
	ta.SetWidth(opts.Width)
	ta.SetHeight(opts.InputHeight)
	ta.SetValue(s.Input().Value())
	ta.Focus()

	m := &Model{
		ctx:         ctx,
		history:     history,
		shell:       s,
		input:       ta,
		tree:        viewport.New(viewport.WithWidth(opts.Width), viewport.WithHeight(24)),
		width:       opts.Width,
		height:      opts.InputHeight + 24 + 3,
		inputHeight: opts.InputHeight,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "pgup", "pgdown", "ctrl+up", "ctrl+down":
			var cmd tea.Cmd
			m.tree, cmd = m.tree.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.shell.Input().Value() {
		m.shell.Input().(*dom.MemoryElement).DispatchInput(v)
		m.refresh()
		logger.FromContext(m.ctx).V(1).Info("edit", "bytes", len(v), "renders", m.shell.Renders())
	}
	return m, cmd
}

// refresh shows the current result panel in the viewport.
func (m *Model) refresh() {
	result := m.shell.Result().(*dom.MemoryElement)
	m.tree.SetContent(strings.TrimRight(tree.String(result.Node()), "\n"))
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.input.SetWidth(width)
	m.tree.SetWidth(width)
	// title, status and rule lines
	h := height - m.inputHeight - 3
	if h < 1 {
		h = 1
	}
	m.tree.SetHeight(h)
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("wikiscope"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.status()))
	if e, ok := m.history.(errorer); ok && e.Err() != nil {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(e.Err().Error()))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(m.tree.View())

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}

func (m *Model) status() string {
	out := m.shell.Output()
	return fmt.Sprintf("%d nodes, %d warnings, esc to quit", len(out.Nodes), len(out.Warnings))
}

// Text returns the current input.
func (m *Model) Text() string { return m.shell.Input().Value() }

// Tree returns the current inspection tree as printed in the viewport.
func (m *Model) Tree() string {
	return tree.String(m.shell.Result().(*dom.MemoryElement).Node())
}

// Run runs the live loop until the user quits or ctx is done.
func Run(ctx context.Context, history dom.History, opts Options, progOpts ...tea.ProgramOption) error {
	m := New(ctx, history, opts)
	progOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)
	prog := tea.NewProgram(m, progOpts...)
	_, err := prog.Run()
	return err
}
