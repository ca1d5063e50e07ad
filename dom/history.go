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

package dom

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MemoryHistory is a History held in memory. The zero value has no state.
type MemoryHistory struct {
	state    string
	set      bool
	replaced int
}

// NewMemoryHistory returns a history whose state is already set.
func NewMemoryHistory(state string) *MemoryHistory {
	return &MemoryHistory{state: state, set: true}
}

func (h *MemoryHistory) State() (string, bool) { return h.state, h.set }

func (h *MemoryHistory) ReplaceState(state string, _ int) {
	h.state, h.set = state, true
	h.replaced++
}

// Replaced returns the number of ReplaceState calls.
func (h *MemoryHistory) Replaced() int { return h.replaced }

// FileHistory is a History persisted to a YAML file, so a terminal session
// can pick up where the last one left off.
type FileHistory struct {
	Path string
	err  error
}

type stateFile struct {
	State *string `yaml:"state"`
}

// State reads the file. A missing, unreadable or malformed file reports
// no state.
func (h *FileHistory) State() (string, bool) {
	data, err := os.ReadFile(h.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.err = err
		}
		return "", false
	}
	var f stateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		h.err = fmt.Errorf("decode state file: %w", err)
		return "", false
	}
	if f.State == nil {
		return "", false
	}
	return *f.State, true
}

// ReplaceState overwrites the file. Failures are kept for Err.
func (h *FileHistory) ReplaceState(state string, _ int) {
	data, err := yaml.Marshal(stateFile{State: &state})
	if err != nil {
		h.err = fmt.Errorf("encode state file: %w", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(h.Path), 0o755); err != nil {
		h.err = err
		return
	}
	if err := os.WriteFile(h.Path, data, 0o600); err != nil {
		h.err = err
		return
	}
	h.err = nil
}

// Err returns the error of the last failed read or write, if any.
func (h *FileHistory) Err() error { return h.err }
