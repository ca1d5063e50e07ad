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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"akhil.cc/wikiscope/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHTMLCmd(t *testing.T) {
	out, errs, err := run(t, "[[", "html", "--fragment")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<div class="result"><div class="node"><span class="name">Invalid link syntax.</span>`), out)
	assert.Equal(t, "0:2: Invalid link syntax.\n", errs)
}

func TestHTMLCmdFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wiki")
	outFile := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(in, []byte("== Hi =="), 0o644))
	_, _, err := run(t, "", "html", in, "-o", outFile, "--title", "Hi")
	require.NoError(t, err)
	b, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<title>Hi</title>")
	assert.Contains(t, string(b), `<span class="name">heading</span>`)
}

func TestHTMLCmdErrors(t *testing.T) {
	_, _, err := run(t, "", "html", filepath.Join(t.TempDir(), "missing.wiki"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "(HTML) "), err.Error())

	_, _, err = run(t, "", "html", "--timeout", "soon")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "(HTML) "), err.Error())
}

func TestTreeCmd(t *testing.T) {
	out, _, err := run(t, "* a\n* b\n", "tree")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ".\n"), out)
	assert.Contains(t, out, "unordered list 0:7")
	assert.Contains(t, out, `value: "b"`)
}

func TestConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: \"''x''\"\n"), 0o644))
	out, _, err := run(t, "", "--config", path, "config")
	require.NoError(t, err)
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "''x''", cfg.Seed)
	assert.Equal(t, 8, cfg.Live.InputHeight)

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "config")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "(config) "), err.Error())
}
