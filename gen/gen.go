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

// Package gen holds what the generators share.
package gen // import "akhil.cc/wikiscope/gen"

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	sq "github.com/kballard/go-shellquote"
)

// Command is a filter process that generator output is piped through.
type Command struct {
	// Line is the command line, split according to the Bourne shell's
	// word-splitting rules.
	Line   string
	Ctx    context.Context
	Stderr io.Writer
}

// Args returns the words of the command line.
func (c *Command) Args() ([]string, error) {
	words, err := sq.Split(c.Line)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("No valid commands: %q", c.Line)
	}
	return words, nil
}

// Gen runs the command with in as its standard input, waiting for it to
// finish writing its Stdout into w and Stderr into the command's Stderr.
// It returns any execution errors encountered during the process.
func (c *Command) Gen(in io.Reader, w io.Writer) error {
	words, err := c.Args()
	if err != nil {
		return err
	}
	var cmd *exec.Cmd
	if c.Ctx == nil {
		cmd = exec.Command(words[0], words[1:]...)
	} else {
		cmd = exec.CommandContext(c.Ctx, words[0], words[1:]...)
	}
	cmd.Stdin = in
	if w == nil && c.Stderr == nil {
		return fmt.Errorf("no output writer for command %q", c.Line)
	}
	if w != nil {
		cmd.Stdout = w
	}
	if c.Stderr != nil {
		cmd.Stderr = c.Stderr
	}
	return cmd.Run()
}
