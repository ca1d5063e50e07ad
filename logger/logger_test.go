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

package logger

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})
	ctx := WithLogger(context.Background(), &log)
	assert.Same(t, &log, FromContext(ctx))
	assert.Equal(t, ctx, WithLogger(ctx, &log))

	FromContext(ctx).Info("render", "nodes", 3)
	WithValues(FromContext(ctx), CommandKey, "tree").Info("done")
	assert.Equal(t, []string{
		`"level"=0 "msg"="render" "nodes"=3`,
		`"level"=0 "msg"="done" "command"="tree"`,
	}, lines)
}

func TestFromContextFallback(t *testing.T) {
	l := FromContext(nil)
	if globalLogrLogger == nil {
		assert.Equal(t, logr.Discard(), *l)
	}
	assert.NotNil(t, FromContext(context.Background()))
}

func TestIgnorableSyncError(t *testing.T) {
	assert.True(t, isIgnorableSyncError(fmt.Errorf("sync /dev/stderr: %w", syscall.ENOTTY)))
	assert.True(t, isIgnorableSyncError(syscall.EINVAL))
	assert.True(t, isIgnorableSyncError(errors.New("sync: The handle is invalid.")))
	assert.False(t, isIgnorableSyncError(errors.New("disk full")))
}
