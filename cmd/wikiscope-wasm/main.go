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

// Command wikiscope-wasm is the browser build of the inspector. Loaded
// into a page, it adds an input area and a result panel to the body and
// re-renders the syntax tree of the input on every edit. The input is kept
// in the page history state, so a reload restores it.
//
//	GOOS=js GOARCH=wasm go build -o wikiscope.wasm ./cmd/wikiscope-wasm
package main

import (
	"context"

	"akhil.cc/wikiscope/dom/jsdom"
	"akhil.cc/wikiscope/logger"
	"akhil.cc/wikiscope/shell"
	"github.com/go-logr/logr"
)

func main() {
	log := logr.Discard()
	ctx := logger.WithLogger(context.Background(), &log)
	shell.Start(ctx, jsdom.Global(), jsdom.GlobalHistory())
	// the input handler runs on the JS event loop
	select {}
}
