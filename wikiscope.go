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

// This CLI utility inspects wiki text: it parses the source and prints the
// syntax tree, either as an HTML page of nested boxes, as a text tree, or
// live in the terminal while the text is edited.
//
// Usage:
//   wikiscope [command]
//
// Available Commands:
//   config      Print the effective configuration
//   help        Help about any command
//   html        HTML inspection tree of a wiki text source file
//   live        Edit wiki text and watch its syntax tree
//   tree        Text inspection tree of a wiki text source file
//
// Flags:
//   -c, --config   configuration file
//       --debug    log at debug level
//   -h, --help     help for wikiscope
//
// Use "wikiscope [command] --help" for more information about a command.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"akhil.cc/wikiscope/config"
	"akhil.cc/wikiscope/dom"
	"akhil.cc/wikiscope/gen/html"
	"akhil.cc/wikiscope/gen/tree"
	"akhil.cc/wikiscope/logger"
	"akhil.cc/wikiscope/tui"
	"github.com/spf13/cobra"
)

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

type options struct {
	configFile string
	debug      bool
	cfg        config.Config
}

// readInput reads the file named by args, or the command's input.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	src := io.NopCloser(cmd.InOrStdin())
	if len(args) != 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		src = f
	}
	defer src.Close()
	b, err := io.ReadAll(src)
	return string(b), err
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "wikiscope",
		Short: "syntax tree inspector for wiki text",
		Long: `This CLI utility parses wiki text and shows its syntax tree:
every node with its kind, its source span and its attributes,
preceded by the warnings the parser emitted.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return prefix("(config) ", err)
			}
			opts.cfg = cfg
			level := cfg.LogLevel
			if opts.debug {
				level = -1
			}
			log := logger.WithValues(logger.Get(level), logger.CommandKey, cmd.Name())
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logger.WithLogger(ctx, log))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "``configuration file")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log at debug level")

	rootCmd.AddCommand(
		newHTMLCmd(opts),
		newTreeCmd(),
		newLiveCmd(opts),
		newConfigCmd(opts),
	)
	return rootCmd
}

func newHTMLCmd(opts *options) *cobra.Command {
	var outputfile, pipe, title string
	var timeout time.Duration
	var fragment bool
	prefixHTML := "(HTML) "
	htmlCmd := &cobra.Command{
		Use:   "html [input] [-o output]",
		Short: "HTML inspection tree of a wiki text source file",
		Long: `This command parses wiki text and writes its inspection tree as
HTML: one box per node holding its kind, its span and its attributes.
Parser warnings come first in the output and are also written to
standard error.

The output can be piped through a filter command, which is parsed
according to the Bourne shell's word-splitting rules.

If no input file is specified, input is read from
standard input. Similarly, if no output argument is
specified, output is written to standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return prefix(prefixHTML, err)
			}
			out := cmd.OutOrStdout()
			if len(outputfile) != 0 {
				f, err := os.Create(outputfile)
				if err != nil {
					return prefix(prefixHTML, err)
				}
				defer f.Close()
				out = f
			}
			ctx := cmd.Context()
			if timeout > -1 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			g := html.GenContext(ctx, text)
			g.Stdout = out
			g.Stderr = cmd.ErrOrStderr()
			g.Fragment = fragment
			g.Title = title
			g.Filter = pipe
			if err := g.Run(); err != nil {
				return prefix(prefixHTML, err)
			}
			return nil
		},
	}
	htmlCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(prefixHTML, err)
		}
		return nil
	})
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	htmlCmd.Flags().StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	htmlCmd.Flags().DurationVarP(&timeout, "timeout", "t", -1, "``timeout used to halt the generator and its filter command")
	// Set string version of default value to be zero-value to prevent it from being printed by FlagUsages.
	htmlCmd.Flags().Lookup("timeout").DefValue = "0"
	htmlCmd.Flags().StringVar(&pipe, "pipe", "", "``filter command the HTML is piped through")
	htmlCmd.Flags().StringVar(&title, "title", "", "``page title")
	htmlCmd.Flags().BoolVar(&fragment, "fragment", false, "write only the result panel")
	return htmlCmd
}

func newTreeCmd() *cobra.Command {
	prefixTree := "(tree) "
	return &cobra.Command{
		Use:   "tree [input]",
		Short: "Text inspection tree of a wiki text source file",
		Long: `This command parses wiki text and prints its inspection tree as an
indented text tree.

If no input file is specified, input is read from standard input.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return prefix(prefixTree, err)
			}
			if _, err := io.WriteString(cmd.OutOrStdout(), tree.Gen(cmd.Context(), nil, text)); err != nil {
				return prefix(prefixTree, err)
			}
			return nil
		},
	}
}

func newLiveCmd(opts *options) *cobra.Command {
	var stateFile string
	prefixLive := "(live) "
	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "Edit wiki text and watch its syntax tree",
		Long: `This command opens an editor in the terminal with the inspection tree
below it. The tree is rebuilt on every edit, and the text is saved to a
state file so the next session starts where this one ended.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfg.StatePath()
			if stateFile != "" {
				path = stateFile
			}
			history := &dom.FileHistory{Path: path}
			err := tui.Run(cmd.Context(), history, tui.Options{
				Seed:        opts.cfg.Seed,
				Width:       opts.cfg.Live.Width,
				InputHeight: opts.cfg.Live.InputHeight,
			})
			if err != nil {
				return prefix(prefixLive, err)
			}
			if err := history.Err(); err != nil {
				return prefix(prefixLive, err)
			}
			return nil
		},
	}
	liveCmd.Flags().StringVar(&stateFile, "state", "", "``state file, overriding the configuration")
	return liveCmd
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.cfg.Marshal()
			if err != nil {
				return prefix("(config) ", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
