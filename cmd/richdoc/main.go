// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command richdoc reads, formats and edits rich text documents
// stored as HTML.
package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/signal"

	"cogentcore.org/richdoc/base/errors"
	"cogentcore.org/richdoc/base/logx"
	"cogentcore.org/richdoc/config"
	"cogentcore.org/richdoc/text/htmltext"
	"cogentcore.org/richdoc/text/spans"
	"github.com/spf13/cobra"
)

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := errors.Log(newRootCmd().ExecuteContext(ctx)); err != nil {
		stop()
		os.Exit(1)
	}
}

// app holds the configuration and flag values shared by the commands.
type app struct {
	cfg *config.Config

	// file is the config file given with --config.
	file string

	// flags are the config values given on the command line,
	// which override those in the config file.
	flags config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}
	root := &cobra.Command{
		Use:           "richdoc",
		Short:         "Read, format and edit rich text HTML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "config", "c", "", "config file, in TOML (.toml) or YAML (.yaml) format")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "print informational messages")
	pf.BoolVar(&a.flags.VeryVerbose, "vv", false, "print debug messages")
	pf.BoolVarP(&a.flags.Quiet, "quiet", "q", false, "print only errors")
	pf.StringVar(&a.flags.Parse.Charset, "charset", "", "character encoding of the input, such as windows-1252")
	pf.BoolVar(&a.flags.Parse.Normalize, "nfc", false, "convert the input text to Unicode normalization form C")
	pf.StringVar(&a.flags.HTML.StrikeTag, "strike-tag", "", "element written for strikethrough: del, strike or s")
	pf.BoolVar(&a.flags.HTML.XHTML, "xhtml", false, "write void elements in self-closing form")
	root.AddCommand(a.fmtCmd(), a.toggleCmd(), a.mdCmd(), a.textCmd(), a.dumpCmd())
	return root
}

// setup opens the config file and applies the flags over it.
func (a *app) setup() error {
	if a.file != "" {
		cfg, err := config.Open(a.file)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if err := a.cfg.Merge(&a.flags); err != nil {
		return err
	}
	logx.UserLevel = a.cfg.LogLevel()
	return nil
}

// readInput returns the name and contents of the file given by the
// first argument, or of standard input if there is none or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return "<stdin>", b, err
	}
	b, err := os.ReadFile(args[0])
	return args[0], b, err
}

// parse reads the HTML document given by the arguments.
func (a *app) parse(cmd *cobra.Command, args []string) (*spans.Buffer, error) {
	name, src, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	b, err := htmltext.ParseHTML(bytes.NewReader(src), &a.cfg.Parse)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	return b, nil
}
