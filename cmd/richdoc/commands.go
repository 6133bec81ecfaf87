// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/richdoc/base/errors"
	"cogentcore.org/richdoc/text/format"
	"cogentcore.org/richdoc/text/htmltext"
	"cogentcore.org/richdoc/text/textpos"
	strip "github.com/grokify/html-strip-tags-go"
	"github.com/spf13/cobra"
)

func (a *app) fmtCmd() *cobra.Command {
	var diff, write, watch bool
	cmd := &cobra.Command{
		Use:   "fmt [files]",
		Short: "Write documents in canonical HTML",
		Long: `Fmt reads each HTML document and writes it back in canonical form.
With no files, it reads standard input and writes standard output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				name, src, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				return a.format(cmd, name, src, diff, false)
			}
			run := func(file string) error {
				src, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				return a.format(cmd, file, src, diff, write)
			}
			var errs []error
			for _, file := range args {
				errs = append(errs, run(file))
			}
			if err := errors.Join(errs...); err != nil || !watch {
				return err
			}
			return a.watch(cmd.Context(), args, run)
		},
	}
	cmd.Flags().BoolVarP(&diff, "diff", "d", false, "print a unified diff of the changes instead of the result")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file instead of printing it")
	cmd.Flags().BoolVar(&watch, "watch", false, "format the files again whenever they change")
	return cmd
}

// format formats one document, and prints the result or its diff,
// or writes it back to the file when it has changed.
func (a *app) format(cmd *cobra.Command, name string, src []byte, diff, write bool) error {
	b, err := htmltext.ParseHTML(bytes.NewReader(src), &a.cfg.Parse)
	if err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	out, err := htmltext.ToHTML(b, &a.cfg.HTML)
	if err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	out += "\n"
	switch {
	case diff:
		d, err := unifiedDiff(name, string(src), out)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), d)
	case write:
		if out == string(src) {
			return nil
		}
		slog.Info("richdoc: formatted", "file", name)
		return os.WriteFile(name, []byte(out), 0666)
	default:
		fmt.Fprint(cmd.OutOrStdout(), out)
	}
	return nil
}

func (a *app) toggleCmd() *cobra.Command {
	var kind string
	var start, end int
	var attrs map[string]string
	var clearBlock, word bool
	cmd := &cobra.Command{
		Use:   "toggle [file]",
		Short: "Toggle a format over a range of the text of a document",
		Long: `Toggle applies a format action to the document and prints the result.
The range is in characters of the plain text, from --start up to but not including --end.
Marker kinds (more, page, horizontal-rule) replace the range.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parse(cmd, args)
			if err != nil {
				return err
			}
			if end < 0 {
				end = start
			}
			r := textpos.R(start, end)
			if word && r.IsEmpty() {
				r = textpos.WordAt(b.Text, start)
			}
			if clearBlock {
				b, err = a.cfg.Formatting.ClearBlock(b, r)
			} else {
				var k format.Kind
				k, err = format.ParseKind(kind)
				if err != nil {
					return err
				}
				b, err = a.cfg.Formatting.Toggle(b, r, k, attrs)
			}
			if err != nil {
				return err
			}
			return a.print(cmd, b)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "bold", "the format kind, such as bold, link, quote, ordered-list or more")
	cmd.Flags().IntVarP(&start, "start", "s", 0, "the start of the range")
	cmd.Flags().IntVarP(&end, "end", "e", -1, "the end of the range (default start, for a caret)")
	cmd.Flags().StringToStringVarP(&attrs, "attr", "a", nil, "attributes of the format, such as href=https://example.com")
	cmd.Flags().BoolVarP(&word, "word", "W", false, "apply to the word at the caret when the range is empty")
	cmd.Flags().BoolVar(&clearBlock, "clear", false, "remove the block format of the lines in the range instead")
	return cmd
}

func (a *app) mdCmd() *cobra.Command {
	var godoc string
	cmd := &cobra.Command{
		Use:   "md [file]",
		Short: "Convert markdown to canonical HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var wikilinks []htmltext.WikilinkHandler
			if godoc != "" {
				wikilinks = append(wikilinks, htmltext.GoDocWikilink(godoc, "doc"))
			}
			b, err := htmltext.ParseMarkdown(src, &a.cfg.Parse, wikilinks...)
			if err != nil {
				return errors.Wrapf(err, "%s", name)
			}
			return a.print(cmd, b)
		},
	}
	cmd.Flags().StringVar(&godoc, "godoc", "", "module path for [[doc:pkg.Name]] wikilinks to pkg.go.dev")
	return cmd
}

func (a *app) textCmd() *cobra.Command {
	var loose bool
	cmd := &cobra.Command{
		Use:   "text [file]",
		Short: "Print the plain text of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			b, err := htmltext.ParseHTML(bytes.NewReader(src), &a.cfg.Parse)
			if err != nil {
				if !loose {
					return errors.Wrapf(err, "%s", name)
				}
				slog.Warn("richdoc: stripping tags", "file", name, "err", err)
				fmt.Fprintln(cmd.OutOrStdout(), strip.StripTags(string(src)))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&loose, "loose", false, "strip the tags of documents that cannot be read")
	return cmd
}

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the text and spans of a document, for debugging",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parse(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), b.Dump())
			return nil
		},
	}
}
