package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	markup "github.com/goliatone/go-markup"
	"github.com/goliatone/go-markup/pkg/css"
	"github.com/goliatone/go-markup/pkg/document"
	"github.com/goliatone/go-markup/pkg/html"
	"github.com/goliatone/go-markup/pkg/scope"
	"github.com/goliatone/go-markup/pkg/sink"
)

// Style output modes.
const (
	modeRaw    = "raw"
	modeInner  = "inner"
	modeInline = "inline"
	modeModule = "module"
	modeFile   = "file"
)

var styleModes = []string{modeRaw, modeInner, modeInline, modeModule, modeFile}

func newRenderCmd(a *app) *cobra.Command {
	var contextFile, out string

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render an HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.LoadFile(args[0])
			if err != nil {
				return err
			}
			if doc.Kind != document.KindHTML {
				return fmt.Errorf("%s is a css document, use the style command", args[0])
			}
			ctx, err := a.context(contextFile)
			if err != nil {
				return err
			}

			engine := html.New(html.WithLogger(a.logger))
			component, err := doc.Component(engine)
			if err != nil {
				return err
			}

			if out != "" {
				path, err := engine.File(component, nil, ctx, out)
				if err != nil {
					return err
				}
				a.logger.Info().Str("path", path).Msg("document rendered")
				return nil
			}

			output, err := renderWith(engine.Render, component, ctx)
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVar(&contextFile, "context", "", "context file (.toml, .yaml, .yml or .json)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this path instead of stdout")
	return cmd
}

func newStyleCmd(a *app) *cobra.Command {
	var contextFile, out, mode string

	cmd := &cobra.Command{
		Use:   "style <document>",
		Short: "Render a CSS document",
		Long: `Render a *.css.yaml document.

Modes:
  raw     the rules as written
  inner   a <style> element
  inline  a style="..." attribute
  module  rules scoped under a generated class, printed as class name then <style>
  file    write the rules to --out (default <name>.css) and print a <link>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validMode(mode) {
				return fmt.Errorf("unknown mode %q (want one of %s)", mode, strings.Join(styleModes, ", "))
			}
			doc, err := document.LoadFile(args[0])
			if err != nil {
				return err
			}
			if doc.Kind != document.KindCSS {
				return fmt.Errorf("%s is an html document, use the render command", args[0])
			}
			ctx, err := a.context(contextFile)
			if err != nil {
				return err
			}

			engine := css.New(css.WithLogger(a.logger), css.WithClassNamer(a.cfg.ClassNamer()))
			component := document.CSSComponent(engine, doc.Decls)

			var output string
			switch mode {
			case modeInner:
				output, err = engine.Inner(component, nil, ctx)
			case modeInline:
				output, err = engine.Inline(component, nil, ctx)
			case modeModule:
				var result css.ModuleResult
				result, err = engine.Module(component, nil, ctx)
				output = result.ClassName + "\n" + result.Style
			case modeFile:
				path := out
				if path == "" {
					path = doc.Name + css.Extension
				}
				output, err = engine.FileLink(component, nil, ctx, path)
				if err == nil {
					a.logger.Info().Str("path", path).Msg("stylesheet written")
				}
				// the link always goes to stdout
				out = ""
			default:
				output, err = renderWith(engine.Render, component, ctx)
			}
			if err != nil {
				return err
			}

			if out != "" {
				if err := (sink.AtomicWriter{}).WriteFile(out, output); err != nil {
					return err
				}
				a.logger.Info().Str("path", out).Str("mode", mode).Msg("stylesheet rendered")
				return nil
			}
			return writeLine(cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVar(&contextFile, "context", "", "context file (.toml, .yaml, .yml or .json)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this path instead of stdout")
	cmd.Flags().StringVarP(&mode, "mode", "m", modeRaw, "output mode: "+strings.Join(styleModes, ", "))
	return cmd
}

func newBuildCmd(a *app) *cobra.Command {
	var contextFile, outDir string

	cmd := &cobra.Command{
		Use:   "build <dir>",
		Short: "Render every document under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := os.Stat(args[0])
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", args[0])
			}

			ctx, err := a.context(contextFile)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = a.cfg.OutDir
			}

			paths, err := markup.Build(cmd.Context(), markup.BuildRequest{
				Source:  os.DirFS(args[0]),
				Context: ctx,
				HTML:    html.New(html.WithLogger(a.logger)),
				CSS:     css.New(css.WithLogger(a.logger), css.WithClassNamer(a.cfg.ClassNamer())),
				OutDir:  outDir,
				Writer:  sink.AtomicWriter{},
				Logger:  a.logger,
			})
			for _, path := range paths {
				if werr := writeLine(cmd.OutOrStdout(), path); werr != nil {
					return werr
				}
			}
			if err != nil {
				return err
			}
			a.logger.Info().Int("documents", len(paths)).Str("out_dir", outDir).Msg("build complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&contextFile, "context", "", "context file (.toml, .yaml, .yml or .json)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "output directory (default from config, \"dist\")")
	return cmd
}

func renderWith(fn func(html.Component, scope.Props, ...scope.Context) (string, error), c html.Component, ctx scope.Context) (string, error) {
	if ctx == nil {
		return fn(c, nil)
	}
	return fn(c, nil, ctx)
}

func validMode(mode string) bool {
	for _, candidate := range styleModes {
		if mode == candidate {
			return true
		}
	}
	return false
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
