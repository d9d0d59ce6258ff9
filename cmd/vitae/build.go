package main

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"impractical.co/vitae"
	"impractical.co/vitae/content"
	"impractical.co/vitae/internal/config"
)

var watchChanges bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the CV to the output file",
	Long: `The build command loads the content file and stylesheets, renders the
page, and writes it to the output file. The output file is replaced
atomically, and only once the whole page has rendered; a failed build leaves
the previous output in place.

With --watch, the page is rebuilt whenever the content file, a stylesheet, or
the shell template changes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		site := newSite(appConfig)
		if err := build(ctx, appConfig, site); err != nil {
			if !watchChanges {
				return err
			}
			logFrom(ctx).ErrorContext(ctx, "initial build failed, waiting for changes", "error", err)
		}
		if !watchChanges {
			return nil
		}
		return watch(ctx, appConfig, site, func(ctx context.Context) error {
			return build(ctx, appConfig, site)
		})
	},
}

func init() {
	buildCmd.Flags().String("content", "", "content file to render (default is cv.yaml)")
	buildCmd.Flags().String("asset-dir", "", "directory stylesheets are read from (default is .)")
	buildCmd.Flags().StringSlice("stylesheet", nil, "stylesheet to embed, relative to the asset dir; may be repeated")
	buildCmd.Flags().StringP("output", "o", "", "file to write the page to (default is public/index.html)")
	buildCmd.Flags().String("title", "", "document title (default is the name in the content file)")
	buildCmd.Flags().String("source-url", "", "URL of the page's source, linked from the header")
	buildCmd.Flags().String("shell-dir", "", "directory holding a custom shell template")
	buildCmd.Flags().String("shell", "", "name of the shell template within the shell dir (default is shell.html.tmpl)")
	buildCmd.Flags().BoolVarP(&watchChanges, "watch", "w", false, "rebuild when inputs change")
	rootCmd.AddCommand(buildCmd)
}

// newSite returns the Site pages are rendered through: the configured shell
// directory, or the built-in shell, and the asset directory.
func newSite(cfg config.Config) *vitae.CachedSite {
	var shell fs.FS
	if cfg.ShellDir != "" {
		shell = os.DirFS(cfg.ShellDir)
	}
	return vitae.NewCachedSite(shell, os.DirFS(cfg.AssetDir))
}

// build runs one render pass and writes the result to cfg.Output.
func build(ctx context.Context, cfg config.Config, site *vitae.CachedSite) error {
	log := logFrom(ctx)

	rec, err := content.Load(cfg.Content)
	if err != nil {
		return err
	}
	css, err := vitae.Stylesheets(ctx, site, cfg.Stylesheets...)
	if err != nil {
		return err
	}

	page := vitae.CVPage{
		Content:    rec,
		Stylesheet: css,
		SourceURL:  cfg.SourceURL,
		Title:      cfg.Title,
		Shell:      shellTemplate(cfg),
	}
	var buf bytes.Buffer
	if err := vitae.Render(ctx, &buf, site, page); err != nil {
		return fmt.Errorf("error rendering %q: %w", cfg.Content, err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		return fmt.Errorf("error creating output directory for %q: %w", cfg.Output, err)
	}
	size := buf.Len()
	if err := atomic.WriteFile(cfg.Output, &buf); err != nil {
		return fmt.Errorf("error writing %q: %w", cfg.Output, err)
	}
	log.InfoContext(ctx, "built page", "content", cfg.Content, "output", cfg.Output, "bytes", size)
	return nil
}

// shellTemplate returns the shell template to execute: the configured one
// when there's a shell directory, the built-in one otherwise.
func shellTemplate(cfg config.Config) string {
	if cfg.ShellDir == "" {
		return vitae.DefaultShellTemplate
	}
	return cfg.Shell
}
