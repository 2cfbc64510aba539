package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsview/internal/markdown"
	"github.com/ziadkadry99/docsview/internal/progress"
	"github.com/ziadkadry99/docsview/internal/walker"
)

var (
	renderOut     string
	renderInclude []string
	renderExclude []string
)

var renderCmd = &cobra.Command{
	Use:   "render <file|dir>...",
	Short: "Render markdown files to HTML",
	Long: `Renders markdown with highlighted code blocks and copy buttons.
A single file without --out is written to stdout. Otherwise every input
is written under --out, mirroring the source tree with .html extensions.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		renderer, err := newRenderer(cfg, newLogger())
		if err != nil {
			return err
		}

		jobs, err := collectRenderJobs(args, renderInclude, renderExclude)
		if err != nil {
			return err
		}

		if renderOut == "" {
			if len(jobs) != 1 || len(args) != 1 {
				return fmt.Errorf("--out is required when rendering more than one file")
			}
			return renderTo(renderer, jobs[0].Path, cmd.OutOrStdout())
		}

		return renderAll(renderer, jobs, renderOut, progress.NewReporter("Rendering docs"))
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output directory")
	renderCmd.Flags().StringSliceVar(&renderInclude, "include", nil, "glob patterns of files to render")
	renderCmd.Flags().StringSliceVar(&renderExclude, "exclude", nil, "glob patterns of files to skip")
	rootCmd.AddCommand(renderCmd)
}

// collectRenderJobs expands directory arguments into their markdown files.
// File arguments are rendered as-is under their base name.
func collectRenderJobs(args, include, exclude []string) ([]walker.File, error) {
	var jobs []walker.File
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			jobs = append(jobs, walker.File{Path: arg, RelPath: filepath.Base(arg)})
			continue
		}
		files, err := walker.Markdown(arg, include, exclude)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, files...)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no markdown files found")
	}
	return jobs, nil
}

func renderTo(r markdown.DocumentRenderer, path string, w io.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := r.RenderDocument(string(src))
	if err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	_, err = io.WriteString(w, doc.HTML)
	return err
}

func renderAll(r markdown.DocumentRenderer, jobs []walker.File, outDir string, rep progress.Reporter) error {
	rep.Start(len(jobs))
	defer rep.Finish()

	for i, job := range jobs {
		target := filepath.Join(outDir, filepath.FromSlash(htmlName(job.RelPath)))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
		}
		f, err := os.Create(target)
		if err != nil {
			return fmt.Errorf("creating %s: %w", target, err)
		}
		err = renderTo(r, job.Path, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		rep.Update(i+1, job.RelPath)
	}
	return nil
}

// htmlName swaps a markdown extension for .html.
func htmlName(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
}
