package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/yacobolo/severed/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract css`…` sites and rewrite source files in place",
	Long: `Run the severed extraction pipeline over a directory tree: every css`+"`"+`…`+"`"+`
site is replaced with a generated class-name constant, the source file is
rewritten with a CSS import prepended. With --write-css-files the
extracted CSS is written next to it; otherwise the import names a virtual
id and no CSS file is written.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.String("root", ".", "Root directory to scan")
	f.StringSlice("include", nil, "Glob patterns for source files to include")
	f.StringSlice("exclude", nil, "Glob patterns for source files to exclude")
	f.Bool("write-css-files", false, "Push mode: write a .severed.css asset per file instead of a pull-mode virtual import")
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg := buildRunConfig("extract")

	mode := ModePullLocal
	if cfg.WriteCSSFiles {
		mode = ModePushLocal
	}

	files, err := expandSourceFiles(cfg.Root, cfg.Include, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("scanning source files: %w", err)
	}

	report := &extract.Report{}
	var issues []issue
	ctx := context.Background()

	for _, path := range files {
		start := time.Now()
		src, readErr := os.ReadFile(path)
		if readErr != nil {
			issues = append(issues, issueFor(path, readErr))
			report.Add(extract.FileReport{ID: path, Err: readErr, Duration: time.Since(start)})
			continue
		}

		result, transformErr := runOneFile(ctx, mode, path, string(src), cfg)
		dur := time.Since(start)
		if transformErr != nil {
			issues = append(issues, issueFor(path, transformErr))
			report.Add(extract.FileReport{ID: path, Err: transformErr, Duration: dur})
			continue
		}
		if result == nil {
			report.Add(extract.FileReport{ID: path, Duration: dur})
			continue
		}

		var staticN, dynamicN int
		if result.Dynamic {
			dynamicN = result.SiteCount
		} else {
			staticN = result.SiteCount
		}
		report.Add(extract.FileReport{ID: path, StaticSites: staticN, DynamicSites: dynamicN, Duration: dur})

		if writeErr := os.WriteFile(path, []byte(result.Code), 0644); writeErr != nil {
			issues = append(issues, issueFor(path, writeErr))
			continue
		}
		if cfg.WriteCSSFiles {
			cssPath := filepath.Join(filepath.Dir(path), pushAssetBasename(path))
			if writeErr := os.WriteFile(cssPath, []byte(result.CSS), 0644); writeErr != nil {
				issues = append(issues, issueFor(path, writeErr))
			}
		}
	}

	if !cfg.Quiet {
		printIssues(os.Stdout, issues, cfg.UseColors)
		printSummary(os.Stdout, report, cfg.UseColors)
	}

	if len(issues) > 0 {
		os.Exit(1)
	}
	return nil
}
