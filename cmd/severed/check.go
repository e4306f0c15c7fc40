package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yacobolo/severed/internal/extract"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the extraction pipeline read-only and report failures",
	Long: `Run severed's extraction pipeline over a directory tree without writing
anything back: a parse error, evaluation error, or non-string export fails
the check. Intended as a pre-commit or CI gate.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.String("root", ".", "Root directory to scan")
	f.StringSlice("include", nil, "Glob patterns for source files to include")
	f.StringSlice("exclude", nil, "Glob patterns for source files to exclude")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg := buildRunConfig("check")

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

		result, transformErr := runOneFile(ctx, ModePullLocal, path, string(src), cfg)
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
