package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/yacobolo/severed/internal/extract"
)

// printIssues prints one line per failed file, golangci-lint-style,
// writing straight to an io.Writer rather than a logger.
func printIssues(w io.Writer, issues []issue, useColors bool) {
	red := color.New(color.FgRed, color.Bold)
	gray := color.New(color.FgHiBlack)
	for _, is := range issues {
		if useColors {
			fmt.Fprintf(w, "%s %s %s\n", red.Sprint(is.File), gray.Sprintf("(%s)", is.Kind), is.Message)
		} else {
			fmt.Fprintf(w, "%s (%s) %s\n", is.File, is.Kind, is.Message)
		}
	}
}

// printSummary prints the adoption-style summary line produced by
// extract.Report, plus a pass/fail headline.
func printSummary(w io.Writer, report *extract.Report, useColors bool) {
	t := report.Totals()
	headline := fmt.Sprintf("%d/%d files extracted", t.FilesExtracted, t.FilesScanned)
	if t.FilesFailed > 0 {
		headline = renderStyle(styleRed, headline+fmt.Sprintf(", %d failed", t.FilesFailed), useColors)
	} else {
		headline = renderStyle(styleGreen, headline, useColors)
	}
	fmt.Fprintln(w, headline)
	report.WriteSummary(w)
}
