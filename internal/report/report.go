// Package report renders loaded question/answer records into a markdown report.
package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorewood/qareport/internal/record"
)

// DefaultTitle is the heading used when no title is configured.
const DefaultTitle = "🎯 DeepResearch Results"

// Format selects the output document type.
type Format string

// Supported output formats.
const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ParseFormat validates a format name. An empty name selects markdown.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatMarkdown:
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want md or html)", name)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	if f == FormatHTML {
		return ".html"
	}
	return ".md"
}

// Options control how a report is built and rendered.
type Options struct {
	Title       string // empty uses DefaultTitle
	Frontmatter bool   // prepend YAML frontmatter (markdown only)
	Format      Format // empty uses FormatMarkdown
}

// Summary holds the aggregate counts of a report.
// Successful + Failed == Total always holds.
type Summary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// Summarize classifies every record in one pass.
func Summarize(records []record.Record) Summary {
	summary := Summary{Total: len(records)}
	for _, rec := range records {
		if rec.Failed() {
			summary.Failed++
		}
	}
	summary.Successful = summary.Total - summary.Failed
	return summary
}

// Report is an assembled report: the ordered records, where they came from,
// when the report was generated, and the derived counts.
type Report struct {
	Title       string
	Source      string
	GeneratedAt time.Time
	Records     []record.Record
	Summary     Summary
}

// Build assembles a report over records read from source.
// The timestamp is rendered in now's location.
func Build(records []record.Record, source string, now time.Time, opts Options) *Report {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	return &Report{
		Title:       title,
		Source:      source,
		GeneratedAt: now,
		Records:     records,
		Summary:     Summarize(records),
	}
}

// Document renders the report in the format selected by opts.
func (r *Report) Document(opts Options) ([]byte, error) {
	format := opts.Format
	if format == "" {
		format = FormatMarkdown
	}

	switch format {
	case FormatMarkdown:
		body := r.Markdown()
		if !opts.Frontmatter {
			return []byte(body), nil
		}
		fm, err := r.Frontmatter()
		if err != nil {
			return nil, err
		}
		return []byte(fm + body), nil
	case FormatHTML:
		return ToHTML(r.Title, []byte(r.Markdown()))
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// DefaultOutputPath derives the report path for input: the input's stem
// (base name minus its final extension) plus "_results" and the format's
// extension, in the input's directory.
func DefaultOutputPath(input string, format Format) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// Dotfiles such as ".jsonl" have no extension, only a name.
		stem = base
	}
	return filepath.Join(dir, stem+"_results"+format.Extension())
}
