package report

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/qareport/internal/record"
)

// TimestampLayout is the layout of the Generated line.
const TimestampLayout = "2006-01-02 15:04:05"

// FrontmatterSchema identifies the frontmatter block written by qareport.
const FrontmatterSchema = "qareport/v1"

// Markdown renders the report as a markdown document: header, one section
// per record in input order, then the metadata footer.
func (r *Report) Markdown() string {
	var builder strings.Builder

	writeHeader(&builder, r)
	for i, rec := range r.Records {
		writeRecord(&builder, i+1, rec)
	}
	writeFooter(&builder, r.Summary)

	return builder.String()
}

// writeHeader writes the title, generation time, count and source lines.
func writeHeader(builder *strings.Builder, r *Report) {
	fmt.Fprintf(builder, "# %s\n", r.Title)
	fmt.Fprintf(builder, "**Generated:** %s\n", r.GeneratedAt.Format(TimestampLayout))
	fmt.Fprintf(builder, "**Total Questions:** %d\n", r.Summary.Total)
	fmt.Fprintf(builder, "**Source:** `%s`\n", r.Source)
	builder.WriteString("\n---\n")
}

// writeRecord writes the section for the record at 1-based position n.
// Text is written verbatim, without escaping or truncation.
func writeRecord(builder *strings.Builder, n int, rec record.Record) {
	fmt.Fprintf(builder, "\n## Question %d\n", n)
	fmt.Fprintf(builder, "**Q:** %s\n", rec.Question().Or(record.DefaultQuestion))
	builder.WriteString("\n**Answer:**\n\n")
	builder.WriteString(rec.Prediction().Or(record.DefaultPrediction))
	builder.WriteString("\n")
	fmt.Fprintf(builder, "\n*Status: %s*\n", rec.Termination().Or(record.DefaultTermination))
	builder.WriteString("\n---\n")
}

// writeFooter writes the metadata section with aggregate counts.
func writeFooter(builder *strings.Builder, summary Summary) {
	builder.WriteString("\n## 📊 Metadata\n")
	fmt.Fprintf(builder, "- **Total Questions:** %d\n", summary.Total)
	fmt.Fprintf(builder, "- **Successful:** %d\n", summary.Successful)
	fmt.Fprintf(builder, "- **Failed:** %d\n", summary.Failed)
}

// frontmatter is the YAML block optionally prepended to the markdown.
type frontmatter struct {
	Schema     string `yaml:"schema"`
	Title      string `yaml:"title"`
	Source     string `yaml:"source"`
	Generated  string `yaml:"generated"`
	Total      int    `yaml:"total"`
	Successful int    `yaml:"successful"`
	Failed     int    `yaml:"failed"`
}

// Frontmatter renders the report metadata as a YAML frontmatter block,
// delimited by --- lines and followed by a blank line.
func (r *Report) Frontmatter() (string, error) {
	data, err := yaml.Marshal(frontmatter{
		Schema:     FrontmatterSchema,
		Title:      r.Title,
		Source:     r.Source,
		Generated:  r.GeneratedAt.Format(time.RFC3339),
		Total:      r.Summary.Total,
		Successful: r.Summary.Successful,
		Failed:     r.Summary.Failed,
	})
	if err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}
	return "---\n" + string(data) + "---\n\n", nil
}
