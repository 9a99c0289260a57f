package report

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	fm "github.com/adrg/frontmatter"

	"github.com/gorewood/qareport/internal/record"
)

var testTime = time.Date(2026, 1, 15, 15, 4, 5, 0, time.UTC)

// loadRecords parses JSONL fixture text into records.
func loadRecords(t *testing.T, jsonl string) []record.Record {
	t.Helper()
	records, err := record.Load(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return records
}

// render builds a report with default options and returns its markdown.
func render(records []record.Record, source string, now time.Time) string {
	return Build(records, source, now, Options{}).Markdown()
}

func TestMarkdown_ExactDocument(t *testing.T) {
	records := loadRecords(t, `{"question":"Q1","prediction":"A1","termination":"done"}
{"question":"Q2","error":"boom"}
`)

	got := render(records, "runs/iter1.jsonl", testTime)

	want := "# 🎯 DeepResearch Results\n" +
		"**Generated:** 2026-01-15 15:04:05\n" +
		"**Total Questions:** 2\n" +
		"**Source:** `runs/iter1.jsonl`\n" +
		"\n---\n" +
		"\n## Question 1\n" +
		"**Q:** Q1\n" +
		"\n**Answer:**\n\nA1\n" +
		"\n*Status: done*\n" +
		"\n---\n" +
		"\n## Question 2\n" +
		"**Q:** Q2\n" +
		"\n**Answer:**\n\nNo answer generated\n" +
		"\n*Status: unknown*\n" +
		"\n---\n" +
		"\n## 📊 Metadata\n" +
		"- **Total Questions:** 2\n" +
		"- **Successful:** 1\n" +
		"- **Failed:** 1\n"

	if got != want {
		t.Errorf("render() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarkdown_NoRecords(t *testing.T) {
	got := render([]record.Record{}, "empty.jsonl", testTime)

	want := "# 🎯 DeepResearch Results\n" +
		"**Generated:** 2026-01-15 15:04:05\n" +
		"**Total Questions:** 0\n" +
		"**Source:** `empty.jsonl`\n" +
		"\n---\n" +
		"\n## 📊 Metadata\n" +
		"- **Total Questions:** 0\n" +
		"- **Successful:** 0\n" +
		"- **Failed:** 0\n"

	if got != want {
		t.Errorf("render() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarkdown_Defaults(t *testing.T) {
	got := render(loadRecords(t, `{}`), "in.jsonl", testTime)

	for _, want := range []string{
		"**Q:** N/A\n",
		"\n**Answer:**\n\nNo answer generated\n",
		"*Status: unknown*",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}

func TestMarkdown_PredictionVerbatim(t *testing.T) {
	long := strings.Repeat("word ", 20000)
	prediction := "# Heading inside answer\n\n| a | b |\n|---|---|\n| <b>1</b> | `2` |\n" + long
	encoded, err := json.Marshal(map[string]string{"prediction": prediction})
	if err != nil {
		t.Fatal(err)
	}

	records := loadRecords(t, string(encoded))
	got := render(records, "in.jsonl", testTime)

	if !strings.Contains(got, "\n**Answer:**\n\n"+prediction+"\n") {
		t.Error("prediction should be rendered verbatim without escaping or truncation")
	}
}

func TestMarkdown_PreservesInputOrder(t *testing.T) {
	var lines []string
	for _, q := range []string{"zeta", "alpha", "mid", "alpha"} {
		lines = append(lines, `{"question":"`+q+`"}`)
	}
	got := render(loadRecords(t, strings.Join(lines, "\n")), "in.jsonl", testTime)

	positions := []int{
		strings.Index(got, "## Question 1\n**Q:** zeta"),
		strings.Index(got, "## Question 2\n**Q:** alpha"),
		strings.Index(got, "## Question 3\n**Q:** mid"),
		strings.Index(got, "## Question 4\n**Q:** alpha"),
	}
	for i, pos := range positions {
		if pos < 0 {
			t.Fatalf("section %d missing or out of place\n%s", i+1, got)
		}
		if i > 0 && pos <= positions[i-1] {
			t.Errorf("section %d rendered before section %d", i+1, i)
		}
	}
}

func TestMarkdown_Idempotent(t *testing.T) {
	jsonl := `{"question":"Q1","prediction":"A1"}
{"question":"Q2","error":{"code":1}}`

	first := render(loadRecords(t, jsonl), "in.jsonl", testTime)
	second := render(loadRecords(t, jsonl), "in.jsonl", testTime)

	if first != second {
		t.Error("rendering identical input twice should produce identical output")
	}
}

func TestMarkdown_CustomTitle(t *testing.T) {
	rep := Build(loadRecords(t, `{}`), "in.jsonl", testTime, Options{Title: "Nightly eval"})

	if !strings.HasPrefix(rep.Markdown(), "# Nightly eval\n") {
		t.Errorf("custom title not used:\n%s", rep.Markdown())
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		jsonl string
		want  Summary
	}{
		{name: "empty", jsonl: "", want: Summary{}},
		{
			name:  "mixed",
			jsonl: "{\"error\":\"x\"}\n{\"error\":\"\"}\n{\"error\":null}\n{\"error\":0}\n{\"error\":true}\n{}\n",
			want:  Summary{Total: 6, Successful: 4, Failed: 2},
		},
		{
			name:  "all failed",
			jsonl: "{\"error\":\"a\"}\n{\"error\":[1]}\n",
			want:  Summary{Total: 2, Successful: 0, Failed: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(loadRecords(t, tt.jsonl))
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
			if got.Successful+got.Failed != got.Total {
				t.Errorf("Successful + Failed = %d, want %d", got.Successful+got.Failed, got.Total)
			}
		})
	}
}

func TestFrontmatter(t *testing.T) {
	rep := Build(loadRecords(t, "{\"question\":\"Q1\"}\n{\"error\":\"boom\"}\n"), "runs/iter1.jsonl", testTime, Options{})

	doc, err := rep.Document(Options{Frontmatter: true})
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	var meta struct {
		Schema     string `yaml:"schema"`
		Title      string `yaml:"title"`
		Source     string `yaml:"source"`
		Generated  string `yaml:"generated"`
		Total      int    `yaml:"total"`
		Successful int    `yaml:"successful"`
		Failed     int    `yaml:"failed"`
	}
	rest, err := fm.Parse(strings.NewReader(string(doc)), &meta)
	if err != nil {
		t.Fatalf("frontmatter.Parse() error = %v", err)
	}

	if meta.Schema != FrontmatterSchema {
		t.Errorf("schema = %q, want %q", meta.Schema, FrontmatterSchema)
	}
	if meta.Source != "runs/iter1.jsonl" {
		t.Errorf("source = %q, want %q", meta.Source, "runs/iter1.jsonl")
	}
	if meta.Generated != "2026-01-15T15:04:05Z" {
		t.Errorf("generated = %q, want %q", meta.Generated, "2026-01-15T15:04:05Z")
	}
	if meta.Total != 2 || meta.Successful != 1 || meta.Failed != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", meta.Total, meta.Successful, meta.Failed)
	}
	if strings.TrimSpace(string(rest)) != strings.TrimSpace(rep.Markdown()) {
		t.Error("body after frontmatter should be the plain markdown report")
	}
}

func TestDocument_DefaultIsPlainMarkdown(t *testing.T) {
	rep := Build(loadRecords(t, `{"question":"Q"}`), "in.jsonl", testTime, Options{})

	doc, err := rep.Document(Options{})
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if string(doc) != rep.Markdown() {
		t.Error("default document should equal Markdown()")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantExt string
		wantErr bool
	}{
		{name: "", want: FormatMarkdown, wantExt: ".md"},
		{name: "md", want: FormatMarkdown, wantExt: ".md"},
		{name: "html", want: FormatHTML, wantExt: ".html"},
		{name: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.name, got, tt.want)
			}
			if got.Extension() != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", got.Extension(), tt.wantExt)
			}
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		format Format
		want   string
	}{
		{input: "foo/bar.jsonl", format: FormatMarkdown, want: filepath.Join("foo", "bar_results.md")},
		{input: "bar.jsonl", format: FormatMarkdown, want: "bar_results.md"},
		{input: "outputs/q.jsonl/iter1.jsonl", format: FormatMarkdown, want: filepath.Join("outputs", "q.jsonl", "iter1_results.md")},
		{input: "archive.tar.jsonl", format: FormatMarkdown, want: "archive.tar_results.md"},
		{input: "noext", format: FormatMarkdown, want: "noext_results.md"},
		{input: "runs/.jsonl", format: FormatMarkdown, want: filepath.Join("runs", ".jsonl_results.md")},
		{input: "/abs/run.jsonl", format: FormatHTML, want: filepath.Join("/abs", "run_results.html")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DefaultOutputPath(tt.input, tt.format); got != tt.want {
				t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
