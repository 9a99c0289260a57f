// Package report renders loaded question/answer records into a report
// document and writes it to disk.
//
// # Building
//
//	records, err := record.LoadFile(path)
//	rep := report.Build(records, path, time.Now(), report.Options{})
//	md := rep.Markdown()
//
// Build makes a single pass over the records to derive the Summary counts;
// Markdown is a pure function of the Report, so rendering the same records
// with the same timestamp always yields the same bytes.
//
// # Document Layout
//
//	# 🎯 DeepResearch Results
//	**Generated:** 2026-01-15 15:04:05
//	**Total Questions:** 2
//	**Source:** `runs/iter1.jsonl`
//
//	---
//
//	## Question 1
//	**Q:** What is the boiling point of water?
//
//	**Answer:**
//
//	100 °C at sea level.
//
//	*Status: answer*
//
//	---
//	...
//
//	## 📊 Metadata
//	- **Total Questions:** 2
//	- **Successful:** 1
//	- **Failed:** 1
//
// Missing fields render as "N/A" (question), "No answer generated"
// (prediction) and "unknown" (termination). A record counts as failed when
// its error field is present and truthy.
//
// # Other Formats
//
// Options.Frontmatter prepends a YAML block (schema qareport/v1) carrying the
// source, timestamp and counts. FormatHTML converts the markdown to a
// standalone HTML page with goldmark; frontmatter is not included there.
//
// # Writing
//
// WriteFile replaces the destination atomically. A failed write leaves no
// partial report behind and returns an error wrapping ErrWrite.
package report
