package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatEntries formats a list of entries as JSON
func (f *Formatter) FormatEntries(entries []EntryDTO) error {
	return f.encode(entries)
}

// FormatReport formats a generation report as JSON
func (f *Formatter) FormatReport(report ReportDTO) error {
	return f.encode(report)
}

// FormatDrifts formats check results as JSON
func (f *Formatter) FormatDrifts(drifts []DriftDTO) error {
	return f.encode(drifts)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
