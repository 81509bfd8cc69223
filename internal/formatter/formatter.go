// package formatter renders customer lists as CSV, Markdown, plain text or a styled terminal table
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/customers/internal/models"
	"github.com/desertthunder/customers/internal/ui"
)

// Format names accepted by [Render].
const (
	FormatTable    = "table"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// Render dispatches to the exporter for format.
func Render(format string, customers []models.Customer) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatTable:
		return ExportToTable(customers), nil
	case FormatCSV:
		return ExportToCSV(customers)
	case FormatMarkdown, "md":
		return ExportToMarkdown(customers), nil
	case FormatText, "txt":
		return ExportToText(customers), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// ExportToCSV converts customers to CSV with columns: ID, Name
func ExportToCSV(customers []models.Customer) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Name"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, c := range customers {
		if err := writer.Write([]string{strconv.FormatInt(c.ID, 10), c.Name}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts customers to a Markdown table
func ExportToMarkdown(customers []models.Customer) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Customers\n\n")
	buf.WriteString(fmt.Sprintf("**Total**: %d\n\n", len(customers)))
	buf.WriteString("| ID | Name |\n|---:|------|\n")
	for _, c := range customers {
		buf.WriteString(fmt.Sprintf("| %d | %s |\n", c.ID, strings.ReplaceAll(c.Name, "|", `\|`)))
	}

	return buf.Bytes()
}

// ExportToText converts customers to plain text, one per line
func ExportToText(customers []models.Customer) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Customers: %d\n\n", len(customers)))
	for _, c := range customers {
		buf.WriteString(fmt.Sprintf("%d. %s\n", c.ID, c.Name))
	}

	return buf.Bytes()
}

// ExportToTable renders an aligned, styled table for terminal output
func ExportToTable(customers []models.Customer) []byte {
	idWidth := len("ID")
	for _, c := range customers {
		idWidth = max(idWidth, len(strconv.FormatInt(c.ID, 10)))
	}

	var buf bytes.Buffer
	buf.WriteString(ui.Title(fmt.Sprintf("Customers (%d)", len(customers))))
	buf.WriteString("\n")
	buf.WriteString(ui.Help(fmt.Sprintf("%*s  %s", idWidth, "ID", "Name")))
	buf.WriteString("\n")
	for _, c := range customers {
		buf.WriteString(fmt.Sprintf("%*d  %s\n", idWidth, c.ID, c.Name))
	}

	if len(customers) == 0 {
		buf.WriteString(ui.Warn("no customers stored"))
		buf.WriteString("\n")
	}

	return buf.Bytes()
}
