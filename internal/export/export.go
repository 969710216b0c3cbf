// Package export renders collections into user-facing artifacts: CSV files
// with a header row, a JSON dump of the settings record, and the plain-text
// placeholder produced for reports that carry no inline payload.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/springingstars/schooldash/internal/models"
)

// EventsCSV writes the events as comma-separated values, header row first.
func EventsCSV(w io.Writer, events []models.Event) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "title", "start", "end", "allDay", "location", "category", "description"}); err != nil {
		return err
	}
	for _, e := range events {
		end := ""
		if e.End != nil {
			end = e.End.Format("2006-01-02 15:04")
		}
		row := []string{
			e.ID,
			e.Title,
			e.Start.Format("2006-01-02 15:04"),
			end,
			strconv.FormatBool(e.AllDay),
			e.Location,
			string(e.Category),
			e.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReportsCSV writes report metadata as comma-separated values. Inline
// payloads are not exported; only their presence is noted.
func ReportsCSV(w io.Writer, reports []models.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "title", "category", "date", "type", "status", "fileName", "fileSize", "inline"}); err != nil {
		return err
	}
	for _, r := range reports {
		row := []string{
			r.ID,
			r.Title,
			string(r.Category),
			r.Date,
			r.Type,
			string(r.Status),
			r.FileName,
			strconv.FormatInt(r.FileSize, 10),
			strconv.FormatBool(r.Payload != nil),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SettingsJSON renders the full settings record as indented JSON.
func SettingsJSON(settings map[string]any) ([]byte, error) {
	return json.MarshalIndent(settings, "", "  ")
}

// Placeholder builds the text artifact downloaded for a report without an
// inline payload. It carries at least the title, date, and category.
func Placeholder(r models.Report) []byte {
	return []byte(fmt.Sprintf("Report: %s\nGenerated: %s\nCategory: %s\nType: %s\n", r.Title, r.Date, r.Category, r.Type))
}
