package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/llehouerou/wavetube/internal/catalog"
)

// Table provides a simple table formatter.
type Table struct {
	w *tabwriter.Writer
}

// NewTable creates a table writing to out with the given headers.
func NewTable(out io.Writer, headers ...string) *Table {
	t := &Table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
	if len(headers) > 0 {
		t.Row(headers...)
	}
	return t
}

// Row adds a row.
func (t *Table) Row(cols ...string) {
	_, _ = fmt.Fprintln(t.w, strings.Join(cols, "\t"))
}

// Flush writes the table.
func (t *Table) Flush() error {
	return t.w.Flush()
}

// printJSON writes v as indented JSON.
func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type trackJSON struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist,omitempty"`
	Album    string `json:"album,omitempty"`
	Duration string `json:"duration,omitempty"`
	URL      string `json:"url"`
}

func printTracks(out io.Writer, tracks []catalog.Track, asJSON bool) error {
	if asJSON {
		items := make([]trackJSON, len(tracks))
		for i, t := range tracks {
			items[i] = trackJSON{
				ID:       t.ID,
				Title:    t.Title,
				Artist:   t.Artist,
				Album:    t.Album,
				Duration: t.DurationLabel,
				URL:      watchURL(t.ID),
			}
		}
		return printJSON(out, items)
	}

	tbl := NewTable(out, "#", "TITLE", "ARTIST", "TIME", "ID")
	for i, t := range tracks {
		tbl.Row(fmt.Sprint(i+1), t.Title, t.Artist, t.DurationLabel, t.ID)
	}
	return tbl.Flush()
}

func watchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
