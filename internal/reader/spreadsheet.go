// Package reader turns the two raw roster sources into flat record sequences:
// the sectioned spreadsheet tables and the formation-responsables CSV.
package reader

import (
	"strings"

	"github.com/uspn-tools/rostergen/internal/sheet"
	"github.com/uspn-tools/rostergen/internal/textutil"
)

// SheetEntry is one data row of a spreadsheet section table.
type SheetEntry struct {
	Section  string
	Fonction string
	Nom      string
	Bureau   string
	Email    string
	Phone    string
}

// ReadSheetEntries extracts all section-table rows from the spreadsheet
// archive at path.
func ReadSheetEntries(path string) ([]SheetEntry, error) {
	rows, err := sheet.ReadRows(path)
	if err != nil {
		return nil, err
	}
	return ParseSheetRows(rows), nil
}

// ParseSheetRows walks worksheet rows as a sequence of sections. A lone cell
// starts a new section unless it reads "Fonction", which marks the column
// header row and switches the walker into table mode. Rows seen before any
// header row are ignored; table rows are positional
// (fonction, nom, bureau, contact, telephone).
func ParseSheetRows(rows []sheet.Row) []SheetEntry {
	var (
		entries []SheetEntry
		section string
		inTable bool
	)

	for _, row := range rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = textutil.CleanWhitespace(c)
		}
		for len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		if len(cells) == 0 {
			continue
		}

		if len(cells) == 1 && !strings.EqualFold(cells[0], "fonction") {
			section = textutil.CleanTitle(cells[0])
			if section == "" {
				section = "GENERAL"
			}
			inTable = false
			continue
		}
		if strings.EqualFold(cells[0], "fonction") {
			inTable = true
			continue
		}
		if !inTable {
			continue
		}

		e := SheetEntry{Section: section}
		if e.Section == "" {
			e.Section = "GENERAL"
		}
		e.Fonction = cellAt(cells, 0)
		e.Nom = cellAt(cells, 1)
		e.Bureau = cellAt(cells, 2)
		e.Email = cellAt(cells, 3)
		e.Phone = cellAt(cells, 4)
		entries = append(entries, e)
	}
	return entries
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}
