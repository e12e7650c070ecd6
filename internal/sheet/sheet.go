// Package sheet extracts the cell grid of a spreadsheet archive's first
// worksheet without a spreadsheet library. It reads only the parts the
// pipeline depends on: the workbook sheet list, the workbook relationships,
// the shared-string table and one worksheet. Extraction is best-effort:
// malformed cell data degrades to empty text, never to a failure.
package sheet

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Row is one non-empty worksheet row. Cells are ordered by column with gaps
// filled by empty strings so positions stay stable.
type Row struct {
	Number int
	Cells  []string
}

type workbookXML struct {
	Sheets []struct {
		Name  string `xml:"name,attr"`
		RelID string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

type relationshipsXML struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type sharedStringsXML struct {
	Items []richText `xml:"si"`
}

// richText covers both plain (<t>) and rich (<r><t>) string items; reading
// joins the fragments in document order.
type richText struct {
	Text *string `xml:"t"`
	Runs []struct {
		Text string `xml:"t"`
	} `xml:"r"`
}

func (rt richText) join() string {
	var b strings.Builder
	if rt.Text != nil {
		b.WriteString(*rt.Text)
	}
	for _, r := range rt.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

type worksheetXML struct {
	Rows []struct {
		Cells []cellXML `xml:"c"`
	} `xml:"sheetData>row"`
}

type cellXML struct {
	Ref    string    `xml:"r,attr"`
	Type   string    `xml:"t,attr"`
	Value  string    `xml:"v"`
	Inline *richText `xml:"is"`
}

// ReadRows decodes the archive at path and returns the ordered rows of the
// first worksheet with shared-string references resolved to literal text.
// A workbook without sheets yields no rows and no error.
func ReadRows(path string) ([]Row, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, eris.Wrap(err, "sheet: open archive")
	}
	defer zr.Close() //nolint:errcheck

	var wb workbookXML
	if err := decodePart(&zr.Reader, "xl/workbook.xml", &wb); err != nil {
		return nil, err
	}
	if len(wb.Sheets) == 0 {
		return nil, nil
	}

	var rels relationshipsXML
	if err := decodePart(&zr.Reader, "xl/_rels/workbook.xml.rels", &rels); err != nil {
		return nil, err
	}
	target := ""
	for _, rel := range rels.Rels {
		if rel.ID == wb.Sheets[0].RelID {
			target = rel.Target
			break
		}
	}
	if target == "" {
		return nil, eris.Errorf("sheet: no relationship target for sheet %q", wb.Sheets[0].Name)
	}
	if !strings.HasPrefix(target, "xl/") {
		target = "xl/" + target
	}

	// Shared strings are optional; files with only inline or numeric cells
	// have no sharedStrings part.
	var shared []string
	if hasPart(&zr.Reader, "xl/sharedStrings.xml") {
		var sst sharedStringsXML
		if err := decodePart(&zr.Reader, "xl/sharedStrings.xml", &sst); err != nil {
			return nil, err
		}
		shared = make([]string, 0, len(sst.Items))
		for _, si := range sst.Items {
			shared = append(shared, si.join())
		}
	}

	var ws worksheetXML
	if err := decodePart(&zr.Reader, target, &ws); err != nil {
		return nil, err
	}

	return buildGrid(&ws, shared), nil
}

// buildGrid places every addressable cell into a sparse row/column map and
// flattens it into ordered, gap-padded rows.
func buildGrid(ws *worksheetXML, shared []string) []Row {
	log := zap.L().With(zap.String("component", "sheet"))

	grid := make(map[int]map[int]string)
	for _, row := range ws.Rows {
		for _, c := range row.Cells {
			if c.Ref == "" {
				continue
			}
			col, rowNum, err := parseCellRef(c.Ref)
			if err != nil {
				log.Debug("skipping unaddressable cell", zap.String("ref", c.Ref))
				continue
			}
			if grid[rowNum] == nil {
				grid[rowNum] = make(map[int]string)
			}
			grid[rowNum][col] = cellText(c, shared, log)
		}
	}

	nums := make([]int, 0, len(grid))
	for n := range grid {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	rows := make([]Row, 0, len(nums))
	for _, n := range nums {
		cols := grid[n]
		maxCol := 0
		for c := range cols {
			if c > maxCol {
				maxCol = c
			}
		}
		cells := make([]string, maxCol)
		for c, v := range cols {
			cells[c-1] = v
		}
		rows = append(rows, Row{Number: n, Cells: cells})
	}
	return rows
}

// cellText resolves a cell to literal text. A shared-string reference that
// cannot be resolved degrades to empty text rather than aborting extraction.
func cellText(c cellXML, shared []string, log *zap.Logger) string {
	switch c.Type {
	case "s":
		idx, err := strconv.Atoi(strings.TrimSpace(c.Value))
		if err != nil || idx < 0 || idx >= len(shared) {
			log.Debug("unresolved shared string reference",
				zap.String("ref", c.Ref),
				zap.String("index", c.Value),
				zap.Int("table_size", len(shared)),
			)
			return ""
		}
		return shared[idx]
	case "inlineStr":
		if c.Inline == nil {
			return ""
		}
		return c.Inline.join()
	default:
		return c.Value
	}
}

func hasPart(r *zip.Reader, name string) bool {
	for _, f := range r.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

func decodePart(r *zip.Reader, name string, v any) error {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return eris.Wrapf(err, "sheet: open part %s", name)
		}
		defer rc.Close() //nolint:errcheck
		data, err := io.ReadAll(rc)
		if err != nil {
			return eris.Wrapf(err, "sheet: read part %s", name)
		}
		if err := xml.Unmarshal(data, v); err != nil {
			return eris.Wrapf(err, "sheet: decode part %s", name)
		}
		return nil
	}
	return eris.Errorf("sheet: part %s not found in archive", name)
}
