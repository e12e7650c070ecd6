package sheet

import (
	"strconv"

	"github.com/rotisserie/eris"
)

// parseCellRef splits an A1-style cell reference into a 1-based column index
// and row number. Column letters are base-26 digits with 'A' = 1, so "A" -> 1,
// "Z" -> 26, "AA" -> 27.
func parseCellRef(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A') + 1
		i++
	}
	if col == 0 || i == len(ref) {
		return 0, 0, eris.Errorf("sheet: malformed cell reference %q", ref)
	}
	row, err = strconv.Atoi(ref[i:])
	if err != nil || row <= 0 {
		return 0, 0, eris.Errorf("sheet: malformed cell reference %q", ref)
	}
	return col, row, nil
}
