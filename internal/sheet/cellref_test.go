package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCellRef(t *testing.T) {
	tests := []struct {
		ref     string
		wantCol int
		wantRow int
	}{
		{ref: "A1", wantCol: 1, wantRow: 1},
		{ref: "E12", wantCol: 5, wantRow: 12},
		{ref: "Z9", wantCol: 26, wantRow: 9},
		{ref: "AA1", wantCol: 27, wantRow: 1},
		{ref: "AB3", wantCol: 28, wantRow: 3},
		{ref: "BA100", wantCol: 53, wantRow: 100},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			col, row, err := parseCellRef(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCol, col)
			assert.Equal(t, tt.wantRow, row)
		})
	}
}

func TestParseCellRef_Malformed(t *testing.T) {
	for _, ref := range []string{"", "A", "12", "A0", "A-1", "1A"} {
		t.Run(ref, func(t *testing.T) {
			_, _, err := parseCellRef(ref)
			assert.Error(t, err)
		})
	}
}
