package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "formations.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFormations(t *testing.T) {
	path := writeCSV(t, `formation_nom,composante,departement,mention,parcours,role_exact,responsable_nom,responsable_prenom,email,telephone,bureau
Licence Informatique,,,,,Responsable 2ème année,MARTIN,Alice,alice.martin@example.org,,
Licence Droit,Faculté DSPS,,Droit,,Responsable de formation,ROY,Anne,,01 49 40 11 22,B12
`)

	records, err := ReadFormations(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Licence Informatique", records[0].FormationName)
	assert.Equal(t, "Responsable 2ème année", records[0].RoleExact)
	assert.Equal(t, "MARTIN", records[0].LastName)
	assert.Equal(t, "Alice", records[0].FirstName)
	assert.Equal(t, "alice.martin@example.org", records[0].Email)

	assert.Equal(t, "Faculté DSPS", records[1].Composante)
	assert.Equal(t, "01 49 40 11 22", records[1].Phone)
	assert.Equal(t, "B12", records[1].Office)
}

func TestReadFormations_RaggedRowAndUnknownColumn(t *testing.T) {
	path := writeCSV(t, `formation_nom,role_exact,responsable_nom,responsable_prenom
Licence Chimie,Responsable,DUPONT,Jean
Licence Physique,Responsable
`)

	records, err := ReadFormations(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Columns absent from the header read as empty, as do fields missing
	// from a short row.
	assert.Equal(t, "", records[0].Email)
	assert.Equal(t, "", records[1].LastName)
	assert.Equal(t, "Responsable", records[1].RoleExact)
}

func TestReadFormations_MissingFile(t *testing.T) {
	_, err := ReadFormations(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
