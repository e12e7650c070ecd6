package reader

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"
)

// FormationRecord is one row of the formation-responsables CSV. Values are
// raw; the graph builder normalizes whitespace on ingest.
type FormationRecord struct {
	FormationName string
	Composante    string
	Departement   string
	Mention       string
	Parcours      string
	RoleExact     string
	LastName      string
	FirstName     string
	Email         string
	Phone         string
	Office        string
}

// ReadFormations reads the delimited source at path. The file is a hard
// precondition of the pipeline; any open or parse failure is returned as-is.
func ReadFormations(path string) ([]FormationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "reader: open formations csv")
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // allow ragged rows

	header, err := r.Read()
	if err != nil {
		return nil, eris.Wrap(err, "reader: read csv header")
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}

	var records []FormationRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "reader: read csv row")
		}
		field := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		records = append(records, FormationRecord{
			FormationName: field("formation_nom"),
			Composante:    field("composante"),
			Departement:   field("departement"),
			Mention:       field("mention"),
			Parcours:      field("parcours"),
			RoleExact:     field("role_exact"),
			LastName:      field("responsable_nom"),
			FirstName:     field("responsable_prenom"),
			Email:         field("email"),
			Phone:         field("telephone"),
			Office:        field("bureau"),
		})
	}
	return records, nil
}
