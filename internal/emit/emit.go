// Package emit renders the accumulated roster graph as one ordered SQL seed
// document: insert statements per logical table followed by the
// sequence-recalibration statements. Rendering is fully deterministic for a
// given graph.
package emit

import (
	"fmt"
	"strings"

	"github.com/uspn-tools/rostergen/internal/graph"
	"github.com/uspn-tools/rostergen/internal/model"
)

// specializationColumn names the single extra column of each per-type entity
// table. All seed rows leave it null.
var specializationColumn = map[model.EntityType]struct {
	table  string
	column string
}{
	model.TypeComposante:  {"composante", "site_web"},
	model.TypeDepartement: {"departement", "code_interne"},
	model.TypeMention:     {"mention", "type_diplome"},
	model.TypeParcours:    {"parcours", "code_parcours"},
	model.TypeNiveau:      {"niveau", "libelle_court"},
}

// Render produces the complete seed document. Tables with no rows are omitted
// entirely.
func Render(ex graph.Export) string {
	var b strings.Builder

	b.WriteString("-- Seed responsables reelles (CSV + XLSX)\n")
	b.WriteString("-- Genere automatiquement par rostergen seed\n")
	b.WriteString("\n")

	writeRoles(&b, ex.Roles)
	writeEntities(&b, ex)
	writeSpecializations(&b, ex)
	writePeople(&b, ex.People)
	assignmentIDs := writeAssignments(&b, ex.Assignments)
	writeContacts(&b, ex.Contacts, assignmentIDs)

	b.WriteString("-- Recalage des sequences\n")
	for _, t := range []struct{ table, column string }{
		{"entite_structure", "id_entite"},
		{"utilisateur", "id_user"},
		{"affectation", "id_affectation"},
		{"contact_role", "id_contact_role"},
	} {
		fmt.Fprintf(&b, "select setval(pg_get_serial_sequence('%s','%s'), (select max(%s) from %s));\n",
			t.table, t.column, t.column, t.table)
	}

	return b.String()
}

func writeRoles(b *strings.Builder, roles []model.Role) {
	if len(roles) == 0 {
		return
	}
	b.WriteString("insert into role (id_role, libelle, description, niveau_hierarchique, is_global) values\n")
	vals := make([]string, 0, len(roles))
	for _, r := range roles {
		vals = append(vals, fmt.Sprintf("  ('%s', '%s', 'Import CSV/XLSX', 10, true)", r.ID, quote(r.Label)))
	}
	b.WriteString(strings.Join(vals, ",\n") + ";\n\n")
}

func writeEntities(b *strings.Builder, ex graph.Export) {
	var vals []string
	for _, typ := range model.HierarchyOrder {
		for _, e := range ex.EntitiesByType[typ] {
			parent := "null"
			if e.ParentID != 0 {
				parent = fmt.Sprintf("%d", e.ParentID)
			}
			vals = append(vals, fmt.Sprintf("  (%d, %d, %s, '%s', '%s')",
				e.ID, ex.YearID, parent, e.Type, quote(e.Name)))
		}
	}
	if len(vals) == 0 {
		return
	}
	b.WriteString("insert into entite_structure (id_entite, id_annee, id_entite_parent, type_entite, nom) values\n")
	b.WriteString(strings.Join(vals, ",\n") + ";\n\n")
}

func writeSpecializations(b *strings.Builder, ex graph.Export) {
	for _, typ := range model.HierarchyOrder {
		ents := ex.EntitiesByType[typ]
		if len(ents) == 0 {
			continue
		}
		sc := specializationColumn[typ]
		fmt.Fprintf(b, "insert into %s (id_entite, %s) values\n", sc.table, sc.column)
		vals := make([]string, 0, len(ents))
		for _, e := range ents {
			vals = append(vals, fmt.Sprintf("  (%d, null)", e.ID))
		}
		b.WriteString(strings.Join(vals, ",\n") + ";\n\n")
	}
}

func writePeople(b *strings.Builder, people []model.Person) {
	if len(people) == 0 {
		return
	}
	b.WriteString("insert into utilisateur (id_user, login, nom, prenom, email_institutionnel, telephone, bureau, statut) values\n")
	vals := make([]string, 0, len(people))
	for _, p := range people {
		vals = append(vals, fmt.Sprintf("  (%d, '%s', '%s', '%s', %s, %s, %s, 'ACTIF')",
			p.ID, quote(p.Login), quote(p.LastName), quote(p.FirstName),
			nullable(p.Email), nullable(p.Phone), nullable(p.Office)))
	}
	b.WriteString(strings.Join(vals, ",\n") + ";\n\n")
}

// writeAssignments assigns fresh sequential ids in encounter order and
// returns the key -> id mapping contact records resolve against.
func writeAssignments(b *strings.Builder, assignments []model.Assignment) map[model.AssignmentKey]int {
	ids := make(map[model.AssignmentKey]int, len(assignments))
	if len(assignments) == 0 {
		return ids
	}
	b.WriteString("insert into affectation (id_affectation, id_user, id_role, id_entite, id_annee, date_debut, date_fin) values\n")
	vals := make([]string, 0, len(assignments))
	next := graph.AssignmentIDBase
	for _, a := range assignments {
		ids[a.Key()] = next
		vals = append(vals, fmt.Sprintf("  (%d, %d, '%s', %d, %d, '%s', null)",
			next, a.PersonID, a.RoleID, a.EntityID, a.YearID, a.DateStart))
		next++
	}
	b.WriteString(strings.Join(vals, ",\n") + ";\n\n")
	return ids
}

func writeContacts(b *strings.Builder, contacts []model.Contact, assignmentIDs map[model.AssignmentKey]int) {
	var vals []string
	next := graph.ContactIDBase
	for _, c := range contacts {
		affID, ok := assignmentIDs[c.Assignment]
		if !ok {
			continue
		}
		vals = append(vals, fmt.Sprintf("  (%d, %d, '%s', '%s')", next, affID, quote(c.Email), c.EmailType))
		next++
	}
	if len(vals) == 0 {
		return
	}
	b.WriteString("insert into contact_role (id_contact_role, id_affectation, email_fonctionnelle, type_email) values\n")
	b.WriteString(strings.Join(vals, ",\n") + ";\n\n")
}

// quote escapes free text for a single-quoted SQL literal.
func quote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func nullable(s string) string {
	if s == "" {
		return "null"
	}
	return "'" + quote(s) + "'"
}
