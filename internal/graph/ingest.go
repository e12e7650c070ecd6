package graph

import (
	"strings"

	"go.uber.org/zap"

	"github.com/uspn-tools/rostergen/internal/infer"
	"github.com/uspn-tools/rostergen/internal/model"
	"github.com/uspn-tools/rostergen/internal/reader"
	"github.com/uspn-tools/rostergen/internal/textutil"
)

// sheetComposante is the unit the spreadsheet source describes; its sections
// never name one explicitly.
const sheetComposante = "Institut Galilée"

// IngestFormation normalizes one CSV record into the graph: hierarchy fields
// are inferred where missing, the chain is built root-to-leaf and one
// assignment is recorded. A record resolving to no entity at all is dropped.
func (b *Builder) IngestFormation(rec reader.FormationRecord) {
	formation := textutil.CleanWhitespace(rec.FormationName)
	composante := textutil.CleanWhitespace(rec.Composante)
	departement := textutil.CleanWhitespace(rec.Departement)
	mention := textutil.CleanWhitespace(rec.Mention)
	parcours := textutil.CleanWhitespace(rec.Parcours)
	roleExact := textutil.CleanWhitespace(rec.RoleExact)
	last := textutil.CleanWhitespace(rec.LastName)
	first := textutil.CleanWhitespace(rec.FirstName)
	email := textutil.CleanWhitespace(rec.Email)
	phone := textutil.CleanWhitespace(rec.Phone)
	office := textutil.CleanWhitespace(rec.Office)

	if composante == "" {
		composante = infer.Composante(strings.Join([]string{formation, mention, departement}, " "))
	}
	if departement == "" {
		departement = infer.Departement(strings.Join([]string{formation, mention, composante}, " "))
	}
	if mention == "" {
		mention = infer.MentionFromFormation(formation)
	}

	niveau := ""
	parcoursName := ""
	switch {
	case parcours != "" && infer.IsNiveauLike(parcours):
		niveau = parcours
		parcoursName = "Tronc commun"
	case parcours != "":
		parcoursName = parcours
	case mention != "" || departement != "" || composante != "":
		parcoursName = "Tronc commun"
	}
	if niveau == "" {
		niveau = infer.NiveauFromRole(roleExact)
	}

	entityID := b.buildChain([]chainLevel{
		{model.TypeComposante, composante},
		{model.TypeDepartement, departement},
		{model.TypeMention, mention},
		{model.TypeParcours, parcoursName},
		{model.TypeNiveau, niveau},
	})
	if entityID == 0 {
		b.log.Debug("dropping record with no resolvable entity",
			zap.String("formation", formation),
			zap.String("role", roleExact),
		)
		return
	}

	if roleExact == "" {
		roleExact = "Responsable"
	}
	// The flat source always describes year-level responsibility, so the
	// director branch keys on NIVEAU regardless of chain depth.
	role := infer.MapRole(roleExact, model.TypeNiveau)
	b.addRole(role)

	if first == "" && last == "" {
		return
	}
	if last == "" {
		first, last = textutil.SplitFullName(first)
	}
	personID := b.GetOrCreatePerson(first, last, email, phone, office)

	b.addAssignment(personID, role.ID, entityID)
	if email != "" {
		b.addContact(personID, role.ID, entityID, email)
	}
}

// IngestSheetEntry normalizes one spreadsheet table row. The GENERAL and
// secretariat sections stay at composante level; any other section title is
// the mention, with the department inferred from it and the year level from
// the Fonction cell.
func (b *Builder) IngestSheetEntry(e reader.SheetEntry) {
	section := textutil.CleanWhitespace(e.Section)
	fonction := textutil.CleanWhitespace(e.Fonction)
	fullName := textutil.CleanWhitespace(e.Nom)
	email := textutil.CleanWhitespace(e.Email)
	phone := textutil.CleanWhitespace(e.Phone)
	office := textutil.CleanWhitespace(e.Bureau)

	departement := ""
	mention := ""
	parcoursName := ""
	niveau := ""

	lower := strings.ToLower(section)
	switch {
	case strings.EqualFold(section, "GENERAL"):
	case strings.HasPrefix(lower, "secrétariat"), strings.HasPrefix(lower, "secretariat"):
	default:
		mention = section
		departement = infer.Departement(section)
		parcoursName = "Tronc commun"
		niveau = infer.NiveauFromRole(fonction)
	}

	entityID := b.buildChain([]chainLevel{
		{model.TypeComposante, sheetComposante},
		{model.TypeDepartement, departement},
		{model.TypeMention, mention},
		{model.TypeParcours, parcoursName},
		{model.TypeNiveau, niveau},
	})

	roleType := model.TypeComposante
	if niveau != "" {
		roleType = model.TypeNiveau
	} else if mention != "" {
		roleType = model.TypeMention
	}
	if fonction == "" {
		fonction = "Responsable"
	}
	role := infer.MapRole(fonction, roleType)
	b.addRole(role)

	first, last := textutil.SplitFullName(fullName)
	personID := b.GetOrCreatePerson(first, last, email, phone, office)

	b.addAssignment(personID, role.ID, entityID)
	if email != "" {
		b.addContact(personID, role.ID, entityID, email)
	}
}
