package infer

import (
	"strings"

	"github.com/uspn-tools/rostergen/internal/model"
	"github.com/uspn-tools/rostergen/internal/textutil"
)

// anneeMarkers flag a "responsable" label as year-scoped rather than
// formation-scoped.
var anneeMarkers = []string{
	"année", "annee",
	"1ère", "1ere", "2ème", "2eme", "3ème", "3eme",
	"m1", "m2", "l1", "l2", "l3",
}

// MapRole classifies a free-text role label into the controlled vocabulary,
// minting a new role-<slug> id when nothing matches. The "responsable" tests
// run before the director tests, so a label containing both words resolves as
// a responsable role.
func MapRole(label string, entityType model.EntityType) model.Role {
	label = textutil.CleanWhitespace(label)
	l := strings.ToLower(label)

	if strings.Contains(l, "responsable") {
		for _, m := range anneeMarkers {
			if strings.Contains(l, m) {
				return model.Role{ID: model.RoleResponsableAnnee, Label: "Responsable annee"}
			}
		}
		return model.Role{ID: model.RoleResponsableFormation, Label: "Responsable de formation"}
	}

	if strings.Contains(l, "directeur") || strings.Contains(l, "directrice") {
		switch entityType {
		case model.TypeComposante:
			return model.Role{ID: model.RoleDirecteurComposante, Label: "Directeur de composante"}
		case model.TypeDepartement:
			return model.Role{ID: model.RoleDirecteurDepartement, Label: "Chef de departement"}
		case model.TypeMention:
			return model.Role{ID: model.RoleDirecteurMention, Label: "Directeur de mention"}
		case model.TypeParcours:
			return model.Role{ID: model.RoleDirecteurSpecialite, Label: "Directeur de specialite"}
		}
	}

	return model.Role{ID: "role-" + textutil.Slugify(label), Label: label}
}
