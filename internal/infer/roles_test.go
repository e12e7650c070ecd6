package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uspn-tools/rostergen/internal/model"
)

func TestMapRole(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		entityType model.EntityType
		wantID     string
		wantLabel  string
	}{
		{
			name:       "responsable with year marker",
			label:      "Responsable 2ème année",
			entityType: model.TypeNiveau,
			wantID:     model.RoleResponsableAnnee,
			wantLabel:  "Responsable annee",
		},
		{
			name:       "responsable without marker",
			label:      "Responsable pédagogique",
			entityType: model.TypeNiveau,
			wantID:     model.RoleResponsableFormation,
			wantLabel:  "Responsable de formation",
		},
		{
			name:       "directeur composante",
			label:      "Directeur",
			entityType: model.TypeComposante,
			wantID:     model.RoleDirecteurComposante,
			wantLabel:  "Directeur de composante",
		},
		{
			name:       "directrice departement",
			label:      "Directrice adjointe",
			entityType: model.TypeDepartement,
			wantID:     model.RoleDirecteurDepartement,
			wantLabel:  "Chef de departement",
		},
		{
			name:       "directeur mention",
			label:      "Directeur des études",
			entityType: model.TypeMention,
			wantID:     model.RoleDirecteurMention,
			wantLabel:  "Directeur de mention",
		},
		{
			name:       "directeur parcours",
			label:      "Directeur",
			entityType: model.TypeParcours,
			wantID:     model.RoleDirecteurSpecialite,
			wantLabel:  "Directeur de specialite",
		},
		{
			name:       "directeur at niveau mints a new role",
			label:      "Directeur",
			entityType: model.TypeNiveau,
			wantID:     "role-directeur",
			wantLabel:  "Directeur",
		},
		{
			name:       "unknown label mints a slug role",
			label:      "Chargé de mission égalité",
			entityType: model.TypeComposante,
			wantID:     "role-charge-de-mission-egalite",
			wantLabel:  "Chargé de mission égalité",
		},
		{
			// The responsable test runs first: a label carrying both words
			// resolves as a responsable role.
			name:       "responsable wins over directeur",
			label:      "Responsable et directeur des études",
			entityType: model.TypeComposante,
			wantID:     model.RoleResponsableFormation,
			wantLabel:  "Responsable de formation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role := MapRole(tt.label, tt.entityType)
			assert.Equal(t, tt.wantID, role.ID)
			assert.Equal(t, tt.wantLabel, role.Label)
		})
	}
}
