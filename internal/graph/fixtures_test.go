package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uspn-tools/rostergen/internal/model"
	"github.com/uspn-tools/rostergen/internal/reader"
)

func seededBuilder() *Builder {
	b := NewBuilder()
	b.IngestFormation(reader.FormationRecord{
		FormationName: "Licence mention Informatique, parcours IA",
		Composante:    "Institut Galilée",
		RoleExact:     "Responsable 2ème année",
		LastName:      "MARTIN",
		FirstName:     "Alice",
		Email:         "alice.martin@univ.fr",
	})
	return b
}

func TestAddRoleFixtures_CoversWholeVocabulary(t *testing.T) {
	b := seededBuilder()
	b.AddRoleFixtures()

	ex := b.Export()

	covered := make(map[string]bool)
	for _, a := range ex.Assignments {
		covered[a.RoleID] = true
	}
	for _, id := range model.BuiltinRoleIDs() {
		assert.True(t, covered[id], "role %s has no assignment", id)
	}
	for _, id := range fixtureExtraRoles {
		assert.True(t, covered[id], "role %s has no assignment", id)
	}
}

func TestAddRoleFixtures_DeterministicLoginsAndNames(t *testing.T) {
	b := seededBuilder()
	b.AddRoleFixtures()

	ex := b.Export()

	byLogin := make(map[string]model.Person)
	for _, p := range ex.People {
		byLogin[p.Login] = p
	}

	p, ok := byLogin["test.responsable-annee"]
	require.True(t, ok, "fixture login missing")
	assert.Equal(t, "Test", p.FirstName)
	assert.Equal(t, "RESPONSABLE ANNEE", p.LastName)

	_, ok = byLogin["test.administrateur"]
	assert.True(t, ok)
}

func TestAddRoleFixtures_PreferredEntityPerRole(t *testing.T) {
	b := seededBuilder()
	b.AddRoleFixtures()

	ex := b.Export()
	niveau := ex.EntitiesByType[model.TypeNiveau][0].ID
	parcours := ex.EntitiesByType[model.TypeParcours][0].ID
	mention := ex.EntitiesByType[model.TypeMention][0].ID
	departement := ex.EntitiesByType[model.TypeDepartement][0].ID
	composante := ex.EntitiesByType[model.TypeComposante][0].ID

	entityOf := func(roleID, login string) int {
		var personID int
		for _, p := range ex.People {
			if p.Login == login {
				personID = p.ID
			}
		}
		for _, a := range ex.Assignments {
			if a.RoleID == roleID && a.PersonID == personID {
				return a.EntityID
			}
		}
		return 0
	}

	assert.Equal(t, niveau, entityOf(model.RoleResponsableAnnee, "test.responsable-annee"))
	assert.Equal(t, parcours, entityOf(model.RoleResponsableFormation, "test.responsable-formation"))
	assert.Equal(t, parcours, entityOf(model.RoleDirecteurSpecialite, "test.directeur-specialite"))
	assert.Equal(t, mention, entityOf(model.RoleDirecteurMention, "test.directeur-mention"))
	assert.Equal(t, departement, entityOf(model.RoleDirecteurDepartement, "test.directeur-departement"))
	assert.Equal(t, composante, entityOf(model.RoleDirecteurComposante, "test.directeur-composante"))
	// Roles without a matching level fall back to the first root.
	assert.Equal(t, composante, entityOf("administrateur", "test.administrateur"))
}

func TestAddRoleFixtures_EmptyGraphAddsNothing(t *testing.T) {
	b := NewBuilder()
	b.AddRoleFixtures()

	ex := b.Export()
	assert.Empty(t, ex.Assignments)
	assert.Empty(t, ex.People)
}

func TestAddRoleFixtures_LoginCollisionSuffixed(t *testing.T) {
	b := seededBuilder()
	// A real account already derived the login the fixture wants. The fixture
	// person then starts from test.administrateur.2, and the role-specific
	// login skips past both.
	b.GetOrCreatePerson("Test", "ADMINISTRATEUR", "x@univ.fr", "", "")

	b.AddRoleFixtures()

	ex := b.Export()
	logins := make(map[string]bool)
	for _, p := range ex.People {
		logins[p.Login] = true
	}
	assert.True(t, logins["test.administrateur"], "real account keeps its login")
	assert.True(t, logins["test.administrateur.3"], "fixture login is suffixed past the collision")
}
