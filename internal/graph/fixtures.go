package graph

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/uspn-tools/rostergen/internal/model"
)

// fixtureExtraRoles are administrative role ids with no occurrence in the
// sources that still need a placeholder account downstream.
var fixtureExtraRoles = []string{
	"utilisateur-simple",
	"administrateur",
	"services-centraux",
}

var fixtureLoginStrip = regexp.MustCompile(`[^a-z0-9.\-]+`)

// AddRoleFixtures manufactures one placeholder person and assignment for
// every role in the vocabulary, including roles never seen in the input, so
// downstream consumers always have at least one example per role. Roles are
// skipped when the graph holds no entity to attach them to.
func (b *Builder) AddRoleFixtures() {
	ids := make(map[string]bool, len(b.roles))
	for id := range b.roles {
		ids[id] = true
	}
	for _, id := range model.BuiltinRoleIDs() {
		ids[id] = true
	}
	for _, id := range fixtureExtraRoles {
		ids[id] = true
	}

	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	for _, roleID := range sorted {
		entityID := b.pickEntityForRole(roleID)
		if entityID == 0 {
			b.log.Debug("no entity available for fixture role", zap.String("role", roleID))
			continue
		}

		lastName := strings.ToUpper(strings.ReplaceAll(roleID, "-", " "))
		personID := b.GetOrCreatePerson("Test", lastName, "", "", "")

		// Fixture accounts get a deterministic role-specific login, recycling
		// the name-derived one claimed at creation.
		login := fixtureLoginStrip.ReplaceAllString(strings.ToLower("test."+strings.ReplaceAll(roleID, "_", "-")), "")
		if b.usedLogins[login] {
			suffix := 2
			for b.usedLogins[fmt.Sprintf("%s.%d", login, suffix)] {
				suffix++
			}
			login = fmt.Sprintf("%s.%d", login, suffix)
		}
		delete(b.usedLogins, b.people[personID].Login)
		b.people[personID].Login = login
		b.usedLogins[login] = true

		b.addAssignment(personID, roleID, entityID)
	}
}

// pickEntityForRole chooses a representative entity by fixed preference:
// year-level roles take the first NIVEAU node, formation and specialty roles
// the first PARCOURS, director roles their matching level, everything else
// the first COMPOSANTE, falling back through the hierarchy when a preferred
// type has no node yet.
func (b *Builder) pickEntityForRole(roleID string) int {
	prefer := func(typ model.EntityType) int {
		if ents := b.entitiesByType[typ]; len(ents) > 0 {
			return ents[0].ID
		}
		return 0
	}

	switch roleID {
	case model.RoleResponsableAnnee:
		if id := prefer(model.TypeNiveau); id != 0 {
			return id
		}
	case model.RoleResponsableFormation, model.RoleDirecteurSpecialite:
		if id := prefer(model.TypeParcours); id != 0 {
			return id
		}
	case model.RoleDirecteurMention:
		if id := prefer(model.TypeMention); id != 0 {
			return id
		}
	case model.RoleDirecteurDepartement:
		if id := prefer(model.TypeDepartement); id != 0 {
			return id
		}
	case model.RoleDirecteurComposante:
		if id := prefer(model.TypeComposante); id != 0 {
			return id
		}
	}

	if id := prefer(model.TypeComposante); id != 0 {
		return id
	}
	for _, typ := range []model.EntityType{model.TypeDepartement, model.TypeMention, model.TypeParcours, model.TypeNiveau} {
		if id := prefer(typ); id != 0 {
			return id
		}
	}
	return 0
}
