// Package model holds the normalized roster types shared across the pipeline.
package model

// EntityType identifies a level of the organizational hierarchy.
type EntityType string

const (
	TypeComposante  EntityType = "COMPOSANTE"
	TypeDepartement EntityType = "DEPARTEMENT"
	TypeMention     EntityType = "MENTION"
	TypeParcours    EntityType = "PARCOURS"
	TypeNiveau      EntityType = "NIVEAU"
)

// HierarchyOrder lists entity types root-first. Chains are built and emitted
// in this order.
var HierarchyOrder = []EntityType{
	TypeComposante,
	TypeDepartement,
	TypeMention,
	TypeParcours,
	TypeNiveau,
}

// Entity is one node of the organizational forest. ParentID is 0 for roots.
type Entity struct {
	ID       int        `json:"id"`
	Type     EntityType `json:"type"`
	Name     string     `json:"name"`
	ParentID int        `json:"parent_id,omitempty"`
}

// Role is one entry of the controlled role vocabulary. The ID is a slug and
// doubles as the identity key; the label is informational only.
type Role struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Builtin role ids assumed already present in the target schema. The emitter
// skips them; the fixture generator still covers them.
const (
	RoleResponsableFormation = "responsable-formation"
	RoleResponsableAnnee     = "responsable-annee"
	RoleDirecteurComposante  = "directeur-composante"
	RoleDirecteurDepartement = "directeur-departement"
	RoleDirecteurMention     = "directeur-mention"
	RoleDirecteurSpecialite  = "directeur-specialite"
)

// BuiltinRoleIDs returns the hand-authored vocabulary in a fresh slice.
func BuiltinRoleIDs() []string {
	return []string{
		RoleResponsableFormation,
		RoleResponsableAnnee,
		RoleDirecteurComposante,
		RoleDirecteurDepartement,
		RoleDirecteurMention,
		RoleDirecteurSpecialite,
	}
}

// Person is a deduplicated roster member. Empty optional fields render as null.
type Person struct {
	ID        int    `json:"id"`
	Login     string `json:"login"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Office    string `json:"office,omitempty"`
}

// Assignment binds person x role x entity x academic year. DateEnd is always
// open for seed data.
type Assignment struct {
	PersonID  int    `json:"person_id"`
	RoleID    string `json:"role_id"`
	EntityID  int    `json:"entity_id"`
	YearID    int    `json:"year_id"`
	DateStart string `json:"date_start"`
}

// Key identifies the assignment for deduplication across sources.
func (a Assignment) Key() AssignmentKey {
	return AssignmentKey{PersonID: a.PersonID, RoleID: a.RoleID, EntityID: a.EntityID, YearID: a.YearID}
}

// AssignmentKey is the four-tuple identity of an assignment.
type AssignmentKey struct {
	PersonID int
	RoleID   string
	EntityID int
	YearID   int
}

// Contact is a functional-email side record attached to an assignment.
type Contact struct {
	Assignment AssignmentKey `json:"assignment"`
	Email      string        `json:"email"`
	EmailType  string        `json:"email_type"`
}
