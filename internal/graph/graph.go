// Package graph accumulates both roster sources into one normalized in-memory
// graph: the entity hierarchy, deduplicated people, the role vocabulary and
// the assignments binding them. All state lives in a Builder constructed per
// run; there is no package-level accumulation.
package graph

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/uspn-tools/rostergen/internal/model"
)

// Fixed seed constants for the target academic year.
const (
	YearID    = 3 // 2025-2026
	DateStart = "2025-09-01"
)

// Synthetic identifier bases, kept above every hand-authored id in the target
// schema so generated rows never collide with existing seed data.
const (
	entityIDBase = 1000
	personIDBase = 1000

	// AssignmentIDBase and ContactIDBase seed the id sequences the emitter
	// assigns at render time.
	AssignmentIDBase = 2000
	ContactIDBase    = 3000
)

type entityKey struct {
	typ      model.EntityType
	name     string
	parentID int
}

type personKey struct {
	email string
	first string
	last  string
}

// Builder owns every identity map and counter of one pipeline run.
type Builder struct {
	entityIDs      map[entityKey]int
	entitiesByType map[model.EntityType][]model.Entity // creation order per type
	nextEntityID   int

	roles map[string]string // role id -> first-seen label

	personIDs    map[personKey]int
	people       map[int]*model.Person
	personOrder  []int
	nextPersonID int
	usedLogins   map[string]bool

	assignments []model.Assignment
	seenAssign  map[model.AssignmentKey]bool
	contacts    []model.Contact

	log *zap.Logger
}

// NewBuilder returns an empty build context.
func NewBuilder() *Builder {
	return &Builder{
		entityIDs:      make(map[entityKey]int),
		entitiesByType: make(map[model.EntityType][]model.Entity),
		nextEntityID:   entityIDBase,
		roles:          make(map[string]string),
		personIDs:      make(map[personKey]int),
		people:         make(map[int]*model.Person),
		nextPersonID:   personIDBase,
		usedLogins:     make(map[string]bool),
		seenAssign:     make(map[model.AssignmentKey]bool),
		log:            zap.L().With(zap.String("component", "graph")),
	}
}

// GetOrCreateEntity resolves (type, name, parent) to a node id, allocating
// the next synthetic id on first sight. Later sightings never alter name or
// parent.
func (b *Builder) GetOrCreateEntity(typ model.EntityType, name string, parentID int) int {
	key := entityKey{typ: typ, name: name, parentID: parentID}
	if id, ok := b.entityIDs[key]; ok {
		return id
	}
	id := b.nextEntityID
	b.nextEntityID++
	b.entityIDs[key] = id
	b.entitiesByType[typ] = append(b.entitiesByType[typ], model.Entity{
		ID:       id,
		Type:     typ,
		Name:     name,
		ParentID: parentID,
	})
	return id
}

var loginStrip = regexp.MustCompile(`[^a-z0-9.]+`)

// GetOrCreatePerson resolves (email, first, last) to a person id. A repeat
// sighting fills in email, phone or office if they were previously unset but
// never overwrites a set value. The login is derived once at creation and
// suffixed until unique.
func (b *Builder) GetOrCreatePerson(first, last, email, phone, office string) int {
	key := personKey{
		email: strings.ToLower(strings.TrimSpace(email)),
		first: strings.ToLower(strings.TrimSpace(first)),
		last:  strings.ToLower(strings.TrimSpace(last)),
	}
	if id, ok := b.personIDs[key]; ok {
		p := b.people[id]
		if email != "" && p.Email == "" {
			p.Email = email
		}
		if phone != "" && p.Phone == "" {
			p.Phone = phone
		}
		if office != "" && p.Office == "" {
			p.Office = office
		}
		return id
	}

	id := b.nextPersonID
	b.nextPersonID++
	b.personIDs[key] = id

	base := strings.ReplaceAll(strings.ToLower(first+"."+last), " ", ".")
	base = loginStrip.ReplaceAllString(base, "")
	if base == "" {
		base = fmt.Sprintf("user%d", id)
	}
	login := b.claimLogin(base)

	b.people[id] = &model.Person{
		ID:        id,
		Login:     login,
		LastName:  last,
		FirstName: first,
		Email:     email,
		Phone:     phone,
		Office:    office,
	}
	b.personOrder = append(b.personOrder, id)
	return id
}

// claimLogin reserves the login, appending .2, .3, ... until unique.
func (b *Builder) claimLogin(login string) string {
	if b.usedLogins[login] {
		suffix := 2
		for b.usedLogins[fmt.Sprintf("%s.%d", login, suffix)] {
			suffix++
		}
		login = fmt.Sprintf("%s.%d", login, suffix)
	}
	b.usedLogins[login] = true
	return login
}

// addRole records the role label on first sight; later labels are ignored.
func (b *Builder) addRole(r model.Role) {
	if _, ok := b.roles[r.ID]; !ok {
		b.roles[r.ID] = r.Label
	}
}

// addAssignment appends one assignment unless its four-tuple key was already
// seen; the earlier record is never modified.
func (b *Builder) addAssignment(personID int, roleID string, entityID int) {
	a := model.Assignment{
		PersonID:  personID,
		RoleID:    roleID,
		EntityID:  entityID,
		YearID:    YearID,
		DateStart: DateStart,
	}
	if b.seenAssign[a.Key()] {
		return
	}
	b.seenAssign[a.Key()] = true
	b.assignments = append(b.assignments, a)
}

func (b *Builder) addContact(personID int, roleID string, entityID int, email string) {
	b.contacts = append(b.contacts, model.Contact{
		Assignment: model.AssignmentKey{PersonID: personID, RoleID: roleID, EntityID: entityID, YearID: YearID},
		Email:      email,
		EmailType:  "fonction",
	})
}

// chainLevel is one segment of the composante -> niveau chain.
type chainLevel struct {
	typ  model.EntityType
	name string
}

// buildChain creates the entity chain root-to-leaf, skipping empty levels and
// passing each resolved id as the next level's parent. It returns the deepest
// resolved id, or 0 when every level was empty.
func (b *Builder) buildChain(levels []chainLevel) int {
	id := 0
	for _, lv := range levels {
		if lv.name == "" {
			continue
		}
		id = b.GetOrCreateEntity(lv.typ, lv.name, id)
	}
	return id
}

// Export is the deterministic snapshot the emitter renders.
type Export struct {
	Roles          []model.Role // sorted by id, builtin vocabulary excluded
	EntitiesByType map[model.EntityType][]model.Entity
	People         []model.Person
	Assignments    []model.Assignment
	Contacts       []model.Contact
	YearID         int
}

// Export sorts the accumulated graph into emission order: roles by id,
// entities by id within each type, people by id, assignments and contacts in
// encounter order.
func (b *Builder) Export() Export {
	builtin := make(map[string]bool)
	for _, id := range model.BuiltinRoleIDs() {
		builtin[id] = true
	}
	roleIDs := make([]string, 0, len(b.roles))
	for id := range b.roles {
		if !builtin[id] {
			roleIDs = append(roleIDs, id)
		}
	}
	sort.Strings(roleIDs)
	roles := make([]model.Role, 0, len(roleIDs))
	for _, id := range roleIDs {
		roles = append(roles, model.Role{ID: id, Label: b.roles[id]})
	}

	byType := make(map[model.EntityType][]model.Entity, len(b.entitiesByType))
	for typ, ents := range b.entitiesByType {
		sorted := make([]model.Entity, len(ents))
		copy(sorted, ents)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
		byType[typ] = sorted
	}

	people := make([]model.Person, 0, len(b.people))
	for _, id := range b.personOrder {
		people = append(people, *b.people[id])
	}
	sort.Slice(people, func(i, j int) bool { return people[i].ID < people[j].ID })

	return Export{
		Roles:          roles,
		EntitiesByType: byType,
		People:         people,
		Assignments:    append([]model.Assignment(nil), b.assignments...),
		Contacts:       append([]model.Contact(nil), b.contacts...),
		YearID:         YearID,
	}
}

// EntityCount returns the number of hierarchy nodes created so far.
func (b *Builder) EntityCount() int {
	return len(b.entityIDs)
}
