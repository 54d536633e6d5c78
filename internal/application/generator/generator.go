// Package generator produces the randomized School → Team → {Athlete, Coach}
// hierarchy that seeds the roster at startup. Generation keeps the
// cross-references consistent: every athlete and coach carries the name of
// the team and school it was generated under.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"motive/internal/domain/athlete"
	"motive/internal/domain/coach"
	"motive/internal/domain/school"
	"motive/internal/domain/team"
)

// Shape constants for the generated hierarchy.
const (
	MinSportsPerSchool = 3
	MaxSportsPerSchool = 5
	AthletesPerTeam    = 10
	CoachesPerTeam     = 3
)

// Generator builds hierarchies from the catalog using the supplied random
// source. It is stateless apart from the source: every Generate call yields
// a fresh hierarchy, and two generators with identically seeded sources
// yield the same names, structure and values. Record IDs are fresh uuids
// on every run regardless of the seed.
type Generator struct {
	catalog Catalog
	rng     *rand.Rand
}

// New creates a Generator over the embedded catalog.
// PRE: rng is non-nil
// POST: Returns a ready generator or a catalog error
func New(rng *rand.Rand) (*Generator, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	return &Generator{catalog: catalog, rng: rng}, nil
}

// Catalog exposes the value tables, chiefly so views can offer the sport
// list as filter options.
func (g *Generator) Catalog() Catalog {
	return g.catalog
}

// Generate produces a full hierarchy: one school per catalog entry, a team
// for each of 3-5 distinct sports per school, and 10 athletes plus 3
// coaches per team.
// POST: Every generated person's Team and School name an owning record
func (g *Generator) Generate() Hierarchy {
	var h Hierarchy
	for _, entry := range g.catalog.Schools {
		h.Schools = append(h.Schools, g.generateSchool(entry))
	}
	return h
}

func (g *Generator) generateSchool(entry SchoolEntry) SchoolNode {
	node := SchoolNode{
		School: school.School{
			ID:    uuid.New().String(),
			Name:  entry.Name,
			City:  entry.City,
			State: entry.State,
			Type:  entry.Type,
		},
	}
	for _, sport := range g.pickSports() {
		node.Teams = append(node.Teams, g.generateTeam(entry.Name, sport))
	}
	return node
}

// pickSports chooses 3-5 distinct sports from the catalog.
func (g *Generator) pickSports() []string {
	n := g.intBetween(MinSportsPerSchool, MaxSportsPerSchool)
	perm := g.rng.Perm(len(g.catalog.Sports))
	picked := make([]string, n)
	for i := 0; i < n; i++ {
		picked[i] = g.catalog.Sports[perm[i]]
	}
	return picked
}

func (g *Generator) generateTeam(schoolName, sport string) TeamNode {
	teamName := schoolName + " " + sport
	node := TeamNode{
		Team: team.Team{
			ID:     uuid.New().String(),
			Name:   teamName,
			Sport:  sport,
			School: schoolName,
		},
	}
	for i := 0; i < AthletesPerTeam; i++ {
		node.Athletes = append(node.Athletes, g.generateAthlete(teamName, sport, schoolName))
	}
	for i := 0; i < CoachesPerTeam; i++ {
		node.Coaches = append(node.Coaches, g.generateCoach(teamName, schoolName))
	}
	// The roster views display the head coach on the team row.
	node.Team.Coach = node.Coaches[0].Name
	return node
}

func (g *Generator) generateAthlete(teamName, sport, schoolName string) athlete.Athlete {
	name := g.personName()
	return athlete.Athlete{
		ID:     uuid.New().String(),
		Name:   name,
		Age:    g.intBetween(14, 18),
		Grade:  g.intBetween(9, 12),
		Email:  g.email(name),
		Phone:  g.phone(),
		Sport:  sport,
		Team:   teamName,
		School: schoolName,
		Performance: athlete.Performance{
			Strength:       g.intBetween(60, 100),
			Speed:          g.intBetween(60, 100),
			Endurance:      g.intBetween(60, 100),
			Agility:        g.intBetween(60, 100),
			Attendance:     g.intBetween(80, 100),
			RecentProgress: g.intBetween(-10, 10),
		},
	}
}

func (g *Generator) generateCoach(teamName, schoolName string) coach.Coach {
	name := g.personName()
	pool := g.catalog.Specializations()
	return coach.Coach{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          g.email(name),
		Phone:          g.phone(),
		Team:           teamName,
		School:         schoolName,
		Specialization: pool[g.rng.IntN(len(pool))],
		Experience:     coach.FormatExperience(g.intBetween(5, 25)),
		Achievements:   g.catalog.Achievements[:g.intBetween(1, len(g.catalog.Achievements))],
	}
}

func (g *Generator) personName() string {
	first := g.catalog.FirstNames[g.rng.IntN(len(g.catalog.FirstNames))]
	last := g.catalog.LastNames[g.rng.IntN(len(g.catalog.LastNames))]
	return first + " " + last
}

// email derives an address from a name: lowercased, non-letters stripped,
// plus a random catalog domain.
func (g *Generator) email(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	domain := g.catalog.EmailDomains[g.rng.IntN(len(g.catalog.EmailDomains))]
	return b.String() + "@" + domain
}

// phone produces a US-style "(nnn) nnn-nnnn" number.
func (g *Generator) phone() string {
	return fmt.Sprintf("(%d) %d-%d",
		g.intBetween(100, 999),
		g.intBetween(100, 999),
		g.intBetween(1000, 9999),
	)
}

// intBetween returns a random integer in [min, max].
func (g *Generator) intBetween(min, max int) int {
	return min + g.rng.IntN(max-min+1)
}
