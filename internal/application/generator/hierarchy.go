package generator

import (
	"motive/internal/domain/athlete"
	"motive/internal/domain/coach"
	"motive/internal/domain/school"
	"motive/internal/domain/team"
)

// Hierarchy is the nested ownership structure a Generate call produces.
// The roster stores are seeded from its flattened views; after seeding, the
// stores mutate independently and the hierarchy is discarded.
type Hierarchy struct {
	Schools []SchoolNode
}

// SchoolNode is a school and the teams it owns.
type SchoolNode struct {
	School school.School
	Teams  []TeamNode
}

// TeamNode is a team and the people it owns.
type TeamNode struct {
	Team     team.Team
	Athletes []athlete.Athlete
	Coaches  []coach.Coach
}

// AllSchools returns every school in generation order.
func (h Hierarchy) AllSchools() []school.School {
	out := make([]school.School, 0, len(h.Schools))
	for _, s := range h.Schools {
		out = append(out, s.School)
	}
	return out
}

// AllTeams flattens every team, schools in generation order and teams
// within a school in generation order.
func (h Hierarchy) AllTeams() []team.Team {
	var out []team.Team
	for _, s := range h.Schools {
		for _, t := range s.Teams {
			out = append(out, t.Team)
		}
	}
	return out
}

// AllAthletes flattens every athlete, preserving the hierarchy's nesting
// order. A new slice is produced on every call.
func (h Hierarchy) AllAthletes() []athlete.Athlete {
	var out []athlete.Athlete
	for _, s := range h.Schools {
		for _, t := range s.Teams {
			out = append(out, t.Athletes...)
		}
	}
	return out
}

// AllCoaches flattens every coach, preserving the hierarchy's nesting order.
func (h Hierarchy) AllCoaches() []coach.Coach {
	var out []coach.Coach
	for _, s := range h.Schools {
		for _, t := range s.Teams {
			out = append(out, t.Coaches...)
		}
	}
	return out
}

// TeamsOfSchool returns the teams owned by the named school. The match is
// exact (case-sensitive); an unknown name yields an empty slice.
func (h Hierarchy) TeamsOfSchool(schoolName string) []team.Team {
	var out []team.Team
	for _, s := range h.Schools {
		if s.School.Name != schoolName {
			continue
		}
		for _, t := range s.Teams {
			out = append(out, t.Team)
		}
	}
	return out
}

// AthletesOfTeam returns the athletes whose team field names the given
// team. Exact match; empty slice when no team matches.
func (h Hierarchy) AthletesOfTeam(teamName string) []athlete.Athlete {
	var out []athlete.Athlete
	for _, a := range h.AllAthletes() {
		if a.Team == teamName {
			out = append(out, a)
		}
	}
	return out
}

// CoachesOfTeam returns the coaches whose team field names the given team.
func (h Hierarchy) CoachesOfTeam(teamName string) []coach.Coach {
	var out []coach.Coach
	for _, c := range h.AllCoaches() {
		if c.Team == teamName {
			out = append(out, c)
		}
	}
	return out
}

// AthletesOfSchool returns the athletes whose school field names the given
// school.
func (h Hierarchy) AthletesOfSchool(schoolName string) []athlete.Athlete {
	var out []athlete.Athlete
	for _, a := range h.AllAthletes() {
		if a.School == schoolName {
			out = append(out, a)
		}
	}
	return out
}

// CoachesOfSchool returns the coaches whose school field names the given
// school.
func (h Hierarchy) CoachesOfSchool(schoolName string) []coach.Coach {
	var out []coach.Coach
	for _, c := range h.AllCoaches() {
		if c.School == schoolName {
			out = append(out, c)
		}
	}
	return out
}
