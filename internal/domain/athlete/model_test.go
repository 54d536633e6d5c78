package athlete_test

import (
	"testing"

	"motive/internal/domain/athlete"
)

// TestAthleteValidation tests validation of Athlete.
func TestAthleteValidation(t *testing.T) {
	tests := []struct {
		name    string
		athlete athlete.Athlete
		wantErr bool
	}{
		{
			name: "valid athlete",
			athlete: athlete.Athlete{
				ID:     "123",
				Name:   "John Doe",
				Age:    16,
				Grade:  10,
				Email:  "john.doe@example.com",
				Sport:  "Basketball",
				Team:   "Team Alpha",
				School: "Central High School",
			},
			wantErr: false,
		},
		{
			name: "valid with optional fields unset",
			athlete: athlete.Athlete{
				Name: "Jane Smith",
			},
			wantErr: false,
		},
		{
			name: "empty name",
			athlete: athlete.Athlete{
				Name:  "",
				Email: "john@example.com",
			},
			wantErr: true,
		},
		{
			name: "whitespace name",
			athlete: athlete.Athlete{
				Name: "   ",
			},
			wantErr: true,
		},
		{
			name: "invalid email",
			athlete: athlete.Athlete{
				Name:  "John Doe",
				Email: "not-an-email",
			},
			wantErr: true,
		},
		{
			name: "age below range",
			athlete: athlete.Athlete{
				Name: "John Doe",
				Age:  8,
			},
			wantErr: true,
		},
		{
			name: "age above range",
			athlete: athlete.Athlete{
				Name: "John Doe",
				Age:  30,
			},
			wantErr: true,
		},
		{
			name: "grade out of range",
			athlete: athlete.Athlete{
				Name:  "John Doe",
				Grade: 8,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.athlete.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestAthleteSearchFields verifies free-text search covers name, team,
// sport and school but not contact details.
func TestAthleteSearchFields(t *testing.T) {
	a := athlete.Athlete{
		Name:   "John Doe",
		Email:  "john@example.com",
		Sport:  "Soccer",
		Team:   "Team Alpha",
		School: "Central High School",
	}
	fields := a.SearchFields()
	want := []string{"John Doe", "Team Alpha", "Soccer", "Central High School"}
	if len(fields) != len(want) {
		t.Fatalf("SearchFields() returned %d fields, want %d", len(fields), len(want))
	}
	for i, f := range fields {
		if f != want[i] {
			t.Errorf("SearchFields()[%d] = %q, want %q", i, f, want[i])
		}
	}
}
