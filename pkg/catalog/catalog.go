// Package catalog holds the activity catalog data model plus loading and
// validation of seed files.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Default returns the built-in seed catalog used when no seed file is
// configured.
func Default() Catalog {
	return Catalog{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Team": {
			Description:     "Join the school soccer team and compete in interschool matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		"Basketball Club": {
			Description:     "Practice basketball skills and play friendly games",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
		},
		"Art Workshop": {
			Description:     "Explore painting, drawing, and other visual arts",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
		},
		"Math Olympiad": {
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
		},
		"Science Club": {
			Description:     "Hands-on experiments and science fair preparation",
			Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"lucas@mergington.edu", "charlotte@mergington.edu"},
		},
	}
}

// Load reads a catalog seed file, validates it against the catalog schema and
// the roster invariants, and returns the parsed catalog.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(fileSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validate catalog file: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("catalog file %s is invalid: %s", path, strings.Join(details, "; "))
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the roster invariants that the JSON schema cannot express
// across fields: capacity is positive and no roster exceeds it.
func Validate(c Catalog) error {
	for name, activity := range c {
		if activity.MaxParticipants < 1 {
			return fmt.Errorf("activity %q has non-positive max_participants %d", name, activity.MaxParticipants)
		}
		if len(activity.Participants) > activity.MaxParticipants {
			return fmt.Errorf("activity %q has %d participants but max is %d",
				name, len(activity.Participants), activity.MaxParticipants)
		}
		seen := make(map[string]struct{}, len(activity.Participants))
		for _, email := range activity.Participants {
			if _, dup := seen[email]; dup {
				return fmt.Errorf("activity %q lists %s more than once", name, email)
			}
			seen[email] = struct{}{}
		}
	}
	return nil
}
