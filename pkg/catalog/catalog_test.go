package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c, 9)

	expected := []string{
		"Chess Club", "Programming Class", "Gym Class", "Soccer Team",
		"Basketball Club", "Art Workshop", "Drama Club", "Math Olympiad", "Science Club",
	}
	for _, name := range expected {
		assert.Contains(t, c, name)
	}

	require.NoError(t, Validate(c))

	for name, activity := range c {
		assert.NotEmpty(t, activity.Description, "activity %q has no description", name)
		assert.NotEmpty(t, activity.Schedule, "activity %q has no schedule", name)
		assert.Positive(t, activity.MaxParticipants, "activity %q has no capacity", name)
		for _, email := range activity.Participants {
			assert.True(t, strings.HasSuffix(email, "@mergington.edu"),
				"participant %s of %q has unexpected domain", email, name)
		}
	}
}

func TestActivity_Helpers(t *testing.T) {
	activity := Activity{
		MaxParticipants: 2,
		Participants:    []string{"a@x.com"},
	}

	assert.Equal(t, 1, activity.SpotsLeft())
	assert.False(t, activity.IsFull())
	assert.True(t, activity.HasParticipant("a@x.com"))
	assert.False(t, activity.HasParticipant("b@x.com"))

	activity.Participants = append(activity.Participants, "b@x.com")
	assert.True(t, activity.IsFull())
	assert.Equal(t, 0, activity.SpotsLeft())
}

func TestCatalog_CloneIsDeep(t *testing.T) {
	original := Catalog{
		"Chess Club": {MaxParticipants: 2, Participants: []string{"a@x.com"}},
	}

	clone := original.Clone()
	chess := clone["Chess Club"]
	chess.Participants[0] = "mutated@x.com"

	assert.Equal(t, "a@x.com", original["Chess Club"].Participants[0])
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     string
		checkResult func(t *testing.T, c Catalog)
	}{
		{
			name: "valid catalog",
			content: `{
				"Chess Club": {
					"description": "Chess",
					"schedule": "Fridays",
					"max_participants": 2,
					"participants": ["a@x.com"]
				}
			}`,
			checkResult: func(t *testing.T, c Catalog) {
				require.Len(t, c, 1)
				assert.Equal(t, 2, c["Chess Club"].MaxParticipants)
				assert.Equal(t, []string{"a@x.com"}, c["Chess Club"].Participants)
			},
		},
		{
			name: "missing required field",
			content: `{
				"Chess Club": {
					"description": "Chess",
					"max_participants": 2,
					"participants": []
				}
			}`,
			wantErr: "invalid",
		},
		{
			name: "non-positive capacity",
			content: `{
				"Chess Club": {
					"description": "Chess",
					"schedule": "Fridays",
					"max_participants": 0,
					"participants": []
				}
			}`,
			wantErr: "invalid",
		},
		{
			name: "roster over capacity",
			content: `{
				"Chess Club": {
					"description": "Chess",
					"schedule": "Fridays",
					"max_participants": 1,
					"participants": ["a@x.com", "b@x.com"]
				}
			}`,
			wantErr: "participants",
		},
		{
			name:    "malformed json",
			content: `{"Chess Club": `,
			wantErr: "validate catalog file",
		},
		{
			name:    "empty catalog",
			content: `{}`,
			wantErr: "invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalogFile(t, tt.content)

			c, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.checkResult(t, c)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog file")
}

func TestValidate_DuplicateParticipant(t *testing.T) {
	c := Catalog{
		"Chess Club": {
			MaxParticipants: 5,
			Participants:    []string{"a@x.com", "a@x.com"},
		},
	}

	err := Validate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")
}
