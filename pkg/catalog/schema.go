package catalog

// Activity is a single extracurricular offering. Participants are kept in
// registration order and are unique within an activity.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Catalog maps activity name to its record.
type Catalog map[string]Activity

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// SpotsLeft returns the number of open spots on the roster.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull reports whether the roster is at capacity.
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for name, activity := range c {
		out[name] = activity.Clone()
	}
	return out
}

// fileSchema validates catalog files before they are trusted as seed state.
const fileSchema = `{
  "type": "object",
  "minProperties": 1,
  "additionalProperties": {
    "type": "object",
    "properties": {
      "description": {"type": "string"},
      "schedule": {"type": "string"},
      "max_participants": {"type": "integer", "minimum": 1},
      "participants": {
        "type": "array",
        "items": {"type": "string", "minLength": 3, "pattern": "@"},
        "uniqueItems": true
      }
    },
    "required": ["description", "schedule", "max_participants", "participants"],
    "additionalProperties": false
  }
}`
