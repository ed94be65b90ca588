package model

// Status is the editing status of a scene.
type Status int

const (
	StatusNone Status = iota
	StatusOutline
	StatusDraft
	Status1stEdit
	Status2ndEdit
	StatusDone
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusOutline:
		return "Outline"
	case StatusDraft:
		return "Draft"
	case Status1stEdit:
		return "1st Edit"
	case Status2ndEdit:
		return "2nd Edit"
	case StatusDone:
		return "Done"
	default:
		return ""
	}
}

// Sentinels for scenes whose start is unknown.
const (
	NullDate = "0001-01-01"
	NullTime = "00:00:00"
)

// Action/reaction markers.
const (
	ActionMarker   = "A"
	ReactionMarker = "R"
)

// Duration is a normalized scene duration: Hours < 24, Minutes < 60.
type Duration struct {
	Days    int
	Hours   int
	Minutes int
}

// Scene is a single narrative unit.
type Scene struct {
	Title string
	Desc  string
	Notes string
	Tags  []string

	// Ratings holds the four custom rating fields; 0 means unset.
	Ratings [4]int

	Unused        bool
	NotesScene    bool
	TodoScene     bool
	DoNotExport   bool
	AppendToPrev  bool
	ReactionScene bool

	Status   Status
	Goal     string
	Conflict string
	Outcome  string
	Image    string

	// Characters is ordered; the first entry, if any, is the viewpoint.
	Characters []CharacterID
	Locations  []LocationID
	Items      []ItemID

	// Specific start in ISO form (yyyy-mm-dd, hh:mm:ss). Empty when unknown.
	Date string
	Time string

	// Unspecific start, used when Date is empty or NullDate.
	Day    string
	Hour   string
	Minute string

	// Lasts is nil when no duration is known.
	Lasts *Duration

	content     string
	wordCount   int
	letterCount int
}

// Content returns the scene text.
func (s *Scene) Content() string {
	return s.content
}

// SetContent sets the scene text and recomputes the word and letter counts.
func (s *Scene) SetContent(text string) {
	s.content = text
	s.wordCount = WordCount(text)
	s.letterCount = LetterCount(text)
}

// WordCount returns the derived word count of the content.
func (s *Scene) WordCount() int {
	return s.wordCount
}

// LetterCount returns the derived letter count of the content.
func (s *Scene) LetterCount() int {
	return s.letterCount
}

// HasSpecificDate reports whether the scene has a real calendar date.
func (s *Scene) HasSpecificDate() bool {
	return s.Date != "" && s.Date != NullDate
}

// SetViewpoint moves id to the front of the character list, removing an
// earlier occurrence first.
func (s *Scene) SetViewpoint(id CharacterID) {
	chars := make([]CharacterID, 0, len(s.Characters)+1)
	chars = append(chars, id)
	for _, c := range s.Characters {
		if c != id {
			chars = append(chars, c)
		}
	}
	s.Characters = chars
}

// Viewpoint returns the viewpoint character, if any.
func (s *Scene) Viewpoint() (CharacterID, bool) {
	if len(s.Characters) == 0 {
		return 0, false
	}
	return s.Characters[0], true
}

// AddCharacter appends id unless it is already present.
func (s *Scene) AddCharacter(id CharacterID) {
	for _, c := range s.Characters {
		if c == id {
			return
		}
	}
	s.Characters = append(s.Characters, id)
}

// AddLocation appends id unless it is already present.
func (s *Scene) AddLocation(id LocationID) {
	for _, l := range s.Locations {
		if l == id {
			return
		}
	}
	s.Locations = append(s.Locations, id)
}

// AddItem appends id unless it is already present.
func (s *Scene) AddItem(id ItemID) {
	for _, it := range s.Items {
		if it == id {
			return
		}
	}
	s.Items = append(s.Items, id)
}
