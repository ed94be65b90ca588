package model

// Chapter levels.
const (
	LevelChapter = 0
	LevelPart    = 1
)

// Legacy chapter types from projects that predate ChapterType.
const (
	OldTypeChapter = 0
	OldTypeInfo    = 1
)

// ChapterType is the modern chapter type.
type ChapterType int

const (
	ChapterNormal ChapterType = iota
	ChapterNotes
	ChapterTodo
)

// String returns the display name of the chapter type.
func (t ChapterType) String() string {
	switch t {
	case ChapterNotes:
		return "Notes"
	case ChapterTodo:
		return "Todo"
	default:
		return "Normal"
	}
}

// Chapter is a part (Level == LevelPart) or a chapter (Level == LevelChapter).
type Chapter struct {
	Title   string
	Desc    string
	Level   int
	OldType int
	Type    ChapterType
	Unused  bool

	// Scenes is the ordered list of owned scene IDs.
	Scenes []SceneID
}

// IsPart reports whether the chapter begins a part.
func (c *Chapter) IsPart() bool {
	return c.Level == LevelPart
}

// AddScene appends id to the chapter's scene list.
func (c *Chapter) AddScene(id SceneID) {
	c.Scenes = append(c.Scenes, id)
}
