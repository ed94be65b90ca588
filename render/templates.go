package render

// Templates holds one text template per entity kind and classification
// variant. An empty template means the matching unit is skipped.
//
// Templates use $Name or ${Name} placeholders; $$ is a literal dollar sign.
type Templates struct {
	FileHeader string `yaml:"file_header"`
	FileFooter string `yaml:"file_footer"`

	Part               string `yaml:"part"`
	Chapter            string `yaml:"chapter"`
	NotesChapter       string `yaml:"notes_chapter"`
	TodoChapter        string `yaml:"todo_chapter"`
	UnusedChapter      string `yaml:"unused_chapter"`
	NotExportedChapter string `yaml:"not_exported_chapter"`

	ChapterEnd            string `yaml:"chapter_end"`
	NotesChapterEnd       string `yaml:"notes_chapter_end"`
	TodoChapterEnd        string `yaml:"todo_chapter_end"`
	UnusedChapterEnd      string `yaml:"unused_chapter_end"`
	NotExportedChapterEnd string `yaml:"not_exported_chapter_end"`

	Scene            string `yaml:"scene"`
	FirstScene       string `yaml:"first_scene"`
	AppendedScene    string `yaml:"appended_scene"`
	NotesScene       string `yaml:"notes_scene"`
	TodoScene        string `yaml:"todo_scene"`
	UnusedScene      string `yaml:"unused_scene"`
	NotExportedScene string `yaml:"not_exported_scene"`
	SceneDivider     string `yaml:"scene_divider"`

	CharacterSectionHeading string `yaml:"character_section_heading"`
	Character               string `yaml:"character"`
	LocationSectionHeading  string `yaml:"location_section_heading"`
	Location                string `yaml:"location"`
	ItemSectionHeading      string `yaml:"item_section_heading"`
	Item                    string `yaml:"item"`
}

// chapterVariant is the classification of a chapter.
type chapterVariant int

const (
	chapterTodo chapterVariant = iota
	chapterNotes
	chapterUnused
	chapterInfo
	chapterNotExported
	chapterPart
	chapterOrdinary
)

// heading returns the heading template for v.
func (t *Templates) heading(v chapterVariant) string {
	switch v {
	case chapterTodo:
		return t.TodoChapter
	case chapterNotes, chapterInfo:
		return t.NotesChapter
	case chapterUnused:
		return t.UnusedChapter
	case chapterNotExported:
		return t.NotExportedChapter
	case chapterPart:
		return t.Part
	default:
		return t.Chapter
	}
}

// ending returns the chapter end template for v. Parts end like ordinary
// chapters.
func (t *Templates) ending(v chapterVariant) string {
	switch v {
	case chapterTodo:
		return t.TodoChapterEnd
	case chapterNotes, chapterInfo:
		return t.NotesChapterEnd
	case chapterUnused:
		return t.UnusedChapterEnd
	case chapterNotExported:
		return t.NotExportedChapterEnd
	default:
		return t.ChapterEnd
	}
}

// sceneVariant is the classification of a scene.
type sceneVariant int

const (
	sceneTodo sceneVariant = iota
	sceneNotes
	sceneUnused
	sceneInfo
	sceneNotExported
	sceneOrdinary
)

// scene returns the template for a non-ordinary scene variant.
func (t *Templates) scene(v sceneVariant) string {
	switch v {
	case sceneTodo:
		return t.TodoScene
	case sceneNotes, sceneInfo:
		return t.NotesScene
	case sceneUnused:
		return t.UnusedScene
	case sceneNotExported:
		return t.NotExportedScene
	default:
		return t.Scene
	}
}
