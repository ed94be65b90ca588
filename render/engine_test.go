package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter88213/aeon3md/internal/logger"
	"github.com/peter88213/aeon3md/model"
)

// storyNovel is one part, one chapter with two scenes and a notes chapter
// holding one off-narrative scene.
func storyNovel(t *testing.T) *model.Novel {
	t.Helper()
	n := model.New()

	opening := model.Scene{Title: "Opening", Desc: "One", Status: model.StatusOutline}
	opening.SetContent("It was a dark night.")
	second := model.Scene{Title: "Scene two", Desc: "Two", Status: model.StatusOutline}
	second.SetContent("Rain.")
	s1 := n.AddScene(opening)
	s2 := n.AddScene(second)
	s3 := n.AddScene(model.Scene{Title: "Off", Desc: "Aside", NotesScene: true})

	part := n.AddChapter(model.Chapter{Title: "Part 1", Desc: "Part one", Level: model.LevelPart})
	chapter := n.AddChapter(model.Chapter{Title: "Chapter 1", Desc: "Chapter one", Scenes: []model.SceneID{s1, s2}})
	other := n.AddChapter(model.Chapter{Title: "Other events", Type: model.ChapterNotes, Scenes: []model.SceneID{s3}})
	n.ChapterOrder = []model.ChapterID{part, chapter, other}
	return n
}

func mustSet(t *testing.T, suffix string) Templates {
	t.Helper()
	set, err := Lookup(suffix)
	require.NoError(t, err)
	return set.Templates
}

func TestRenderBriefSynopsis(t *testing.T) {
	res := New(mustSet(t, "_brief_synopsis")).Render(storyNovel(t))

	want := "# Part one\n\n" +
		"## Chapter one\n    \n" +
		"Opening\n    \n" +
		"Scene two\n    \n"
	assert.Equal(t, want, res.Text)
	assert.Equal(t, 2, res.Scenes, "the notes scene is not counted")
	assert.Equal(t, 1, res.Chapters, "parts are not numbered")
	assert.Equal(t, 6, res.Words)
}

func TestRenderFullSynopsis(t *testing.T) {
	res := New(mustSet(t, "_full_synopsis")).Render(storyNovel(t))

	want := "# Part 1\n    \n" +
		"## Chapter 1\n    \n" +
		"<!--- Opening --->\n\nOne\n\n" +
		"* * *\n\n" +
		"<!--- Scene two --->\n\nTwo\n\n"
	assert.Equal(t, want, res.Text)
}

func TestRenderChapterClassification(t *testing.T) {
	tmpl := Templates{
		Part:               "P:$Title|",
		Chapter:            "C$ChapterNumber:$Title|",
		TodoChapter:        "TODO:$Title|",
		NotesChapter:       "NOTES:$Title|",
		UnusedChapter:      "UNUSED:$Title|",
		NotExportedChapter: "NOEXP:$Title|",
		ChapterEnd:         "end$ChapterNumber|",
		NotesChapterEnd:    "notes-end|",
	}

	tests := []struct {
		name    string
		chapter model.Chapter
		scenes  []model.Scene
		want    string
	}{
		{"todo wins over unused", model.Chapter{Title: "a", Type: model.ChapterTodo, Unused: true}, nil, "TODO:a|"},
		{"notes", model.Chapter{Title: "b", Type: model.ChapterNotes}, nil, "NOTES:b|notes-end|"},
		{"unused", model.Chapter{Title: "c", Unused: true}, nil, "UNUSED:c|"},
		{"legacy info", model.Chapter{Title: "d", OldType: model.OldTypeInfo}, nil, "NOTES:d|notes-end|"},
		{
			"all scenes not exported",
			model.Chapter{Title: "e"},
			[]model.Scene{{Title: "x", DoNotExport: true}, {Title: "y", DoNotExport: true}},
			"NOEXP:e|",
		},
		{"part", model.Chapter{Title: "f", Level: model.LevelPart}, nil, "P:f|end|"},
		{"ordinary", model.Chapter{Title: "g"}, nil, "C1:g|end1|"},
		{"empty chapter is exported", model.Chapter{Title: "h"}, nil, "C1:h|end1|"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := model.New()
			ch := tt.chapter
			for _, sc := range tt.scenes {
				ch.AddScene(n.AddScene(sc))
			}
			n.ChapterOrder = []model.ChapterID{n.AddChapter(ch)}

			res := New(tmpl).Render(n)
			assert.Equal(t, tt.want, res.Text)
			assert.Zero(t, res.Scenes)
		})
	}
}

func TestRenderPartWithoutTemplateIsNumbered(t *testing.T) {
	n := model.New()
	n.ChapterOrder = []model.ChapterID{
		n.AddChapter(model.Chapter{Title: "Part 1", Level: model.LevelPart}),
		n.AddChapter(model.Chapter{Title: "Chapter 1"}),
	}

	res := New(Templates{Chapter: "$ChapterNumber. $Title\n"}).Render(n)
	assert.Equal(t, "1. Part 1\n2. Chapter 1\n", res.Text)
	assert.Equal(t, 2, res.Chapters)
}

func TestRenderNotExportedChapter(t *testing.T) {
	n := model.New()
	ch := model.Chapter{Title: "Hidden"}
	ch.AddScene(n.AddScene(model.Scene{Title: "x", DoNotExport: true}))
	ch.AddScene(n.AddScene(model.Scene{Title: "y", DoNotExport: true}))
	n.ChapterOrder = []model.ChapterID{n.AddChapter(ch)}

	tmpl := Templates{
		Chapter:            "chapter\n",
		Scene:              "#$SceneNumber\n",
		NotExportedChapter: "[$Title]\n",
		NotExportedScene:   "-$Title$SceneNumber\n",
	}
	res := New(tmpl).Render(n)
	assert.Equal(t, 1, strings.Count(res.Text, "[Hidden]"))
	assert.Equal(t, "[Hidden]\n-x\n-y\n", res.Text)
	assert.Zero(t, res.Scenes)
	assert.Zero(t, res.Chapters)
}

func TestRenderSceneClassification(t *testing.T) {
	tmpl := Templates{
		Chapter:          "",
		Scene:            "S$SceneNumber:$Title|",
		TodoScene:        "TODO:$Title|",
		NotesScene:       "NOTES:$Title|",
		UnusedScene:      "UNUSED:$Title|",
		NotExportedScene: "NOEXP:$Title|",
	}

	tests := []struct {
		name    string
		chapter model.Chapter
		scene   model.Scene
		want    string
		counted bool
	}{
		{"todo", model.Chapter{}, model.Scene{Title: "a", TodoScene: true, NotesScene: true}, "TODO:a|", false},
		{"notes", model.Chapter{}, model.Scene{Title: "b", NotesScene: true, Unused: true}, "NOTES:b|", false},
		{"unused scene", model.Chapter{}, model.Scene{Title: "c", Unused: true}, "UNUSED:c|", false},
		{"unused chapter", model.Chapter{Unused: true}, model.Scene{Title: "d"}, "UNUSED:d|", false},
		{"legacy info chapter", model.Chapter{OldType: model.OldTypeInfo}, model.Scene{Title: "e"}, "NOTES:e|", false},
		{"not exported", model.Chapter{}, model.Scene{Title: "f", DoNotExport: true}, "NOEXP:f|", false},
		{"ordinary", model.Chapter{}, model.Scene{Title: "g"}, "S1:g|", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := model.New()
			ch := tt.chapter
			ch.AddScene(n.AddScene(tt.scene))
			// A second, ordinary scene keeps the chapter exportable.
			if tt.scene.DoNotExport {
				ch.AddScene(n.AddScene(model.Scene{Title: "z", TodoScene: true}))
			}
			n.ChapterOrder = []model.ChapterID{n.AddChapter(ch)}

			res := New(tmpl).Render(n)
			assert.True(t, strings.HasPrefix(res.Text, tt.want), "got %q", res.Text)
			assert.Equal(t, tt.counted, res.Scenes == 1)
		})
	}
}

func TestRenderSkippedVariants(t *testing.T) {
	n := model.New()
	ch := model.Chapter{Title: "c"}
	ch.AddScene(n.AddScene(model.Scene{Title: "note", NotesScene: true}))
	ch.AddScene(n.AddScene(model.Scene{Title: "one"}))
	ch.AddScene(n.AddScene(model.Scene{Title: "todo", TodoScene: true}))
	ch.AddScene(n.AddScene(model.Scene{Title: "two"}))
	n.ChapterOrder = []model.ChapterID{n.AddChapter(ch)}

	tmpl := Templates{
		Scene:        "$SceneNumber $Title\n",
		FirstScene:   "first: $Title\n",
		SceneDivider: "--\n",
	}
	res := New(tmpl).Render(n)
	// Skipped scenes neither consume the first slot nor emit a divider.
	assert.Equal(t, "first: one\n--\n2 two\n", res.Text)
	assert.Equal(t, 2, res.Scenes)
}

func TestRenderDividersAndAppendedScenes(t *testing.T) {
	n := model.New()
	ch := model.Chapter{}
	ch.AddScene(n.AddScene(model.Scene{Title: "a", AppendToPrev: true}))
	ch.AddScene(n.AddScene(model.Scene{Title: "b"}))
	ch.AddScene(n.AddScene(model.Scene{Title: "c", AppendToPrev: true}))
	n.ChapterOrder = []model.ChapterID{n.AddChapter(ch)}

	tmpl := Templates{
		Scene:         "[$Title]",
		AppendedScene: "+$Title",
		SceneDivider:  "|",
	}
	res := New(tmpl).Render(n)
	// The first scene never uses the appended template.
	assert.Equal(t, "[a]|[b]+c", res.Text)
	assert.Equal(t, 3, res.Scenes)
}

func TestRenderRunningTotals(t *testing.T) {
	n := model.New()
	for _, text := range []string{"one two", "three", "four five six"} {
		sc := model.Scene{Title: text}
		sc.SetContent(text)
		id := n.AddScene(sc)
		n.ChapterOrder = append(n.ChapterOrder, n.AddChapter(model.Chapter{Scenes: []model.SceneID{id}}))
	}

	res := New(Templates{Chapter: "#$ChapterNumber ", Scene: "$SceneNumber:$WordCount/$WordsTotal "}).Render(n)
	assert.Equal(t, "#1 1:2/2 #2 2:1/3 #3 3:3/6 ", res.Text)
	assert.Equal(t, 6, res.Words)
	assert.Equal(t, 3, res.Scenes)
	assert.Equal(t, 3, res.Chapters)
}

func TestRenderEmptyTemplatesSkipUnits(t *testing.T) {
	n := model.New()
	ch := model.Chapter{Title: "c"}
	for _, text := range []string{"one two", "three four five"} {
		sc := model.Scene{Title: text}
		sc.SetContent(text)
		ch.AddScene(n.AddScene(sc))
	}
	n.ChapterOrder = []model.ChapterID{n.AddChapter(ch)}

	res := New(Templates{SceneDivider: "---\n", ChapterEnd: "end\n"}).Render(n)
	assert.Empty(t, res.Text, "no divider or ending around skipped units")
	assert.Zero(t, res.Chapters)
	assert.Zero(t, res.Scenes)
	assert.Zero(t, res.Words)
	assert.Zero(t, res.Letters)
}

func TestRenderFirstSceneOnly(t *testing.T) {
	n := model.New()
	ch := model.Chapter{}
	ch.AddScene(n.AddScene(model.Scene{Title: "a"}))
	ch.AddScene(n.AddScene(model.Scene{Title: "b"}))
	n.ChapterOrder = []model.ChapterID{n.AddChapter(ch)}

	res := New(Templates{FirstScene: "$SceneNumber:$Title", SceneDivider: "|"}).Render(n)
	assert.Equal(t, "1:a", res.Text)
	assert.Equal(t, 1, res.Scenes)
}

func TestRenderFilters(t *testing.T) {
	n := storyNovel(t)
	alice := model.NewCharacter("Alice")
	n.AddCharacter(alice)
	n.AddCharacter(model.NewCharacter("Bob"))

	cfg := Config{
		Filters: Filters{
			Scene: func(n *model.Novel, id model.SceneID) bool {
				return n.Scene(id).Title != "Opening"
			},
			Character: func(n *model.Novel, id model.CharacterID) bool {
				return n.Character(id).Title == "Bob"
			},
			Chapter: func(n *model.Novel, id model.ChapterID) bool {
				return !n.Chapter(id).IsPart()
			},
		},
	}
	tmpl := Templates{
		Part:                    "P ",
		Chapter:                 "C ",
		Scene:                   "$SceneNumber:$Title ",
		FirstScene:              "first:$Title ",
		CharacterSectionHeading: "chars: ",
		Character:               "$Title ",
	}
	res := NewWithConfig(tmpl, cfg).Render(n)
	assert.Equal(t, "C first:Scene two chars: Bob ", res.Text)
}

func TestRenderAssemblyOrder(t *testing.T) {
	n := model.New()
	n.Title = "Book"
	n.AddCharacter(model.NewCharacter("Alice"))
	n.AddLocation(model.NewLocation("Garden"))
	n.AddItem(model.NewItem("Key"))
	n.ChapterOrder = []model.ChapterID{n.AddChapter(model.Chapter{Title: "One"})}

	tmpl := Templates{
		FileHeader:              "<$Title>",
		Chapter:                 "[$Title]",
		CharacterSectionHeading: "C:",
		Character:               "$Title;",
		LocationSectionHeading:  "L:",
		Location:                "$Title;",
		ItemSectionHeading:      "I:",
		Item:                    "$Title;",
		FileFooter:              "</$Title>",
	}
	res := New(tmpl).Render(n)
	assert.Equal(t, "<Book>[One]C:Alice;L:Garden;I:Key;</$Title>", res.Text, "the footer is not substituted")
}

func TestRenderProjectPath(t *testing.T) {
	n := model.New()
	n.ChapterOrder = []model.ChapterID{n.AddChapter(model.Chapter{Title: "One"})}

	r := NewWithConfig(Templates{Chapter: "$ProjectName|$ProjectPath"}, Config{ProjectPath: "/data/books/novel.aeon"})
	assert.Equal(t, "novel|/data/books", r.Render(n).Text)
}

func TestRenderLogsTotals(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewWithConfig(mustSet(t, "_brief_synopsis"), Config{Logger: logger.NewSlogLogger(buf, logger.LogLevelDebug)})
	r.Render(storyNovel(t))

	assert.Contains(t, buf.String(), "module=render")
	assert.Contains(t, buf.String(), "scenes=2")
}

func TestRenderIsRepeatable(t *testing.T) {
	n := storyNovel(t)
	r := New(mustSet(t, "_report"))
	assert.Equal(t, r.Render(n), r.Render(n))
}
