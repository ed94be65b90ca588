// Package render turns a narrative model into text by applying templates.
//
// A Renderer walks the novel in narrative order. Each chapter and scene is
// classified into a variant (todo, notes, unused, not exported, part,
// ordinary), and the variant's template is filled from a per-entity mapping.
// Only ordinary scenes are numbered and counted:
//
//	set, _ := render.Lookup("_brief_synopsis")
//	res := render.New(set.Templates).Render(novel)
//	fmt.Print(res.Text)
package render

import (
	"path/filepath"
	"strings"

	"github.com/peter88213/aeon3md/internal/logger"
	"github.com/peter88213/aeon3md/model"
)

const component = "render"

// Filters select the units to render. A nil filter accepts everything.
type Filters struct {
	Chapter   func(n *model.Novel, id model.ChapterID) bool
	Scene     func(n *model.Novel, id model.SceneID) bool
	Character func(n *model.Novel, id model.CharacterID) bool
	Location  func(n *model.Novel, id model.LocationID) bool
	Item      func(n *model.Novel, id model.ItemID) bool
}

func accept[K any](f func(*model.Novel, K) bool, n *model.Novel, id K) bool {
	return f == nil || f(n, id)
}

// Config holds optional renderer settings.
type Config struct {
	Filters Filters

	// ProjectPath is the source file; it feeds the ProjectName and
	// ProjectPath placeholders.
	ProjectPath string

	Logger logger.Logger
}

// Result is a rendered document and the running totals at its end.
type Result struct {
	Text     string
	Chapters int
	Scenes   int
	Words    int
	Letters  int
}

// Renderer applies one template set to novels. It holds no per-document
// state and may be reused.
type Renderer struct {
	templates   Templates
	filters     Filters
	projectName string
	projectPath string
	log         logger.Logger
}

// New returns a Renderer for templates with default settings.
func New(templates Templates) *Renderer {
	return NewWithConfig(templates, Config{})
}

// NewWithConfig returns a Renderer for templates using cfg.
func NewWithConfig(templates Templates, cfg Config) *Renderer {
	r := &Renderer{
		templates: templates,
		filters:   cfg.Filters,
		log:       cfg.Logger,
	}
	if r.log == nil {
		r.log = logger.Default()
	}
	r.log = r.log.Module(component)
	if cfg.ProjectPath != "" {
		base := filepath.Base(cfg.ProjectPath)
		r.projectName = strings.TrimSuffix(base, filepath.Ext(base))
		r.projectPath = filepath.Dir(cfg.ProjectPath)
	}
	return r
}

type totals struct {
	chapters int
	scenes   int
	words    int
	letters  int
}

// Render produces the document for n: header, chapters with their scenes,
// characters, locations, items, footer.
func (r *Renderer) Render(n *model.Novel) Result {
	var b strings.Builder
	var t totals

	b.WriteString(Substitute(r.templates.FileHeader, r.headerMapping(n)))
	r.chapters(&b, n, &t)
	r.characters(&b, n)
	r.locations(&b, n)
	r.items(&b, n)
	b.WriteString(r.templates.FileFooter)

	r.log.Debug("document rendered",
		logger.Int("chapters", t.chapters),
		logger.Int("scenes", t.scenes),
		logger.Int("words", t.words),
		logger.Int("bytes", b.Len()))

	return Result{
		Text:     b.String(),
		Chapters: t.chapters,
		Scenes:   t.scenes,
		Words:    t.words,
		Letters:  t.letters,
	}
}

// notExported reports whether a chapter has scenes and all of them are
// marked as not to be exported.
func notExported(n *model.Novel, ch *model.Chapter) bool {
	if len(ch.Scenes) == 0 {
		return false
	}
	for _, id := range ch.Scenes {
		if sc := n.Scene(id); sc == nil || !sc.DoNotExport {
			return false
		}
	}
	return true
}

func (r *Renderer) classifyChapter(ch *model.Chapter, doNotExport bool) chapterVariant {
	switch {
	case ch.Type == model.ChapterTodo:
		return chapterTodo
	case ch.Type == model.ChapterNotes:
		return chapterNotes
	case ch.Unused:
		return chapterUnused
	case ch.OldType == model.OldTypeInfo:
		return chapterInfo
	case doNotExport:
		return chapterNotExported
	case ch.IsPart() && r.templates.Part != "":
		return chapterPart
	default:
		return chapterOrdinary
	}
}

func (r *Renderer) chapters(b *strings.Builder, n *model.Novel, t *totals) {
	for _, id := range n.ChapterOrder {
		ch := n.Chapter(id)
		if ch == nil || !accept(r.filters.Chapter, n, id) {
			continue
		}

		doNotExport := notExported(n, ch)
		variant := r.classifyChapter(ch, doNotExport)

		// Without a heading the chapter itself is skipped, its scenes are not.
		heading := r.templates.heading(variant)
		number := 0
		if heading != "" {
			if variant == chapterOrdinary {
				t.chapters++
				number = t.chapters
			}
			b.WriteString(Substitute(heading, r.chapterMapping(id, ch, number)))
		}

		r.scenes(b, n, ch, doNotExport, t)

		if tmpl := r.templates.ending(variant); heading != "" && tmpl != "" {
			b.WriteString(Substitute(tmpl, r.chapterMapping(id, ch, number)))
		}
	}
}

func (r *Renderer) classifyScene(sc *model.Scene, ch *model.Chapter, doNotExport bool) sceneVariant {
	switch {
	case sc.TodoScene:
		return sceneTodo
	case sc.NotesScene:
		return sceneNotes
	case sc.Unused || ch.Unused:
		return sceneUnused
	case ch.OldType == model.OldTypeInfo:
		return sceneInfo
	case sc.DoNotExport || doNotExport:
		return sceneNotExported
	default:
		return sceneOrdinary
	}
}

func (r *Renderer) scenes(b *strings.Builder, n *model.Novel, ch *model.Chapter, doNotExport bool, t *totals) {
	first := true
	for _, id := range ch.Scenes {
		sc := n.Scene(id)
		if sc == nil || !accept(r.filters.Scene, n, id) {
			continue
		}

		variant := r.classifyScene(sc, ch, doNotExport)
		var tmpl string
		if variant == sceneOrdinary {
			tmpl = r.templates.Scene
			if !first && sc.AppendToPrev && r.templates.AppendedScene != "" {
				tmpl = r.templates.AppendedScene
			}
		} else {
			tmpl = r.templates.scene(variant)
			if tmpl == "" {
				continue
			}
		}
		if first && r.templates.FirstScene != "" {
			tmpl = r.templates.FirstScene
		}
		if tmpl == "" {
			continue
		}

		number := 0
		if variant == sceneOrdinary {
			t.scenes++
			number = t.scenes
			t.words += sc.WordCount()
			t.letters += sc.LetterCount()
		}
		if !first && !sc.AppendToPrev {
			b.WriteString(r.templates.SceneDivider)
		}
		b.WriteString(Substitute(tmpl, r.sceneMapping(n, id, sc, number, *t)))
		first = false
	}
}

func (r *Renderer) characters(b *strings.Builder, n *model.Novel) {
	b.WriteString(r.templates.CharacterSectionHeading)
	for _, id := range n.CharacterOrder {
		c := n.Character(id)
		if c == nil || !accept(r.filters.Character, n, id) {
			continue
		}
		b.WriteString(Substitute(r.templates.Character, r.characterMapping(id, c)))
	}
}

func (r *Renderer) locations(b *strings.Builder, n *model.Novel) {
	b.WriteString(r.templates.LocationSectionHeading)
	for _, id := range n.LocationOrder {
		l := n.Location(id)
		if l == nil || !accept(r.filters.Location, n, id) {
			continue
		}
		b.WriteString(Substitute(r.templates.Location, r.locationMapping(id, l)))
	}
}

func (r *Renderer) items(b *strings.Builder, n *model.Novel) {
	b.WriteString(r.templates.ItemSectionHeading)
	for _, id := range n.ItemOrder {
		it := n.Item(id)
		if it == nil || !accept(r.filters.Item, n, id) {
			continue
		}
		b.WriteString(Substitute(r.templates.Item, r.itemMapping(id, it)))
	}
}
