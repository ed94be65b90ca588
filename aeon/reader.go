// Package aeon builds a narrative model from the JSON embedded in a native
// Aeon Timeline 3 project file.
//
// The payload is loosely typed: type, property and reference definitions are
// keyed by project-specific UIDs, and labels configured in config.Labels
// select which of them carry scene, character, location and item meaning.
// Labels that match nothing leave the corresponding fields empty.
package aeon

import (
	"fmt"
	"strings"

	"github.com/antonholmquist/jason"

	"github.com/peter88213/aeon3md/config"
	"github.com/peter88213/aeon3md/internal/datetime"
	"github.com/peter88213/aeon3md/internal/errors"
	"github.com/peter88213/aeon3md/internal/logger"
	"github.com/peter88213/aeon3md/model"
	"github.com/peter88213/aeon3md/scan"
)

const component = "aeon"

// Title and description of the chapter collecting events outside the
// narrative.
const (
	OtherEventsTitle = "Other events"
	OtherEventsDesc  = "Scenes generated from events that are not assigned to the narrative structure."
)

// Reader holds a project decoded from the Aeon JSON payload.
type Reader struct {
	labels   config.Labels
	log      logger.Logger
	root     *jason.Object
	order    keyIndex
	novel    *model.Novel
	warnings []string

	// resolved definition UIDs
	eventType     string
	characterType string
	locationType  string
	itemType      string
	folderTypes   map[string]bool

	notesProp     string
	descProps     [3]string
	akaProp       string
	viewpointProp string

	participantRef string
	locationRef    string
	itemRef        string

	// item UID to model ID
	scenes     map[string]model.SceneID
	chapters   map[string]model.ChapterID
	characters map[string]model.CharacterID
	locations  map[string]model.LocationID
	items      map[string]model.ItemID

	viewpoints []viewpoint
}

type viewpoint struct {
	scene model.SceneID
	uid   string
}

// Open reads the project file at filename and decodes it.
func Open(filename string, labels config.Labels) (*Reader, error) {
	payload, err := scan.File(filename)
	if err != nil {
		return nil, err
	}
	return Parse([]byte(payload), labels)
}

// Parse decodes a JSON payload as returned by scan.Bytes.
func Parse(payload []byte, labels config.Labels) (*Reader, error) {
	root, err := jason.NewObjectFromBytes(payload)
	if err != nil {
		return nil, invalidData(err)
	}
	order, err := indexKeys(payload)
	if err != nil {
		return nil, invalidData(err)
	}

	r := &Reader{
		labels:      labels,
		log:         logger.Default().Module(component),
		root:        root,
		order:       order,
		novel:       model.New(),
		folderTypes: make(map[string]bool),
		scenes:      make(map[string]model.SceneID),
		chapters:    make(map[string]model.ChapterID),
		characters:  make(map[string]model.CharacterID),
		locations:   make(map[string]model.LocationID),
		items:       make(map[string]model.ItemID),
	}

	steps := []func() error{
		r.resolveTypes,
		r.resolveProperties,
		r.resolveReferences,
		r.readItems,
		r.readRelationships,
		r.applyViewpoints,
		r.readNarrative,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	r.numberChapters()
	r.collectOtherEvents()

	r.log.Debug("project converted",
		logger.Int("chapters", r.novel.Chapters.Len()),
		logger.Int("scenes", r.novel.Scenes.Len()),
		logger.Int("characters", r.novel.Characters.Len()),
		logger.Int("locations", r.novel.Locations.Len()),
		logger.Int("items", r.novel.Items.Len()),
		logger.Int("warnings", len(r.warnings)))
	return r, nil
}

// Novel returns the converted model.
func (r *Reader) Novel() *model.Novel {
	return r.novel
}

// Warnings returns the references that were dropped because they did not
// resolve.
func (r *Reader) Warnings() []string {
	return r.warnings
}

func (r *Reader) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.warnings = append(r.warnings, msg)
	r.log.Debug("reference dropped", logger.String("reason", msg))
}

func invalidData(err error) error {
	return errors.Newf("invalid JSON data: %w", err).
		Component(component).
		Category(errors.CategoryFileParsing).
		Build()
}

func missingSection(path ...string) error {
	return errors.Newf("missing section %q", strings.Join(path, ".")).
		Component(component).
		Category(errors.CategoryStructure).
		Build()
}

// section returns the object at path, which must exist.
func (r *Reader) section(path ...string) (*jason.Object, error) {
	obj, err := r.root.GetObject(path...)
	if err != nil {
		return nil, missingSection(path...)
	}
	return obj, nil
}

// definitions iterates the byId table at path in document order.
func (r *Reader) definitions(path []string, fn func(uid string, def *jason.Object)) error {
	table, err := r.section(path...)
	if err != nil {
		return err
	}
	for _, uid := range r.order.keys(path...) {
		def, err := table.GetObject(uid)
		if err != nil {
			continue
		}
		fn(uid, def)
	}
	return nil
}

// matches reports whether a definition label selects a configured role.
// An empty role label never matches.
func matches(label, role string) bool {
	return role != "" && label == role
}

func (r *Reader) resolveTypes() error {
	return r.definitions([]string{"definitions", "types", "byId"}, func(uid string, def *jason.Object) {
		if folder, _ := def.GetBoolean("isNarrativeFolder"); folder {
			r.folderTypes[uid] = true
			return
		}
		label, _ := def.GetString("label")
		switch {
		case matches(label, r.labels.TypeEvent):
			r.eventType = uid
		case matches(label, r.labels.TypeCharacter):
			r.characterType = uid
		case matches(label, r.labels.TypeLocation):
			r.locationType = uid
		case matches(label, r.labels.TypeItem):
			r.itemType = uid
		}
	})
}

func (r *Reader) resolveProperties() error {
	err := r.definitions([]string{"definitions", "properties", "byId"}, func(uid string, def *jason.Object) {
		label, _ := def.GetString("label")
		switch {
		case matches(label, r.labels.NotesLabel):
			r.notesProp = uid
		case matches(label, r.labels.CharacterDescLabel1):
			r.descProps[0] = uid
		case matches(label, r.labels.CharacterDescLabel2):
			r.descProps[1] = uid
		case matches(label, r.labels.CharacterDescLabel3):
			r.descProps[2] = uid
		case matches(label, r.labels.CharacterAKALabel):
			r.akaProp = uid
		case matches(label, r.labels.ViewpointLabel):
			r.viewpointProp = uid
		}
	})
	if err != nil {
		return err
	}
	r.log.Debug("properties resolved",
		logger.Bool("notes", r.notesProp != ""),
		logger.Bool("aka", r.akaProp != ""),
		logger.Bool("viewpoint", r.viewpointProp != ""))
	return nil
}

func (r *Reader) resolveReferences() error {
	return r.definitions([]string{"definitions", "references", "byId"}, func(uid string, def *jason.Object) {
		label, _ := def.GetString("label")
		switch {
		case matches(label, r.labels.CharacterLabel):
			r.participantRef = uid
		case matches(label, r.labels.LocationLabel):
			r.locationRef = uid
		case matches(label, r.labels.ItemLabel):
			r.itemRef = uid
		}
	})
}

// str returns the string member key of obj, or "" when it is absent, null
// or not a string.
func str(obj *jason.Object, key string) string {
	s, _ := obj.GetString(key)
	return s
}

// integer returns a numeric member as int, or 0.
func integer(obj *jason.Object, key string) int {
	if n, err := obj.GetInt64(key); err == nil {
		return int(n)
	}
	if f, err := obj.GetFloat64(key); err == nil {
		return int(f)
	}
	return 0
}

// text renders a property value. Non-string scalars use their JSON form.
func text(v *jason.Value) string {
	if s, err := v.String(); err == nil {
		return s
	}
	if n, err := v.Number(); err == nil {
		return n.String()
	}
	if b, err := v.Boolean(); err == nil {
		return fmt.Sprint(b)
	}
	return ""
}

func (r *Reader) readItems() error {
	path := []string{"data", "items", "byId"}
	table, err := r.section(path...)
	if err != nil {
		return err
	}

	for _, uid := range r.order.keys(path...) {
		item, err := table.GetObject(uid)
		if err != nil {
			continue
		}
		itemType := str(item, "type")
		switch {
		case itemType == "":
		case itemType == r.eventType:
			r.readEvent(uid, item)
		case r.folderTypes[itemType]:
			id := r.novel.AddChapter(model.Chapter{Desc: str(item, "label")})
			r.chapters[uid] = id
		case itemType == r.characterType:
			r.readCharacter(uid, item)
		case itemType == r.locationType:
			e := model.NewLocation(str(item, "label"))
			e.Desc = str(item, "summary")
			e.Tags = r.tags(uid, item)
			r.locations[uid] = r.novel.AddLocation(e)
		case itemType == r.itemType:
			e := model.NewItem(str(item, "label"))
			e.Desc = str(item, "summary")
			e.Tags = r.tags(uid, item)
			r.items[uid] = r.novel.AddItem(e)
		}
	}
	return nil
}

// tags resolves the tag IDs of an item through data.tags.
func (r *Reader) tags(uid string, item *jason.Object) []string {
	ids, err := item.GetStringArray("tags")
	if err != nil || len(ids) == 0 {
		return nil
	}
	var tags []string
	for _, id := range ids {
		tag, err := r.root.GetString("data", "tags", id)
		if err != nil {
			r.warnf("item %s: unknown tag %s", uid, id)
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// properties calls fn for each property value of item in document order.
func (r *Reader) properties(uid string, item *jason.Object, fn func(prop, value string)) {
	values, err := item.GetObject("propertyValues")
	if err != nil {
		return
	}
	for _, prop := range r.order.keys("data", "items", "byId", uid, "propertyValues") {
		v, err := values.GetValue(prop)
		if err != nil {
			continue
		}
		fn(prop, text(v))
	}
}

func (r *Reader) readEvent(uid string, item *jason.Object) {
	sc := model.Scene{
		Status:     model.StatusOutline,
		NotesScene: true,
		Title:      str(item, "label"),
		Desc:       str(item, "summary"),
		Tags:       r.tags(uid, item),
	}

	var vpUID string
	r.properties(uid, item, func(prop, value string) {
		switch prop {
		case r.notesProp:
			sc.Notes = value
		case r.viewpointProp:
			vpUID = value
		}
	})

	if ts, err := item.GetFloat64("startDate", "timestamp"); err == nil && ts >= datetime.DateLimit {
		start := datetime.FromTimestamp(ts)
		sc.Date, sc.Time = datetime.Split(start)
		lasts := jsonDuration(item).Normalize(start)
		sc.Lasts = &lasts
	}

	id := r.novel.AddScene(sc)
	r.scenes[uid] = id
	if vpUID != "" {
		r.viewpoints = append(r.viewpoints, viewpoint{scene: id, uid: vpUID})
	}
}

func jsonDuration(item *jason.Object) datetime.JSONDuration {
	d, err := item.GetObject("duration")
	if err != nil {
		return datetime.JSONDuration{}
	}
	return datetime.JSONDuration{
		Years:   integer(d, "years"),
		Months:  integer(d, "months"),
		Weeks:   integer(d, "weeks"),
		Days:    integer(d, "days"),
		Hours:   integer(d, "hours"),
		Minutes: integer(d, "minutes"),
		Seconds: integer(d, "seconds"),
	}
}

func (r *Reader) readCharacter(uid string, item *jason.Object) {
	label := str(item, "label")
	e := model.NewCharacter(label)
	if short := str(item, "shortLabel"); short != "" {
		e.Title = short
	}
	e.Character.FullName = label
	e.Character.Bio = str(item, "summary")
	e.Tags = r.tags(uid, item)

	var desc []string
	r.properties(uid, item, func(prop, value string) {
		switch prop {
		case r.notesProp:
			e.Character.Notes = value
		case r.akaProp:
			e.AKA = value
		case r.descProps[0], r.descProps[1], r.descProps[2]:
			if value != "" {
				desc = append(desc, value)
			}
		}
	})
	e.Desc = strings.Join(desc, "\n")

	r.characters[uid] = r.novel.AddCharacter(e)
}

func (r *Reader) readRelationships() error {
	path := []string{"data", "relationships", "byId"}
	return r.definitions(path, func(uid string, rel *jason.Object) {
		ref := str(rel, "reference")
		if ref == "" {
			return
		}
		subject, object := str(rel, "subject"), str(rel, "object")

		var role string
		switch ref {
		case r.participantRef:
			role = "participant"
		case r.locationRef:
			role = "location"
		case r.itemRef:
			role = "item"
		default:
			return
		}

		scID, ok := r.scenes[subject]
		if !ok {
			r.warnf("relationship %s: %s subject %s is not an event", uid, role, subject)
			return
		}
		sc := r.novel.Scene(scID)

		switch ref {
		case r.participantRef:
			if id, ok := r.characters[object]; ok {
				sc.AddCharacter(id)
				return
			}
		case r.locationRef:
			if id, ok := r.locations[object]; ok {
				sc.AddLocation(id)
				return
			}
		case r.itemRef:
			if id, ok := r.items[object]; ok {
				sc.AddItem(id)
				return
			}
		}
		r.warnf("relationship %s: unknown %s %s", uid, role, object)
	})
}

func (r *Reader) applyViewpoints() error {
	for _, vp := range r.viewpoints {
		id, ok := r.characters[vp.uid]
		if !ok {
			r.warnf("scene %s: unknown viewpoint character %s", vp.scene, vp.uid)
			continue
		}
		r.novel.Scene(vp.scene).SetViewpoint(id)
	}
	return nil
}

// readNarrative orders chapters and attaches scenes by walking the
// narrative tree: folders at the outer level, optional nested folders,
// and events beneath them.
func (r *Reader) readNarrative() error {
	outer, err := r.root.GetObjectArray("data", "narrative", "children")
	if err != nil {
		return missingSection("data", "narrative", "children")
	}

	for _, n0 := range outer {
		id0 := str(n0, "id")
		ch0ID, ok := r.chapters[id0]
		if !ok {
			r.warnf("narrative node %s is not a folder; subtree skipped", id0)
			continue
		}
		r.novel.ChapterOrder = append(r.novel.ChapterOrder, ch0ID)
		ch0 := r.novel.Chapter(ch0ID)

		for _, n1 := range children(n0) {
			id1 := str(n1, "id")
			if ch1ID, ok := r.chapters[id1]; ok {
				r.novel.ChapterOrder = append(r.novel.ChapterOrder, ch1ID)
				ch0.Level = model.LevelPart
				ch1 := r.novel.Chapter(ch1ID)
				for _, n2 := range children(n1) {
					if scID, ok := r.scenes[str(n2, "id")]; ok {
						ch1.AddScene(scID)
						r.novel.Scene(scID).NotesScene = false
						ch1.Level = model.LevelChapter
					}
				}
			} else if scID, ok := r.scenes[id1]; ok {
				ch0.AddScene(scID)
				r.novel.Scene(scID).NotesScene = false
				ch0.Level = model.LevelChapter
			}
		}
	}
	return nil
}

func children(node *jason.Object) []*jason.Object {
	nodes, _ := node.GetObjectArray("children")
	return nodes
}

// numberChapters titles untitled parts and chapters, counting each
// independently.
func (r *Reader) numberChapters() {
	parts, chapters := 0, 0
	for _, id := range r.novel.ChapterOrder {
		ch := r.novel.Chapter(id)
		if ch.IsPart() {
			parts++
			if ch.Title == "" {
				ch.Title = fmt.Sprintf("%s %d", r.labels.PartNumberPrefix, parts)
			}
			continue
		}
		chapters++
		if ch.Title == "" {
			ch.Title = fmt.Sprintf("%s %d", r.labels.ChapterNumberPrefix, chapters)
		}
	}
}

// collectOtherEvents appends the notes chapter holding every event the
// narrative walk did not reach.
func (r *Reader) collectOtherEvents() {
	ch := model.Chapter{
		Title: OtherEventsTitle,
		Desc:  OtherEventsDesc,
		Type:  model.ChapterNotes,
	}
	for _, id := range r.novel.Scenes.IDs() {
		if r.novel.Scene(id).NotesScene {
			ch.AddScene(id)
		}
	}
	r.novel.ChapterOrder = append(r.novel.ChapterOrder, r.novel.AddChapter(ch))
}
