// Package aeoncsv builds a narrative model from an Aeon Timeline 3 CSV
// export.
//
// The export has one row per timeline record. Rows arrive in no particular
// order, so narrative order is rebuilt from the "Narrative Position" column
// (e.g. "Scene 1.2.3"), zero-padded into strings that sort lexically in
// hierarchical order.
package aeoncsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/peter88213/aeon3md/config"
	"github.com/peter88213/aeon3md/internal/datetime"
	"github.com/peter88213/aeon3md/internal/errors"
	"github.com/peter88213/aeon3md/internal/logger"
	"github.com/peter88213/aeon3md/model"
)

const component = "aeoncsv"

// Fixed parts of the export structure.
const (
	TypeEvent     = "Event"
	TypeNarrative = "Narrative Folder"

	LabelColumn     = "Label"
	TypeColumn      = "Type"
	PositionColumn  = "Narrative Position"
	StartDateColumn = "Start Date"
	EndDateColumn   = "End Date"

	PartMarker    = "Part"
	ChapterMarker = "Chapter"
	SceneMarker   = "Scene"
)

// listSeparator splits multi-value cells.
const listSeparator = ","

// positionWidth is the zero-padded width of each position component.
const positionWidth = 4

// Title and description of the chapter collecting events outside the
// narrative.
const (
	OtherEventsTitle = "Other events"
	OtherEventsDesc  = "Scenes generated from events that are not assigned to the narrative structure."
)

// Reader holds a project decoded from a CSV export.
type Reader struct {
	labels   config.Labels
	log      logger.Logger
	header   map[string]int
	novel    *model.Novel
	warnings []string

	characters map[string]model.CharacterID
	locations  map[string]model.LocationID
	items      map[string]model.ItemID

	deferred []row
	// sortable position to ID
	chapterPos map[string]model.ChapterID
	scenePos   map[string]model.SceneID
	other      []model.SceneID
}

// row gives access to the cells of one record by column label.
type row struct {
	line   int
	header map[string]int
	cells  []string
}

// has reports whether the export has a column labeled label.
func (r row) has(label string) bool {
	if label == "" {
		return false
	}
	_, ok := r.header[label]
	return ok
}

// value returns the cell in column label. Missing columns and short rows
// yield "".
func (r row) value(label string) string {
	i, ok := r.header[label]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// Open reads the CSV export at filename.
func Open(filename string, labels config.Labels) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf("%q not found", filename).
				Component(component).
				Category(errors.CategoryNotFound).
				Context("path", filename).
				Build()
		}
		return nil, errors.FileError(fmt.Errorf("cannot read %q: %w", filename, err), filename)
	}
	defer f.Close()

	return Parse(f, labels)
}

// Parse reads a CSV export. A leading byte order mark is honored; anything
// else must be UTF-8.
func Parse(in io.Reader, labels config.Labels) (*Reader, error) {
	decoded := transform.NewReader(in, unicode.BOMOverride(encoding.UTF8Validator))
	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	r := &Reader{
		labels:     labels,
		log:        logger.Default().Module(component),
		header:     make(map[string]int),
		novel:      model.New(),
		characters: make(map[string]model.CharacterID),
		locations:  make(map[string]model.LocationID),
		items:      make(map[string]model.ItemID),
		chapterPos: make(map[string]model.ChapterID),
		scenePos:   make(map[string]model.SceneID),
	}

	names, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, parseError(fmt.Errorf("no header row"))
		}
		return nil, readError(err)
	}
	for i, name := range names {
		r.header[name] = i
	}

	for line := 2; ; line++ {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(err)
		}
		r.classify(row{line: line, header: r.header, cells: cells})
	}

	if err := r.checkColumns(); err != nil {
		return nil, err
	}
	for _, rec := range r.deferred {
		if err := r.readNarrativeRow(rec); err != nil {
			return nil, err
		}
	}
	r.buildStructure()

	r.log.Debug("export converted",
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

func parseError(err error) error {
	return errors.Newf("cannot parse csv file: %w", err).
		Component(component).
		Category(errors.CategoryFileParsing).
		Build()
}

func readError(err error) error {
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return errors.Newf("cannot decode csv file: %w", err).
			Component(component).
			Category(errors.CategoryEncoding).
			Build()
	}
	return parseError(err)
}

func missingColumn(label string) error {
	return errors.Newf("label %q is missing", label).
		Component(component).
		Category(errors.CategoryStructure).
		Context("label", label).
		Build()
}

// classify creates world elements immediately and defers events and
// folders until every position is known.
func (r *Reader) classify(rec row) {
	switch rec.value(TypeColumn) {
	case TypeEvent, TypeNarrative:
		r.deferred = append(r.deferred, rec)
	case r.labels.TypeCharacter:
		r.readCharacter(rec)
	case r.labels.TypeLocation:
		title := rec.value(LabelColumn)
		e := model.NewLocation(title)
		if rec.has(r.labels.LocationDescLabel) {
			e.Desc = rec.value(r.labels.LocationDescLabel)
		}
		e.Tags = r.tags(rec)
		r.locations[title] = r.novel.AddLocation(e)
	case r.labels.TypeItem:
		title := rec.value(LabelColumn)
		r.items[title] = r.novel.AddItem(model.NewItem(title))
	}
}

func (r *Reader) readCharacter(rec row) {
	title := rec.value(LabelColumn)
	e := model.NewCharacter(title)

	var desc []string
	for _, label := range r.labels.CharacterDescLabels() {
		if rec.has(label) {
			if v := rec.value(label); v != "" {
				desc = append(desc, v)
			}
		}
	}
	e.Desc = strings.Join(desc, "\n")
	if rec.has(r.labels.CharacterBioLabel) {
		e.Character.Bio = rec.value(r.labels.CharacterBioLabel)
	}
	if rec.has(r.labels.CharacterAKALabel) {
		e.AKA = rec.value(r.labels.CharacterAKALabel)
	}
	if rec.has(r.labels.NotesLabel) {
		e.Character.Notes = rec.value(r.labels.NotesLabel)
	}
	e.Tags = r.tags(rec)

	r.characters[title] = r.novel.AddCharacter(e)
}

// tags splits the tag cell; an empty cell means no tags.
func (r *Reader) tags(rec row) []string {
	if !rec.has(r.labels.TagLabel) {
		return nil
	}
	v := rec.value(r.labels.TagLabel)
	if v == "" {
		return nil
	}
	return strings.Split(v, listSeparator)
}

func (r *Reader) checkColumns() error {
	required := []string{
		TypeColumn,
		LabelColumn,
		PositionColumn,
		r.labels.SceneTitleLabel,
		StartDateColumn,
		EndDateColumn,
	}
	for _, label := range required {
		if _, ok := r.header[label]; !ok {
			return missingColumn(label)
		}
	}
	return nil
}

// sortablePosition splits "Scene 1.2.3" into its kind and "0001.0002.0003".
func sortablePosition(value string, line int) (kind, pos string, err error) {
	kind, numbers, ok := strings.Cut(value, " ")
	if !ok {
		return "", "", errors.Newf("invalid narrative position %q", value).
			Component(component).
			Category(errors.CategoryValueFormat).
			Context("line", line).
			Build()
	}
	parts := strings.Split(numbers, ".")
	for i, p := range parts {
		if len(p) < positionWidth {
			parts[i] = strings.Repeat("0", positionWidth-len(p)) + p
		}
	}
	return kind, strings.Join(parts, "."), nil
}

func (r *Reader) readNarrativeRow(rec row) error {
	var kind, pos string
	if v := rec.value(PositionColumn); v != "" {
		var err error
		if kind, pos, err = sortablePosition(v, rec.line); err != nil {
			return err
		}
	}

	if rec.value(TypeColumn) == TypeNarrative {
		return r.readFolder(rec, kind, pos)
	}
	return r.readEvent(rec, kind, pos)
}

func (r *Reader) readFolder(rec row, kind, pos string) error {
	var ch model.Chapter
	var descLabel string
	switch kind {
	case ChapterMarker:
		ch.Level = model.LevelChapter
		descLabel = r.labels.ChapterDescLabel
	case PartMarker:
		ch.Level = model.LevelPart
		// Parts sort before the chapters they contain.
		pos += ".0000"
		descLabel = r.labels.PartDescLabel
	default:
		return nil
	}
	if descLabel != "" {
		if _, ok := r.header[descLabel]; !ok {
			return missingColumn(descLabel)
		}
		ch.Desc = rec.value(descLabel)
	}
	r.chapterPos[pos] = r.novel.AddChapter(ch)
	return nil
}

func (r *Reader) readEvent(rec row, kind, pos string) error {
	sc := model.Scene{
		Status: model.StatusOutline,
		Title:  rec.value(r.labels.SceneTitleLabel),
	}
	if err := r.readDates(rec, &sc); err != nil {
		return err
	}
	if rec.has(r.labels.SceneDescLabel) {
		sc.Desc = rec.value(r.labels.SceneDescLabel)
	}
	if rec.has(r.labels.NotesLabel) {
		sc.Notes = rec.value(r.labels.NotesLabel)
	}
	sc.Tags = r.tags(rec)

	if rec.has(r.labels.LocationLabel) {
		sc.Locations = resolve(r, rec, r.labels.LocationLabel, r.locations)
	}
	if rec.has(r.labels.CharacterLabel) {
		sc.Characters = resolve(r, rec, r.labels.CharacterLabel, r.characters)
	}
	if rec.has(r.labels.ViewpointLabel) {
		name := rec.value(r.labels.ViewpointLabel)
		if id, ok := r.characters[name]; ok {
			sc.SetViewpoint(id)
		} else if name != "" {
			r.warnf("line %d: unknown viewpoint character %q", rec.line, name)
		}
	}
	if rec.has(r.labels.ItemLabel) {
		sc.Items = resolve(r, rec, r.labels.ItemLabel, r.items)
	}

	if kind == SceneMarker {
		if _, taken := r.scenePos[pos]; !taken {
			r.scenePos[pos] = r.novel.AddScene(sc)
			return nil
		}
		r.warnf("line %d: narrative position %q is already taken", rec.line, rec.value(PositionColumn))
	}
	sc.NotesScene = true
	r.other = append(r.other, r.novel.AddScene(sc))
	return nil
}

// resolve maps the names in a multi-value cell to IDs. A single unknown
// name drops the whole list.
func resolve[K ~int](r *Reader, rec row, label string, ids map[string]K) []K {
	v := rec.value(label)
	if v == "" {
		return nil
	}
	var out []K
	for _, name := range strings.Split(v, listSeparator) {
		id, ok := ids[name]
		if !ok {
			r.warnf("line %d: unknown %s %q; %s list dropped", rec.line, label, name, label)
			return nil
		}
		out = append(out, id)
	}
	return out
}

func (r *Reader) readDates(rec row, sc *model.Scene) error {
	startStr, err := datetime.FixISO(rec.value(StartDateColumn))
	if err != nil {
		return err
	}
	if startStr == "" {
		sc.Date, sc.Time = model.NullDate, model.NullTime
		return nil
	}
	start, err := datetime.ParseISO(startStr)
	if err != nil {
		return err
	}
	sc.Date, sc.Time = datetime.Split(start)

	endStr, err := datetime.FixISO(rec.value(EndDateColumn))
	if err != nil || endStr == "" {
		return err
	}
	end, err := datetime.ParseISO(endStr)
	if err != nil {
		return err
	}
	lasts := datetime.Span(start, end)
	sc.Lasts = &lasts
	return nil
}

// buildStructure orders chapters and scenes by sortable position, numbers
// the chapters and appends the chapter of events outside the narrative.
func (r *Reader) buildStructure() {
	scenePositions := slices.Sorted(maps.Keys(r.scenePos))
	attached := make(map[model.SceneID]bool)
	parts, chapters := 0, 0

	for _, pos := range slices.Sorted(maps.Keys(r.chapterPos)) {
		id := r.chapterPos[pos]
		ch := r.novel.Chapter(id)
		r.novel.ChapterOrder = append(r.novel.ChapterOrder, id)

		if ch.IsPart() {
			parts++
			ch.Title = numbered(r.labels.PartNumberPrefix, parts)
			continue
		}
		chapters++
		ch.Title = numbered(r.labels.ChapterNumberPrefix, chapters)
		for _, scPos := range scenePositions {
			if strings.HasPrefix(scPos, pos) {
				ch.AddScene(r.scenePos[scPos])
				attached[r.scenePos[scPos]] = true
			}
		}
	}

	// Scenes positioned outside every chapter are not part of the narrative.
	for _, scPos := range scenePositions {
		if id := r.scenePos[scPos]; !attached[id] {
			r.novel.Scene(id).NotesScene = true
			r.other = append(r.other, id)
			r.warnf("scene at position %s has no chapter", scPos)
		}
	}

	other := model.Chapter{
		Title:  OtherEventsTitle,
		Desc:   OtherEventsDesc,
		Type:   model.ChapterNotes,
		Scenes: r.other,
	}
	r.novel.ChapterOrder = append(r.novel.ChapterOrder, r.novel.AddChapter(other))
}

func numbered(prefix string, n int) string {
	if prefix == "" {
		return fmt.Sprint(n)
	}
	return fmt.Sprintf("%s %d", prefix, n)
}
