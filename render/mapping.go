package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/peter88213/aeon3md/model"
)

// listSeparator joins multi-valued fields. The space lets narrow columns wrap.
const listSeparator = ", "

func number(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func fieldTitles(n *model.Novel, m map[string]string) {
	for i, title := range n.FieldTitles {
		if title == "" {
			title = fmt.Sprintf("Field %d", i+1)
		}
		m[fmt.Sprintf("FieldTitle%d", i+1)] = title
	}
}

func (r *Renderer) headerMapping(n *model.Novel) map[string]string {
	m := map[string]string{
		"Title":      n.Title,
		"Desc":       n.Desc,
		"AuthorName": n.AuthorName,
		"AuthorBio":  n.AuthorBio,
	}
	fieldTitles(n, m)
	return m
}

func (r *Renderer) chapterMapping(id model.ChapterID, ch *model.Chapter, chapterNumber int) map[string]string {
	return map[string]string{
		"ID":            strconv.Itoa(int(id)),
		"ChapterNumber": number(chapterNumber),
		"Title":         ch.Title,
		"Desc":          ch.Desc,
		"ProjectName":   r.projectName,
		"ProjectPath":   r.projectPath,
	}
}

// sceneMapping builds the placeholder values of one scene. sceneNumber is 0
// for scenes that are not counted.
func (r *Renderer) sceneMapping(n *model.Novel, id model.SceneID, sc *model.Scene, sceneNumber int, t totals) map[string]string {
	m := map[string]string{
		"ID":            strconv.Itoa(int(id)),
		"SceneNumber":   number(sceneNumber),
		"Title":         sc.Title,
		"Desc":          sc.Desc,
		"WordCount":     strconv.Itoa(sc.WordCount()),
		"WordsTotal":    strconv.Itoa(t.words),
		"LetterCount":   strconv.Itoa(sc.LetterCount()),
		"LettersTotal":  strconv.Itoa(t.letters),
		"Status":        sc.Status.String(),
		"SceneContent":  sc.Content(),
		"ReactionScene": model.ActionMarker,
		"Goal":          sc.Goal,
		"Conflict":      sc.Conflict,
		"Outcome":       sc.Outcome,
		"Tags":          strings.Join(sc.Tags, listSeparator),
		"Image":         sc.Image,
		"Notes":         sc.Notes,
		"ProjectName":   r.projectName,
		"ProjectPath":   r.projectPath,
	}
	if sc.ReactionScene {
		m["ReactionScene"] = model.ReactionMarker
	}
	fieldTitles(n, m)
	for i, v := range sc.Ratings {
		m[fmt.Sprintf("Field%d", i+1)] = number(v)
	}

	var characters []string
	for _, cid := range sc.Characters {
		if c := n.Character(cid); c != nil {
			characters = append(characters, c.Title)
		}
	}
	m["Characters"] = strings.Join(characters, listSeparator)
	m["Viewpoint"] = ""
	if len(characters) > 0 {
		m["Viewpoint"] = characters[0]
	}

	var locations []string
	for _, lid := range sc.Locations {
		if l := n.Location(lid); l != nil {
			locations = append(locations, l.Title)
		}
	}
	m["Locations"] = strings.Join(locations, listSeparator)

	var items []string
	for _, iid := range sc.Items {
		if it := n.Item(iid); it != nil {
			items = append(items, it.Title)
		}
	}
	m["Items"] = strings.Join(items, listSeparator)

	sceneDate(sc, m)
	sceneTime(sc, m)
	sceneDuration(sc, m)
	return m
}

// sceneDate fills Date, Day and the combined ScDate. A specific date wins
// over a relative day.
func sceneDate(sc *model.Scene, m map[string]string) {
	m["Date"], m["Day"], m["ScDate"] = "", "", ""
	switch {
	case sc.HasSpecificDate():
		m["Date"] = sc.Date
		m["ScDate"] = sc.Date
	case sc.Day != "":
		m["Day"] = sc.Day
		m["ScDate"] = "Day " + sc.Day
	}
}

// sceneTime fills Time, Hour, Minute and the combined ScTime (hh:mm).
func sceneTime(sc *model.Scene, m map[string]string) {
	m["Time"], m["Hour"], m["Minute"], m["ScTime"] = "", "", "", ""
	if sc.Time != "" && sc.Date != model.NullDate {
		m["Time"] = sc.Time
		clock := sc.Time
		if i := strings.LastIndex(clock, ":"); i >= 0 {
			clock = clock[:i]
		}
		m["ScTime"] = clock
		return
	}
	if sc.Hour == "" && sc.Minute == "" {
		return
	}
	hour, minute := sc.Hour, sc.Minute
	if hour == "" {
		hour = "00"
	}
	if minute == "" {
		minute = "00"
	}
	m["Hour"], m["Minute"] = hour, minute
	m["ScTime"] = zeroPad(hour) + ":" + zeroPad(minute)
}

func zeroPad(s string) string {
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}

// sceneDuration fills LastsDays, LastsHours, LastsMinutes and Duration.
// Zero components stay empty.
func sceneDuration(sc *model.Scene, m map[string]string) {
	m["LastsDays"], m["LastsHours"], m["LastsMinutes"] = "", "", ""
	var b strings.Builder
	if d := sc.Lasts; d != nil {
		if d.Days != 0 {
			m["LastsDays"] = strconv.Itoa(d.Days)
			fmt.Fprintf(&b, "%dd ", d.Days)
		}
		if d.Hours != 0 {
			m["LastsHours"] = strconv.Itoa(d.Hours)
			fmt.Fprintf(&b, "%dh ", d.Hours)
		}
		if d.Minutes != 0 {
			m["LastsMinutes"] = strconv.Itoa(d.Minutes)
			fmt.Fprintf(&b, "%dmin", d.Minutes)
		}
	}
	m["Duration"] = b.String()
}

// aka renders an alternative name as ` ("aka")`.
func aka(s string) string {
	if s == "" {
		return ""
	}
	return ` ("` + s + `")`
}

func (r *Renderer) characterMapping(id model.CharacterID, c *model.Element) map[string]string {
	m := r.elementMapping(int(id), c)
	m["AKA"] = aka(c.AKA)
	m["Status"] = model.MinorMarker
	m["Notes"], m["Bio"], m["Goals"], m["FullName"] = "", "", "", ""
	if d := c.Character; d != nil {
		if d.Major {
			m["Status"] = model.MajorMarker
		}
		m["Notes"] = d.Notes
		m["Bio"] = d.Bio
		m["Goals"] = d.Goals
		if d.FullName != "" && d.FullName != c.Title {
			m["FullName"] = "/" + d.FullName
		}
	}
	return m
}

func (r *Renderer) locationMapping(id model.LocationID, l *model.Element) map[string]string {
	m := r.elementMapping(int(id), l)
	m["AKA"] = aka(l.AKA)
	return m
}

func (r *Renderer) itemMapping(id model.ItemID, it *model.Element) map[string]string {
	return r.elementMapping(int(id), it)
}

func (r *Renderer) elementMapping(id int, e *model.Element) map[string]string {
	return map[string]string{
		"ID":          strconv.Itoa(id),
		"Title":       e.Title,
		"Desc":        e.Desc,
		"Tags":        strings.Join(e.Tags, listSeparator),
		"Image":       e.Image,
		"AKA":         e.AKA,
		"ProjectName": r.projectName,
		"ProjectPath": r.projectPath,
	}
}
