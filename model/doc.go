// Package model provides the in-memory narrative representation produced by
// the timeline transforms and consumed by cross-referencing and rendering.
//
// # Novel Structure
//
// The [Novel] type is the root. Each entity kind lives in its own [Arena],
// addressed by a kind-specific ID type:
//
//	n := model.New()
//	chID := n.AddChapter(model.Chapter{Title: "Chapter 1"})
//	scID := n.AddScene(model.Scene{Title: "Arrival"})
//	n.Chapter(chID).Scenes = append(n.Chapter(chID).Scenes, scID)
//	n.ChapterOrder = append(n.ChapterOrder, chID)
//
// Presentation order never depends on arena order. It is defined by the
// ordered ID lists [Novel.ChapterOrder], [Novel.CharacterOrder],
// [Novel.LocationOrder] and [Novel.ItemOrder], and by each chapter's
// scene list.
//
// # Entities
//
//   - [Scene] - a narrative unit with dates, duration, and links to
//     characters, locations and items
//   - [Chapter] - a part (level 1) or chapter (level 0) owning scenes
//   - [Element] - a location, item, or character; characters carry a
//     [CharacterDetails] extension
//
// # Invariants
//
// [Novel.Validate] checks referential closure: every ID listed by a chapter
// or scene exists in its arena.
package model
