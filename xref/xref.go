// Package xref derives cross-reference indices from a narrative model.
//
// An Index is a read-only projection: Generate never modifies the novel, and
// a fresh Index must be generated after the novel changes.
package xref

import (
	"slices"

	"github.com/peter88213/aeon3md/model"
)

// Index holds the cross references of one novel.
type Index struct {
	// SortedScenes lists every scene in narrative order.
	SortedScenes []model.SceneID

	// ChapterOfScene maps each ordered scene to its chapter.
	ChapterOfScene map[model.SceneID]model.ChapterID

	ScenesPerCharacter map[model.CharacterID][]model.SceneID
	ScenesPerLocation  map[model.LocationID][]model.SceneID
	ScenesPerItem      map[model.ItemID][]model.SceneID

	ScenesPerTag     map[string][]model.SceneID
	CharactersPerTag map[string][]model.CharacterID
	LocationsPerTag  map[string][]model.LocationID
	ItemsPerTag      map[string][]model.ItemID
}

// Generate builds the cross references for n.
//
// Every ordered character, location and item gets an entry, even when no
// scene refers to it. Scene lists follow narrative order.
func Generate(n *model.Novel) *Index {
	x := &Index{
		SortedScenes:       make([]model.SceneID, 0, n.Scenes.Len()),
		ChapterOfScene:     make(map[model.SceneID]model.ChapterID),
		ScenesPerCharacter: make(map[model.CharacterID][]model.SceneID),
		ScenesPerLocation:  make(map[model.LocationID][]model.SceneID),
		ScenesPerItem:      make(map[model.ItemID][]model.SceneID),
		ScenesPerTag:       make(map[string][]model.SceneID),
		CharactersPerTag:   make(map[string][]model.CharacterID),
		LocationsPerTag:    make(map[string][]model.LocationID),
		ItemsPerTag:        make(map[string][]model.ItemID),
	}

	for _, id := range n.CharacterOrder {
		x.ScenesPerCharacter[id] = []model.SceneID{}
		if c := n.Character(id); c != nil {
			addPerTag(x.CharactersPerTag, c.Tags, id)
		}
	}
	for _, id := range n.LocationOrder {
		x.ScenesPerLocation[id] = []model.SceneID{}
		if l := n.Location(id); l != nil {
			addPerTag(x.LocationsPerTag, l.Tags, id)
		}
	}
	for _, id := range n.ItemOrder {
		x.ScenesPerItem[id] = []model.SceneID{}
		if it := n.Item(id); it != nil {
			addPerTag(x.ItemsPerTag, it.Tags, id)
		}
	}

	for _, chID := range n.ChapterOrder {
		ch := n.Chapter(chID)
		if ch == nil {
			continue
		}
		for _, scID := range ch.Scenes {
			sc := n.Scene(scID)
			if sc == nil {
				continue
			}
			x.SortedScenes = append(x.SortedScenes, scID)
			x.ChapterOfScene[scID] = chID

			for _, id := range sc.Characters {
				x.ScenesPerCharacter[id] = append(x.ScenesPerCharacter[id], scID)
			}
			for _, id := range sc.Locations {
				x.ScenesPerLocation[id] = append(x.ScenesPerLocation[id], scID)
			}
			for _, id := range sc.Items {
				x.ScenesPerItem[id] = append(x.ScenesPerItem[id], scID)
			}
			addPerTag(x.ScenesPerTag, sc.Tags, scID)
		}
	}
	return x
}

func addPerTag[K comparable](index map[string][]K, tags []string, id K) {
	for _, tag := range tags {
		index[tag] = append(index[tag], id)
	}
}

// Tags returns the tags used by scenes, characters, locations or items,
// sorted and without duplicates.
func (x *Index) Tags() []string {
	var tags []string
	for tag := range x.ScenesPerTag {
		tags = append(tags, tag)
	}
	for tag := range x.CharactersPerTag {
		tags = append(tags, tag)
	}
	for tag := range x.LocationsPerTag {
		tags = append(tags, tag)
	}
	for tag := range x.ItemsPerTag {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}
