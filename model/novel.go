package model

// Novel is the root of the narrative representation.
type Novel struct {
	Title      string
	Desc       string
	AuthorName string
	AuthorBio  string

	// FieldTitles are the display names of the four scene rating fields.
	FieldTitles [4]string

	Chapters   Arena[ChapterID, Chapter]
	Scenes     Arena[SceneID, Scene]
	Characters Arena[CharacterID, Element]
	Locations  Arena[LocationID, Element]
	Items      Arena[ItemID, Element]

	// Presentation order.
	ChapterOrder   []ChapterID
	CharacterOrder []CharacterID
	LocationOrder  []LocationID
	ItemOrder      []ItemID
}

// New creates an empty novel.
func New() *Novel {
	return &Novel{
		ChapterOrder:   make([]ChapterID, 0),
		CharacterOrder: make([]CharacterID, 0),
		LocationOrder:  make([]LocationID, 0),
		ItemOrder:      make([]ItemID, 0),
	}
}

// AddChapter stores c. It does not place the chapter in ChapterOrder.
func (n *Novel) AddChapter(c Chapter) ChapterID {
	return n.Chapters.Add(c)
}

// AddScene stores s.
func (n *Novel) AddScene(s Scene) SceneID {
	return n.Scenes.Add(s)
}

// AddCharacter stores a character and appends it to CharacterOrder.
func (n *Novel) AddCharacter(e Element) CharacterID {
	if e.Character == nil {
		e.Character = &CharacterDetails{}
	}
	e.Kind = KindCharacter
	id := n.Characters.Add(e)
	n.CharacterOrder = append(n.CharacterOrder, id)
	return id
}

// AddLocation stores a location and appends it to LocationOrder.
func (n *Novel) AddLocation(e Element) LocationID {
	e.Kind = KindLocation
	id := n.Locations.Add(e)
	n.LocationOrder = append(n.LocationOrder, id)
	return id
}

// AddItem stores an item and appends it to ItemOrder.
func (n *Novel) AddItem(e Element) ItemID {
	e.Kind = KindItem
	id := n.Items.Add(e)
	n.ItemOrder = append(n.ItemOrder, id)
	return id
}

// Chapter returns the chapter with id, or nil.
func (n *Novel) Chapter(id ChapterID) *Chapter { return n.Chapters.Get(id) }

// Scene returns the scene with id, or nil.
func (n *Novel) Scene(id SceneID) *Scene { return n.Scenes.Get(id) }

// Character returns the character with id, or nil.
func (n *Novel) Character(id CharacterID) *Element { return n.Characters.Get(id) }

// Location returns the location with id, or nil.
func (n *Novel) Location(id LocationID) *Element { return n.Locations.Get(id) }

// Item returns the item with id, or nil.
func (n *Novel) Item(id ItemID) *Element { return n.Items.Get(id) }

// SceneOrder returns all scene IDs in narrative order: chapter by chapter,
// following ChapterOrder.
func (n *Novel) SceneOrder() []SceneID {
	var ids []SceneID
	for _, chID := range n.ChapterOrder {
		if ch := n.Chapter(chID); ch != nil {
			ids = append(ids, ch.Scenes...)
		}
	}
	return ids
}

// ChapterCount returns the number of ordered chapters.
func (n *Novel) ChapterCount() int {
	return len(n.ChapterOrder)
}
