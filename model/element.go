package model

// Kind tags an Element.
type Kind int

const (
	KindLocation Kind = iota + 1
	KindItem
	KindCharacter
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLocation:
		return "location"
	case KindItem:
		return "item"
	case KindCharacter:
		return "character"
	default:
		return "unknown"
	}
}

// Element is a story world element. Locations and items use only the base
// fields; characters also carry Character.
type Element struct {
	Kind  Kind
	Title string
	Desc  string
	Tags  []string
	AKA   string
	Image string

	// Character is non-nil exactly when Kind == KindCharacter.
	Character *CharacterDetails
}

// CharacterDetails is the character-only extension of Element.
type CharacterDetails struct {
	Bio      string
	Goals    string
	Notes    string
	FullName string
	Major    bool
}

// Major/minor markers.
const (
	MajorMarker = "Major"
	MinorMarker = "Minor"
)

// NewLocation returns a location element.
func NewLocation(title string) Element {
	return Element{Kind: KindLocation, Title: title}
}

// NewItem returns an item element.
func NewItem(title string) Element {
	return Element{Kind: KindItem, Title: title}
}

// NewCharacter returns a character element with an empty extension.
func NewCharacter(title string) Element {
	return Element{Kind: KindCharacter, Title: title, Character: &CharacterDetails{}}
}

// IsCharacter reports whether the element is a character.
func (e *Element) IsCharacter() bool {
	return e.Kind == KindCharacter && e.Character != nil
}
