// Package config holds the field-label configuration that tells the
// transformers which Aeon Timeline 3 types, roles and properties carry
// which meaning.
//
// Labels are matched case-sensitively against the display names used in
// the project, so a German project needs e.g. TypeCharacter "Person".
package config

// IniFileName is the settings file looked up in the install and source
// directories.
const IniFileName = "aeon3yw.ini"

// IniSection is the INI section holding the labels.
const IniSection = "settings"

// EnvPrefix prefixes the environment variable overrides.
const EnvPrefix = "AEON3MD_"

// Labels maps semantic roles to project display names.
// Treat it as immutable; use the With helpers to derive variants.
type Labels struct {
	PartNumberPrefix    string `mapstructure:"part_number_prefix" env:"PART_NUMBER_PREFIX"`
	ChapterNumberPrefix string `mapstructure:"chapter_number_prefix" env:"CHAPTER_NUMBER_PREFIX"`

	TypeEvent     string `mapstructure:"type_event" env:"TYPE_EVENT"`
	TypeCharacter string `mapstructure:"type_character" env:"TYPE_CHARACTER"`
	TypeLocation  string `mapstructure:"type_location" env:"TYPE_LOCATION"`
	TypeItem      string `mapstructure:"type_item" env:"TYPE_ITEM"`

	CharacterLabel string `mapstructure:"character_label" env:"CHARACTER_LABEL"`
	LocationLabel  string `mapstructure:"location_label" env:"LOCATION_LABEL"`
	ItemLabel      string `mapstructure:"item_label" env:"ITEM_LABEL"`

	PartDescLabel    string `mapstructure:"part_desc_label" env:"PART_DESC_LABEL"`
	ChapterDescLabel string `mapstructure:"chapter_desc_label" env:"CHAPTER_DESC_LABEL"`
	SceneDescLabel   string `mapstructure:"scene_desc_label" env:"SCENE_DESC_LABEL"`
	SceneTitleLabel  string `mapstructure:"scene_title_label" env:"SCENE_TITLE_LABEL"`
	NotesLabel       string `mapstructure:"notes_label" env:"NOTES_LABEL"`
	TagLabel         string `mapstructure:"tag_label" env:"TAG_LABEL"`
	ViewpointLabel   string `mapstructure:"viewpoint_label" env:"VIEWPOINT_LABEL"`

	CharacterBioLabel   string `mapstructure:"character_bio_label" env:"CHARACTER_BIO_LABEL"`
	CharacterAKALabel   string `mapstructure:"character_aka_label" env:"CHARACTER_AKA_LABEL"`
	CharacterDescLabel1 string `mapstructure:"character_desc_label1" env:"CHARACTER_DESC_LABEL1"`
	CharacterDescLabel2 string `mapstructure:"character_desc_label2" env:"CHARACTER_DESC_LABEL2"`
	CharacterDescLabel3 string `mapstructure:"character_desc_label3" env:"CHARACTER_DESC_LABEL3"`

	LocationDescLabel string `mapstructure:"location_desc_label" env:"LOCATION_DESC_LABEL"`
}

// Defaults returns the labels of an English Aeon Timeline 3 template.
func Defaults() Labels {
	return Labels{
		PartNumberPrefix:    "Part",
		ChapterNumberPrefix: "Chapter",
		TypeEvent:           "Event",
		TypeCharacter:       "Character",
		TypeLocation:        "Location",
		TypeItem:            "Item",
		CharacterLabel:      "Participant",
		LocationLabel:       "Location",
		ItemLabel:           "Item",
		PartDescLabel:       "Label",
		ChapterDescLabel:    "Label",
		SceneDescLabel:      "Summary",
		SceneTitleLabel:     "Label",
		NotesLabel:          "Notes",
		TagLabel:            "Tags",
		ViewpointLabel:      "Viewpoint",
		CharacterBioLabel:   "Summary",
		CharacterAKALabel:   "Nickname",
		CharacterDescLabel1: "Characteristics",
		CharacterDescLabel2: "Traits",
		CharacterDescLabel3: "",
		LocationDescLabel:   "Summary",
	}
}

// CharacterDescLabels returns the three description slot labels in order.
func (l Labels) CharacterDescLabels() [3]string {
	return [3]string{l.CharacterDescLabel1, l.CharacterDescLabel2, l.CharacterDescLabel3}
}

// WithNumberPrefixes returns a copy with the part and chapter prefixes set.
func (l Labels) WithNumberPrefixes(part, chapter string) Labels {
	l.PartNumberPrefix = part
	l.ChapterNumberPrefix = chapter
	return l
}

// WithTypes returns a copy with the event and entity type labels set.
func (l Labels) WithTypes(event, character, location, item string) Labels {
	l.TypeEvent = event
	l.TypeCharacter = character
	l.TypeLocation = location
	l.TypeItem = item
	return l
}

// WithRoles returns a copy with the relationship role labels set.
func (l Labels) WithRoles(character, location, item string) Labels {
	l.CharacterLabel = character
	l.LocationLabel = location
	l.ItemLabel = item
	return l
}

// WithSceneLabels returns a copy with the scene column labels set.
func (l Labels) WithSceneLabels(title, desc, notes, tags, viewpoint string) Labels {
	l.SceneTitleLabel = title
	l.SceneDescLabel = desc
	l.NotesLabel = notes
	l.TagLabel = tags
	l.ViewpointLabel = viewpoint
	return l
}

// WithCharacterLabels returns a copy with the character property labels set.
func (l Labels) WithCharacterLabels(bio, aka string, desc [3]string) Labels {
	l.CharacterBioLabel = bio
	l.CharacterAKALabel = aka
	l.CharacterDescLabel1 = desc[0]
	l.CharacterDescLabel2 = desc[1]
	l.CharacterDescLabel3 = desc[2]
	return l
}

// WithLocationDescLabel returns a copy with the location description label set.
func (l Labels) WithLocationDescLabel(label string) Labels {
	l.LocationDescLabel = label
	return l
}

// WithFolderDescLabels returns a copy with the part and chapter description
// labels set.
func (l Labels) WithFolderDescLabels(part, chapter string) Labels {
	l.PartDescLabel = part
	l.ChapterDescLabel = chapter
	return l
}
