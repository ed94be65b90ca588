package model

import "strconv"

// SceneID identifies a scene within one Novel.
type SceneID int

// ChapterID identifies a chapter within one Novel.
type ChapterID int

// CharacterID identifies a character within one Novel.
type CharacterID int

// LocationID identifies a location within one Novel.
type LocationID int

// ItemID identifies an item within one Novel.
type ItemID int

func (id SceneID) String() string     { return strconv.Itoa(int(id)) }
func (id ChapterID) String() string   { return strconv.Itoa(int(id)) }
func (id CharacterID) String() string { return strconv.Itoa(int(id)) }
func (id LocationID) String() string  { return strconv.Itoa(int(id)) }
func (id ItemID) String() string      { return strconv.Itoa(int(id)) }
