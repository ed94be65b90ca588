package xref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter88213/aeon3md/model"
)

func buildNovel(t *testing.T) *model.Novel {
	t.Helper()
	n := model.New()

	alice := model.NewCharacter("Alice")
	alice.Tags = []string{"hero"}
	a := n.AddCharacter(alice)
	b := n.AddCharacter(model.NewCharacter("Bob"))

	garden := model.NewLocation("Garden")
	garden.Tags = []string{"outside", "hero"}
	g := n.AddLocation(garden)

	key := model.NewItem("Key")
	key.Tags = []string{"small"}
	k := n.AddItem(key)

	s1 := n.AddScene(model.Scene{Title: "one", Characters: []model.CharacterID{a}, Tags: []string{"red"}})
	s2 := n.AddScene(model.Scene{Title: "two", Characters: []model.CharacterID{a}, Locations: []model.LocationID{g}})
	s3 := n.AddScene(model.Scene{Title: "three", Items: []model.ItemID{k}, Tags: []string{"red", "blue"}})
	_ = b

	c1 := n.AddChapter(model.Chapter{Title: "Second", Scenes: []model.SceneID{s3}})
	c2 := n.AddChapter(model.Chapter{Title: "First", Scenes: []model.SceneID{s2, s1}})
	n.ChapterOrder = []model.ChapterID{c2, c1}
	return n
}

func TestGenerate(t *testing.T) {
	n := buildNovel(t)
	x := Generate(n)

	assert.Equal(t, []model.SceneID{2, 1, 3}, x.SortedScenes)
	assert.Equal(t, map[model.SceneID]model.ChapterID{1: 2, 2: 2, 3: 1}, x.ChapterOfScene)

	assert.Equal(t, []model.SceneID{2, 1}, x.ScenesPerCharacter[1])
	require.Contains(t, x.ScenesPerCharacter, model.CharacterID(2))
	assert.Empty(t, x.ScenesPerCharacter[2], "unreferenced characters still get an entry")
	assert.Equal(t, []model.SceneID{2}, x.ScenesPerLocation[1])
	assert.Equal(t, []model.SceneID{3}, x.ScenesPerItem[1])

	assert.Equal(t, []model.SceneID{1, 3}, x.ScenesPerTag["red"])
	assert.Equal(t, []model.SceneID{3}, x.ScenesPerTag["blue"])
	assert.Equal(t, []model.CharacterID{1}, x.CharactersPerTag["hero"])
	assert.Equal(t, []model.LocationID{1}, x.LocationsPerTag["hero"])
	assert.Equal(t, []model.ItemID{1}, x.ItemsPerTag["small"])

	assert.Equal(t, []string{"blue", "hero", "outside", "red", "small"}, x.Tags())
}

func TestGenerateDoesNotModify(t *testing.T) {
	n := buildNovel(t)
	before := buildNovel(t)
	Generate(n)
	assert.Equal(t, before, n)
}

func TestGenerateEmpty(t *testing.T) {
	x := Generate(model.New())
	assert.Empty(t, x.SortedScenes)
	assert.Empty(t, x.ChapterOfScene)
	assert.Empty(t, x.Tags())
}

func TestGenerateSkipsUnorderedChapters(t *testing.T) {
	n := model.New()
	s := n.AddScene(model.Scene{Title: "loose"})
	n.AddChapter(model.Chapter{Title: "unlisted", Scenes: []model.SceneID{s}})

	x := Generate(n)
	assert.Empty(t, x.SortedScenes)
	assert.NotContains(t, x.ChapterOfScene, s)
}
