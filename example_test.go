package aeon3md_test

import (
	"context"
	"fmt"
	"log"

	"github.com/peter88213/aeon3md"
	"github.com/peter88213/aeon3md/config"
	"github.com/peter88213/aeon3md/model"
	"github.com/peter88213/aeon3md/render"
)

// The examples that read files verify that the documented calls compile.
// They have no output and are not run.

func Example_convert() {
	text, warnings, err := aeon3md.Open("novel.aeon").Suffix("_brief_synopsis").Markdown()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(text)

	for _, w := range warnings {
		fmt.Println("Warning:", w.Message)
	}
}

func Example_writeWithSettings() {
	labels, err := config.Load(config.LoadOptions{SourcePath: "export.csv"})
	if err != nil {
		log.Fatal(err)
	}

	path, _, err := aeon3md.Open("export.csv").
		Labels(labels).
		Suffix("_report").
		Force().
		Write()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(path, "written")
}

func Example_writeAll() {
	paths, _, err := aeon3md.Open("novel.aeon").
		Force().
		WriteAll(context.Background(), render.Suffixes()...)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
}

func Example_crossReferences() {
	x, _, err := aeon3md.Open("novel.aeon").CrossReferences()
	if err != nil {
		log.Fatal(err)
	}
	for _, tag := range x.Tags() {
		fmt.Println(tag, len(x.ScenesPerTag[tag]))
	}
}

func ExampleFromNovel() {
	n := model.New()
	first := n.AddScene(model.Scene{Title: "Arrival"})
	second := n.AddScene(model.Scene{Title: "Departure"})
	n.ChapterOrder = append(n.ChapterOrder, n.AddChapter(model.Chapter{
		Desc:   "The visit",
		Scenes: []model.SceneID{first, second},
	}))

	set := render.Set{
		Suffix: "_titles",
		Templates: render.Templates{
			Chapter: "## $Desc\n",
			Scene:   "$SceneNumber. $Title\n",
		},
	}
	text := aeon3md.MustText(aeon3md.FromNovel(n).TemplateSet(set).Markdown())
	fmt.Print(text)
	// Output:
	// ## The visit
	// 1. Arrival
	// 2. Departure
}
