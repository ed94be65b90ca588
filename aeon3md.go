// Package aeon3md converts Aeon Timeline 3 projects to Markdown.
//
// A project is either a native .aeon file, which embeds the timeline as
// JSON, or a CSV export. The timeline is rebuilt into a narrative of parts,
// chapters and scenes plus characters, locations and items, then rendered
// through a template set selected by its suffix.
//
// Basic usage:
//
//	text, warnings, err := aeon3md.Open("novel.aeon").Suffix("_brief_synopsis").Markdown()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", aeon3md.FormatWarnings(warnings))
//	}
//
// Writing next to the source, with custom labels:
//
//	path, _, err := aeon3md.Open("export.csv").
//	    Labels(labels).
//	    Suffix("_report").
//	    Force().
//	    Write()
//
// The lower-level aeon, aeoncsv, render and xref packages are available for
// callers that need more control.
package aeon3md

import (
	"github.com/peter88213/aeon3md/model"
)

// Open returns a Converter for the project at filename. The file is not read
// until a terminal operation such as Markdown() runs.
//
// Example:
//
//	text, warnings, err := aeon3md.Open("novel.aeon").Markdown()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromNovel returns a Converter over an already built narrative model. The
// model is not copied; it must not be modified while the Converter is in use.
//
// Example:
//
//	n := model.New()
//	// ... populate n
//	text, _, err := aeon3md.FromNovel(n).Suffix("_outline").Markdown()
func FromNovel(n *model.Novel) *Converter {
	return &Converter{
		novel:   n,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	labels := aeon3md.Must(config.Load(config.LoadOptions{}))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Markdown() or Novel() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	text := aeon3md.MustText(aeon3md.Open("novel.aeon").Markdown())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
