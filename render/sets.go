package render

import (
	"slices"

	"github.com/peter88213/aeon3md/internal/errors"
)

// Set is a named template collection. Its suffix is appended to the source
// base name to form the output file name.
type Set struct {
	Suffix      string    `yaml:"suffix"`
	Description string    `yaml:"description"`
	Templates   Templates `yaml:"templates"`
}

const (
	partTitle    = "# $Title\n    \n"
	chapterTitle = "## $Title\n    \n"
	sceneComment = "<!--- $Title --->\n\n$Desc\n\n"
	divider      = "* * *\n\n"
)

var builtin = []Set{
	{
		Suffix:      "_outline",
		Description: "Outline",
		Templates: Templates{
			Part:         partTitle,
			Chapter:      chapterTitle,
			Scene:        sceneComment,
			SceneDivider: divider,
		},
	},
	{
		Suffix:      "_full_synopsis",
		Description: "Full synopsis",
		Templates: Templates{
			Part:         partTitle,
			Chapter:      chapterTitle,
			Scene:        sceneComment,
			SceneDivider: divider,
		},
	},
	{
		Suffix:      "_brief_synopsis",
		Description: "Brief synopsis",
		Templates: Templates{
			Part:    "# $Desc\n\n",
			Chapter: "## $Desc\n    \n",
			Scene:   "$Title\n    \n",
		},
	},
	{
		Suffix:      "_chapter_overview",
		Description: "Chapter overview",
		Templates: Templates{
			Part:    "# $Desc\n\n",
			Chapter: "$Desc\n    \n",
		},
	},
	{
		Suffix:      "_character_sheets",
		Description: "Character sheets",
		Templates: Templates{
			Character: "## $Title$FullName$AKA\n\n" +
				"**Tags:** $Tags\n\n\n" +
				"$Bio\n\n\n" +
				"$Goals\n\n\n" +
				"$Desc\n\n\n" +
				"$Notes\n\n",
		},
	},
	{
		Suffix:      "_location_sheets",
		Description: "Location sheets",
		Templates: Templates{
			Location: "## $Title$AKA\n    \n    \n" +
				"**Tags:** $Tags\n\n" +
				"$Desc\n\n",
		},
	},
	{
		Suffix:      "_report",
		Description: "Project report",
		Templates: Templates{
			Part:    "# $Title – $Desc\n    \n",
			Chapter: "## $Title – $Desc\n    \n",
			Scene: "### Scene $SceneNumber – ${Title}\n    \n" +
				"**Tags:** $Tags\n\n\n" +
				"**Location:** $Locations\n\n\n" +
				"**Date/Time/Duration:** $ScDate $ScTime $Duration\n\n\n" +
				"**Participants:** $Characters\n\n\n" +
				"$Desc\n\n\n" +
				"**Notes:** $Notes\n\n",
			CharacterSectionHeading: "# Characters\n    \n",
			Character: "## $Title$FullName$AKA\n\n\n" +
				"**Tags:** $Tags\n\n\n" +
				"$Bio\n\n\n" +
				"$Goals\n\n\n" +
				"$Desc\n\n\n" +
				"**Notes:** $Notes\n\n",
			LocationSectionHeading: "## Locations\n\n",
			Location: "## $Title$AKA\n    \n" +
				"**Tags:** $Tags\n\n\n" +
				"$Desc\n\n",
		},
	},
}

// Builtin returns the built-in template sets.
func Builtin() []Set {
	return slices.Clone(builtin)
}

// Suffixes returns the suffixes of the built-in sets in listing order.
func Suffixes() []string {
	suffixes := make([]string, len(builtin))
	for i, s := range builtin {
		suffixes[i] = s.Suffix
	}
	return suffixes
}

// Lookup returns the built-in set for suffix.
func Lookup(suffix string) (Set, error) {
	for _, s := range builtin {
		if s.Suffix == suffix {
			return s, nil
		}
	}
	return Set{}, errors.Newf("unknown suffix %q", suffix).
		Component(component).
		Category(errors.CategoryValidation).
		Context("suffix", suffix).
		Build()
}
