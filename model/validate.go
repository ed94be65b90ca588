package model

import (
	"fmt"

	"github.com/peter88213/aeon3md/internal/errors"
)

// Validate checks referential closure: every ordered ID and every ID listed
// by a chapter or scene must exist in its arena. All violations are joined
// into one validation error.
func (n *Novel) Validate() error {
	var problems []error
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	for _, chID := range n.ChapterOrder {
		ch := n.Chapter(chID)
		if ch == nil {
			report("ordered chapter %s does not exist", chID)
			continue
		}
		for _, scID := range ch.Scenes {
			if !n.Scenes.Has(scID) {
				report("chapter %s lists missing scene %s", chID, scID)
			}
		}
	}
	for _, id := range n.CharacterOrder {
		if !n.Characters.Has(id) {
			report("ordered character %s does not exist", id)
		}
	}
	for _, id := range n.LocationOrder {
		if !n.Locations.Has(id) {
			report("ordered location %s does not exist", id)
		}
	}
	for _, id := range n.ItemOrder {
		if !n.Items.Has(id) {
			report("ordered item %s does not exist", id)
		}
	}

	for _, scID := range n.Scenes.IDs() {
		sc := n.Scene(scID)
		for _, id := range sc.Characters {
			if !n.Characters.Has(id) {
				report("scene %s lists missing character %s", scID, id)
			}
		}
		for _, id := range sc.Locations {
			if !n.Locations.Has(id) {
				report("scene %s lists missing location %s", scID, id)
			}
		}
		for _, id := range sc.Items {
			if !n.Items.Has(id) {
				report("scene %s lists missing item %s", scID, id)
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New(errors.Join(problems...)).
		Component("model").
		Category(errors.CategoryValidation).
		Context("problems", len(problems)).
		Build()
}
