package aeon3md

import (
	"maps"

	"github.com/peter88213/aeon3md/config"
	"github.com/peter88213/aeon3md/internal/logger"
	"github.com/peter88213/aeon3md/render"
)

// DefaultSuffix selects the template set used when none is chosen.
const DefaultSuffix = "_full_synopsis"

// convertOptions holds the configuration of a Converter.
type convertOptions struct {
	labels config.Labels

	// Template selection
	suffix string
	custom map[string]render.Set // user-supplied sets by suffix

	filters render.Filters
	force   bool // overwrite existing destinations
	logger  logger.Logger
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	return convertOptions{
		labels: config.Defaults(),
		suffix: DefaultSuffix,
	}
}

// clone creates a copy that shares nothing mutable with o.
func (o convertOptions) clone() convertOptions {
	newOpts := o
	if o.custom != nil {
		newOpts.custom = maps.Clone(o.custom)
	}
	return newOpts
}

// templateSet resolves suffix against the user-supplied sets first, then the
// built-in ones.
func (o convertOptions) templateSet(suffix string) (render.Set, error) {
	if set, ok := o.custom[suffix]; ok {
		return set, nil
	}
	return render.Lookup(suffix)
}
