package aeon3md

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/peter88213/aeon3md/aeon"
	"github.com/peter88213/aeon3md/aeoncsv"
	"github.com/peter88213/aeon3md/config"
	"github.com/peter88213/aeon3md/format"
	"github.com/peter88213/aeon3md/internal/errors"
	"github.com/peter88213/aeon3md/internal/logger"
	"github.com/peter88213/aeon3md/model"
	"github.com/peter88213/aeon3md/render"
	"github.com/peter88213/aeon3md/xref"
)

const component = "converter"

// Converter provides a fluent interface for converting a timeline project.
// Each configuration method returns a new Converter, so a configured
// Converter can be shared and branched safely.
//
// Every terminal operation reads and transforms the source afresh; the
// resulting model is owned by that call alone.
type Converter struct {
	// Source
	filename string
	novel    *model.Novel

	options convertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a deep copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		novel:    c.novel,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Labels sets the field labels used to interpret the timeline.
//
// Example:
//
//	labels, err := config.Load(config.LoadOptions{SourcePath: "novel.aeon"})
//	text, _, err := aeon3md.Open("novel.aeon").Labels(labels).Markdown()
func (c *Converter) Labels(labels config.Labels) *Converter {
	newConv := c.clone()
	newConv.options.labels = labels
	return newConv
}

// Suffix selects the template set, for example "_report". See
// render.Suffixes for the built-in sets.
func (c *Converter) Suffix(suffix string) *Converter {
	newConv := c.clone()
	newConv.options.suffix = suffix
	return newConv
}

// TemplateSet registers a user-supplied set and selects it. A set whose
// suffix matches a built-in set replaces it.
//
// Example:
//
//	set, err := render.LoadSet("scene_list.yaml")
//	path, _, err := aeon3md.Open("novel.aeon").TemplateSet(set).Write()
func (c *Converter) TemplateSet(set render.Set) *Converter {
	newConv := c.clone()
	if set.Suffix == "" {
		newConv.err = errors.Newf("template set has no suffix").
			Component(component).
			Category(errors.CategoryValidation).
			Build()
		return newConv
	}
	if newConv.options.custom == nil {
		newConv.options.custom = make(map[string]render.Set)
	}
	newConv.options.custom[set.Suffix] = set
	newConv.options.suffix = set.Suffix
	return newConv
}

// Filters restricts the chapters, scenes, characters, locations and items
// that are rendered.
func (c *Converter) Filters(filters render.Filters) *Converter {
	newConv := c.clone()
	newConv.options.filters = filters
	return newConv
}

// Force allows Write and WriteAll to replace existing files. The replaced
// file is kept with a .bak extension.
func (c *Converter) Force() *Converter {
	newConv := c.clone()
	newConv.options.force = true
	return newConv
}

// Logger sets the logger; the process-wide default is used otherwise.
func (c *Converter) Logger(l logger.Logger) *Converter {
	newConv := c.clone()
	newConv.options.logger = l
	return newConv
}

func (c *Converter) log() logger.Logger {
	l := c.options.logger
	if l == nil {
		l = logger.Default()
	}
	return l.Module(component)
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Novel reads and transforms the source and returns the narrative model.
// Warnings list the references that could not be resolved.
func (c *Converter) Novel() (*model.Novel, []Warning, error) {
	return c.transform()
}

// Markdown renders the selected template set and returns the text.
func (c *Converter) Markdown() (string, []Warning, error) {
	n, warnings, err := c.transform()
	if err != nil {
		return "", warnings, err
	}
	set, err := c.options.templateSet(c.options.suffix)
	if err != nil {
		return "", warnings, err
	}
	return c.renderer(set).Render(n).Text, warnings, nil
}

// CrossReferences returns the cross-reference index of the narrative.
func (c *Converter) CrossReferences() (*xref.Index, []Warning, error) {
	n, warnings, err := c.transform()
	if err != nil {
		return nil, warnings, err
	}
	return xref.Generate(n), warnings, nil
}

// Write renders the selected template set and writes it next to the source
// file. It returns the path written.
//
// Example:
//
//	path, _, err := aeon3md.Open("novel.aeon").Suffix("_report").Force().Write()
//	// path == "novel_report.md"
func (c *Converter) Write() (string, []Warning, error) {
	paths, warnings, err := c.WriteAll(context.Background(), c.options.suffix)
	if err != nil {
		return "", warnings, err
	}
	return paths[0], warnings, nil
}

// WriteAll transforms the source once and writes one document per suffix,
// concurrently. The returned paths follow the order of suffixes. The first
// failure cancels the documents not yet written.
//
// Example:
//
//	paths, _, err := aeon3md.Open("novel.aeon").Force().
//	    WriteAll(ctx, render.Suffixes()...)
func (c *Converter) WriteAll(ctx context.Context, suffixes ...string) ([]string, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	if c.filename == "" {
		return nil, nil, errors.Newf("no source file to write next to").
			Component(component).
			Category(errors.CategoryValidation).
			Build()
	}

	sets := make([]render.Set, len(suffixes))
	seen := make(map[string]bool, len(suffixes))
	for i, suffix := range suffixes {
		if seen[suffix] {
			return nil, nil, errors.Newf("suffix %q requested twice", suffix).
				Component(component).
				Category(errors.CategoryValidation).
				Context("suffix", suffix).
				Build()
		}
		seen[suffix] = true
		set, err := c.options.templateSet(suffix)
		if err != nil {
			return nil, nil, err
		}
		sets[i] = set
	}

	n, warnings, err := c.transform()
	if err != nil {
		return nil, warnings, err
	}

	paths := make([]string, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	for i, set := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := render.Path(c.filename, set.Suffix)
			if err := c.write(path, c.renderer(set).Render(n).Text); err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, warnings, err
	}
	return paths, warnings, nil
}

func (c *Converter) renderer(set render.Set) *render.Renderer {
	return render.NewWithConfig(set.Templates, render.Config{
		Filters:     c.options.filters,
		ProjectPath: c.filename,
		Logger:      c.options.logger,
	})
}

// write stores text at path, refusing to replace an existing file unless
// Force was set.
func (c *Converter) write(path, text string) error {
	if !c.options.force {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf("%q already exists", path).
				Component(component).
				Category(errors.CategoryFileIO).
				Context("path", path).
				Build()
		}
	}
	if err := render.WriteFile(path, text); err != nil {
		return err
	}
	c.log().Info("document written", logger.String("path", path))
	return nil
}

// transform produces a validated narrative model from the source.
func (c *Converter) transform() (*model.Novel, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	if c.novel != nil {
		if err := c.novel.Validate(); err != nil {
			return nil, nil, err
		}
		return c.novel, nil, nil
	}

	f, err := c.sourceFormat()
	if err != nil {
		return nil, nil, err
	}

	var (
		n        *model.Novel
		messages []string
	)
	switch f {
	case format.Aeon:
		r, err := aeon.Open(c.filename, c.options.labels)
		if err != nil {
			return nil, nil, err
		}
		n, messages = r.Novel(), r.Warnings()
	case format.CSV:
		r, err := aeoncsv.Open(c.filename, c.options.labels)
		if err != nil {
			return nil, nil, err
		}
		n, messages = r.Novel(), r.Warnings()
	}

	warnings := toWarnings(messages)
	if err := n.Validate(); err != nil {
		return nil, warnings, err
	}
	c.log().Debug("source transformed",
		logger.String("path", c.filename),
		logger.String("format", f.String()),
		logger.Int("warnings", len(warnings)))
	return n, warnings, nil
}

// sourceFormat determines the source format from the file extension, then
// from the file content.
func (c *Converter) sourceFormat() (format.Format, error) {
	if c.filename == "" {
		return format.Unknown, errors.Newf("no source file specified").
			Component(component).
			Category(errors.CategoryValidation).
			Build()
	}
	if f := format.Detect(c.filename); f != format.Unknown {
		return f, nil
	}

	file, err := os.Open(c.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return format.Unknown, errors.Newf("%q not found", c.filename).
				Component(component).
				Category(errors.CategoryNotFound).
				Context("path", c.filename).
				Build()
		}
		return format.Unknown, errors.FileError(err, c.filename)
	}
	defer file.Close()

	f, err := format.DetectFromReader(file)
	if err != nil {
		return format.Unknown, errors.FileError(err, c.filename)
	}
	if f == format.Unknown {
		return format.Unknown, errors.Newf("file type of %q is not supported", c.filename).
			Component(component).
			Category(errors.CategoryValidation).
			Context("path", c.filename).
			Build()
	}
	return f, nil
}
