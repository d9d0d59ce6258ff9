package vitae

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"impractical.co/vitae/tag"
)

var (
	// ErrNoTemplatePath is returned when a template path is needed, but
	// none are supplied.
	ErrNoTemplatePath = errors.New("need at least one template path")

	// ErrTemplatePatternMatchesNoFiles is returned when a template path is
	// a pattern, but that pattern doesn't match any files.
	ErrTemplatePatternMatchesNoFiles = errors.New("pattern matches no files")
)

const tracerName = "impractical.co/vitae"

// Page is an interface for a page that can be passed to Render. It supplies
// the markup for the page and names the shell templates the markup gets
// inserted into.
type Page interface {
	// Templates returns a list of paths or patterns, within the Site's
	// TemplateDir, of the html/template files that need to be parsed
	// before the page can be rendered.
	Templates(context.Context) []string

	// Key is a unique key to use when caching this page's templates so
	// they don't need to be re-parsed. A good key is consistent, but
	// unique per set of templates.
	Key(context.Context) string

	// ExecutedTemplate is the template that needs to actually be executed
	// when rendering the page.
	ExecutedTemplate(context.Context) string

	// Markup returns the HTML to insert into the executed template's
	// container element.
	Markup(context.Context) (tag.Fragment, error)
}

// RenderData is the data that is passed to the shell template when rendering
// a page.
type RenderData[SiteType Site, PageType Page] struct {
	// Site is an instance of the Site type, containing all the
	// configuration and information about a Site.
	Site SiteType

	// Page is the page being rendered.
	Page PageType

	// Markup is the output of the Page's Markup method. It is inserted
	// into the document without escaping.
	Markup template.HTML
}

// Render renders the passed Page and writes the resulting document to out.
//
// The whole document is built before anything is written. If the page's
// markup can't be built, or the shell template can't be parsed or executed,
// the error is logged and returned, and nothing is written to out.
func Render[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) (err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "vitae.Render", trace.WithAttributes(
		attribute.String("page.key", page.Key(ctx)),
		attribute.String("page.type", fmt.Sprintf("%T", page)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger(ctx).ErrorContext(ctx, "error rendering page",
				"page", fmt.Sprintf("%T", page),
				"error", err)
		}
		span.End()
	}()

	var buf bytes.Buffer
	err = basicRender(ctx, &buf, site, page)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("document.bytes", buf.Len()))

	_, err = buf.WriteTo(out)
	if err != nil {
		return fmt.Errorf("error writing %T: %w", page, err)
	}
	return nil
}

func basicRender[SiteType Site, PageType Page](ctx context.Context, output io.Writer, site SiteType, page PageType) error {
	markup, err := page.Markup(ctx)
	if err != nil {
		return fmt.Errorf("error building markup for %T: %w", page, err)
	}

	tmpl, err := getTemplate(ctx, site, page)
	if err != nil {
		return err
	}

	data := RenderData[SiteType, PageType]{
		Site:   site,
		Page:   page,
		Markup: template.HTML(markup), // #nosec G203
	}

	executed := page.ExecutedTemplate(ctx)
	err = tmpl.ExecuteTemplate(output, executed, data)
	if err != nil {
		return fmt.Errorf("error executing template %q for %T: %w", executed, page, err)
	}
	return nil
}

func getTemplate(ctx context.Context, site Site, page Page) (*template.Template, error) {
	key := page.Key(ctx)
	if cache, ok := site.(TemplateCacher); ok {
		cached := cache.GetCachedTemplate(ctx, key)
		if cached != nil {
			return cached, nil
		}
	}
	tmplPaths := page.Templates(ctx)
	if len(tmplPaths) < 1 {
		return nil, fmt.Errorf("error rendering %T: %w", page, ErrNoTemplatePath)
	}
	funcMap := getFuncMap(ctx, site, page)
	parsed, err := parseTemplates(site.TemplateDir(ctx), funcMap, tmplPaths...)
	if err != nil {
		return nil, fmt.Errorf("error parsing templates %v for page %T: %w", tmplPaths, page, err)
	}
	if cache, ok := site.(TemplateCacher); ok {
		cache.SetCachedTemplate(ctx, key, parsed)
	}
	return parsed, nil
}

func getFuncMap(ctx context.Context, site Site, page Page) template.FuncMap {
	results := template.FuncMap{}
	if fm, ok := site.(FuncMapExtender); ok {
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	if fm, ok := page.(FuncMapExtender); ok {
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	return results
}

func parseTemplates(fsys fs.FS, funcs template.FuncMap, patterns ...string) (*template.Template, error) {
	var files []string
	for _, pattern := range patterns {
		list, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error listing files for %q: %w", pattern, err)
		}
		if len(list) < 1 {
			return nil, fmt.Errorf("error parsing %q: %w", pattern, ErrTemplatePatternMatchesNoFiles)
		}
		files = append(files, list...)
	}
	if len(files) < 1 {
		return nil, ErrNoTemplatePath
	}
	tmpl := template.New("").Funcs(funcs)
	for _, file := range files {
		sub := tmpl.New(file)
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		_, err = sub.Parse(string(contents))
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", file, err)
		}
	}
	return tmpl, nil
}

// mergeFuncMaps flattens two FuncMaps into one, with the values in `page`
// overriding the values in `in` if they have the same keys.
func mergeFuncMaps(in template.FuncMap, page template.FuncMap) template.FuncMap {
	res := template.FuncMap{}
	for k, v := range in {
		res[k] = v
	}
	for k, v := range page {
		res[k] = v
	}
	return res
}
