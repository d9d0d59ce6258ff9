package vitae

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"sync"
)

//go:embed shell
var shellFS embed.FS

// DefaultShellTemplate is the path, within DefaultShell, of the shell document
// pages are inserted into.
const DefaultShellTemplate = "shell.html.tmpl"

// DefaultShell returns an fs.FS holding DefaultShellTemplate: a minimal HTML5
// document whose body is a single container element for the page markup.
func DefaultShell() fs.FS {
	sub, err := fs.Sub(shellFS, "shell")
	if err != nil {
		// the directory is embedded at build time, so this can't happen
		panic(err)
	}
	return sub
}

// Site is an interface for the singleton that will be used to render HTML.
// Consumers should use it to store any configuration that should outlive a
// single render, and use it to render Pages.
//
// A Site needs to be able to surface the shell templates Pages rely on as an
// fs.FS.
type Site interface {
	// TemplateDir returns an fs.FS containing all the templates needed to
	// render every Page on the Site.
	//
	// The path to templates within the fs.FS should match the output of
	// Templates for Pages.
	TemplateDir(ctx context.Context) fs.FS
}

// AssetSite is an optional interface for Sites that can supply stylesheets
// from an fs.FS. Stylesheets reads from it.
type AssetSite interface {
	// AssetDir returns an fs.FS containing the stylesheets the Site's
	// Pages embed.
	AssetDir(ctx context.Context) fs.FS
}

// TemplateCacher is an optional interface for Sites. Those fulfilling it can
// cache their template parsing using the output of Key from each Page to save
// on the overhead of parsing the template each time. The templates being
// parsed for a given key should be the same every time, as should the template
// getting executed, but the data may still be different, so the output HTML
// cannot be safely presumed to be cacheable.
type TemplateCacher interface {
	// GetCachedTemplate returns the *template.Template specified by the
	// passed key. It should return nil if the template hasn't been cached
	// yet.
	GetCachedTemplate(ctx context.Context, key string) *template.Template

	// SetCachedTemplate stores the passed *template.Template under the
	// passed key, for later retrieval with GetCachedTemplate.
	//
	// Any errors encountered should be logged, but as this is a
	// best-effort operation, will not be surfaced outside the function.
	SetCachedTemplate(ctx context.Context, key string, tmpl *template.Template)
}

// StylesheetCacher is an optional interface for Sites. Those fulfilling it
// can cache the stylesheets Stylesheets reads, keyed by their path, to save
// reading them from the AssetDir each time.
type StylesheetCacher interface {
	// GetCachedStylesheet returns the stylesheet stored under the passed
	// path. It should return nil if the stylesheet hasn't been cached yet.
	GetCachedStylesheet(ctx context.Context, path string) *string

	// SetCachedStylesheet stores the passed stylesheet under the passed
	// path, for later retrieval with GetCachedStylesheet.
	SetCachedStylesheet(ctx context.Context, path, css string)
}

// FuncMapExtender is an interface that Sites and Pages can fulfill to add to
// the map of functions available to the shell template.
type FuncMapExtender interface {
	// FuncMap returns an html/template.FuncMap containing all the
	// functions being added to the FuncMap.
	FuncMap(context.Context) template.FuncMap
}

var _ Site = &CachedSite{}
var _ AssetSite = &CachedSite{}
var _ TemplateCacher = &CachedSite{}
var _ StylesheetCacher = &CachedSite{}

// CachedSite is an implementation of the Site interface that can be embedded
// in other Site implementations. It fulfills the Site, AssetSite,
// TemplateCacher, and StylesheetCacher interfaces, caching templates and
// stylesheets in memory and exposing the fs.FS values passed to it in
// NewCachedSite. A CachedSite must be instantiated through NewCachedSite, its
// empty value is not usable.
type CachedSite struct {
	templateCache   map[string]*template.Template
	templateCacheMu sync.RWMutex

	stylesheetCache   map[string]string
	stylesheetCacheMu sync.RWMutex

	// templateDir is where Render will look for the shell templates
	// required by Pages.
	templateDir fs.FS

	// assetDir is where Stylesheets will look for stylesheets. It may be
	// nil, in which case the Site has no stylesheets.
	assetDir fs.FS
}

// NewCachedSite returns a CachedSite instance that is ready to be used. If
// templates is nil, DefaultShell is used. assets may be nil if no stylesheets
// will be loaded through the Site.
func NewCachedSite(templates, assets fs.FS) *CachedSite {
	if templates == nil {
		templates = DefaultShell()
	}
	return &CachedSite{
		templateCache:   map[string]*template.Template{},
		stylesheetCache: map[string]string{},
		templateDir:     templates,
		assetDir:        assets,
	}
}

// GetCachedTemplate returns the cached template associated with the passed
// key, if one exists. If no template is cached for that key, it returns nil.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) GetCachedTemplate(_ context.Context, key string) *template.Template {
	s.templateCacheMu.RLock()
	defer s.templateCacheMu.RUnlock()
	res, ok := s.templateCache[key]
	if !ok {
		return nil
	}
	return res
}

// SetCachedTemplate caches a template for the given key.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) SetCachedTemplate(_ context.Context, key string, tmpl *template.Template) {
	s.templateCacheMu.Lock()
	defer s.templateCacheMu.Unlock()
	s.templateCache[key] = tmpl
}

// GetCachedStylesheet returns the cached stylesheet read from the passed path,
// if one exists. If no stylesheet is cached for that path, it returns nil.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) GetCachedStylesheet(_ context.Context, path string) *string {
	s.stylesheetCacheMu.RLock()
	defer s.stylesheetCacheMu.RUnlock()
	res, ok := s.stylesheetCache[path]
	if !ok {
		return nil
	}
	return &res
}

// SetCachedStylesheet caches a stylesheet for the given path.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) SetCachedStylesheet(_ context.Context, path, css string) {
	s.stylesheetCacheMu.Lock()
	defer s.stylesheetCacheMu.Unlock()
	s.stylesheetCache[path] = css
}

// Purge empties both caches, so the next render reads templates and
// stylesheets from their fs.FS again. Call it when the files behind them have
// changed.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) Purge(ctx context.Context) {
	s.templateCacheMu.Lock()
	clear(s.templateCache)
	s.templateCacheMu.Unlock()

	s.stylesheetCacheMu.Lock()
	clear(s.stylesheetCache)
	s.stylesheetCacheMu.Unlock()

	logger(ctx).DebugContext(ctx, "purged site caches")
}

// TemplateDir returns an fs.FS containing all the templates needed to render a
// Site's Pages. In this case, we just pass back what the consumer passed in.
func (s *CachedSite) TemplateDir(_ context.Context) fs.FS {
	return s.templateDir
}

// AssetDir returns an fs.FS containing the Site's stylesheets, as passed to
// NewCachedSite.
func (s *CachedSite) AssetDir(_ context.Context) fs.FS {
	return s.assetDir
}
