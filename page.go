package vitae

import (
	"context"

	"impractical.co/vitae/content"
	"impractical.co/vitae/tag"
	"impractical.co/vitae/view"
)

var _ Page = CVPage{}

// CVPage is a Page that renders a curriculum vitae from a content.Record.
type CVPage struct {
	// Content is the record the page describes.
	Content content.Record

	// Stylesheet is CSS embedded at the top of the page, as-is. Use
	// Stylesheets to load it from a Site.
	Stylesheet string

	// SourceURL is linked to from the header as the place to view the
	// page's source. Leave it empty to omit the link.
	SourceURL string

	// Title is the document title. It defaults to the name in Content.
	Title string

	// Shell is the path of the shell template within the Site's
	// TemplateDir. It defaults to DefaultShellTemplate.
	Shell string
}

func (p CVPage) shell() string {
	if p.Shell == "" {
		return DefaultShellTemplate
	}
	return p.Shell
}

// Templates returns the shell template.
func (p CVPage) Templates(_ context.Context) []string {
	return []string{p.shell()}
}

// Key returns a cache key for the shell template.
func (p CVPage) Key(_ context.Context) string {
	return "cv:" + p.shell()
}

// ExecutedTemplate returns the shell template.
func (p CVPage) ExecutedTemplate(_ context.Context) string {
	return p.shell()
}

// PageTitle returns the document title.
func (p CVPage) PageTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Content.Name
}

// Markup renders the record with view.Document.
func (p CVPage) Markup(_ context.Context) (tag.Fragment, error) {
	return view.Document(p.Content, view.Options{
		Stylesheet: p.Stylesheet,
		SourceURL:  p.SourceURL,
	})
}
