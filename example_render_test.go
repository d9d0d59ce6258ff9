package vitae_test

import (
	"context"
	"log/slog"
	"os"
	"testing/fstest"

	"impractical.co/vitae"
	"impractical.co/vitae/tag"
)

type MySite struct {
	// anonymously embedding a *CachedSite makes MySite a Site implementation
	*vitae.CachedSite

	// a configurable title for our site
	Title string
}

type GreetingPage struct {
	Name string
}

func (GreetingPage) Templates(_ context.Context) []string {
	return []string{"base.html.tmpl"}
}

func (GreetingPage) Key(_ context.Context) string {
	return "base.html.tmpl"
}

func (GreetingPage) ExecutedTemplate(_ context.Context) string {
	return "base.html.tmpl"
}

func (p GreetingPage) Markup(_ context.Context) (tag.Fragment, error) {
	return tag.HTML([]string{`<p>Hello, `, `.</p>`}, tag.Text(p.Name)), nil
}

func ExampleRender() {
	// normally you'd use something like embed.FS or os.DirFS for this
	// for example purposes, we're just hardcoding values
	templates := fstest.MapFS{
		"base.html.tmpl": {Data: []byte(`
<!doctype html>
<html lang="en">
	<head>
		<title>{{ .Site.Title }}</title>
	</head>
	<body>
		<div>{{ .Markup }}</div>
	</body>
</html>`)},
	}

	// usually the context comes from the caller, but here we're building it from scratch and adding a logger
	ctx := vitae.LoggingContext(context.Background(), slog.Default())

	site := MySite{
		CachedSite: vitae.NewCachedSite(templates, nil),
		Title:      "My Example Site",
	}
	err := vitae.Render(ctx, os.Stdout, site, GreetingPage{Name: "Visitor"})
	if err != nil {
		panic(err)
	}

	//Output:
	// <!doctype html>
	// <html lang="en">
	// 	<head>
	// 		<title>My Example Site</title>
	// 	</head>
	// 	<body>
	// 		<div><p>Hello, Visitor.</p></div>
	// 	</body>
	// </html>
}
