// Package vitae renders a curriculum vitae as a single static HTML page.
//
// The page is built in two steps. First, the view package turns a
// content.Record into one fragment of markup, by composing smaller fragments
// with the tag package. Then Render inserts that fragment into a shell
// document, as the contents of its one container element, and writes the
// result out. Render is the only part of this module with a side effect; every
// step before it is a pure function of its inputs.
//
// A Site supplies the shell templates as an fs.FS, and holds any state that
// should outlive a single render, like parsed templates and stylesheet text.
// CachedSite is a ready-made Site that caches both; embed it in your own Site
// type if you need to add configuration.
//
// A Page supplies the markup and names the shell template to execute. CVPage
// is the Page that renders a content.Record.
//
// Rendering is all or nothing. If the markup can't be built or the shell
// can't be executed, Render returns an error and writes nothing.
package vitae
