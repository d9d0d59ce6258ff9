// Command vitae renders a curriculum vitae from a content file into a single
// static HTML page.
//
// Usage:
//
//	vitae build [--config vitae.yaml] [--content cv.yaml] [--output public/index.html] [--watch]
//	vitae version
//
// Settings come from vitae.yaml, VITAE_ environment variables, and flags, in
// increasing order of precedence.
package main

func main() {
	Execute()
}
