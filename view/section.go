package view

import "impractical.co/vitae/tag"

// Section wraps content in a section container. When title is non-empty, a
// heading with the title comes before the content.
func Section(title string, content tag.Value) tag.Fragment {
	heading := tag.None()
	if title != "" {
		heading = tag.Frag(tag.HTML([]string{`
      <h3 class="SectionTitle ttu f5 tracked">
        `, `
      </h3>
    `}, tag.Text(title)))
	}
	return tag.HTML([]string{`
    <section class="Section">
      `, `
      `, `
    </section>
  `}, heading, content)
}

// Style renders css inside a style element, as-is.
func Style(css string) tag.Fragment {
	return tag.HTML([]string{`
  <style>`, `</style>
`}, tag.Text(css))
}
