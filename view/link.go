package view

import (
	"strings"

	"impractical.co/vitae/tag"
)

const mailtoScheme = "mailto:"

// Link renders an anchor around content. An href containing an "@" is taken
// to be an email address and gets a mailto: scheme; anything else is used as
// the target unchanged. No validation is done on href.
func Link(href, content string) tag.Fragment {
	scheme := tag.None()
	if strings.Contains(href, "@") {
		scheme = tag.Text(mailtoScheme)
	}
	return tag.HTML([]string{`
    <a href="`, ``, `">`, `</a>
  `}, scheme, tag.Text(href), tag.Text(content))
}
