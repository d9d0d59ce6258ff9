package view

import (
	"fmt"

	"impractical.co/vitae/content"
	"impractical.co/vitae/tag"
)

// Options holds the inputs to a page that aren't part of the content record.
type Options struct {
	// Stylesheet is CSS embedded in the page as-is.
	Stylesheet string

	// SourceURL is where the page's source can be viewed. The link is
	// left out of the header when it's empty.
	SourceURL string
}

// SourceLink renders the "view source" link shown in the header.
func SourceLink(url string) tag.Fragment {
	if url == "" {
		return ""
	}
	return tag.HTML([]string{`
  <a
    href="`, `"
  >
    &lt;view source&gt;
  </a>
`}, tag.Text(url))
}

// WebPresence renders the list of places the subject can be found online.
func WebPresence(links []content.WebLink) tag.Seq {
	return tag.Map(links, func(link content.WebLink) tag.Fragment {
		return tag.HTML([]string{`
          <div class="comma-seperated">
            <a href="`, `">`, `</a>
          </div>
        `}, tag.Text(link.Link), tag.Text(link.Desc))
	})
}

// Header renders the page header: who the subject is, where they are online,
// and how to contact them.
func Header(rec content.Record, opts Options) tag.Fragment {
	source := tag.None()
	if link := SourceLink(opts.SourceURL); link != "" {
		source = tag.Frag(tag.HTML([]string{`
      <div>`, `</div>`}, tag.Frag(link)))
	}
	return tag.HTML([]string{`
  <header class="flex justify-between">
    <div>
      <h1 class="ma0 f3">`, `</h1>
      <div class="ttc">`, `</div>
      <div class="flex">
        `, `
      </div>
      `, `
    </div>
    <ul class="list pl0 ma0">
      <li>
        <span class="w4-ns dib tr">e</span>
        `, `
      </li>
      <li>
        <span class="w4-ns dib tr">w</span>
        <a href="`, `">`, `</a>
      </li>
      <li>
        <span class="w4-ns dib tr">p</span>
        <span>`, `</span>
      </li>
    </ul>
  </header>
`},
		tag.Text(rec.Name),
		tag.Text(rec.Title),
		WebPresence(rec.WebPresence),
		source,
		tag.Frag(Link(rec.ContactInfo.Email, rec.ContactInfo.Email)),
		tag.Text(rec.Website),
		tag.Text(rec.Website),
		tag.Text(rec.ContactInfo.Phone),
	)
}

// Summary renders the subject's summary paragraph.
func Summary(summary string) tag.Fragment {
	return tag.HTML([]string{`<p>`, `</p>`}, tag.Text(summary))
}

// Document renders the whole page: the embedded stylesheet, then the header,
// summary, experience, interests and hobbies, and education sections, in
// that order.
//
// If any part fails to render, no markup is returned.
func Document(rec content.Record, opts Options) (tag.Fragment, error) {
	experience, err := WorkExperience(rec.Experience)
	if err != nil {
		return "", fmt.Errorf("error rendering experience: %w", err)
	}
	return tag.HTML([]string{`
  `, `
  `, `
  `, `
  `, `
  `, `
  `, `
`},
		tag.Frag(Style(opts.Stylesheet)),
		tag.Frag(Section("", tag.Frag(Header(rec, opts)))),
		tag.Frag(Section("", tag.Frag(Summary(rec.Summary)))),
		tag.Frag(Section("experience", experience)),
		tag.Frag(Section("interests & hobbies", tag.Frag(OtherInterests(rec.InterestsAndHobbies)))),
		tag.Frag(Education(rec.Education)),
	), nil
}
