package view

import (
	"impractical.co/vitae/content"
	"impractical.co/vitae/tag"
)

// Education renders the education section, one list item per entry, in the
// order given.
func Education(entries []content.Education) tag.Fragment {
	return Section("education", tag.Frag(tag.HTML([]string{`
<ul class="list pl0">
  `, `
</ul>
`}, tag.Map(entries, educationEntry))))
}

func educationEntry(entry content.Education) tag.Fragment {
	return tag.HTML([]string{`
      <li class="mb4">
        <div class="ttc f4 fw6">`, `</div>
        <div class="i">`, `</div>
        <div>`, `</div>
        <div>
          <time>`, `</time>
          <span>-</span>
          <time>`, `</time>
        </div>
      </li>
    `},
		tag.Text(entry.School),
		tag.Text(entry.Degree),
		tag.Text(entry.Education),
		tag.Text(entry.Years.Start()),
		tag.Text(entry.Years.End()),
	)
}

// OtherInterests renders a tag list with one tag per item. No items renders
// an empty list.
func OtherInterests(items []string) tag.Fragment {
	return tag.HTML([]string{`
  <ul class="list pl0 flex flex-wrap">
    `, `
  </ul>
`}, tag.Map(items, func(item string) tag.Fragment {
		return tag.HTML([]string{`
      <li class="Tag bg-washed-red">`, `</li>
    `}, tag.Text(item))
	}))
}
