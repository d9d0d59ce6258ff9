package view

import (
	"fmt"

	"impractical.co/vitae/content"
	"impractical.co/vitae/tag"
)

// companyNameClasses is shared by the linked and unlinked company name, so
// both look the same.
const companyNameClasses = "CompanyName color-inherit"

// CompanyName renders the name of a company. When website is set, the name
// links to it; otherwise it's plain text. Both get the same classes.
func CompanyName(company, website string) tag.Fragment {
	if website != "" {
		return tag.HTML([]string{`
        <a href="`, `" class="`, `">
          `, `
        </a>
      `}, tag.Text(website), tag.Text(companyNameClasses), tag.Text(company))
	}
	return tag.HTML([]string{`
        <div class="`, `">
          `, `
        </div>
      `}, tag.Text(companyNameClasses), tag.Text(company))
}

// TechStack renders a tag list of technologies. It's rendered even when the
// list is empty, heading and all.
func TechStack(stack []string) tag.Fragment {
	return tag.HTML([]string{`
      <div class="TechStack">
        <div class="ttu f7">
          Tech Stack
        </div>
        <ul class="flex flex-wrap list pl0 mt1">
          `, `
        </ul>
      </div>
    `}, tag.Map(stack, func(item string) tag.Fragment {
		return tag.HTML([]string{`
            <li class="Tag bg-light-gray">`, `</li>
          `}, tag.Text(item))
	}))
}

// Responsibilities renders a list of responsibilities, or nothing at all if
// there aren't any.
func Responsibilities(items []string) tag.Fragment {
	if len(items) == 0 {
		return ""
	}
	return tag.HTML([]string{`
        <ul>
          `, `
        </ul>
      `}, tag.Map(items, func(item string) tag.Fragment {
		return tag.HTML([]string{`
            <li>`, `</li>
          `}, tag.Text(item))
	}))
}

// ExperienceBlock renders a single work-experience entry.
func ExperienceBlock(exp content.Experience) (tag.Fragment, error) {
	dates, err := WorkDates(exp.Date)
	if err != nil {
		return "", fmt.Errorf("experience at %q: %w", exp.Company, err)
	}
	return tag.HTML([]string{`
      <div class="ExperienceBlock mb4">
        <ul class="ExperienceMeta list pl0">
          <li class="ttc f4 fw6">`, `</li>
          <li>`, `</li>
          <li>`, `</li>
        </ul>
        <p>`, `</p>
        `, `
        `, `
      </div>
    `},
		tag.Text(exp.Role),
		tag.Frag(CompanyName(exp.Company, exp.Website)),
		tag.Frag(dates),
		tag.Text(exp.Summary),
		tag.Frag(TechStack(exp.TechStack)),
		tag.Frag(Responsibilities(exp.Responsibilities)),
	), nil
}

// WorkExperience renders every work-experience entry, in the order given.
func WorkExperience(entries []content.Experience) (tag.Seq, error) {
	return tag.MapErr(entries, ExperienceBlock)
}
