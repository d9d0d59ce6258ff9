// Package content describes the structured record a CV is rendered from, and
// loads it from YAML, JSON, or Markdown-with-frontmatter files.
//
// A Record is read-only input. Nothing in this module mutates one after it's
// been loaded.
package content

// Record is everything a CV says about its subject.
type Record struct {
	Name                string       `yaml:"name" json:"name"`
	Title               string       `yaml:"title" json:"title"`
	Summary             string       `yaml:"summary" json:"summary"`
	WebPresence         []WebLink    `yaml:"webPresence" json:"webPresence"`
	ContactInfo         ContactInfo  `yaml:"contactInfo" json:"contactInfo"`
	Website             string       `yaml:"website" json:"website"`
	Experience          []Experience `yaml:"experience" json:"experience"`
	Education           []Education  `yaml:"education" json:"education"`
	InterestsAndHobbies []string     `yaml:"interestsAndHobbies" json:"interestsAndHobbies"`
}

// WebLink is a described link to somewhere the subject has a presence, like a
// code hosting profile.
type WebLink struct {
	Desc string `yaml:"desc" json:"desc"`
	Link string `yaml:"link" json:"link"`
}

// ContactInfo is how to get in touch with the subject.
type ContactInfo struct {
	Email string `yaml:"email" json:"email"`
	Phone string `yaml:"phone" json:"phone"`
}

// Experience is a single work-experience entry.
type Experience struct {
	Company string `yaml:"company" json:"company"`

	// Website is optional. When it's empty, the company name is rendered
	// as plain text instead of a link.
	Website string    `yaml:"website,omitempty" json:"website,omitempty"`
	Date    DateRange `yaml:"date" json:"date"`
	Role    string    `yaml:"role" json:"role"`

	Summary          string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	TechStack        []string `yaml:"techStack,omitempty" json:"techStack,omitempty"`
	Responsibilities []string `yaml:"responsibilities,omitempty" json:"responsibilities,omitempty"`
}

// DateRange is a span of months, each formatted as "MM/YYYY". An empty End
// means the range is ongoing.
type DateRange struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end,omitempty" json:"end,omitempty"`
}

// Ongoing reports whether the range has no end.
func (d DateRange) Ongoing() bool {
	return d.End == ""
}

// Education is a single education entry.
type Education struct {
	School string `yaml:"school" json:"school"`
	Degree string `yaml:"degree" json:"degree"`

	Years     YearRange `yaml:"years" json:"years"`
	Education string    `yaml:"education" json:"education"`
}
