package content_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"impractical.co/vitae/content"
)

const yamlRecord = `
name: Ada Lovelace
title: analyst
summary: Writes programs for engines that don't exist yet.
webPresence:
  - desc: github
    link: https://github.com/ada
contactInfo:
  email: ada@example.com
  phone: 555-0100
website: https://ada.example.com
experience:
  - company: Analytical Engines
    website: https://engines.example.com
    date:
      start: 01/2020
      end: 03/2021
    role: programmer
    techStack: [Go, SQL]
    responsibilities:
      - wrote the first program
  - company: Difference Co
    date:
      start: 04/2021
    role: consultant
education:
  - school: Home
    degree: Mathematics
    years: [1830, "1835"]
    education: Tutored by De Morgan.
interestsAndHobbies:
  - poetry
  - horses
`

func expectedRecord() content.Record {
	return content.Record{
		Name:    "Ada Lovelace",
		Title:   "analyst",
		Summary: "Writes programs for engines that don't exist yet.",
		WebPresence: []content.WebLink{
			{Desc: "github", Link: "https://github.com/ada"},
		},
		ContactInfo: content.ContactInfo{Email: "ada@example.com", Phone: "555-0100"},
		Website:     "https://ada.example.com",
		Experience: []content.Experience{
			{
				Company:          "Analytical Engines",
				Website:          "https://engines.example.com",
				Date:             content.DateRange{Start: "01/2020", End: "03/2021"},
				Role:             "programmer",
				TechStack:        []string{"Go", "SQL"},
				Responsibilities: []string{"wrote the first program"},
			},
			{
				Company: "Difference Co",
				Date:    content.DateRange{Start: "04/2021"},
				Role:    "consultant",
			},
		},
		Education: []content.Education{
			{
				School:    "Home",
				Degree:    "Mathematics",
				Years:     content.YearRange{"1830", "1835"},
				Education: "Tutored by De Morgan.",
			},
		},
		InterestsAndHobbies: []string{"poetry", "horses"},
	}
}

func TestLoadFSYAML(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"cv.yaml": {Data: []byte(yamlRecord)}}
	rec, err := content.LoadFS(fsys, "cv.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(expectedRecord(), rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	if !rec.Experience[1].Date.Ongoing() {
		t.Error("expected second experience entry to be ongoing")
	}
}

func TestLoadFSJSON(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"cv.json": {Data: []byte(`{
		"name": "Ada Lovelace",
		"education": [{"school": "Home", "degree": "Mathematics", "years": [1830, "1835"], "education": "x"}],
		"interestsAndHobbies": []
	}`)}}
	rec, err := content.LoadFS(fsys, "cv.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := content.Record{
		Name: "Ada Lovelace",
		Education: []content.Education{
			{School: "Home", Degree: "Mathematics", Years: content.YearRange{"1830", "1835"}, Education: "x"},
		},
		InterestsAndHobbies: []string{},
	}
	if diff := cmp.Diff(expected, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	if rec.Education[0].Years.Start() != "1830" || rec.Education[0].Years.End() != "1835" {
		t.Errorf("unexpected year range %v", rec.Education[0].Years)
	}
}

func TestLoadFSMarkdown(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"body.md": {Data: []byte("---\nname: Ada\n---\nWrites **programs**.\n")},
		"both.md": {Data: []byte("---\nname: Ada\nsummary: From frontmatter.\n---\nIgnored body.\n")},
		"multi.md": {Data: []byte("---\nname: Ada\n---\nOne.\n\nTwo.\n")},
		"none.md": {Data: []byte("---\nname: Ada\n---\n\n")},
	}

	tests := map[string]string{
		"body.md":  "Writes <strong>programs</strong>.",
		"both.md":  "From frontmatter.",
		"multi.md": "<p>One.</p>\n<p>Two.</p>",
		"none.md":  "",
	}

	for path, expected := range tests {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			rec, err := content.LoadFS(fsys, path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Name != "Ada" {
				t.Errorf("expected name %q, got %q", "Ada", rec.Name)
			}
			if rec.Summary != expected {
				t.Errorf("expected summary %q, got %q", expected, rec.Summary)
			}
		})
	}
}

func TestLoadFSErrors(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"cv.toml":        {Data: []byte(`name = "Ada"`)},
		"unknown.yaml":   {Data: []byte("name: Ada\nnickname: Countess\n")},
		"years.yaml":     {Data: []byte("education:\n  - school: Home\n    years: [1830]\n")},
		"years.json":     {Data: []byte(`{"education": [{"years": ["1830", "1831", "1832"]}]}`)},
		"yearsmap.yaml":  {Data: []byte("education:\n  - years: {start: 1830}\n")},
		"nullyears.yaml": {Data: []byte("education:\n  - school: Home\n    years: ~\n")},
		"noyears.yaml":   {Data: []byte("education:\n  - school: Home\n")},
		"nullyears.json": {Data: []byte(`{"education": [{"school": "Home", "years": null}]}`)},
		"noyears.json":   {Data: []byte(`{"education": [{"school": "Home"}]}`)},
		"noyears.md":     {Data: []byte("---\neducation:\n  - school: Home\n---\n")},
		"unknown.json":   {Data: []byte(`{"nickname": "Countess"}`)},
		"malformed.json": {Data: []byte(`{"name": `)},
	}

	tests := map[string]error{
		"cv.toml":        content.ErrUnsupportedFormat,
		"missing.yaml":   nil,
		"unknown.yaml":   nil,
		"years.yaml":     content.ErrYearRange,
		"years.json":     content.ErrYearRange,
		"yearsmap.yaml":  content.ErrYearRange,
		"nullyears.yaml": content.ErrYearRange,
		"noyears.yaml":   content.ErrYearRange,
		"nullyears.json": content.ErrYearRange,
		"noyears.json":   content.ErrYearRange,
		"noyears.md":     content.ErrYearRange,
		"unknown.json":   nil,
		"malformed.json": nil,
	}

	for path, target := range tests {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			_, err := content.LoadFS(fsys, path)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if target != nil && !errors.Is(err, target) {
				t.Errorf("expected %v, got %v", target, err)
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("expected error to name %q, got %v", path, err)
			}
		})
	}
}
