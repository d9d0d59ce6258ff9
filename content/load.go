package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when a content file's extension doesn't
// map to a known decoder.
var ErrUnsupportedFormat = errors.New("unsupported content format")

// Format is a serialization a Record can be loaded from.
type Format string

const (
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"

	// FormatJSON is a JSON object.
	FormatJSON Format = "json"

	// FormatMarkdown is a Markdown document with YAML frontmatter. The
	// frontmatter holds the Record; the Markdown body, if there is one,
	// becomes the Summary unless the frontmatter already sets one.
	FormatMarkdown Format = "markdown"
)

// FormatFor returns the Format implied by the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads the file at path from the OS filesystem and decodes it into a
// Record.
func Load(path string) (Record, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return LoadFS(os.DirFS(dir), name)
}

// LoadFS reads the file at path within fsys and decodes it into a Record,
// picking a decoder by the file's extension.
func LoadFS(fsys fs.FS, path string) (Record, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Record{}, err
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Record{}, fmt.Errorf("error reading content %q: %w", path, err)
	}
	rec, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return Record{}, fmt.Errorf("error decoding content %q: %w", path, err)
	}
	return rec, nil
}

// Decode reads a Record in the given format from r.
//
// Every education entry must carry a two-element year range. One that is
// missing or null is rejected with ErrYearRange in every format.
func Decode(r io.Reader, format Format) (Record, error) {
	rec, err := decode(r, format)
	if err != nil {
		return Record{}, err
	}
	if err := checkYears(rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func decode(r io.Reader, format Format) (Record, error) {
	switch format {
	case FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return Record{}, err
		}
		var rec Record
		if err := decodeYAML(data, &rec); err != nil {
			return Record{}, err
		}
		return rec, nil
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return Record{}, err
		}
		return rec, nil
	case FormatMarkdown:
		return decodeMarkdown(r)
	default:
		return Record{}, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}

// checkYears catches year ranges that were left out or null. yaml.v3 never
// calls YearRange.UnmarshalYAML for a null node, and neither decoder calls it
// for a missing key, so both leave the zero value behind.
func checkYears(rec Record) error {
	for pos, entry := range rec.Education {
		if entry.Years == (YearRange{}) {
			return fmt.Errorf("education %d: %w, got none", pos, ErrYearRange)
		}
	}
	return nil
}

// decodeYAML is a yaml.Unmarshal that rejects fields Record doesn't have.
func decodeYAML(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		// an empty document is an empty record
		return nil
	}
	return err
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

func decodeMarkdown(r io.Reader) (Record, error) {
	var rec Record
	body, err := frontmatter.Parse(r, &rec, frontmatter.NewFormat("---", "---", decodeYAML))
	if err != nil {
		return Record{}, fmt.Errorf("error parsing frontmatter: %w", err)
	}
	if rec.Summary != "" || len(bytes.TrimSpace(body)) == 0 {
		return rec, nil
	}
	var out bytes.Buffer
	if err := markdown.Convert(body, &out); err != nil {
		return Record{}, fmt.Errorf("error converting summary: %w", err)
	}
	rec.Summary = unwrapParagraph(out.String())
	return rec, nil
}

// unwrapParagraph strips the <p> element around html when html is exactly one
// paragraph, so it can be placed inside another one.
func unwrapParagraph(html string) string {
	trimmed := strings.TrimSpace(html)
	if strings.Count(trimmed, "<p>") != 1 {
		return trimmed
	}
	inner, ok := strings.CutPrefix(trimmed, "<p>")
	if !ok {
		return trimmed
	}
	inner, ok = strings.CutSuffix(inner, "</p>")
	if !ok {
		return trimmed
	}
	return inner
}
