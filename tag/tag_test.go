package tag_test

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"testing/quick"

	"impractical.co/vitae/tag"
)

// randomTemplate is a set of segments and values, along with the output we
// expect composing them to produce, built up independently of Compose.
type randomTemplate struct {
	Segments []string
	Values   []tag.Value
	Expected string
}

var segmentChoices = []string{
	"", " ", "\n\t\t", "\n    ", "<li>", "</li>\n", "  <a href=\"", "\">",
	"text with spaces ", " \n x \n ",
}

var wordChoices = []string{"", "a", "b@c.com", "<b>bold</b>", "two words", "  "}

func (randomTemplate) Generate(r *rand.Rand, _ int) reflect.Value {
	n := r.Intn(6)
	var tmpl randomTemplate
	var expected strings.Builder
	for i := 0; i <= n; i++ {
		seg := segmentChoices[r.Intn(len(segmentChoices))]
		tmpl.Segments = append(tmpl.Segments, seg)
		if strings.TrimSpace(seg) != "" {
			expected.WriteString(seg)
		}
		if i == n {
			break
		}
		switch r.Intn(4) {
		case 0:
			tmpl.Values = append(tmpl.Values, tag.None())
		case 1:
			var seq tag.Seq
			for j := r.Intn(4); j > 0; j-- {
				word := wordChoices[r.Intn(len(wordChoices))]
				seq = append(seq, tag.Fragment(word))
				expected.WriteString(word)
			}
			tmpl.Values = append(tmpl.Values, seq)
		case 2:
			num := r.Intn(1000) - 500
			tmpl.Values = append(tmpl.Values, tag.Of(num))
			expected.WriteString(fmt.Sprint(num))
		default:
			word := wordChoices[r.Intn(len(wordChoices))]
			tmpl.Values = append(tmpl.Values, tag.Text(word))
			expected.WriteString(word)
		}
	}
	tmpl.Expected = expected.String()
	return reflect.ValueOf(tmpl)
}

func TestComposeMatchesConcatenation(t *testing.T) {
	t.Parallel()

	check := func(tmpl randomTemplate) bool {
		got, err := tag.Compose(tmpl.Segments, tmpl.Values...)
		if err != nil {
			t.Logf("unexpected error: %v", err)
			return false
		}
		if string(got) != tmpl.Expected {
			t.Logf("expected %q, got %q", tmpl.Expected, got)
			return false
		}
		again := tag.HTML(tmpl.Segments, tmpl.Values...)
		return again == got
	}
	if err := quick.Check(check, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

// ptr returns a pointer to the Scalar v wraps.
func ptr(v tag.Value) *tag.Scalar {
	s := v.(tag.Scalar)
	return &s
}

func TestComposeNormalization(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		value    tag.Value
		expected string
	}{
		"absent":         {value: tag.None(), expected: "[]"},
		"nil":            {value: nil, expected: "[]"},
		"empty-opt":      {value: tag.Opt(""), expected: "[]"},
		"opt":            {value: tag.Opt("x"), expected: "[x]"},
		"empty-seq":      {value: tag.Seq{}, expected: "[]"},
		"seq":            {value: tag.Seq{"<li>a</li>", "<li>b</li>"}, expected: "[<li>a</li><li>b</li>]"},
		"strings":        {value: tag.Strings([]string{"x", "y"}), expected: "[xy]"},
		"number":         {value: tag.Of(42), expected: "[42]"},
		"bool":           {value: tag.Of(true), expected: "[true]"},
		"fragment":       {value: tag.Frag("<p>hi</p>"), expected: "[<p>hi</p>]"},
		"unescaped":      {value: tag.Text(`<script>"x"</script>`), expected: `[<script>"x"</script>]`},
		"empty-text":     {value: tag.Text(""), expected: "[]"},
		"nil-scalar":     {value: tag.Of(nil), expected: "[]"},
		"space-in-text":  {value: tag.Text("  "), expected: "[  ]"},
		"absent-ptr":     {value: &tag.Absent{}, expected: "[]"},
		"seq-ptr":        {value: &tag.Seq{"a", "b"}, expected: "[ab]"},
		"nil-seq-ptr":    {value: (*tag.Seq)(nil), expected: "[]"},
		"scalar-ptr":     {value: ptr(tag.Of(7)), expected: "[7]"},
		"nil-scalar-ptr": {value: (*tag.Scalar)(nil), expected: "[]"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := tag.HTML([]string{"[", "]"}, test.value)
			if string(got) != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestComposeWhitespaceSegments(t *testing.T) {
	t.Parallel()

	got := tag.HTML([]string{"\n  ", "\n    ", "  <b>", "</b>\n  "},
		tag.Text("a"), tag.Text("b"), tag.Text("c"))
	expected := "ab  <b>c</b>\n  "
	if string(got) != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestComposeArity(t *testing.T) {
	t.Parallel()

	_, err := tag.Compose([]string{"a", "b"})
	if !errors.Is(err, tag.ErrArity) {
		t.Errorf("expected ErrArity, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected HTML to panic on arity mismatch")
		}
	}()
	tag.HTML([]string{"a"}, tag.Text("b"))
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := tag.MapErr([]int{1, 2, 3}, func(i int) (tag.Fragment, error) {
		if i == 2 {
			return "", boom
		}
		return tag.Fragment(fmt.Sprint(i)), nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}

	seq, err := tag.MapErr([]int{1, 2}, func(i int) (tag.Fragment, error) {
		return tag.Fragment(fmt.Sprint(i)), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tag.Normalize(seq); got != "12" {
		t.Errorf("expected %q, got %q", "12", got)
	}
}

func ExampleHTML() {
	items := []string{"Go", "SQL"}
	list := tag.HTML([]string{`<ul class="list">`, "\n\t", `</ul>`},
		tag.Map(items, func(item string) tag.Fragment {
			return tag.HTML([]string{"<li>", "</li>"}, tag.Text(item))
		}),
		tag.None(),
	)
	fmt.Println(list)
	// Output:
	// <ul class="list"><li>Go</li><li>SQL</li></ul>
}
