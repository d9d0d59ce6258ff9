// Package tag composes HTML fragments out of literal segments and interpolated
// values.
//
// A template is an ordered list of N+1 literal segments and N values. The
// result is segment[0], then value[0] normalized to a string, then segment[1],
// and so on through segment[N]. Segments that are nothing but whitespace are
// dropped, so indentation used to lay out a template in source never shows up
// as a text node of its own. Segments carrying any real text are kept as-is,
// whitespace included.
//
// Values are not escaped. Callers are responsible for what they interpolate.
package tag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrArity is returned when the number of segments isn't one more than the
// number of values.
var ErrArity = errors.New("segment count must be one more than value count")

// Fragment is a string of HTML markup.
type Fragment string

// String returns the markup.
func (f Fragment) String() string {
	return string(f)
}

// Value is something that can be interpolated into a template. It's a closed
// union: the only implementations are Absent, Seq, and Scalar.
type Value interface {
	value()
}

// Absent is a value that isn't there. It normalizes to the empty string.
type Absent struct{}

// Seq is an ordered sequence of values. It normalizes to the concatenation of
// its elements, with no separator.
type Seq []Fragment

// Scalar is any single value. It normalizes to its fmt.Sprint form.
type Scalar struct {
	v any
}

func (Absent) value() {}
func (Seq) value()    {}
func (Scalar) value() {}

// None returns an Absent value.
func None() Value {
	return Absent{}
}

// Text wraps a plain string.
func Text(s string) Value {
	return Scalar{v: s}
}

// Frag wraps an already composed Fragment.
func Frag(f Fragment) Value {
	return Scalar{v: f}
}

// Of wraps any other scalar, like a number or a bool.
func Of(v any) Value {
	return Scalar{v: v}
}

// Opt returns Absent when s is empty and Text(s) otherwise.
func Opt(s string) Value {
	if s == "" {
		return Absent{}
	}
	return Text(s)
}

// Strings turns a slice of strings into a Seq.
func Strings(items []string) Seq {
	res := make(Seq, 0, len(items))
	for _, item := range items {
		res = append(res, Fragment(item))
	}
	return res
}

// Map builds a Seq by calling fn on every item, in order.
func Map[T any](items []T, fn func(T) Fragment) Seq {
	res := make(Seq, 0, len(items))
	for _, item := range items {
		res = append(res, fn(item))
	}
	return res
}

// MapErr is like Map, but stops at the first error fn returns.
func MapErr[T any](items []T, fn func(T) (Fragment, error)) (Seq, error) {
	res := make(Seq, 0, len(items))
	for pos, item := range items {
		frag, err := fn(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", pos, err)
		}
		res = append(res, frag)
	}
	return res, nil
}

// Normalize returns the string form of v. Pointers to the Value types
// normalize like the values they point to, and nil pointers like Absent.
func Normalize(v Value) string {
	switch val := v.(type) {
	case nil:
		return ""
	case Absent, *Absent:
		return ""
	case *Seq:
		if val == nil {
			return ""
		}
		return Normalize(*val)
	case *Scalar:
		if val == nil {
			return ""
		}
		return Normalize(*val)
	case Seq:
		var b strings.Builder
		for _, item := range val {
			b.WriteString(string(item))
		}
		return b.String()
	case Scalar:
		if val.v == nil {
			return ""
		}
		return fmt.Sprint(val.v)
	default:
		// only reachable through a type embedding one of the above
		return fmt.Sprint(v)
	}
}

// Compose joins segments and values into one Fragment.
func Compose(segments []string, values ...Value) (Fragment, error) {
	if len(segments) != len(values)+1 {
		return "", fmt.Errorf("%w: got %d segments and %d values", ErrArity, len(segments), len(values))
	}
	var b strings.Builder
	for pos, segment := range segments {
		if strings.TrimSpace(segment) != "" {
			b.WriteString(segment)
		}
		if pos < len(values) {
			b.WriteString(Normalize(values[pos]))
		}
	}
	return Fragment(b.String()), nil
}

// HTML is like Compose, but panics if the arity is wrong. It's meant for
// templates written out in source, where a mismatch is a programming error.
func HTML(segments []string, values ...Value) Fragment {
	res, err := Compose(segments, values...)
	if err != nil {
		panic(err)
	}
	return res
}
