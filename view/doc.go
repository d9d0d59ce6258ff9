// Package view builds the HTML fragments a CV page is made of.
//
// Every function here is pure: it takes the content it needs as arguments,
// returns a new fragment, and touches nothing else. Leaf builders like Link
// and WorkDates are composed by Section, WorkExperience, Header, and so on,
// up to Document, which produces the markup for the whole page.
//
// Nothing is escaped. Content records are trusted input.
//
// The only way a builder fails is a date that can't be parsed. When that
// happens, the error is returned all the way up and no partial markup is
// produced.
package view
