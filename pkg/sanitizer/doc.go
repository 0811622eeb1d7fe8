// Package sanitizer normalises free-form classification labels (tags,
// categories) into safe identifiers.
//
// All helpers are pure, total functions: there is no failure mode. Input that
// reduces to the empty string yields the empty string, which callers treat as
// "absent". The higher-order Apply and Compose helpers allow the creation of
// sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.Identifier,
//	)
//
//	safe := clean("  foo bar!!  ") // "foo-bar"
package sanitizer
