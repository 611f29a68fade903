// Package match folds identifiers written in different case styles to a
// common form and scores how close two names are.
//
// Field lookup uses NormalizeIdent so that "first_name", "firstName" and
// "FirstName" land on the same struct field. Class resolution uses
// Similarity to suggest registered names for a misspelled one.
package match
