package diagnostic

import "errors"

// Error is a fatal decode failure located in the input.
type Error struct {
	Diagnostic
	Err error
}

// Wrap attaches location details to err. An err that is already an *Error is
// returned as is so the innermost location wins.
func Wrap(err error, diag Diagnostic) error {
	if err == nil {
		return nil
	}

	var located *Error
	if errors.As(err, &located) {
		return err
	}

	diag.Severity = DiagnosticError
	if diag.Code == "" {
		diag.Code = CodeOf(err)
	}

	if diag.Message == "" {
		diag.Message = err.Error()
	}

	if len(diag.Suggestions) == 0 {
		diag.Suggestions = SuggestionsOf(err)
	}

	return &Error{Diagnostic: diag, Err: err}
}

func (e *Error) Error() string {
	return e.Diagnostic.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Suggest attaches suggestions to err so they surface once it is located.
func Suggest(err error, suggestions ...string) error {
	if err == nil || len(suggestions) == 0 {
		return err
	}

	return &suggested{err: err, suggestions: suggestions}
}

// SuggestionsOf returns the suggestions attached to err.
func SuggestionsOf(err error) []string {
	var s *suggested
	if errors.As(err, &s) {
		return s.suggestions
	}

	return nil
}

type suggested struct {
	err         error
	suggestions []string
}

func (s *suggested) Error() string { return s.err.Error() }
func (s *suggested) Unwrap() error { return s.err }
