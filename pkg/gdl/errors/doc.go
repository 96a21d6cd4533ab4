// Package errors provides rich error types for GDL parsing.
//
// A parse failure produces a single *Error carrying the error category, the
// offending location and token, the surrounding source lines with a column
// caret, and an optional suggested fix:
//
//	_, err := gdl.Parse("(<= (p ?x)")
//	var gdlErr *errors.Error
//	if goerrors.As(err, &gdlErr) {
//	    fmt.Println(gdlErr.Location, gdlErr.Message)
//	}
//
// Parsing is all-or-nothing: the parser stops at the first grammar mismatch,
// returns one error, and never produces a partial AST. The serializer and the
// visitor are total and raise no errors of their own.
package errors
