package buffer

import "github.com/colinmarc/svalue/internal/errs"

// ErrMalformed-flavored errors are raised with errs.Invalidf: there is no
// distinct "corrupt buffer" kind, and a truncated or inconsistent image
// is an invalid argument to Decode, not a logical type or range mistake
// about a value that decoded successfully.
func malformedf(op, format string, a ...any) error {
	return errs.Invalidf(op, format, a...)
}
