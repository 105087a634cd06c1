package civiltime

import (
	"errors"

	"github.com/imarsman/civiltime/pkg/xfmt"
	"github.com/rickb777/plural"
)

// The four fixed diagnostic strings spec.md §6/§7 requires Parse to
// surface. Callers that only check err != nil can ignore these; callers
// that branch on the message compare against errors.Is/these exact values.
var (
	errFailedToParse  = errors.New("Failed to parse input")
	errTrailingData   = errors.New("Illegal trailing data in input string")
	errOutOfRangeFld  = errors.New("Out-of-range field")
	errOutOfRangeYear = errors.New("Out-of-range year")
)

// errInexactSubsecondScale signals that the apd decimal shift used to
// render a %E#S/%E#f width lost precision; Format never fails outright, so
// callers of scaleToWidth fall back to integer truncation instead of
// propagating this.
var errInexactSubsecondScale = errors.New("subsecond scale was inexact")

// digitWord pluralizes "digit" the way imarsman/datetime/period/format.go
// pluralizes its time-unit names, for the verbose (non-API) diagnostic
// below.
var digitWord = plural.FromZero("%v digits", "%v digit", "%v digits")

// DescribeFailure re-derives a longer, human-readable explanation for a
// Parse failure. It supplements, and never replaces, the fixed diagnostic
// strings Parse itself returns: callers that only need the short form
// should keep using the error Parse returns directly.
func DescribeFailure(format, input string, err error) string {
	if err == nil {
		return ""
	}
	var buf xfmt.Buffer
	switch {
	case errors.Is(err, errTrailingData):
		buf.S("input contained characters beyond what ")
		quote(&buf, format)
		buf.S(" consumes")
	case errors.Is(err, errOutOfRangeYear):
		buf.S("the year field in ")
		quote(&buf, input)
		buf.S(" does not fit the representable range")
	case errors.Is(err, errOutOfRangeFld):
		buf.S("a field in ")
		quote(&buf, input)
		buf.S(" is outside the range ")
		quote(&buf, format)
		buf.S(" allows, or the ").S(digitWord.FormatInt(0)).S(" given don't make a valid calendar date")
	default:
		quote(&buf, input)
		buf.S(" does not match ")
		quote(&buf, format)
	}
	return buf.String()
}

func quote(buf *xfmt.Buffer, s string) {
	buf.C('"').S(s).C('"')
}
