package birthday

import (
	"commandhotline/pkg/serrors"
	"regexp"
	"strings"
	"time"
)

// ParsedDate is the outcome of parsing user-provided birthday text. Year is
// nil when the input carried no year information.
type ParsedDate struct {
	Year  *int
	Month time.Month
	Day   int
}

// datePatterns pairs a prefix regexp with the Go layout used to parse the
// matched text. Order matters: more specific formats (with a year) are tried
// before their year-less prefixes would match.
var datePatterns = []struct { //nolint: gochecknoglobals
	re      *regexp.Regexp
	layout  string
	hasYear bool
}{
	{regexp.MustCompile(`^\d{4}-[01]?\d-[0123]?\d`), "2006-1-2", true},
	{regexp.MustCompile(`^\d\d-[01]?\d-[0123]?\d`), "06-1-2", true},
	{regexp.MustCompile(`^[01]?\d-[0123]?\d`), "1-2", false},
	{regexp.MustCompile(`^[0123]?\d\.[01]?\d\.\d{4}`), "2.1.2006", true},
	{regexp.MustCompile(`^[0123]?\d\.[01]?\d\.\d\d`), "2.1.06", true},
	{regexp.MustCompile(`^[0123]?\d\.[01]?\d`), "2.1", false},
	{regexp.MustCompile(`^[01]?\d/[0123]?\d/\d{4}`), "1/2/2006", true},
	{regexp.MustCompile(`^[01]?\d/[0123]?\d/\d\d`), "1/2/06", true},
	{regexp.MustCompile(`^[01]?\d/[0123]?\d`), "1/2", false},
}

// ParseDate parses birthday text in one of the accepted formats:
// "2006-01-02", "06-01-02", "01-02", "02.01.2006", "02.01.06", "02.01[.]",
// "01/02/2006", "01/02/06" and "01/02". Formats without a year produce a
// year-less date. Dates after now are rejected: nobody is born in the future.
//
// Year-less inputs are validated without a reference year, so February 29 is
// accepted regardless of the current year.
func ParseDate(text string, now time.Time) (ParsedDate, error) {
	text = strings.TrimSpace(text)

	for _, p := range datePatterns {
		match := p.re.FindString(text)
		if match == "" {
			continue
		}

		parsed, err := time.Parse(p.layout, match)
		if err != nil {
			// matched the shape but not a real date, e.g. "31.02."
			return ParsedDate{}, serrors.Wrap(serrors.ErrBadRequest, err,
				"that doesn't look like a real date")
		}

		if !p.hasYear {
			return ParsedDate{Month: parsed.Month(), Day: parsed.Day()}, nil
		}

		if parsed.After(now) {
			return ParsedDate{}, serrors.With(serrors.ErrBadRequest,
				"you cannot be born in the future")
		}

		year := parsed.Year()

		return ParsedDate{Year: &year, Month: parsed.Month(), Day: parsed.Day()}, nil
	}

	return ParsedDate{}, serrors.With(serrors.ErrBadRequest,
		"the birthday you've entered cannot be parsed")
}
