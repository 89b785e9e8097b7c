package calendar

import (
	"strings"
	"time"
)

const (
	utcLayout   = "20060102T150405Z"
	localLayout = "20060102T150405"
)

// Backslash is listed first so the escapes added for the other characters
// are never escaped a second time.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	"\n", `\n`,
)

var textUnescaper = strings.NewReplacer(
	`\\`, `\`,
	`\;`, `;`,
	`\,`, `,`,
	`\n`, "\n",
	`\N`, "\n",
)

// EscapeText encodes free text as an iCalendar TEXT value.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// UnescapeText decodes an iCalendar TEXT value produced by EscapeText.
func UnescapeText(s string) string {
	return textUnescaper.Replace(s)
}

// FormatUTC renders t as an iCalendar UTC date-time (YYYYMMDDTHHMMSSZ).
func FormatUTC(t time.Time) string {
	return t.UTC().Format(utcLayout)
}

// FormatLocal renders t using the local wall clock (YYYYMMDDTHHMMSS), the
// form the calendar web app expects in its template links.
func FormatLocal(t time.Time) string {
	return t.Local().Format(localLayout)
}
