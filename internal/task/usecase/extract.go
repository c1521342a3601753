package usecase

import (
	"regexp"
	"strings"

	"planner-backend/pkg/datekey"
)

// Task entry text may carry an embedded due date as DD.MM.YYYY.
var dueTokenPattern = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`)

// ExtractDueDate scans raw task text for the first DD.MM.YYYY token. When
// one is found it returns the text with the token and its surrounding
// whitespace removed, plus the token reordered into a day key. The digits
// are not checked against the calendar: 31.02.2025 is accepted verbatim.
// Text without a token comes back trimmed with a nil key.
func ExtractDueDate(raw string) (string, *datekey.Key) {
	loc := dueTokenPattern.FindStringSubmatchIndex(raw)
	if loc == nil {
		return strings.TrimSpace(raw), nil
	}

	day := raw[loc[2]:loc[3]]
	month := raw[loc[4]:loc[5]]
	year := raw[loc[6]:loc[7]]
	key := datekey.Key(year + "-" + month + "-" + day)

	before := strings.TrimRight(raw[:loc[0]], " \t")
	after := strings.TrimLeft(raw[loc[1]:], " \t")
	display := before
	if before != "" && after != "" {
		display = before + " " + after
	} else {
		display = before + after
	}

	return strings.TrimSpace(display), &key
}
