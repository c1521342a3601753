package usecase

import "testing"

func TestExtractDueDate(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantText    string
		wantDue     string
		wantNoMatch bool
	}{
		{
			name:     "token at end",
			in:       "Buy milk 05.03.2025",
			wantText: "Buy milk",
			wantDue:  "2025-03-05",
		},
		{
			name:     "token in the middle",
			in:       "Dentist 14.08.2025 at Friedrichstrasse",
			wantText: "Dentist at Friedrichstrasse",
			wantDue:  "2025-08-14",
		},
		{
			name:     "token at start",
			in:       "01.01.2026 New year planning",
			wantText: "New year planning",
			wantDue:  "2026-01-01",
		},
		{
			name:     "only first of two tokens used",
			in:       "Trip 05.03.2025 until 10.03.2025",
			wantText: "Trip until 10.03.2025",
			wantDue:  "2025-03-05",
		},
		{
			name:     "invalid calendar date accepted verbatim",
			in:       "Pay rent 31.02.2025",
			wantText: "Pay rent",
			wantDue:  "2025-02-31",
		},
		{
			name:        "no token",
			in:          "  Call grandma  ",
			wantText:    "Call grandma",
			wantNoMatch: true,
		},
		{
			name:        "one-digit day is not a token",
			in:          "Meet 5.03.2025",
			wantText:    "Meet 5.03.2025",
			wantNoMatch: true,
		},
		{
			name:     "token only",
			in:       "05.03.2025",
			wantText: "",
			wantDue:  "2025-03-05",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, due := ExtractDueDate(tc.in)
			if text != tc.wantText {
				t.Errorf("display text: want %q, got %q", tc.wantText, text)
			}
			if tc.wantNoMatch {
				if due != nil {
					t.Errorf("expected no due date, got %s", *due)
				}
				return
			}
			if due == nil {
				t.Fatal("expected a due date, got nil")
			}
			if string(*due) != tc.wantDue {
				t.Errorf("due date: want %s, got %s", tc.wantDue, *due)
			}
		})
	}
}
