package order

import "strings"

const extraNotePrefix = "Sem: "

// FormatExtraNote encodes removed ingredients as the "Sem: a, b" note kept in
// the extra item column. It returns nil when nothing was removed.
func FormatExtraNote(removed []string) *string {
	if len(removed) == 0 {
		return nil
	}
	note := extraNotePrefix + strings.Join(removed, ", ")
	return &note
}

// ParseExtraNote decodes a note written by FormatExtraNote. Anything else,
// including a nil note, yields an empty list.
func ParseExtraNote(note *string) []string {
	if note == nil || !strings.HasPrefix(*note, extraNotePrefix) {
		return []string{}
	}

	parts := strings.Split(strings.TrimPrefix(*note, extraNotePrefix), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
