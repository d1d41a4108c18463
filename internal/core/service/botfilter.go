package service

import (
	"strings"

	"orbiont.com/meetmetrics/internal/core/domain"
)

// botKeywords are name/email fragments of known meeting-recording and
// transcription tools. The same set is used for participant records
// and for calendar attendees so both counts stay consistent.
var botKeywords = []string{
	"note",
	"read",
	"meeting",
	"fireflies",
	"phantom",
	"bot",
	"otter",
	"vomo",
}

// BotFilter classifies a meeting identity as automated or human.
type BotFilter struct {
	keywords []string
}

func NewBotFilter() *BotFilter {
	return &BotFilter{keywords: botKeywords}
}

// IsAutomated reports whether either the display name or the email
// matches a known notetaker/bot keyword, case-insensitively.
func (f *BotFilter) IsAutomated(displayName, email string) bool {
	return f.match(displayName) || f.match(email)
}

// FilterAttendees strips automated identities from an invited-attendee
// list. The result is never nil so empty lists serialize as [].
func (f *BotFilter) FilterAttendees(attendees []domain.Attendee) []domain.Attendee {
	kept := make([]domain.Attendee, 0, len(attendees))
	for _, att := range attendees {
		if f.IsAutomated(att.DisplayName, att.Email) {
			continue
		}
		kept = append(kept, att)
	}
	return kept
}

func (f *BotFilter) match(s string) bool {
	if s == "" {
		return false
	}
	s = strings.ToLower(s)
	for _, keyword := range f.keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
