package assistant

import (
	"strings"
	"unicode"
)

// Classify maps a message to an intent. Phrases are matched as substrings
// except "ai", which must be a whole word so "maintain" is not automation.
func Classify(message string, history []string) Intent {
	msg := strings.ToLower(strings.TrimSpace(message))
	switch {
	case msg == "":
		return IntentEmpty
	case len(history) == 0:
		return IntentGreeting
	case containsAny(msg, "job demand", "my demand"):
		return IntentDemand
	case strings.Contains(msg, "career risk"):
		return IntentCareerRisk
	case hasWord(msg, "ai") || strings.Contains(msg, "automation"):
		return IntentAutomation
	case containsAny(msg, "skill", "learn"):
		return IntentSkills
	case containsAny(msg, "salary", "ctc"):
		return IntentSalary
	case containsAny(msg, "help", "what can you do"):
		return IntentHelp
	default:
		return IntentFallback
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasWord(s, word string) bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, f := range fields {
		if f == word {
			return true
		}
	}
	return false
}
