package aeon3md

import "strings"

// Warning is a non-fatal problem met during conversion, typically a
// reference to a name or UID that could not be resolved and was dropped.
type Warning struct {
	Message string
}

// String returns the warning message.
func (w Warning) String() string {
	return w.Message
}

func toWarnings(messages []string) []Warning {
	if len(messages) == 0 {
		return nil
	}
	warnings := make([]Warning, len(messages))
	for i, m := range messages {
		warnings[i] = Warning{Message: m}
	}
	return warnings
}

// FormatWarnings joins warning messages with "; ".
func FormatWarnings(warnings []Warning) string {
	messages := make([]string, len(warnings))
	for i, w := range warnings {
		messages[i] = w.Message
	}
	return strings.Join(messages, "; ")
}
