package validator

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

const (
	// DateLayout is the calendar-date wire format.
	DateLayout = "2006-01-02"
	// DateTimeLayout is the timestamp wire format. Fixed-width, so string
	// ordering matches chronological ordering where the store compares text.
	DateTimeLayout = "2006-01-02 15:04:05"
)

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// IsValidDate reports whether a string is a valid "YYYY-MM-DD" date.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// ParseDateTime parses a "YYYY-MM-DD HH:MM:SS" timestamp.
func ParseDateTime(dateTimeStr string) (time.Time, error) {
	return time.Parse(DateTimeLayout, dateTimeStr)
}

// IsValidDateTime reports whether a string is a valid "YYYY-MM-DD HH:MM:SS"
// timestamp.
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	t, err := time.Parse(DateTimeLayout, dateTimeStr)
	return t, err == nil
}

// FormatDate renders a time as the "YYYY-MM-DD" wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime renders a time as the "YYYY-MM-DD HH:MM:SS" wire format.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
