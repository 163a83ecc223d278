package utils

import "time"

// FormatDate renders a date the way the vendor API expects it
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
