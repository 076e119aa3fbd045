package dateutils

import "time"

// Subscriber timestamps and contact messages travel as RFC3339 strings.

func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func ToISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func ParseISO(str string) (time.Time, error) {
	return time.Parse(time.RFC3339, str)
}
