package domain

// Hard limits applied to normalised safety records.
const (
	// MaxListedRecords caps recall and complaint lists.
	MaxListedRecords = 20

	// MaxSummaryChars caps a complaint summary, counted in characters.
	MaxSummaryChars = 500
)

// TruncateChars returns s cut to at most n characters.
// Multi-byte characters are never split.
func TruncateChars(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
