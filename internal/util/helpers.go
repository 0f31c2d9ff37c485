package util

// Truncate cuts text to at most limit runes. When text is cut, the last
// runes are replaced with ellipsis so the result still fits.
func Truncate(text string, limit int, ellipsis string) string {
	runes := []rune(text)

	if len(runes) <= limit {
		return text
	}

	tail := []rune(ellipsis)
	if len(tail) >= limit {
		return string(runes[:limit])
	}

	return string(runes[:limit-len(tail)]) + ellipsis
}
