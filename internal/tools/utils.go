package tools

// clampCount resolves a raw count argument. Values inside [1, 100] pass
// through; everything else, including absent and non-numeric values parsed
// as zero, resolves to the default of 20.
func clampCount(raw float64) int {
	count := int(raw)
	if count < minProjectCount || count > maxProjectCount {
		return defaultProjectCount
	}
	return count
}

// normalizeOrder resolves a raw order argument. Exactly "asc" passes
// through; every other value, including absent, resolves to "desc".
func normalizeOrder(raw string) string {
	if raw == OrderAsc {
		return OrderAsc
	}
	return OrderDesc
}
