package colour

// Dedupe returns the first sample for each distinct hex value, keeping the
// order in which hex values were first seen. Source and alpha of later
// duplicates are discarded.
func Dedupe(samples []Sample) []Sample {
	seen := make(map[string]struct{}, len(samples))
	unique := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if _, ok := seen[s.Hex]; ok {
			continue
		}
		seen[s.Hex] = struct{}{}
		unique = append(unique, s)
	}
	return unique
}
