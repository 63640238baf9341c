package jim

import "chart-manifest/internal/manifest"

// IsAligned reports whether every series has duplicate-free x values and
// shares the first series' set of x values. An empty collection is aligned.
func IsAligned(data manifest.SeriesData) bool {
	if len(data) == 0 {
		return true
	}

	first := xSet(data[0].Records)

	for _, series := range data {
		xs := xSet(series.Records)
		if len(xs) != len(series.Records) || len(xs) != len(first) {
			return false
		}

		for x := range xs {
			if _, ok := first[x]; !ok {
				return false
			}
		}
	}

	return true
}

func xSet(records []manifest.Datapoint) map[string]struct{} {
	set := make(map[string]struct{}, len(records))
	for _, r := range records {
		set[r.X] = struct{}{}
	}

	return set
}

// collectXs returns the distinct x values of records in first-seen order.
func collectXs(records []manifest.Datapoint) []string {
	seen := make(map[string]struct{}, len(records))
	xs := make([]string, 0, len(records))

	for _, r := range records {
		if _, ok := seen[r.X]; ok {
			continue
		}

		seen[r.X] = struct{}{}
		xs = append(xs, r.X)
	}

	return xs
}
