package jim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chart-manifest/internal/manifest"
)

func points(xy ...string) []manifest.Datapoint {
	out := make([]manifest.Datapoint, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, manifest.Datapoint{X: xy[i], Y: xy[i+1]})
	}

	return out
}

func alignedData() manifest.SeriesData {
	return manifest.SeriesData{
		{Key: "A", Records: points("1", "2", "2", "4", "3", "6")},
		{Key: "B", Records: points("1", "3", "2", "5", "3", "7")},
		{Key: "C", Records: points("3", "1", "1", "1", "2", "1")},
	}
}

func TestIsAligned(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(manifest.SeriesData) manifest.SeriesData
		expected bool
	}{
		{
			name:     "identical x sets in any order",
			mutate:   func(d manifest.SeriesData) manifest.SeriesData { return d },
			expected: true,
		},
		{
			name: "duplicate x in one series",
			mutate: func(d manifest.SeriesData) manifest.SeriesData {
				d[1].Records = append(d[1].Records, manifest.Datapoint{X: "2", Y: "9"})
				return d
			},
			expected: false,
		},
		{
			name: "duplicate x in first series",
			mutate: func(d manifest.SeriesData) manifest.SeriesData {
				d[0].Records = append(d[0].Records, manifest.Datapoint{X: "1", Y: "9"})
				return d
			},
			expected: false,
		},
		{
			name: "one x removed from one series",
			mutate: func(d manifest.SeriesData) manifest.SeriesData {
				d[2].Records = d[2].Records[:2]
				return d
			},
			expected: false,
		},
		{
			name: "one x removed from first series",
			mutate: func(d manifest.SeriesData) manifest.SeriesData {
				d[0].Records = d[0].Records[1:]
				return d
			},
			expected: false,
		},
		{
			name: "same size but different x",
			mutate: func(d manifest.SeriesData) manifest.SeriesData {
				d[1].Records[0].X = "4"
				return d
			},
			expected: false,
		},
		{
			name: "single series",
			mutate: func(d manifest.SeriesData) manifest.SeriesData {
				return d[:1]
			},
			expected: true,
		},
		{
			name: "no series",
			mutate: func(manifest.SeriesData) manifest.SeriesData {
				return nil
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAligned(tt.mutate(alignedData())))
		})
	}
}

func TestCollectXs(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, collectXs(points("b", "1", "a", "2", "b", "3", "c", "4")))
	assert.Empty(t, collectXs(nil))
}
