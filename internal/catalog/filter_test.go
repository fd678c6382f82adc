package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTemples() []Temple {
	return []Temple{
		{
			ID:       "angkor-wat",
			Title:    "Angkor Wat",
			Summary:  "Temple-mountain surrounded by moats",
			Tags:     []string{"Khmer", "Sunrise"},
			Location: Location{Province: "Siem Reap"},
		},
		{
			ID:       "preah-vihear",
			Title:    "Preah Vihear",
			Summary:  "Clifftop sanctuary",
			Tags:     []string{"UNESCO"},
			Location: Location{Province: "Preah Vihear"},
		},
		{
			ID:       "banteay-srei",
			Title:    "Banteay Srei",
			Summary:  "Pink sandstone carvings",
			Tags:     []string{"citadel", "women"},
			Location: Location{Province: "Siem Reap"},
		},
	}
}

func ids(items []Temple) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestFilter_MatchesAnyFieldCaseInsensitive(t *testing.T) {
	items := sampleTemples()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"tag", "sunrise", []string{"angkor-wat"}},
		{"title upper", "  BANTEAY ", []string{"banteay-srei"}},
		{"summary", "clifftop", []string{"preah-vihear"}},
		{"province", "siem", []string{"angkor-wat", "banteay-srei"}},
		{"tag substring", "nesc", []string{"preah-vihear"}},
		{"no match", "phnom penh", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(items, tt.query)))
		})
	}
}

func TestFilter_EmptyQueryReturnsEverythingInOrder(t *testing.T) {
	items := sampleTemples()
	for _, query := range []string{"", "   ", "\t\n"} {
		got := Filter(items, query)
		require.Len(t, got, len(items))
		assert.Equal(t, ids(items), ids(got))
	}
}

func TestFilter_ResultIsExactSubset(t *testing.T) {
	items := sampleTemples()
	for _, query := range []string{"a", "re", "khmer", "p", "z"} {
		got := Filter(items, query)
		want := make([]string, 0)
		for _, item := range items {
			if matches(item, normalizeQuery(query)) {
				want = append(want, item.ID)
			}
		}
		assert.Equal(t, want, ids(got), "query %q", query)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	items := sampleTemples()
	_ = Filter(items, "siem")
	assert.Equal(t, []string{"angkor-wat", "preah-vihear", "banteay-srei"}, ids(items))
}
