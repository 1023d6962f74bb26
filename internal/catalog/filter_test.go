package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []NameEntry {
	return []NameEntry{
		{ID: "omojo", Name: "Omojo", Meaning: "God's child", Gender: "unisex", Category: "spiritual", OriginStory: "A gift from above."},
		{ID: "ocholi", Name: "Ocholi", Meaning: "Born on the farm", Gender: "male", Category: "occupational", OriginStory: "Tied to the land."},
		{ID: "amana", Name: "Amana", Meaning: "Wealth has come", Gender: "female", Category: "prosperity", OriginStory: "A turn of fortune."},
	}
}

func TestLoadDataset(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.NotEmpty(t, d.Names)
	assert.NotEmpty(t, d.Categories)

	// every entry's category must resolve to a known category id
	cats := make(map[string]bool)
	for _, c := range d.Categories {
		cats[c.ID] = true
	}
	for _, n := range d.Names {
		assert.True(t, cats[n.Category], "unknown category %q on %s", n.Category, n.ID)
		assert.Contains(t, []string{"male", "female", "unisex"}, n.Gender)
	}
}

func TestByID(t *testing.T) {
	e := ByID("omojo")
	require.NotNil(t, e)
	assert.Equal(t, "Omojo", e.Name)
	assert.Nil(t, ByID("no-such-name"))
}

func TestFilterIdentity(t *testing.T) {
	entries := testEntries()
	got := Filter(entries, "", "", "")
	assert.Equal(t, entries, got)
}

func TestFilterQueryMatchesMeaningCaseInsensitive(t *testing.T) {
	entries := testEntries()

	got := Filter(entries, "god", "", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Omojo", got[0].Name)

	assert.Empty(t, Filter(entries, "xyz", "", ""))
}

func TestFilterQuerySearchesThreeFields(t *testing.T) {
	entries := testEntries()

	// origin story match
	got := Filter(entries, "FORTUNE", "", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Amana", got[0].Name)

	// every result contains the query in at least one searchable field
	for _, q := range []string{"o", "born", "a"} {
		for _, e := range Filter(entries, q, "", "") {
			hit := strings.Contains(strings.ToLower(e.Name), q) ||
				strings.Contains(strings.ToLower(e.Meaning), q) ||
				strings.Contains(strings.ToLower(e.OriginStory), q)
			assert.True(t, hit, "entry %s does not contain %q", e.ID, q)
		}
	}
}

func TestFilterCategoryAndGender(t *testing.T) {
	entries := testEntries()

	got := Filter(entries, "", "spiritual", "")
	require.Len(t, got, 1)
	assert.Equal(t, "omojo", got[0].ID)

	got = Filter(entries, "", "", "female")
	require.Len(t, got, 1)
	assert.Equal(t, "amana", got[0].ID)

	// filters compose with AND
	assert.Empty(t, Filter(entries, "", "spiritual", "female"))
	got = Filter(entries, "god", "spiritual", "unisex")
	require.Len(t, got, 1)
}

func TestFilterPreservesOrder(t *testing.T) {
	entries := testEntries()
	got := Filter(entries, "o", "", "")
	require.True(t, len(got) >= 2)
	// relative order must match the input list
	last := -1
	for _, e := range got {
		for i, src := range entries {
			if src.ID == e.ID {
				assert.Greater(t, i, last)
				last = i
			}
		}
	}
}
