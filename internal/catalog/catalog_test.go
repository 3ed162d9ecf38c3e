package catalog_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trknhr/ghostfaker/internal/catalog"
	"github.com/trknhr/ghostfaker/internal/provider"
)

func TestNew_SortsAndDeduplicates(t *testing.T) {
	c := catalog.New([]string{"email", "city", "address", "city"}, "")

	want := []string{"address", "city", "email"}
	if diff := cmp.Diff(want, c.Names()); diff != "" {
		t.Errorf("unexpected catalog (-want +got):\n%s", diff)
	}
}

func TestFilter_EmptyQueryReturnsHead(t *testing.T) {
	c := catalog.New(provider.Names(), catalog.MatchSubstring)
	require.Greater(t, c.Len(), catalog.MaxResults)

	got := c.Filter("")
	assert.Equal(t, c.Names()[:catalog.MaxResults], got)
}

func TestFilter_Substring(t *testing.T) {
	c := catalog.New(provider.Names(), catalog.MatchSubstring)

	tests := []struct {
		name  string
		query string
	}{
		{"lowercase", "email"},
		{"mixed case", "EmAiL"},
		{"underscore", "_name"},
		{"single letter", "a"},
		{"no match", "zzz_no_such_substring"},
		{"long query", strings.Repeat("x", 4096)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Filter(tt.query)
			assert.LessOrEqual(t, len(got), catalog.MaxResults)
			assert.True(t, sort.StringsAreSorted(got))
			for _, n := range got {
				assert.Contains(t, strings.ToLower(n), strings.ToLower(tt.query))
				assert.Contains(t, c.Names(), n)
			}
		})
	}
}

func TestFilter_NoMatches(t *testing.T) {
	c := catalog.New(provider.Names(), catalog.MatchSubstring)
	assert.Empty(t, c.Filter("zzz_no_such_substring"))
}

func TestFilter_ExactList(t *testing.T) {
	c := catalog.New([]string{"ipv4", "ipv4_private", "ipv4_public", "ipv6", "email"}, catalog.MatchSubstring)

	want := []string{"ipv4", "ipv4_private", "ipv4_public"}
	if diff := cmp.Diff(want, c.Filter("IPV4")); diff != "" {
		t.Errorf("unexpected matches (-want +got):\n%s", diff)
	}
}

func TestFilter_GenderedProviders(t *testing.T) {
	c := catalog.New(provider.Names(), catalog.MatchSubstring)

	want := []string{
		"first_name_female", "first_name_male",
		"last_name_female", "last_name_male",
		"name_female", "name_male",
	}
	if diff := cmp.Diff(want, c.Filter("male")); diff != "" {
		t.Errorf("unexpected matches (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"first_name_female", "last_name_female", "name_female"}, c.Filter("FEMALE"))
}

func TestFilter_CapsAtMaxResults(t *testing.T) {
	names := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		names = append(names, "date_"+string(rune('a'+i%26))+strings.Repeat("z", i/26))
	}
	c := catalog.New(names, catalog.MatchSubstring)

	got := c.Filter("date")
	require.Len(t, got, catalog.MaxResults)
	assert.Equal(t, c.Names()[:catalog.MaxResults], got)
}

func TestFilter_FuzzyKeepsCatalogOrder(t *testing.T) {
	c := catalog.New([]string{"ascii_email", "email", "free_email", "mac_address"}, catalog.MatchFuzzy)

	got := c.Filter("eml")
	assert.Equal(t, []string{"ascii_email", "email", "free_email"}, got)
}

func TestParseMatchMode(t *testing.T) {
	tests := []struct {
		in      string
		want    catalog.MatchMode
		wantErr bool
	}{
		{"", catalog.MatchSubstring, false},
		{"substring", catalog.MatchSubstring, false},
		{" Fuzzy ", catalog.MatchFuzzy, false},
		{"regex", "", true},
	}
	for _, tt := range tests {
		got, err := catalog.ParseMatchMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
