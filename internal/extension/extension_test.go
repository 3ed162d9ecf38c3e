package extension_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trknhr/ghostfaker/internal/action"
	"github.com/trknhr/ghostfaker/internal/catalog"
	"github.com/trknhr/ghostfaker/internal/extension"
	"github.com/trknhr/ghostfaker/internal/provider"
)

type stubGenerator struct {
	values []string
	err    error
	calls  []string
}

func (s *stubGenerator) Generate(name string) ([]string, error) {
	s.calls = append(s.calls, name)
	return s.values, s.err
}

func newExtension(g extension.SampleGenerator) *extension.Extension {
	return extension.New(catalog.New(provider.Names(), catalog.MatchSubstring), g, "")
}

func TestOnQuery_ListsProviders(t *testing.T) {
	ext := newExtension(&stubGenerator{})

	res := ext.OnQuery("street")
	require.NotEmpty(t, res.Items)
	for _, item := range res.Items {
		assert.True(t, item.Small)
		assert.Equal(t, extension.DefaultIcon, item.Icon)
		custom, ok := item.OnEnter.(action.ExtensionCustom)
		require.True(t, ok, "expected ExtensionCustom, got %T", item.OnEnter)
		assert.True(t, custom.KeepAppOpen)
		assert.Contains(t, custom.Data, "street")
	}
	assert.Equal(t, "Street Address", res.Items[0].Name)
}

func TestOnQuery_NoResultsItem(t *testing.T) {
	ext := newExtension(&stubGenerator{})

	res := ext.OnQuery("zzz_no_such_substring")
	require.Len(t, res.Items, 1)
	item := res.Items[0]
	assert.Equal(t, extension.NoResultsLabel, item.Name)
	assert.False(t, item.Highlightable)
	assert.Equal(t, action.HideWindow{}, item.OnEnter)
}

func TestOnQuery_EmptyQueryIsCapped(t *testing.T) {
	ext := newExtension(&stubGenerator{})
	assert.Len(t, ext.OnQuery("").Items, catalog.MaxResults)
}

func TestOnItemEnter_CopiesValuesVerbatim(t *testing.T) {
	gen := &stubGenerator{values: []string{"a@example.com", "  padded  ", "b@example.com"}}
	ext := newExtension(gen)

	res, err := ext.OnItemEnter("email")
	require.NoError(t, err)
	assert.Equal(t, []string{"email"}, gen.calls)
	require.Len(t, res.Items, len(gen.values))
	for i, item := range res.Items {
		assert.Equal(t, gen.values[i], item.Name)
		assert.False(t, item.Highlightable)
		assert.Equal(t, action.CopyToClipboard{Text: gen.values[i]}, item.OnEnter)
	}
}

func TestOnItemEnter_UnknownProvider(t *testing.T) {
	ext := newExtension(provider.NewGenerator())

	_, err := ext.OnItemEnter("not_a_real_provider")
	assert.True(t, errors.Is(err, provider.ErrUnknownProvider), "got %v", err)
}

func TestHandle_Dispatch(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	ext := newExtension(provider.NewGenerator(provider.WithClock(clock)))

	act, err := ext.Handle(extension.KeywordQueryEvent{Argument: "uuid"})
	require.NoError(t, err)
	list, ok := act.(action.RenderResultList)
	require.True(t, ok)
	require.Len(t, list.Items, 1)

	data := list.Items[0].OnEnter.(action.ExtensionCustom).Data
	act, err = ext.Handle(extension.ItemEnterEvent{Data: data})
	require.NoError(t, err)
	samples := act.(action.RenderResultList)
	assert.Len(t, samples.Items, provider.SampleSize)

	again, err := ext.Handle(extension.ItemEnterEvent{Data: data})
	require.NoError(t, err)
	assert.Equal(t, samples, again)
}

func TestLabel(t *testing.T) {
	ext := newExtension(&stubGenerator{})
	assert.Equal(t, "Credit Card Security Code", ext.Label("credit_card_security_code"))
	assert.Equal(t, "Uuid4", ext.Label("uuid4"))
}
