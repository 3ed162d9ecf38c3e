package extension

import (
	"fmt"
	"strings"

	"github.com/trknhr/ghostfaker/internal/action"
	"github.com/trknhr/ghostfaker/internal/catalog"
	"github.com/trknhr/ghostfaker/internal/logger"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultIcon    = "images/icon.png"
	NoResultsLabel = "No provider found matching your criteria"
)

// Event is what a host delivers. Only the types below implement it.
type Event interface {
	isEvent()
}

type KeywordQueryEvent struct {
	Argument string
}

type ItemEnterEvent struct {
	Data string
}

func (KeywordQueryEvent) isEvent() {}
func (ItemEnterEvent) isEvent()    {}

// SampleGenerator produces the values shown for a selected provider.
type SampleGenerator interface {
	Generate(name string) ([]string, error)
}

type Extension struct {
	catalog   *catalog.Catalog
	generator SampleGenerator
	icon      string
	title     cases.Caser
}

func New(c *catalog.Catalog, g SampleGenerator, icon string) *Extension {
	if icon == "" {
		icon = DefaultIcon
	}
	return &Extension{
		catalog:   c,
		generator: g,
		icon:      icon,
		title:     cases.Title(language.English),
	}
}

// Handle dispatches one event. Hosts must call it sequentially.
func (e *Extension) Handle(ev Event) (action.Action, error) {
	switch ev := ev.(type) {
	case KeywordQueryEvent:
		return e.OnQuery(ev.Argument), nil
	case ItemEnterEvent:
		return e.OnItemEnter(ev.Data)
	default:
		return nil, fmt.Errorf("unsupported event %T", ev)
	}
}

// OnQuery lists the providers matching query.
func (e *Extension) OnQuery(query string) action.RenderResultList {
	names := e.catalog.Filter(query)
	logger.Debug("query %q matched %d providers", query, len(names))

	if len(names) == 0 {
		return action.RenderResultList{Items: []action.Item{{
			Name:          NoResultsLabel,
			Icon:          e.icon,
			Highlightable: false,
			OnEnter:       action.HideWindow{},
		}}}
	}

	items := make([]action.Item, 0, len(names))
	for _, n := range names {
		items = append(items, action.Item{
			Name:          e.Label(n),
			Icon:          e.icon,
			Highlightable: true,
			Small:         true,
			OnEnter:       action.ExtensionCustom{Data: n, KeepAppOpen: true},
		})
	}
	return action.RenderResultList{Items: items}
}

// OnItemEnter generates a sample batch for the provider carried in data.
func (e *Extension) OnItemEnter(data string) (action.RenderResultList, error) {
	values, err := e.generator.Generate(data)
	if err != nil {
		logger.Error("generate %s: %v", data, err)
		return action.RenderResultList{}, fmt.Errorf("failed to generate samples: %w", err)
	}

	items := make([]action.Item, 0, len(values))
	for _, v := range values {
		items = append(items, action.Item{
			Name:    v,
			Icon:    e.icon,
			Small:   true,
			OnEnter: action.CopyToClipboard{Text: v},
		})
	}
	return action.RenderResultList{Items: items}, nil
}

// Label turns "street_address" into "Street Address".
func (e *Extension) Label(name string) string {
	return e.title.String(strings.ReplaceAll(name, "_", " "))
}
