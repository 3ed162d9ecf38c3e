// Package action holds the responses a host can render. Action is a closed set:
// only the types in this package implement it.
package action

type Action interface {
	isAction()
}

// RenderResultList replaces the visible result list.
type RenderResultList struct {
	Items []Item
}

// ExtensionCustom opens a sub-list by sending Data back to the extension as an
// item-enter event.
type ExtensionCustom struct {
	Data        string
	KeepAppOpen bool
}

type HideWindow struct{}

type CopyToClipboard struct {
	Text string
}

func (RenderResultList) isAction() {}
func (ExtensionCustom) isAction()  {}
func (HideWindow) isAction()       {}
func (CopyToClipboard) isAction()  {}

// Item is one row of a result list.
type Item struct {
	Name          string
	Icon          string
	Highlightable bool
	Small         bool
	OnEnter       Action
}
