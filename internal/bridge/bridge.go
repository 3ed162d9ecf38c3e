// Package bridge lets an external launcher drive the extension over
// newline-delimited JSON on stdin/stdout. One request line yields one response
// line, strictly in order.
package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/trknhr/ghostfaker/internal/action"
	"github.com/trknhr/ghostfaker/internal/extension"
	"github.com/trknhr/ghostfaker/internal/logger"
)

const maxLineSize = 1 << 20

var ErrUnknownEvent = errors.New("unknown event")

type Handler interface {
	Handle(ev extension.Event) (action.Action, error)
}

type Request struct {
	Event    string `json:"event"`
	Argument string `json:"argument,omitempty"`
	Data     string `json:"data,omitempty"`
}

type Response struct {
	Action string     `json:"action,omitempty"`
	Items  []ItemJSON `json:"items,omitempty"`
	Data   string     `json:"data,omitempty"`
	Text   string     `json:"text,omitempty"`
	Error  string     `json:"error,omitempty"`
}

type ItemJSON struct {
	Name          string    `json:"name"`
	Icon          string    `json:"icon,omitempty"`
	Highlightable bool      `json:"highlightable"`
	Small         bool      `json:"small"`
	OnEnter       *Response `json:"on_enter,omitempty"`
}

// Serve reads requests from r until EOF or ctx is done. Handler failures are
// reported as error responses and do not stop the loop.
func Serve(ctx context.Context, r io.Reader, w io.Writer, h Handler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		resp := handleLine(line, h)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	return nil
}

func handleLine(line []byte, h Handler) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		logger.Warn("malformed request: %v", err)
		return Response{Error: fmt.Sprintf("malformed request: %v", err)}
	}

	ev, err := req.toEvent()
	if err != nil {
		return Response{Error: err.Error()}
	}

	act, err := h.Handle(ev)
	if err != nil {
		return Response{Error: err.Error()}
	}
	return Encode(act)
}

func (r Request) toEvent() (extension.Event, error) {
	switch r.Event {
	case "query":
		return extension.KeywordQueryEvent{Argument: r.Argument}, nil
	case "item_enter":
		return extension.ItemEnterEvent{Data: r.Data}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownEvent, r.Event)
	}
}

// Encode converts an action into its wire form.
func Encode(a action.Action) Response {
	switch a := a.(type) {
	case action.RenderResultList:
		items := make([]ItemJSON, 0, len(a.Items))
		for _, it := range a.Items {
			item := ItemJSON{
				Name:          it.Name,
				Icon:          it.Icon,
				Highlightable: it.Highlightable,
				Small:         it.Small,
			}
			if it.OnEnter != nil {
				onEnter := Encode(it.OnEnter)
				item.OnEnter = &onEnter
			}
			items = append(items, item)
		}
		return Response{Action: "render_result_list", Items: items}
	case action.ExtensionCustom:
		name := "extension_custom"
		if a.KeepAppOpen {
			name = "extension_custom_keep_open"
		}
		return Response{Action: name, Data: a.Data}
	case action.HideWindow:
		return Response{Action: "hide_window"}
	case action.CopyToClipboard:
		return Response{Action: "copy_to_clipboard", Text: a.Text}
	default:
		return Response{Error: fmt.Sprintf("unsupported action %T", a)}
	}
}
