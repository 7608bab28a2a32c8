// Package components holds the presentational leaves shared by pages: a
// labelled input and an inline alert banner.
package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// AlertSlotID is the element swapped when the displayed error changes.
const AlertSlotID = "form-alert"

// Alert kinds.
const (
	AlertError   = "error"
	AlertSuccess = "success"
)

// FieldProps configures a FormField.
type FieldProps struct {
	Label        string
	Name         string
	Type         string
	Value        string
	Placeholder  string
	AutoComplete string
	Required     bool
	Disabled     bool
	// ClearURL, when set, is posted on focus and on input so the server can
	// clear the errors on display.
	ClearURL string
}

// FormField renders a labelled input.
func FormField(p FieldProps) g.Node {
	id := "field-" + p.Name
	return Div(
		Class("space-y-1"),
		Label(For(id), Class("block text-sm font-medium"), g.Text(p.Label)),
		Input(
			ID(id),
			Name(p.Name),
			Type(p.Type),
			Value(p.Value),
			Class("w-full rounded border px-3 py-2"),
			g.If(p.Placeholder != "", Placeholder(p.Placeholder)),
			g.If(p.AutoComplete != "", AutoComplete(p.AutoComplete)),
			g.If(p.Required, Required()),
			g.If(p.Disabled, Disabled()),
			g.If(p.ClearURL != "", g.Group{
				hx.Post(p.ClearURL),
				hx.Trigger("focus, input changed delay:200ms"),
				hx.Target("#"+AlertSlotID),
				hx.Swap("outerHTML"),
			}),
		),
	)
}

// Alert renders an inline banner of the given kind.
func Alert(kind string, children ...g.Node) g.Node {
	return Div(
		ID(AlertSlotID),
		g.Attr("role", "alert"),
		Class(alertClass(kind)),
		g.Group(children),
	)
}

// AlertSlot renders the alert for message, or an empty placeholder that a
// later swap can fill.
func AlertSlot(kind, message string) g.Node {
	if message == "" {
		return Div(ID(AlertSlotID))
	}
	return Alert(kind, g.Text(message))
}

func alertClass(kind string) string {
	switch kind {
	case AlertSuccess:
		return "mb-4 rounded border border-green-300 bg-green-50 p-3 text-sm text-green-800"
	default:
		return "mb-4 rounded border border-red-300 bg-red-50 p-3 text-sm text-red-800"
	}
}
