package pages

import (
	"github.com/nfrund/sameboat/internal/registration"
	"github.com/nfrund/sameboat/internal/view/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Paths the register page posts to.
const (
	RegisterPath    = "/register"
	ClearErrorsPath = "/register/clear-errors"
	RegisterPanelID = "register-panel"
)

// Register renders the registration panel. An htmx submission only swaps the
// alert slot, so the inputs keep what the user typed when it fails. While the
// request is in flight htmx marks the form with the htmx-request class, which
// swaps the submit label (see app.css).
func Register(v *registration.View, csrfToken string) g.Node {
	return h.Main(
		h.ID(RegisterPanelID),
		h.Class("mx-auto max-w-sm p-6"),
		h.H1(h.Class("mb-4 text-2xl font-semibold"), g.Text("Create Account")),
		h.P(h.Class("mb-4 opacity-80"), g.Text("Join SameBoat.")),
		components.AlertSlot(components.AlertError, v.DisplayError()),
		h.Form(
			h.Method("post"),
			h.Action(RegisterPath),
			g.Attr("novalidate"),
			hx.Post(RegisterPath),
			hx.Target("#"+components.AlertSlotID),
			hx.Swap("outerHTML"),
			g.Attr("hx-disabled-elt", "find fieldset, find button"),
			// Field focus requests must not disable the fieldset under the cursor.
			g.Attr("hx-disinherit", "hx-disabled-elt"),
			h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(csrfToken)),
			h.FieldSet(
				h.Class("space-y-4"),
				g.If(v.Disabled(), h.Disabled()),
				components.FormField(components.FieldProps{
					Label:        "Email",
					Name:         "email",
					Type:         "email",
					Value:        v.Email(),
					Placeholder:  "you@example.com",
					AutoComplete: "email",
					Required:     true,
					ClearURL:     ClearErrorsPath,
				}),
				components.FormField(components.FieldProps{
					Label:        "Password",
					Name:         "password",
					Type:         "password",
					AutoComplete: "new-password",
					Required:     true,
					ClearURL:     ClearErrorsPath,
				}),
			),
			h.Button(
				h.Type("submit"),
				h.Class("mt-4 w-full rounded bg-black px-3 py-2 text-white"),
				g.If(v.Disabled(), h.Disabled()),
				SubmitLabels(v),
			),
		),
		h.P(
			h.Class("mt-4 text-sm"),
			g.Text("Already have an account? "),
			h.A(h.Href(registration.LoginPath), h.Class("underline"), g.Text("Sign in")),
		),
	)
}

// SubmitLabels renders the current label plus the in-flight one; only one is
// visible at a time.
func SubmitLabels(v *registration.View) g.Node {
	return g.Group{
		h.Span(h.Class("label-idle"), g.Text(v.SubmitLabel())),
		h.Span(h.Class("label-busy"), g.Attr("aria-hidden", "true"), g.Text(registration.LabelSubmitting)),
	}
}
