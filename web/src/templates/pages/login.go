package pages

import (
	"github.com/nfrund/sameboat/internal/registration"
	"github.com/nfrund/sameboat/internal/view/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LoginProps is the state the login page renders.
type LoginProps struct {
	Email     string
	Error     string
	CSRFToken string
}

// Login renders the sign-in form.
func Login(p LoginProps) g.Node {
	return h.Main(
		h.Class("mx-auto max-w-sm p-6"),
		h.H1(h.Class("mb-4 text-2xl font-semibold"), g.Text("Sign In")),
		components.AlertSlot(components.AlertError, p.Error),
		h.Form(
			h.Method("post"),
			h.Action(registration.LoginPath),
			g.Attr("novalidate"),
			h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(p.CSRFToken)),
			h.FieldSet(
				h.Class("space-y-4"),
				components.FormField(components.FieldProps{
					Label:        "Email",
					Name:         "email",
					Type:         "email",
					Value:        p.Email,
					AutoComplete: "email",
					Required:     true,
				}),
				components.FormField(components.FieldProps{
					Label:        "Password",
					Name:         "password",
					Type:         "password",
					AutoComplete: "current-password",
					Required:     true,
				}),
			),
			h.Button(
				h.Type("submit"),
				h.Class("mt-4 w-full rounded bg-black px-3 py-2 text-white"),
				g.Text("Sign In"),
			),
		),
		h.P(
			h.Class("mt-4 text-sm"),
			g.Text("New here? "),
			h.A(h.Href(RegisterPath), h.Class("underline"), g.Text("Create an account")),
		),
	)
}
