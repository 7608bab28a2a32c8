package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Home renders the landing page. email is the signed-in user's, or "".
func Home(email string) g.Node {
	return h.Main(
		h.Class("mx-auto max-w-sm p-6"),
		h.H1(h.Class("mb-4 text-2xl font-semibold"), g.Text("SameBoat")),
		h.P(h.Class("mb-4"), g.Text("Everyone in the same boat, rowing together.")),
		g.If(email != "",
			h.P(
				g.Textf("Signed in as %s. ", email),
				h.A(h.Href("/dashboard"), h.Class("underline"), g.Text("Go to your dashboard")),
			),
		),
		g.If(email == "",
			h.P(
				h.A(h.Href(RegisterPath), h.Class("underline"), g.Text("Create an account")),
				g.Text(" or "),
				h.A(h.Href("/login"), h.Class("underline"), g.Text("sign in")),
				g.Text("."),
			),
		),
	)
}
