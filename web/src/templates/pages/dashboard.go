package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Dashboard greets a signed-in user.
func Dashboard(email, csrfToken string) g.Node {
	return h.Main(
		h.Class("mx-auto max-w-sm p-6"),
		h.H1(h.Class("mb-4 text-2xl font-semibold"), g.Text("Dashboard")),
		h.P(h.Class("mb-4"), g.Textf("Signed in as %s.", email)),
		h.Form(
			h.Method("post"),
			h.Action("/logout"),
			h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(csrfToken)),
			h.Button(h.Type("submit"), h.Class("rounded border px-3 py-2"), g.Text("Sign out")),
		),
	)
}
