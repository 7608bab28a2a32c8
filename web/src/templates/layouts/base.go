package layouts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/sameboat/internal/navigation"
	"github.com/nfrund/sameboat/internal/view"
	"github.com/nfrund/sameboat/internal/view/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// navigateScript applies navigations answered to htmx requests. A replace
// navigation leaves no history entry for the current page. The navigating
// class keeps in-flight labels up until the page is gone.
var navigateScript = fmt.Sprintf(`document.addEventListener("htmx:afterRequest", function (evt) {
  var xhr = evt.detail.xhr;
  var target = xhr && xhr.getResponseHeader(%q);
  if (!target) return;
  document.body.classList.add("navigating");
  if (xhr.getResponseHeader(%q) === "true") {
    window.location.replace(target);
  } else {
    window.location.assign(target);
  }
});`, navigation.HeaderNavigate, navigation.HeaderNavigateReplace)

// Base wraps page content in the HTML document, showing any flashes above it.
// csrfToken is sent by htmx with every request.
func Base(title string, flashes view.FlashData, csrfToken string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(ctx, title, flashes, csrfToken, content).Render(w)
	})
}

func document(ctx context.Context, title string, flashes view.FlashData, csrfToken string, content templ.Component) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
				h.Script(h.Src(htmxSrc)),
				h.Script(g.Raw(navigateScript)),
			),
			h.Body(
				g.If(csrfToken != "", g.Attr("hx-headers", csrfHeaders(csrfToken))),
				flashBanners(flashes),
				view.AdaptTemplToGomponentContext(ctx, content),
			),
		),
	)
}

func flashBanners(flashes view.FlashData) g.Node {
	if len(flashes.Success) == 0 && len(flashes.Error) == 0 {
		return nil
	}
	var nodes []g.Node
	for _, msg := range flashes.Success {
		nodes = append(nodes, flashBanner(components.AlertSuccess, msg))
	}
	for _, msg := range flashes.Error {
		nodes = append(nodes, flashBanner(components.AlertError, msg))
	}
	return h.Div(h.Class("mx-auto max-w-sm px-3"), g.Group(nodes))
}

func flashBanner(kind, msg string) g.Node {
	class := "mt-4 rounded border p-3 text-sm "
	if kind == components.AlertSuccess {
		class += "border-green-300 bg-green-50 text-green-800"
	} else {
		class += "border-red-300 bg-red-50 text-red-800"
	}
	return h.Div(h.Class(class), g.Attr("data-flash", kind), g.Text(msg))
}

func csrfHeaders(token string) string {
	b, _ := json.Marshal(map[string]string{"X-CSRF-Token": token})
	return string(b)
}
