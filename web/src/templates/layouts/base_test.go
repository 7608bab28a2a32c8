package layouts

import (
	"bytes"
	"context"
	"testing"

	"github.com/nfrund/sameboat/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "SameBoat", CalculateTitle(""))
	assert.Equal(t, "Register - SameBoat", CalculateTitle("Register"))
}

func TestBase(t *testing.T) {
	content := view.AdaptGomponentToTempl(h.P(g.Text("body")))
	flashes := view.FlashData{Success: []string{"Account created successfully!"}}

	var buf bytes.Buffer
	require.NoError(t, Base("Register", flashes, "tok", content).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "<title>Register - SameBoat</title>")
	assert.Contains(t, html, `hx-headers="{&#34;X-CSRF-Token&#34;:&#34;tok&#34;}"`)
	assert.Contains(t, html, `data-flash="success"`)
	assert.Contains(t, html, "Account created successfully!")
	assert.Contains(t, html, "<p>body</p>")
	assert.Contains(t, html, `"X-Navigate"`)
	assert.Contains(t, html, "location.replace")
	assert.Contains(t, html, `classList.add("navigating")`)
}

func TestBase_NoTokenNoFlashes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Base("", view.FlashData{}, "", view.AdaptGomponentToTempl(h.P())).Render(context.Background(), &buf))

	assert.NotContains(t, buf.String(), "hx-headers")
	assert.NotContains(t, buf.String(), "data-flash")
}
