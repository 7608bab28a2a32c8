package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/nfrund/sameboat/internal/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

type stubAuth struct {
	msg string
	ok  bool
}

func (s *stubAuth) Register(context.Context, string, string) bool { return s.ok }
func (s *stubAuth) ErrorMessage() string                          { return s.msg }
func (s *stubAuth) ClearError()                                   { s.msg = "" }

type stubNav struct{}

func (stubNav) Location() registration.Location               { return registration.Location{} }
func (stubNav) Navigate(string, registration.NavigateOptions) {}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestRegister_Idle(t *testing.T) {
	v := registration.New(&stubAuth{}, stubNav{})
	v.ChangeEmail("a@b.co")

	html := render(t, Register(v, "tok"))

	assert.Contains(t, html, `id="register-panel"`)
	assert.Contains(t, html, "Create Account")
	assert.Contains(t, html, "Join SameBoat.")
	assert.Contains(t, html, `value="a@b.co"`)
	assert.Contains(t, html, `name="_csrf" value="tok"`)
	assert.Contains(t, html, `<span class="label-idle">Sign Up</span>`)
	assert.Contains(t, html, `href="/login"`)
	assert.Contains(t, html, `placeholder="you@example.com"`)
	assert.Contains(t, html, `autocomplete="new-password"`)
	assert.Contains(t, html, `hx-post="/register/clear-errors"`)
	assert.NotContains(t, html, `role="alert"`)
}

func TestRegister_ShowsClientErrorFirst(t *testing.T) {
	v := registration.New(&stubAuth{msg: "server says no"}, stubNav{})
	v.Validate()

	html := render(t, Register(v, ""))

	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "Email is required")
	assert.NotContains(t, html, "server says no")
}

func TestRegister_ShowsServiceError(t *testing.T) {
	v := registration.New(&stubAuth{msg: "User already exists"}, stubNav{})

	html := render(t, Register(v, ""))

	assert.Contains(t, html, "User already exists")
}

func TestRegister_PasswordNotEchoed(t *testing.T) {
	v := registration.New(&stubAuth{}, stubNav{})
	v.ChangePassword("hunter22")

	assert.NotContains(t, render(t, Register(v, "")), "hunter22")
}

func TestDashboard(t *testing.T) {
	html := render(t, Dashboard("a@b.co", "tok"))
	assert.Contains(t, html, "Signed in as a@b.co.")
	assert.Contains(t, html, `action="/logout"`)
}

func TestHome(t *testing.T) {
	assert.Contains(t, render(t, Home("")), `href="/register"`)

	html := render(t, Home("a@b.co"))
	assert.Contains(t, html, "Signed in as a@b.co.")
	assert.NotContains(t, html, `href="/register"`)
}

func TestRegister_InFlightLabelMarkup(t *testing.T) {
	v := registration.New(&stubAuth{}, stubNav{})

	html := render(t, Register(v, ""))

	// htmx toggles between the two spans with the htmx-request class.
	assert.Contains(t, html, `<span class="label-idle">Sign Up</span>`)
	assert.Contains(t, html, `<span class="label-busy" aria-hidden="true">Creating account…</span>`)
	assert.Contains(t, html, `hx-disabled-elt="find fieldset, find button"`)
	assert.Contains(t, html, `hx-disinherit="hx-disabled-elt"`)
}

func TestRegister_SubmittingViewShowsBusyLabel(t *testing.T) {
	v := registration.New(&stubAuth{ok: true}, stubNav{})
	v.ChangeEmail("a@b.co")
	v.ChangePassword("abcdef")
	require.True(t, v.Submit(context.Background()))

	html := render(t, Register(v, ""))

	assert.Contains(t, html, `<span class="label-idle">Creating account…</span>`)
	assert.Contains(t, html, "<fieldset class=\"space-y-4\" disabled>")
}

func TestRegister_SubmissionSwapsOnlyTheAlert(t *testing.T) {
	v := registration.New(&stubAuth{}, stubNav{})

	html := render(t, Register(v, ""))

	assert.Contains(t, html, `hx-post="/register" hx-target="#form-alert" hx-swap="outerHTML"`)
	assert.NotContains(t, html, `hx-target="#register-panel"`)
}
