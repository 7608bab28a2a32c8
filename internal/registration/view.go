package registration

import "context"

// Authenticator is the authentication collaborator. ErrorMessage is the
// service's own error slot; the view only reads and clears it.
type Authenticator interface {
	Register(ctx context.Context, email, password string) bool
	ErrorMessage() string
	ClearError()
}

// Field names a form input.
type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Labels of the submit control.
const (
	LabelSubmit     = "Sign Up"
	LabelSubmitting = "Creating account…"
)

// View is the state of one registration form instance. It is not safe for
// concurrent use; each request or page owns its own View.
type View struct {
	auth Authenticator
	nav  Navigator

	email       string
	password    string
	clientError string
	submitting  bool
}

// New returns an idle view with empty fields.
func New(auth Authenticator, nav Navigator) *View {
	return &View{auth: auth, nav: nav}
}

// Restore seeds the view with state carried over from an earlier request.
// Unlike ChangeEmail it is not an edit and clears nothing.
func (v *View) Restore(email, password, clientError string) {
	v.email = email
	v.password = password
	v.clientError = clientError
}

func (v *View) Email() string       { return v.email }
func (v *View) Password() string    { return v.password }
func (v *View) ClientError() string { return v.clientError }
func (v *View) Submitting() bool    { return v.submitting }

// Disabled reports whether the inputs and the submit control are disabled.
func (v *View) Disabled() bool {
	return v.submitting
}

// SubmitLabel is the text of the submit control.
func (v *View) SubmitLabel() string {
	if v.submitting {
		return LabelSubmitting
	}
	return LabelSubmit
}

// DisplayError returns the single error to show: the client error when set,
// else the authentication service's message.
func (v *View) DisplayError() string {
	if v.clientError != "" {
		return v.clientError
	}
	return v.auth.ErrorMessage()
}

// ChangeEmail is an edit of the email field.
func (v *View) ChangeEmail(value string) {
	v.email = value
	v.clearErrors()
}

// ChangePassword is an edit of the password field.
func (v *View) ChangePassword(value string) {
	v.password = value
	v.clearErrors()
}

// Focus has the same clearing effect as an edit, without changing values.
func (v *View) Focus(Field) {
	v.clearErrors()
}

func (v *View) clearErrors() {
	if v.clientError != "" {
		v.clientError = ""
	}
	if v.auth.ErrorMessage() != "" {
		v.auth.ClearError()
	}
}

// Validate checks the current fields, recording the first failure as the
// client error. A passing form clears any previous client error.
func (v *View) Validate() bool {
	if err := Validate(v.email, v.password); err != nil {
		v.clientError = err.Error()
		return false
	}
	v.clientError = ""
	return true
}

// Submit runs the submit protocol and reports whether registration
// succeeded. On success the view has navigated away and stays submitting.
func (v *View) Submit(ctx context.Context) bool {
	if v.submitting {
		return false
	}
	if !v.Validate() {
		return false
	}

	v.submitting = true
	if v.auth.Register(ctx, v.email, v.password) {
		v.nav.Navigate(RedirectTarget(v.nav.Location()), NavigateOptions{Replace: true})
		return true
	}

	v.submitting = false
	return false
}
