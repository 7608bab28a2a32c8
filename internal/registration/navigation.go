package registration

// LoginPath is never used as a post-registration redirect target.
const LoginPath = "/login"

// From carries the page a visitor was trying to reach before being sent to
// sign in or sign up.
type From struct {
	Pathname string
}

// LocationState is the navigation state attached to the current location.
type LocationState struct {
	From *From
}

// Location describes the current page as seen by the view.
type Location struct {
	State *LocationState
}

// FromPathname returns the remembered redirect path, or "" when absent.
func (l Location) FromPathname() string {
	if l.State == nil || l.State.From == nil {
		return ""
	}
	return l.State.From.Pathname
}

// NavigateOptions controls how a navigation affects history.
type NavigateOptions struct {
	// Replace swaps the current history entry instead of pushing a new one.
	Replace bool
}

// Navigator is the navigation collaborator.
type Navigator interface {
	Location() Location
	Navigate(path string, opts NavigateOptions)
}

// RedirectTarget picks where to go after a successful registration: the
// remembered page unless it is the login page, otherwise the root.
func RedirectTarget(loc Location) string {
	if from := loc.FromPathname(); from != "" && from != LoginPath {
		return from
	}
	return "/"
}
