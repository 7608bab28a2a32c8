// Package registration holds the account registration view model: the form
// fields, the local validation rules, the submit protocol and the error
// display rules.
//
// The view owns only its own ephemeral state. Authentication and navigation
// are collaborators passed in as interfaces, so the same model drives the
// HTTP handlers and the unit tests.
//
// Lifecycle of a view:
//
//	idle --Submit (valid)--> submitting --Register ok--> navigate away
//	                              \--Register failed--> idle (service error shown)
//	idle --Submit (invalid)--> idle (client error shown)
//
// Any field edit or focus clears both the client error and the
// authentication service's error.
package registration
