package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData holds the one-shot messages shown at the top of the next page.
type FlashData struct {
	Success []string
	Error   []string
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() retrieves and then clears the flashes from the session.
	successFlashes := sess.Flashes(flashKeySuccess)
	errorFlashes := sess.Flashes(flashKeyError)

	data.Success = toStrings(successFlashes)
	data.Error = toStrings(errorFlashes)

	// Persist the clearing of flashes.
	if len(successFlashes) > 0 || len(errorFlashes) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
