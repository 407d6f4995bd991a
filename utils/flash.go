package utils

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func init() {
	gob.Register(Flash{})
}

// Flash is a one-shot message shown on the next rendered page. Category maps
// to a styling class (success, danger, info).
type Flash struct {
	Message  string
	Category string
}

// AddFlash queues a flash message on the session.
func AddFlash(c *gin.Context, category, message string) {
	s := sessions.Default(c)
	s.AddFlash(Flash{Message: message, Category: category})
	_ = s.Save()
}

// TakeFlashes drains and returns the queued flash messages.
func TakeFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes mutates the session, the drain has to be persisted.
	_ = s.Save()

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
