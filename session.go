package foodlink

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const sessionSuffixLen = 9

// Session identifies one conversation with the backend. It lives only as long
// as the surface that created it and is never persisted.
type Session struct {
	ID       string
	Agent    AgentType
	Location string // optional free-text hint, e.g. "Santa Monica"
}

// NewSession creates a Session with a freshly generated ID.
func NewSession(agent AgentType) Session {
	return Session{ID: NewSessionID(), Agent: agent}
}

// NewSessionID returns an opaque identifier of the form
// session-<unix-millis>-<random>.
func NewSessionID() string {
	return FormatSessionID(time.Now(), randomSuffix(sessionSuffixLen))
}

// FormatSessionID builds a session ID from a timestamp and a suffix.
func FormatSessionID(t time.Time, suffix string) string {
	return fmt.Sprintf("session-%d-%s", t.UnixMilli(), suffix)
}

func randomSuffix(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = chars[rand.IntN(len(chars))]
	}
	return string(b)
}
