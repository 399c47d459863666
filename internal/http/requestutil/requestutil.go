package requestutil

import (
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HeaderRequestID carries the request id on inbound and outbound responses.
const HeaderRequestID = "X-Request-ID"

var requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// Swapped in tests to exercise the entropy failure path.
var newUUID = uuid.NewRandom

// SanitizeRequestID keeps a caller-supplied id only if it is short and
// header-safe; otherwise a fresh one is minted.
func SanitizeRequestID(incoming string) string {
	if requestIDPattern.MatchString(incoming) {
		return incoming
	}
	return NewRequestID()
}

// NewRequestID returns a random UUID, or a base36 timestamp if the system
// entropy source fails.
func NewRequestID() string {
	id, err := newUUID()
	if err != nil {
		return "t" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return id.String()
}

// ClientIP reports the first X-Forwarded-For hop, or the remote host
// without its port.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if hop, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ","); strings.TrimSpace(hop) != "" {
		return strings.TrimSpace(hop)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
