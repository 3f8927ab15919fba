package enrichment

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/capi-relay/internal/utils"
	"github.com/MKhiriev/capi-relay/models"
)

// MaxCookieLength caps fbp and fbc values taken from cookies.
const MaxCookieLength = 1000

// hashedUserFields are user_data keys sent as SHA-256 hex digests.
var hashedUserFields = []string{
	models.UserDataEmail,
	models.UserDataPhone,
	models.UserDataExternalID,
}

// Enrich fills in missing fields of every event from meta and hashes
// identity fields.
func (e *Enricher) Enrich(events []models.Event, meta models.RequestMeta) {
	now := e.now()
	if !meta.ReceivedAt.IsZero() {
		now = meta.ReceivedAt
	}

	for i := range events {
		event := &events[i]

		if event.EventTime == 0 {
			event.EventTime = now.Unix()
		}
		if event.ActionSource == "" {
			event.ActionSource = models.DefaultActionSource
		}

		setUserIfAbsent(event, models.UserDataClientIP, meta.ClientIP)
		setUserIfAbsent(event, models.UserDataClientUserAgent, meta.UserAgent)

		e.fillSourceURL(event, meta)
		fillCookies(event, meta, now.UnixMilli())
		fillSessionID(event, meta, now.Unix())
		hashUserData(event)
	}
}

func (e *Enricher) fillSourceURL(event *models.Event, meta models.RequestMeta) {
	if event.EventSourceURL != "" {
		return
	}
	if meta.Referer != "" {
		event.EventSourceURL = meta.Referer
		return
	}
	event.EventSourceURL = e.fallbackSourceURL
}

func fillCookies(event *models.Event, meta models.RequestMeta, nowMillis int64) {
	setUserIfAbsent(event, models.UserDataFBP, truncate(meta.FBP, MaxCookieLength))
	setUserIfAbsent(event, models.UserDataFBC, truncate(meta.FBC, MaxCookieLength))

	if userFieldPresent(event, models.UserDataFBC) {
		return
	}
	if fbclid := clickID(event.EventSourceURL); fbclid != "" {
		fbc := "fb.1." + strconv.FormatInt(nowMillis, 10) + "." + fbclid
		event.SetUserData(models.UserDataFBC, truncate(fbc, MaxCookieLength))
	}
}

// clickID returns the fbclid query parameter of rawURL.
func clickID(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("fbclid")
}

// fillSessionID keeps a client session id and otherwise derives one from
// ip, user agent and the current hour.
func fillSessionID(event *models.Event, meta models.RequestMeta, nowUnix int64) {
	if s, ok := event.CustomString(models.CustomDataSessionID); ok && s != "" {
		return
	}
	if meta.SessionID != "" {
		event.SetCustomData(models.CustomDataSessionID, meta.SessionID)
		return
	}
	event.SetCustomData(models.CustomDataSessionID, SessionID(meta.ClientIP, meta.UserAgent, nowUnix))
}

// SessionID derives a session id that stays stable for one client within a
// clock hour.
func SessionID(clientIP, userAgent string, nowUnix int64) string {
	return utils.SHA256Hex(clientIP + userAgent + strconv.FormatInt(nowUnix/3600, 10))
}

func hashUserData(event *models.Event) {
	for _, key := range hashedUserFields {
		value, ok := event.UserData[key]
		if !ok {
			continue
		}

		hashed, keep := hashValue(value)
		if !keep {
			delete(event.UserData, key)
			continue
		}
		event.UserData[key] = hashed
	}
}

// hashValue hashes a scalar or every scalar in a list. Empty values and
// values with no scalar form are removed; false means nothing is left.
func hashValue(value any) (any, bool) {
	switch typed := value.(type) {
	case []string:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if h, ok := hashScalar(item); ok {
				out = append(out, h)
			}
		}
		return out, len(out) > 0
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			if h, ok := hashScalar(item); ok {
				out = append(out, h)
			}
		}
		return out, len(out) > 0
	default:
		return hashScalar(value)
	}
}

// hashScalar hashes the canonical string form of a JSON scalar.
func hashScalar(value any) (string, bool) {
	var s string
	switch typed := value.(type) {
	case string:
		s = typed
	case float64:
		s = strconv.FormatFloat(typed, 'f', -1, 64)
	case json.Number:
		s = typed.String()
	case int:
		s = strconv.Itoa(typed)
	case int64:
		s = strconv.FormatInt(typed, 10)
	case bool:
		s = strconv.FormatBool(typed)
	default:
		return "", false
	}

	if s == "" {
		return "", false
	}
	return utils.HashIfNeeded(s), true
}
