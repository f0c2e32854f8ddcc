package globals

// Context keys
type ContextKey string

const SessionKey ContextKey = "session"

// Name of the cookie that carries the browser session id.
const SessionCookie = "yatra_session"
