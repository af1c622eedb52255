package common

type ContextKey string

// AuthInfoKey is the request-context key the session middleware stores the
// parsed claims under.
const AuthInfoKey ContextKey = "authInfo"
