package contextkeys

// Keys under which the auth middleware stashes the verified identity on the
// gin context. Custom type avoids collisions with other middleware.
type contextKey = string

const (
	UserIDKey contextKey = "auth.userID"
	EmailKey  contextKey = "auth.email"
	RoleKey   contextKey = "auth.role"
)
