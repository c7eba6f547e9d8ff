package globals

import (
	"context"
	"os"
)

// JwtSecret signs and verifies access tokens. Override with JWT_SECRET.
var JwtSecret = []byte(envOr("JWT_SECRET", "pharma-hub-secret-key"))

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const RoleKey ContextKey = "role"

var Ctx = context.Background()
