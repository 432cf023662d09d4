package globals

import (
	"context"
	"os"
	"strings"
)

var JwtSecret = []byte(Getenv("JWT_SECRET", "change_me"))

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const IsAdminKey ContextKey = "isAdmin"

var Ctx = context.Background()

func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AdminUsers is the allow-list of identities permitted to read other clients'
// configs. Comma-separated emails in ADMIN_USERS.
func AdminUsers() []string {
	raw := os.Getenv("ADMIN_USERS")
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func IsAdminUser(email string) bool {
	for _, a := range AdminUsers() {
		if a == email {
			return true
		}
	}
	return false
}
