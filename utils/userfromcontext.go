package utils

import (
	"net/http"

	"pharmahub/globals"
)

// GetUserIDFromRequest returns the authenticated user id, or 0 when the
// request carries no resolved identity.
func GetUserIDFromRequest(r *http.Request) int {
	id, ok := r.Context().Value(globals.UserIDKey).(int)
	if !ok {
		return 0
	}
	return id
}

func GetRoleFromRequest(r *http.Request) string {
	role, ok := r.Context().Value(globals.RoleKey).(string)
	if !ok {
		return ""
	}
	return role
}

func IsAdmin(r *http.Request) bool {
	return GetRoleFromRequest(r) == "admin"
}
