package entity

// AuthUser is the verified identity of the caller, populated once per
// request from the bearer token. Handlers never read identity from
// anywhere else.
type AuthUser struct {
	UID           string
	Email         string
	EmailVerified bool
	Role          string
	Claims        map[string]interface{}
}

func (u *AuthUser) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

// UserRecord is a directory entry returned by admin user search.
type UserRecord struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Disabled    bool   `json:"disabled"`
	Role        string `json:"role,omitempty"`
}
