package models

// User is the authenticated account profile returned by sign-in and
// account-creation endpoints.
type User struct {
	ID          ID     `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Session pairs the opaque bearer token with the user it belongs to.
// The two always live and die together; see session.Store.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
