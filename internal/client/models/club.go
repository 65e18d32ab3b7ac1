package models

// Member is a club membership record embedded in a Club snapshot.
type Member struct {
	ID          ID     `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// Club is the parent aggregate owned by the screen that fetched it.
// Members, events and polls are embedded snapshots, not independently
// fetched entities, until mutated.
type Club struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []Member `json:"members"`
	Events      []Event  `json:"events"`
	Polls       []Poll   `json:"polls"`
	UserIsAdmin bool     `json:"user_is_admin"`
}

// Invitation is a pending club invitation.
type Invitation struct {
	ID       ID     `json:"id"`
	Email    string `json:"email"`
	Accepted bool   `json:"accepted"`
}
