package models

import "time"

// Dashboard is the aggregate returned by the all_club_data endpoint.
// Its child shapes are flattened summaries, not the full resources.
type Dashboard struct {
	DisplayName    string         `json:"display_name"`
	BookClubs      []ClubSummary  `json:"book_clubs"`
	UpcomingEvents []EventSummary `json:"upcoming_events"`
	ActivePolls    []PollSummary  `json:"active_polls"`
}

type ClubSummary struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type EventSummary struct {
	ID        ID        `json:"id"`
	EventName string    `json:"event_name"`
	EventDate time.Time `json:"event_date"`
	Location  string    `json:"location"`
	Book      string    `json:"book"`
}

// PollSummary uses "question" on the wire, unlike the full Poll resource.
type PollSummary struct {
	ID             ID          `json:"id"`
	Question       string      `json:"question"`
	ExpirationDate time.Time   `json:"expiration_date"`
	BookClub       ClubSummary `json:"book_club"`
}
