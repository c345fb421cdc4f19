// Package model holds the records stored by the backend.
//
// Field names follow the table columns; JSON bodies use the same
// snake_case names.
package model

import "time"

type User struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type RoomStatus string

const (
	RoomStatusLobby    RoomStatus = "lobby"
	RoomStatusPlaying  RoomStatus = "playing"
	RoomStatusFinished RoomStatus = "finished"
)

type Room struct {
	ID        string     `json:"id" db:"id"`
	Code      string     `json:"code" db:"code"`
	CreatedBy *string    `json:"created_by" db:"created_by"`
	Status    RoomStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// RoomParticipant links a user to a room. Rows are never updated.
type RoomParticipant struct {
	ID       string    `json:"id" db:"id"`
	RoomID   string    `json:"room_id" db:"room_id"`
	UserID   string    `json:"user_id" db:"user_id"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

const DefaultInviteMaxUses = 3

type RoomInvite struct {
	ID             string    `json:"id" db:"id"`
	RoomID         string    `json:"room_id" db:"room_id"`
	Code           string    `json:"code" db:"code"`
	MaxUses        int       `json:"max_uses" db:"max_uses"`
	Uses           int       `json:"uses" db:"uses"`
	AssignedUserID *string   `json:"assigned_user_id" db:"assigned_user_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type Choice struct {
	ID        string    `json:"id" db:"id"`
	RoomID    string    `json:"room_id" db:"room_id"`
	Label     string    `json:"label" db:"label"`
	Hits      int       `json:"hits" db:"hits"`
	CreatedBy *string   `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
