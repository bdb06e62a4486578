package domain

import (
	"context"
	"slices"
	"time"

	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
)

// MaxMessageLength is counted in runes.
const MaxMessageLength = 2000

type ChatRepository interface {
	// ListRooms returns the global rooms and the rooms userID takes part in, newest first.
	ListRooms(ctx context.Context, userID int) ([]Room, error)
	GetRoom(ctx context.Context, roomID int) (Room, error)
	ListMessages(ctx context.Context, roomID int) ([]Message, error)
	CreateMessage(ctx context.Context, message Message) (Message, error)
}

type RoomCreator interface {
	// FindRoom looks up a room with exactly these participants. participantIDs must be sorted.
	// It holds a transaction lock on the participant set so concurrent opens create one room.
	FindRoom(ctx context.Context, executor database.QueryExecuter, isGlobal bool, participantIDs []int) (room Room, found bool, err error)
	CreateRoom(ctx context.Context, executor database.QueryExecuter, room Room) (Room, error)
}

type Room struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	IsGlobal       bool      `json:"isGlobal"`
	ParticipantIDs []int     `json:"participants"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Admits reports whether userID may read and post in the room.
func (r Room) Admits(userID int) bool {
	return r.IsGlobal || slices.Contains(r.ParticipantIDs, userID)
}

type Message struct {
	ID         int       `json:"id"`
	RoomID     int       `json:"roomId"`
	SenderID   int       `json:"senderId"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}
