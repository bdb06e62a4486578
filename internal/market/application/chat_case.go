package application

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
)

type ChatCase struct {
	txManager      database.TxManager
	chatRepository domain.ChatRepository
	roomCreator    domain.RoomCreator
}

func NewChatCase(
	txManager database.TxManager,
	chatRepository domain.ChatRepository,
	roomCreator domain.RoomCreator,
) *ChatCase {
	return &ChatCase{
		txManager:      txManager,
		chatRepository: chatRepository,
		roomCreator:    roomCreator,
	}
}

func (cc *ChatCase) ListRooms(ctx context.Context, userID int) ([]domain.Room, error) {
	return cc.chatRepository.ListRooms(ctx, userID)
}

// OpenRoom returns the room with exactly these participants, creating it when none exists.
// The caller always takes part. created reports whether a new room was made.
func (cc *ChatCase) OpenRoom(
	ctx context.Context,
	userID int,
	name string,
	isGlobal bool,
	participantIDs []int,
) (room domain.Room, created bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Room{}, false, &domain.InvalidOperationError{
			Reason: domain.ReasonInvalidRoom,
			Msg:    "room name is required",
		}
	}

	participants := append([]int{userID}, participantIDs...)
	slices.Sort(participants)
	participants = slices.Compact(participants)

	err = cc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		existing, found, err := cc.roomCreator.FindRoom(ctx, executor, isGlobal, participants)
		if err != nil {
			return err
		}

		if found {
			room = existing
			return nil
		}

		room, err = cc.roomCreator.CreateRoom(ctx, executor, domain.Room{
			Name:           name,
			IsGlobal:       isGlobal,
			ParticipantIDs: participants,
		})
		if err != nil {
			return err
		}

		created = true
		return nil
	})
	if err != nil {
		return domain.Room{}, false, err
	}

	return room, created, nil
}

func (cc *ChatCase) ListMessages(ctx context.Context, userID int, roomID int) ([]domain.Message, error) {
	if _, err := cc.enterRoom(ctx, userID, roomID); err != nil {
		return nil, err
	}

	return cc.chatRepository.ListMessages(ctx, roomID)
}

func (cc *ChatCase) PostMessage(ctx context.Context, userID int, roomID int, content string) (domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > domain.MaxMessageLength {
		return domain.Message{}, &domain.InvalidOperationError{
			Reason: domain.ReasonInvalidMessage,
			Msg:    fmt.Sprintf("message must be between 1 and %d characters", domain.MaxMessageLength),
		}
	}

	if _, err := cc.enterRoom(ctx, userID, roomID); err != nil {
		return domain.Message{}, err
	}

	return cc.chatRepository.CreateMessage(ctx, domain.Message{
		RoomID:   roomID,
		SenderID: userID,
		Content:  content,
	})
}

func (cc *ChatCase) enterRoom(ctx context.Context, userID int, roomID int) (domain.Room, error) {
	room, err := cc.chatRepository.GetRoom(ctx, roomID)
	if err != nil {
		return domain.Room{}, err
	}

	if !room.Admits(userID) {
		return domain.Room{}, &domain.ForbiddenError{Msg: fmt.Sprintf("not a participant of chat room %d", roomID)}
	}

	return room, nil
}
