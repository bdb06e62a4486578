package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolationCode = "23503"

type ChatRepository struct {
	querier database.Querier
}

func NewChatRepository(querier database.Querier) *ChatRepository {
	return &ChatRepository{
		querier: querier,
	}
}

func (cr *ChatRepository) ListRooms(ctx context.Context, userID int) ([]domain.Room, error) {
	selectSQL := `SELECT ` + roomColumns + ` FROM chat_rooms r
		WHERE r.is_global
			OR EXISTS (SELECT 1 FROM chat_participants p WHERE p.room_id = r.id AND p.user_id = $1)
		ORDER BY r.created_at DESC, r.id DESC`

	rows, err := cr.querier.Query(ctx, selectSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat room: %w", err)
		}

		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list chat rooms: %w", err)
	}

	return rooms, nil
}

func (cr *ChatRepository) GetRoom(ctx context.Context, roomID int) (domain.Room, error) {
	selectSQL := `SELECT ` + roomColumns + ` FROM chat_rooms r WHERE r.id = $1`

	room, err := scanRoom(cr.querier.QueryRow(ctx, selectSQL, roomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Room{}, domain.NewNotFoundError(domain.EntityRoom, roomID)
		}

		return domain.Room{}, fmt.Errorf("failed to get chat room: %w", err)
	}

	return room, nil
}

// ListMessages returns the room history oldest first.
func (cr *ChatRepository) ListMessages(ctx context.Context, roomID int) ([]domain.Message, error) {
	selectSQL := `SELECT ` + messageColumns + ` FROM chat_messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.room_id = $1
		ORDER BY m.created_at, m.id`

	rows, err := cr.querier.Query(ctx, selectSQL, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}

		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}

	return messages, nil
}

func (cr *ChatRepository) CreateMessage(ctx context.Context, message domain.Message) (domain.Message, error) {
	insertSQL := `WITH m AS (
			INSERT INTO chat_messages (room_id, sender_id, content)
			VALUES ($1, $2, $3)
			RETURNING id, room_id, sender_id, content, created_at
		)
		SELECT ` + messageColumns + ` FROM m JOIN users u ON u.id = m.sender_id`

	created, err := scanMessage(cr.querier.QueryRow(ctx, insertSQL, message.RoomID, message.SenderID, message.Content))
	if err != nil {
		return domain.Message{}, fmt.Errorf("failed to insert chat message: %w", err)
	}

	return created, nil
}

type RoomCreator struct {
}

func NewRoomCreator() *RoomCreator {
	return &RoomCreator{}
}

func (rc *RoomCreator) FindRoom(
	ctx context.Context,
	executor database.QueryExecuter,
	isGlobal bool,
	participantIDs []int,
) (domain.Room, bool, error) {
	lockSQL := `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`
	_, err := executor.Exec(ctx, lockSQL, participantSetKey(isGlobal, participantIDs))
	if err != nil {
		return domain.Room{}, false, fmt.Errorf("failed to lock participant set: %w", err)
	}

	selectSQL := `SELECT ` + roomColumns + ` FROM chat_rooms r
		WHERE r.is_global = $1
			AND ARRAY(SELECT p.user_id FROM chat_participants p WHERE p.room_id = r.id ORDER BY p.user_id) = $2::BIGINT[]
		ORDER BY r.id
		LIMIT 1`

	room, err := scanRoom(executor.QueryRow(ctx, selectSQL, isGlobal, participantIDs))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Room{}, false, nil
		}

		return domain.Room{}, false, fmt.Errorf("failed to find chat room: %w", err)
	}

	return room, true, nil
}

// CreateRoom inserts the room and its participants. Must run in a transaction.
func (rc *RoomCreator) CreateRoom(ctx context.Context, executor database.QueryExecuter, room domain.Room) (domain.Room, error) {
	insertRoomSQL := `INSERT INTO chat_rooms (name, is_global) VALUES ($1, $2) RETURNING id, created_at`

	err := executor.QueryRow(ctx, insertRoomSQL, room.Name, room.IsGlobal).Scan(&room.ID, &room.CreatedAt)
	if err != nil {
		return domain.Room{}, fmt.Errorf("failed to insert chat room: %w", err)
	}

	insertParticipantsSQL := `INSERT INTO chat_participants (room_id, user_id)
		SELECT $1, unnest($2::BIGINT[])`

	_, err = executor.Exec(ctx, insertParticipantsSQL, room.ID, room.ParticipantIDs)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return domain.Room{}, &domain.NotFoundError{
				Entity: domain.EntityUser,
				Msg:    "some chat participants do not exist",
			}
		}

		return domain.Room{}, fmt.Errorf("failed to insert chat participants: %w", err)
	}

	return room, nil
}

func participantSetKey(isGlobal bool, participantIDs []int) string {
	return fmt.Sprintf("chat:%t:%v", isGlobal, participantIDs)
}
