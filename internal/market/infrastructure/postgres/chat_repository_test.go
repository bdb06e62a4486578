package postgres

import (
	"testing"
	"time"

	"github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	roomColumnNames    = []string{"id", "name", "is_global", "created_at", "participants"}
	messageColumnNames = []string{"id", "room_id", "sender_id", "username", "content", "created_at"}
)

func roomRows(rooms ...domain.Room) *pgxmock.Rows {
	rows := pgxmock.NewRows(roomColumnNames)
	for _, r := range rooms {
		rows.AddRow(r.ID, r.Name, r.IsGlobal, r.CreatedAt, r.ParticipantIDs)
	}

	return rows
}

func messageRows(messages ...domain.Message) *pgxmock.Rows {
	rows := pgxmock.NewRows(messageColumnNames)
	for _, m := range messages {
		rows.AddRow(m.ID, m.RoomID, m.SenderID, m.SenderName, m.Content, m.CreatedAt)
	}

	return rows
}

func TestChatRepository_ListRooms(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	lobby := domain.Room{ID: 1, Name: "lobby", IsGlobal: true, ParticipantIDs: []int{}, CreatedAt: createdAt}
	deal := domain.Room{ID: 2, Name: "camera deal", ParticipantIDs: []int{2, 3}, CreatedAt: createdAt}

	type testCase struct {
		name string

		expectedRes []domain.Room
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "global and joined rooms",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery(`WHERE r.is_global\s+OR EXISTS`).
					WithArgs(3).
					WillReturnRows(roomRows(deal, lobby))
			},
			expectedRes: []domain.Room{deal, lobby},
		},
		{
			name: "no rooms",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("FROM chat_rooms").
					WithArgs(3).
					WillReturnRows(roomRows())
			},
			expectedRes: []domain.Room{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("FROM chat_rooms").
					WithArgs(3).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewChatRepository(mock)
			res, err := repo.ListRooms(t.Context(), 3)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChatRepository_GetRoom(t *testing.T) {
	t.Parallel()

	t.Run("room found", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		room := domain.Room{ID: 2, Name: "camera deal", ParticipantIDs: []int{2, 3}}
		mock.ExpectQuery(`FROM chat_rooms r WHERE r.id = \$1`).
			WithArgs(2).
			WillReturnRows(roomRows(room))

		repo := NewChatRepository(mock)
		res, err := repo.GetRoom(t.Context(), 2)

		require.NoError(t, err)
		assert.Equal(t, room, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("room not found", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectQuery("FROM chat_rooms").
			WithArgs(2).
			WillReturnError(pgx.ErrNoRows)

		repo := NewChatRepository(mock)
		_, err = repo.GetRoom(t.Context(), 2)

		assert.ErrorIs(t, err, &domain.NotFoundError{})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChatRepository_Messages(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	hello := domain.Message{ID: 10, RoomID: 2, SenderID: 3, SenderName: "carol", Content: "is it still available?", CreatedAt: createdAt}

	t.Run("history oldest first", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectQuery(`WHERE m.room_id = \$1\s+ORDER BY m.created_at, m.id`).
			WithArgs(2).
			WillReturnRows(messageRows(hello))

		repo := NewChatRepository(mock)
		res, err := repo.ListMessages(t.Context(), 2)

		require.NoError(t, err)
		assert.Equal(t, []domain.Message{hello}, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("message stored with sender name", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectQuery("INSERT INTO chat_messages").
			WithArgs(2, 3, "is it still available?").
			WillReturnRows(messageRows(hello))

		repo := NewChatRepository(mock)
		res, err := repo.CreateMessage(t.Context(), domain.Message{RoomID: 2, SenderID: 3, Content: "is it still available?"})

		require.NoError(t, err)
		assert.Equal(t, hello, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectQuery("INSERT INTO chat_messages").
			WithArgs(2, 3, "hi").
			WillReturnError(assert.AnError)

		repo := NewChatRepository(mock)
		_, err = repo.CreateMessage(t.Context(), domain.Message{RoomID: 2, SenderID: 3, Content: "hi"})

		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoomCreator_FindRoom(t *testing.T) {
	t.Parallel()

	participants := []int{2, 3}
	deal := domain.Room{ID: 2, Name: "camera deal", ParticipantIDs: participants}

	type testCase struct {
		name string

		expectedRes   domain.Room
		expectedFound bool
		expectedErr   error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "existing room with the same participants",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("pg_advisory_xact_lock").
					WithArgs("chat:false:[2 3]").
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery(`WHERE r.is_global = \$1`).
					WithArgs(false, participants).
					WillReturnRows(roomRows(deal))
			},
			expectedRes:   deal,
			expectedFound: true,
		},
		{
			name: "no such room",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("pg_advisory_xact_lock").
					WithArgs("chat:false:[2 3]").
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery("FROM chat_rooms").
					WithArgs(false, participants).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "lock error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("pg_advisory_xact_lock").
					WithArgs("chat:false:[2 3]").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			creator := NewRoomCreator()
			res, found, err := creator.FindRoom(t.Context(), mock, false, participants)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedFound, found)
				assert.Equal(t, tt.expectedRes, res)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoomCreator_CreateRoom(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	room := domain.Room{Name: "camera deal", ParticipantIDs: []int{2, 3}}

	type testCase struct {
		name string

		expectedRes domain.Room
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "room and participants inserted",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO chat_rooms").
					WithArgs("camera deal", false).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, createdAt))
				mock.ExpectExec("INSERT INTO chat_participants").
					WithArgs(5, []int{2, 3}).
					WillReturnResult(pgxmock.NewResult("INSERT", 2))
			},
			expectedRes: domain.Room{ID: 5, Name: "camera deal", ParticipantIDs: []int{2, 3}, CreatedAt: createdAt},
		},
		{
			name: "unknown participant",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO chat_rooms").
					WithArgs("camera deal", false).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, createdAt))
				mock.ExpectExec("INSERT INTO chat_participants").
					WithArgs(5, []int{2, 3}).
					WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "chat_participants_user_id_fkey"})
			},
			expectedErr: &domain.NotFoundError{},
		},
		{
			name: "room insert error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO chat_rooms").
					WithArgs("camera deal", false).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			creator := NewRoomCreator()
			res, err := creator.CreateRoom(t.Context(), mock, room)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
