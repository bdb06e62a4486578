package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mocks "github.com/Lexv0lk/secondhand-market/gen/mocks/gateway"
	logmocks "github.com/Lexv0lk/secondhand-market/gen/mocks/logging"
	marketdomain "github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type chatHandlerDeps struct {
	service *mocks.MockChatService
	logger  *logmocks.MockLogger
}

func newChatHandlerDeps(ctrl *gomock.Controller) *chatHandlerDeps {
	return &chatHandlerDeps{
		service: mocks.NewMockChatService(ctrl),
		logger:  logmocks.NewMockLogger(ctrl),
	}
}

func TestChatHandler_OpenRoom(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		requestBody interface{}

		prepareFn func(t *testing.T, d *chatHandlerDeps)

		expectedStatus  int
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	room := marketdomain.Room{ID: 9, Name: "bike talk", ParticipantIDs: []int{2, 5}}

	tests := []testCase{
		{
			name:        "new room",
			requestBody: openRoomRequestBody{Name: "bike talk", ParticipantIDs: []int{5}},
			prepareFn: func(t *testing.T, d *chatHandlerDeps) {
				d.service.EXPECT().OpenRoom(gomock.Any(), 2, "bike talk", false, []int{5}).Return(room, true, nil)
			},
			expectedStatus: http.StatusCreated,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Contains(t, recorder.Body.String(), `"participants":[2,5]`)
			},
		},
		{
			name:        "existing room is reused",
			requestBody: openRoomRequestBody{Name: "bike talk", ParticipantIDs: []int{5}},
			prepareFn: func(t *testing.T, d *chatHandlerDeps) {
				d.service.EXPECT().OpenRoom(gomock.Any(), 2, "bike talk", false, []int{5}).Return(room, false, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			requestBody:    map[string]any{"participantIds": "five"},
			prepareFn:      func(t *testing.T, d *chatHandlerDeps) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "blank name",
			requestBody: openRoomRequestBody{IsGlobal: true},
			prepareFn: func(t *testing.T, d *chatHandlerDeps) {
				d.service.EXPECT().OpenRoom(gomock.Any(), 2, "", true, nil).
					Return(marketdomain.Room{}, false, &marketdomain.InvalidOperationError{Reason: marketdomain.ReasonInvalidRoom, Msg: "room name is required"})
			},
			expectedStatus: http.StatusBadRequest,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, marketdomain.ReasonInvalidRoom, errorCode(t, recorder))
			},
		},
		{
			name:        "unknown participant",
			requestBody: openRoomRequestBody{Name: "bike talk", ParticipantIDs: []int{77}},
			prepareFn: func(t *testing.T, d *chatHandlerDeps) {
				d.service.EXPECT().OpenRoom(gomock.Any(), 2, "bike talk", false, []int{77}).
					Return(marketdomain.Room{}, false, marketdomain.NewNotFoundError(marketdomain.EntityUser, 77))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			d := newChatHandlerDeps(ctrl)
			tt.prepareFn(t, d)

			c, writer := newJSONContext(t, http.MethodPost, "/", tt.requestBody)
			withUser(c, 2)
			NewChatHandler(d.service, d.logger).OpenRoom(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestChatHandler_ListMessages(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		pathID string

		prepareFn func(t *testing.T, d *chatHandlerDeps)

		expectedStatus int
	}

	tests := []testCase{
		{
			name:   "member reads history",
			pathID: "9",
			prepareFn: func(t *testing.T, d *chatHandlerDeps) {
				d.service.EXPECT().ListMessages(gomock.Any(), 2, 9).
					Return([]marketdomain.Message{{ID: 1, RoomID: 9, SenderID: 5, Content: "still for sale?"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid room id",
			pathID:         "abc",
			prepareFn:      func(t *testing.T, d *chatHandlerDeps) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "outsider",
			pathID: "9",
			prepareFn: func(t *testing.T, d *chatHandlerDeps) {
				d.service.EXPECT().ListMessages(gomock.Any(), 2, 9).
					Return(nil, &marketdomain.ForbiddenError{Msg: "not a member of this room"})
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "storage failure",
			pathID: "9",
			prepareFn: func(t *testing.T, d *chatHandlerDeps) {
				d.service.EXPECT().ListMessages(gomock.Any(), 2, 9).Return(nil, assert.AnError)
				d.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			d := newChatHandlerDeps(ctrl)
			tt.prepareFn(t, d)

			c, writer := newJSONContext(t, http.MethodGet, "/", nil)
			withUser(c, 2)
			withPathID(c, tt.pathID)
			NewChatHandler(d.service, d.logger).ListMessages(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestChatHandler_PostMessage(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		requestBody interface{}

		prepareFn func(t *testing.T, d *chatHandlerDeps)

		expectedStatus int
	}

	tests := []testCase{
		{
			name:        "message stored",
			requestBody: postMessageRequestBody{RoomID: 9, Content: "is it still available?"},
			prepareFn: func(t *testing.T, d *chatHandlerDeps) {
				d.service.EXPECT().PostMessage(gomock.Any(), 2, 9, "is it still available?").
					Return(marketdomain.Message{ID: 3, RoomID: 9, SenderID: 2, Content: "is it still available?"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "room id missing",
			requestBody:    map[string]string{"content": "hello"},
			prepareFn:      func(t *testing.T, d *chatHandlerDeps) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "room does not exist",
			requestBody: postMessageRequestBody{RoomID: 40, Content: "hello"},
			prepareFn: func(t *testing.T, d *chatHandlerDeps) {
				d.service.EXPECT().PostMessage(gomock.Any(), 2, 40, "hello").
					Return(marketdomain.Message{}, marketdomain.NewNotFoundError(marketdomain.EntityRoom, 40))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			d := newChatHandlerDeps(ctrl)
			tt.prepareFn(t, d)

			c, writer := newJSONContext(t, http.MethodPost, "/", tt.requestBody)
			withUser(c, 2)
			NewChatHandler(d.service, d.logger).PostMessage(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestChatHandler_ListRooms(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	d := newChatHandlerDeps(ctrl)
	d.service.EXPECT().ListRooms(gomock.Any(), 2).Return([]marketdomain.Room{}, nil)

	c, writer := newJSONContext(t, http.MethodGet, "/", nil)
	withUser(c, 2)
	NewChatHandler(d.service, d.logger).ListRooms(c)

	assert.Equal(t, http.StatusOK, writer.Code)
	assert.JSONEq(t, `[]`, writer.Body.String())
}
