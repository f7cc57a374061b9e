package websocket

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	mockedRest "github.com/rocketscienceinc/tictactoe-local/mocks/rest"
)

func dial(t *testing.T, gameUseCase gameUseCase, header http.Header) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := New(slog.New(slog.NewTextHandler(io.Discard, nil)), gameUseCase)
	ts := httptest.NewServer(server.Handler(ctx))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })

	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, request Message) Message {
	t.Helper()

	require.NoError(t, conn.WriteJSON(request))

	var response Message
	require.NoError(t, conn.ReadJSON(&response))

	return response
}

func intPtr(v int) *int {
	return &v
}

func gameWith(id string, board entity.Board, turn entity.Mark) *entity.Game {
	return &entity.Game{
		ID:         id,
		Board:      board,
		Turn:       turn,
		Status:     entity.StatusInProgress,
		StatusText: string(turn) + "'s turn",
	}
}

func TestServer_Connect(t *testing.T) {
	t.Run("Connect creates a session", func(t *testing.T) {
		// Given: a use case that starts session "abc"
		mockGame := mockedRest.NewMockgameUseCase(t)
		mockGame.EXPECT().
			GetOrCreateSession(mock.Anything, "").
			Return(gameWith("abc", entity.Board{}, entity.PlayerX), nil).
			Once()

		conn := dial(t, mockGame, nil)

		// When: the client connects
		response := roundTrip(t, conn, Message{Action: ActionConnect})

		// Then: the session and the initial game come back
		assert.Equal(t, ActionConnect, response.Action)
		assert.Equal(t, "abc", response.Payload.SessionID)
		assert.Equal(t, "X's turn", response.Payload.Game.StatusText)
		assert.Empty(t, response.Payload.Error)
	})

	t.Run("Connect resumes the session from the cookie", func(t *testing.T) {
		mockGame := mockedRest.NewMockgameUseCase(t)
		mockGame.EXPECT().
			GetOrCreateSession(mock.Anything, "from-cookie").
			Return(gameWith("from-cookie", entity.Board{}, entity.PlayerX), nil).
			Once()

		header := http.Header{}
		header.Add("Cookie", sessionCookie+"=from-cookie")
		conn := dial(t, mockGame, header)

		response := roundTrip(t, conn, Message{Action: ActionConnect})

		assert.Equal(t, "from-cookie", response.Payload.SessionID)
	})

	t.Run("Connect failure is reported", func(t *testing.T) {
		mockGame := mockedRest.NewMockgameUseCase(t)
		mockGame.EXPECT().
			GetOrCreateSession(mock.Anything, "abc").
			Return(nil, errors.New("redis down")).
			Once()

		conn := dial(t, mockGame, nil)

		response := roundTrip(t, conn, Message{Action: ActionConnect, Payload: Payload{SessionID: "abc"}})

		assert.Equal(t, "failed to start a session", response.Payload.Error)
	})
}

func TestServer_Turn(t *testing.T) {
	t.Run("Turn before connect is refused", func(t *testing.T) {
		conn := dial(t, mockedRest.NewMockgameUseCase(t), nil)

		response := roundTrip(t, conn, Message{Action: ActionTurn, Payload: Payload{Cell: intPtr(0)}})

		assert.Equal(t, ActionTurn, response.Action)
		assert.Equal(t, "connect first", response.Payload.Error)
	})

	t.Run("Turn after connect is applied", func(t *testing.T) {
		// Given: a connected client
		mockGame := mockedRest.NewMockgameUseCase(t)
		mockGame.EXPECT().
			GetOrCreateSession(mock.Anything, "").
			Return(gameWith("abc", entity.Board{}, entity.PlayerX), nil).
			Once()
		mockGame.EXPECT().
			MakeMove(mock.Anything, "abc", 4).
			Return(gameWith("abc", entity.Board{4: entity.PlayerX}, entity.PlayerO), true, nil).
			Once()

		conn := dial(t, mockGame, nil)
		roundTrip(t, conn, Message{Action: ActionConnect})

		// When: X plays the centre
		response := roundTrip(t, conn, Message{Action: ActionTurn, Payload: Payload{Cell: intPtr(4)}})

		// Then: the move is accepted
		require.NotNil(t, response.Payload.Accepted)
		assert.True(t, *response.Payload.Accepted)
		assert.Equal(t, entity.PlayerX, response.Payload.Game.Board[4])
		assert.Equal(t, "O's turn", response.Payload.Game.StatusText)
	})

	t.Run("Invalid cell is reported and the connection stays open", func(t *testing.T) {
		mockGame := mockedRest.NewMockgameUseCase(t)
		mockGame.EXPECT().
			GetOrCreateSession(mock.Anything, "").
			Return(gameWith("abc", entity.Board{}, entity.PlayerX), nil).
			Once()
		mockGame.EXPECT().
			MakeMove(mock.Anything, "abc", 9).
			Return(nil, false, apperror.ErrInvalidCell).
			Once()
		mockGame.EXPECT().
			MakeMove(mock.Anything, "abc", 0).
			Return(gameWith("abc", entity.Board{entity.PlayerX}, entity.PlayerO), true, nil).
			Once()

		conn := dial(t, mockGame, nil)
		roundTrip(t, conn, Message{Action: ActionConnect})

		response := roundTrip(t, conn, Message{Action: ActionTurn, Payload: Payload{Cell: intPtr(9)}})
		assert.Equal(t, apperror.ErrInvalidCell.Error(), response.Payload.Error)

		response = roundTrip(t, conn, Message{Action: ActionTurn, Payload: Payload{Cell: intPtr(0)}})
		assert.Empty(t, response.Payload.Error)
	})

	t.Run("Missing cell is reported", func(t *testing.T) {
		mockGame := mockedRest.NewMockgameUseCase(t)
		mockGame.EXPECT().
			GetOrCreateSession(mock.Anything, "").
			Return(gameWith("abc", entity.Board{}, entity.PlayerX), nil).
			Once()

		conn := dial(t, mockGame, nil)
		roundTrip(t, conn, Message{Action: ActionConnect})

		response := roundTrip(t, conn, Message{Action: ActionTurn})

		assert.Equal(t, "cell is required", response.Payload.Error)
	})
}

func TestServer_Restart(t *testing.T) {
	mockGame := mockedRest.NewMockgameUseCase(t)
	mockGame.EXPECT().
		GetOrCreateSession(mock.Anything, "").
		Return(gameWith("abc", entity.Board{entity.PlayerX}, entity.PlayerO), nil).
		Once()
	mockGame.EXPECT().
		Restart(mock.Anything, "abc").
		Return(gameWith("abc", entity.Board{}, entity.PlayerX), nil).
		Once()

	conn := dial(t, mockGame, nil)
	roundTrip(t, conn, Message{Action: ActionConnect})

	response := roundTrip(t, conn, Message{Action: ActionRestart})

	assert.Equal(t, ActionRestart, response.Action)
	assert.Equal(t, entity.Board{}, response.Payload.Game.Board)
	assert.Equal(t, "X's turn", response.Payload.Game.StatusText)
}

func TestServer_BadMessages(t *testing.T) {
	conn := dial(t, mockedRest.NewMockgameUseCase(t), nil)

	t.Run("Unknown action", func(t *testing.T) {
		response := roundTrip(t, conn, Message{Action: "game:undo"})

		assert.Equal(t, "game:undo", response.Action)
		assert.Equal(t, "unknown action", response.Payload.Error)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{")))

		var response Message
		require.NoError(t, conn.ReadJSON(&response))

		assert.Equal(t, "malformed message", response.Payload.Error)
	})
}
