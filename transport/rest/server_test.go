package rest

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	mockedRest "github.com/rocketscienceinc/tictactoe-local/mocks/rest"
	"github.com/rocketscienceinc/tictactoe-local/transport/websocket"
)

func freePort(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	require.NoError(t, listener.Close())

	return port
}

func TestServer_StartWaitsForInFlightRequests(t *testing.T) {
	// Given: a server with a slow handler mounted
	server := New(slog.New(slog.NewTextHandler(io.Discard, nil)), mockedRest.NewMockgameUseCase(t))

	var finished atomic.Bool
	entered := make(chan struct{})
	server.Handle("/slow", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		time.Sleep(300 * time.Millisecond)
		finished.Store(true)
		w.WriteHeader(http.StatusOK)
	}))

	port := freePort(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startErr := make(chan error, 1)
	go func() {
		startErr <- server.Start(ctx, port)
	}()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", "127.0.0.1:"+port)
		if err != nil {
			return false
		}
		conn.Close()

		return true
	}, 2*time.Second, 10*time.Millisecond)

	respCh := make(chan *http.Response, 1)
	go func() {
		resp, err := http.Get("http://127.0.0.1:" + port + "/slow")
		if err != nil {
			respCh <- nil
			return
		}
		resp.Body.Close()
		respCh <- resp
	}()

	<-entered

	// When: the context is cancelled mid-request
	cancel()

	// Then: Start returns cleanly and the request still completes
	select {
	case err := <-startErr:
		require.NoError(t, err)
		assert.True(t, finished.Load(), "Start returned before the in-flight request finished")
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("Start did not return after shutdown")
	}

	select {
	case resp := <-respCh:
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	case <-time.After(2 * time.Second):
		t.Fatal("request did not complete")
	}
}

func TestServer_StartFailsOnBusyPort(t *testing.T) {
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer listener.Close()

	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)

	server := New(slog.New(slog.NewTextHandler(io.Discard, nil)), mockedRest.NewMockgameUseCase(t))

	err = server.Start(context.Background(), port)

	require.Error(t, err)
}

func TestServer_WebSocketSharesPageOrigin(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	// Given: the WebSocket endpoint mounted on the page's server
	mockGame := mockedRest.NewMockgameUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := New(logger, mockGame)
	server.Handle("/ws", websocket.New(logger, mockGame).Handler(ctx))

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	t.Run("Browser on the page origin connects", func(t *testing.T) {
		mockGame.EXPECT().
			GetOrCreateSession(mock.Anything, "").
			Return(initialGame("abc"), nil).
			Once()

		// When: a client dials with the Origin a browser on the page would send
		conn, resp, err := gorillaws.DefaultDialer.Dial(url, http.Header{"Origin": {ts.URL}})
		require.NoError(t, err)
		resp.Body.Close()
		defer conn.Close()

		// Then: the handshake succeeds and messages flow
		require.NoError(t, conn.WriteJSON(websocket.Message{Action: websocket.ActionConnect}))

		var reply websocket.Message
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "abc", reply.Payload.SessionID)
		assert.Equal(t, entity.PlayerX, reply.Payload.Game.Turn)
	})

	t.Run("Foreign origin is refused", func(t *testing.T) {
		_, resp, err := gorillaws.DefaultDialer.Dial(url, http.Header{"Origin": {"http://evil.example"}})

		require.ErrorIs(t, err, gorillaws.ErrBadHandshake)
		require.NotNil(t, resp)
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
