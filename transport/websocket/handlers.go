package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

func (that *Server) handleConnect(ctx context.Context, client *connection, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	id := msg.Payload.SessionID
	if id == "" {
		id = client.sessionID
	}

	game, err := that.gameUseCase.GetOrCreateSession(ctx, id)
	if err != nil {
		log.Error("failed to get or create session", "error", err)
		return client.sendError(msg.Action, "failed to start a session")
	}

	client.sessionID = game.ID
	log.Info("session connected", "sessionID", game.ID)

	return client.send(msg.Action, Payload{SessionID: game.ID, Game: game})
}

func (that *Server) handleTurn(ctx context.Context, client *connection, msg *Message) error {
	if client.sessionID == "" {
		return client.sendError(msg.Action, "connect first")
	}

	if msg.Payload.Cell == nil {
		return client.sendError(msg.Action, "cell is required")
	}

	game, accepted, err := that.gameUseCase.MakeMove(ctx, client.sessionID, *msg.Payload.Cell)
	if err != nil {
		return that.replyError(client, msg.Action, err)
	}

	return client.send(msg.Action, Payload{SessionID: game.ID, Game: game, Accepted: &accepted})
}

func (that *Server) handleRestart(ctx context.Context, client *connection, msg *Message) error {
	if client.sessionID == "" {
		return client.sendError(msg.Action, "connect first")
	}

	game, err := that.gameUseCase.Restart(ctx, client.sessionID)
	if err != nil {
		return that.replyError(client, msg.Action, err)
	}

	return client.send(msg.Action, Payload{SessionID: game.ID, Game: game})
}

// replyError - reports domain errors to the client as is, anything else is logged and hidden.
func (that *Server) replyError(client *connection, action string, err error) error {
	switch {
	case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, apperror.ErrSessionNotFound):
		return client.sendError(action, err.Error())
	default:
		that.logger.Error("failed to process message", "action", action, "sessionID", client.sessionID, "error", err)
		return client.sendError(action, "internal error")
	}
}
