package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (CreateSessionOutput, error)
	SendMessage(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
}
