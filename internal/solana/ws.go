package solana

import "context"

// WSClient defines the Solana WebSocket subscription interface.
type WSClient interface {
	// SubscribeProgram subscribes to account updates for accounts owned by
	// a program.
	SubscribeProgram(ctx context.Context, programID string) (<-chan AccountNotification, error)

	// Close closes the WebSocket connection.
	Close() error
}

// AccountNotification is one changed account delivered by programSubscribe.
type AccountNotification struct {
	Pubkey   string
	Lamports uint64
	Owner    string
	Data     string // base64 encoded
	Slot     int64
}
