package domain

import (
	"context"

	"tgage/internal/adapters/telegram"
)

// Upstream is what a lookup needs from the Bot API
type Upstream interface {
	ChatByUsername(ctx context.Context, username string) (telegram.Chat, error)
	GetUserProfilePhotos(ctx context.Context, userID int64, limit int) (telegram.UserProfilePhotos, error)
	GetFile(ctx context.Context, fileID string) (telegram.File, error)
	FileURL(filePath string) string
	Ping(ctx context.Context) error
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Lookup(ctx context.Context, username string) (Profile, error)
}

// Pinger reports upstream reachability
type Pinger interface {
	Ping(ctx context.Context) error
}
