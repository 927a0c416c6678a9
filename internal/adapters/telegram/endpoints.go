package telegram

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	perr "tgage/internal/platform/errors"
)

// GetMe returns the bot's own account, used as a readiness probe
func (c *Client) GetMe(ctx context.Context) (User, error) {
	var out User
	err := c.Call(ctx, "getMe", nil, &out)
	return out, err
}

// Ping succeeds when the token is valid and the API reachable
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.GetMe(ctx)
	return err
}

// GetChat resolves a chat by numeric id or "@username"
func (c *Client) GetChat(ctx context.Context, chatID string) (Chat, error) {
	if strings.TrimSpace(chatID) == "" {
		return Chat{}, perr.InvalidArgf("chat id is required")
	}
	var out Chat
	err := c.Call(ctx, "getChat", url.Values{"chat_id": {chatID}}, &out)
	return out, err
}

// ChatByUsername resolves a public username, with or without the leading "@"
func (c *Client) ChatByUsername(ctx context.Context, username string) (Chat, error) {
	return c.GetChat(ctx, "@"+strings.TrimPrefix(username, "@"))
}

// GetUserProfilePhotos lists up to limit photos for userID, limit <= 0 uses the API default
func (c *Client) GetUserProfilePhotos(ctx context.Context, userID int64, limit int) (UserProfilePhotos, error) {
	v := url.Values{"user_id": {strconv.FormatInt(userID, 10)}}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var out UserProfilePhotos
	err := c.Call(ctx, "getUserProfilePhotos", v, &out)
	return out, err
}

// GetFile resolves a file id to a downloadable path
func (c *Client) GetFile(ctx context.Context, fileID string) (File, error) {
	if fileID == "" {
		return File{}, perr.InvalidArgf("file id is required")
	}
	var out File
	err := c.Call(ctx, "getFile", url.Values{"file_id": {fileID}}, &out)
	return out, err
}

// FileURL is the download URL for a file path. It embeds the bot token
func (c *Client) FileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return c.opts.BaseURL + "/file/bot" + c.opts.Token + "/" + strings.TrimPrefix(filePath, "/")
}
