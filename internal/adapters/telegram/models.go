package telegram

// ResponseParameters carries hints attached to failed replies
type ResponseParameters struct {
	RetryAfter      int   `json:"retry_after,omitempty"`
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
}

// User is the getMe payload
type User struct {
	ID           int64  `json:"id"`
	IsBot        bool   `json:"is_bot"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	IsPremium    bool   `json:"is_premium,omitempty"`
}

// ChatPhoto holds file ids of the current chat photo
type ChatPhoto struct {
	SmallFileID       string `json:"small_file_id"`
	SmallFileUniqueID string `json:"small_file_unique_id"`
	BigFileID         string `json:"big_file_id"`
	BigFileUniqueID   string `json:"big_file_unique_id"`
}

// Chat is the getChat payload. ParticipantCount and Verified are not part of
// the documented Bot API but are read when present
type Chat struct {
	ID               int64      `json:"id"`
	Type             string     `json:"type"`
	Title            string     `json:"title,omitempty"`
	Username         string     `json:"username,omitempty"`
	FirstName        string     `json:"first_name,omitempty"`
	LastName         string     `json:"last_name,omitempty"`
	Bio              string     `json:"bio,omitempty"`
	Description      string     `json:"description,omitempty"`
	ActiveUsernames  []string   `json:"active_usernames,omitempty"`
	Photo            *ChatPhoto `json:"photo,omitempty"`
	ParticipantCount int        `json:"participant_count,omitempty"`
	Verified         bool       `json:"verified,omitempty"`
}

// PhotoSize is one resolution of a photo
type PhotoSize struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FileSize     int64  `json:"file_size,omitempty"`
}

// UserProfilePhotos lists profile photos, each in several sizes
type UserProfilePhotos struct {
	TotalCount int           `json:"total_count"`
	Photos     [][]PhotoSize `json:"photos"`
}

// FirstFileID returns the first size of the first photo, "" when none
func (p UserProfilePhotos) FirstFileID() string {
	if p.TotalCount <= 0 || len(p.Photos) == 0 || len(p.Photos[0]) == 0 {
		return ""
	}
	return p.Photos[0][0].FileID
}

// File is the getFile payload
type File struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int64  `json:"file_size,omitempty"`
	FilePath     string `json:"file_path,omitempty"`
}
