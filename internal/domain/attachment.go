package domain

import "time"

// Attachment is a supporting document uploaded for an application. The file
// bytes live in object storage; only the metadata is kept in the store.
type Attachment struct {
	ID            int       `json:"id"`
	ApplicationID int       `json:"application_id"`
	UserID        int       `json:"user_id"`
	FileName      string    `json:"file_name"`
	FileSize      int64     `json:"file_size"`
	MimeType      string    `json:"mime_type"`
	StoragePath   string    `json:"-"`
	URL           string    `json:"url,omitempty"`
	UploadedAt    time.Time `json:"uploaded_at"`
}
