package models

import "time"

type Resume struct {
	ID            int64     `db:"id"             json:"id"`
	Filename      string    `db:"filename"       json:"filename"`
	OriginalName  string    `db:"original_name"  json:"originalName"`
	FileSize      int64     `db:"file_size"      json:"fileSize"`
	MimeType      string    `db:"mime_type"      json:"mimeType"`
	Version       string    `db:"version"        json:"version"`
	Description   string    `db:"description"    json:"description"`
	Active        bool      `db:"active"         json:"active"`
	DownloadCount int       `db:"download_count" json:"downloadCount"`
	CreatedAt     time.Time `db:"created_at"     json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at"     json:"updatedAt"`
}

// UploadedFile describes a file the transport layer has already streamed to
// disk: size- and type-validated, stored under its generated name.
type UploadedFile struct {
	Filename     string
	OriginalName string
	MimeType     string
	Size         int64
}

// ResumeUpdateRequest carries the mutable metadata fields; nil means the
// field was absent from the form and keeps its current value.
type ResumeUpdateRequest struct {
	Version     *string
	Description *string
	Active      *bool
}

