// Package models holds data models for fetcharr.
package models

import "encoding/json"

// MediaQuery is the client-supplied request for a media URL.
type MediaQuery struct {
	URL string `json:"url"`
}

// FormatDescriptor is one rendition option enumerated by the extraction tool.
type FormatDescriptor struct {
	FormatID string   `json:"format_id"`
	Format   string   `json:"format"`
	Ext      string   `json:"ext"`
	Filesize *int64   `json:"filesize,omitempty"`
	URL      string   `json:"url"`
	Bitrate  *float64 `json:"bitrate,omitempty"`
}

// MediaInfo is the normalized metadata returned for a media URL.
type MediaInfo struct {
	Title           string             `json:"title"`
	ID              string             `json:"id"`
	Uploader        string             `json:"uploader"`
	DurationDisplay string             `json:"duration_display"`
	Thumbnails      []json.RawMessage  `json:"thumbnails"`
	Formats         []FormatDescriptor `json:"formats"`
	RequestURL      string             `json:"request_url"`
}

// MetadataDump mirrors the fields of the extraction tool's JSON dump which
// fetcharr projects. Thumbnails are passed through opaque.
type MetadataDump struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Uploader   string            `json:"uploader"`
	UploaderID string            `json:"uploader_id"`
	Duration   *float64          `json:"duration"`
	WebpageURL string            `json:"webpage_url"`
	Thumbnails []json.RawMessage `json:"thumbnails"`
	Formats    []DumpFormat      `json:"formats"`
}

// DumpFormat is one raw format entry from the extraction tool's JSON dump.
type DumpFormat struct {
	FormatID string   `json:"format_id"`
	Format   string   `json:"format"`
	Ext      string   `json:"ext"`
	Filesize *int64   `json:"filesize"`
	URL      string   `json:"url"`
	TBR      *float64 `json:"tbr"`
}
