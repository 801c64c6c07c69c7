package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RawMetadata is the record returned by the extraction engine for one media
// item. Only the fields the API projects are decoded; everything else in the
// engine's JSON output is ignored. Records are produced fresh per request
// and never mutated, only read.
type RawMetadata struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	WebpageURL     string            `json:"webpage_url"`
	Duration       json.Number       `json:"duration"`
	DurationString string            `json:"duration_string"`
	UploadDate     string            `json:"upload_date"`
	ViewCount      int64             `json:"view_count"`
	LikeCount      int64             `json:"like_count"`
	Thumbnail      string            `json:"thumbnail"`
	Description    string            `json:"description"`
	Tags           []string          `json:"tags"`
	IsLive         bool              `json:"is_live"`
	AgeLimit       int               `json:"age_limit"`
	AverageRating  float64           `json:"average_rating"`
	Uploader       string            `json:"uploader"`
	UploaderURL    string            `json:"uploader_url"`
	UploaderID     string            `json:"uploader_id"`
	Formats        []RawStreamFormat `json:"formats"`
	Related        []RawMetadata     `json:"related"`
	Entries        []RawMetadata     `json:"entries"`
}

// DurationText returns the engine's clock-style duration string when present
// ("1:02:03"), otherwise the numeric duration in whole seconds. Either form
// feeds the ISO-8601 normalizer.
func (m *RawMetadata) DurationText() string {
	if s := strings.TrimSpace(m.DurationString); s != "" {
		return s
	}
	if m.Duration == "" {
		return ""
	}
	if f, err := m.Duration.Float64(); err == nil {
		return strconv.FormatInt(int64(f), 10)
	}
	return ""
}

// RawStreamFormat is one stream variant as reported by the extraction
// engine. Filesize fields are nullable in the engine output.
type RawStreamFormat struct {
	FormatID       string            `json:"format_id"`
	Ext            string            `json:"ext"`
	Resolution     string            `json:"resolution"`
	FormatNote     string            `json:"format_note"`
	Filesize       *int64            `json:"filesize"`
	FilesizeApprox *int64            `json:"filesize_approx"`
	ACodec         string            `json:"acodec"`
	VCodec         string            `json:"vcodec"`
	Width          int               `json:"width"`
	Height         int               `json:"height"`
	FPS            float64           `json:"fps"`
	ABR            float64           `json:"abr"`
	ASR            int               `json:"asr"`
	URL            string            `json:"url"`
	HTTPHeaders    map[string]string `json:"http_headers,omitempty"`
}

// FormatKind tags a classified stream variant by track content.
type FormatKind string

const (
	KindProgressive FormatKind = "progressive"
	KindVideoOnly   FormatKind = "video-only"
	KindAudioOnly   FormatKind = "audio-only"
)

// ClassifiedFormat is the UI-ready view of a RawStreamFormat: tagged with a
// content kind and carrying both the raw and human-readable size.
type ClassifiedFormat struct {
	FormatID      string     `json:"format_id"`
	Ext           string     `json:"ext"`
	Kind          FormatKind `json:"kind"`
	FilesizeBytes int64      `json:"filesize_bytes"`
	Filesize      string     `json:"filesize"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	FPS           float64    `json:"fps"`
	ABR           float64    `json:"abr"`
	ASR           int        `json:"asr"`
	URL           string     `json:"url"`
}

// Channel identifies the uploader of a media item.
type Channel struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	ID   string `json:"id"`
}

// Suggestion is one search hit offered alongside a resolved item.
type Suggestion struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Duration  string `json:"duration"`
	Thumbnail string `json:"thumbnail"`
	Channel   string `json:"channel,omitempty"`
}

// VideoDataResponse is the full metadata projection served by /api/video-data.
type VideoDataResponse struct {
	Title         string       `json:"title"`
	VideoURL      string       `json:"video_url"`
	Duration      string       `json:"duration"`
	UploadDate    string       `json:"upload_date"`
	ViewCount     int64        `json:"view_count"`
	LikeCount     int64        `json:"like_count"`
	Thumbnail     string       `json:"thumbnail"`
	Description   string       `json:"description"`
	Tags          []string     `json:"tags"`
	IsLive        bool         `json:"is_live"`
	AgeLimit      int          `json:"age_limit"`
	AverageRating float64      `json:"average_rating"`
	Channel       Channel      `json:"channel"`
	Suggestions   []Suggestion `json:"suggestions"`
}

// FormatListResponse is served by the stream-listing routes
// (/api/formats, /api/audio, /api/video).
type FormatListResponse struct {
	Title    string             `json:"title"`
	VideoURL string             `json:"video_url"`
	Formats  []ClassifiedFormat `json:"formats"`
}

// SearchResponse is the compact first-hit payload served by /api/search.
type SearchResponse struct {
	Title       string       `json:"title"`
	Link        string       `json:"link"`
	Duration    string       `json:"duration"`
	Thumbnail   string       `json:"thumbnail"`
	Suggestions []Suggestion `json:"suggestions"`
}
