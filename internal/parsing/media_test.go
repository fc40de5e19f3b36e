package parsing

import (
	"errors"
	"testing"
)

// TestMediaInfoProjection tests the full field mapping for a complete dump.
func TestMediaInfoProjection(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"id": "abc123",
		"title": "Some Video",
		"uploader": "Some Channel",
		"uploader_id": "@somechannel",
		"duration": 125,
		"webpage_url": "https://example.com/watch?v=abc123",
		"thumbnails": [{"url": "https://example.com/t.jpg", "height": 720}],
		"formats": [
			{"format_id": "18", "format": "18 - 640x360 (360p)", "ext": "mp4", "filesize": 1000, "url": "https://cdn.example.com/18", "tbr": 500.5}
		]
	}`)

	info, err := MediaInfo(raw, "https://example.com/watch?v=abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.Title != "Some Video" {
		t.Errorf("title = %q, want %q", info.Title, "Some Video")
	}
	if info.ID != "abc123" {
		t.Errorf("id = %q, want %q", info.ID, "abc123")
	}
	if info.Uploader != "Some Channel" {
		t.Errorf("uploader = %q, want %q", info.Uploader, "Some Channel")
	}
	if info.DurationDisplay != "2m 5s" {
		t.Errorf("duration_display = %q, want %q", info.DurationDisplay, "2m 5s")
	}
	if info.RequestURL != "https://example.com/watch?v=abc123" {
		t.Errorf("request_url = %q, want the input URL", info.RequestURL)
	}
	if len(info.Thumbnails) != 1 {
		t.Errorf("thumbnails length = %d, want 1", len(info.Thumbnails))
	}
	if len(info.Formats) != 1 {
		t.Fatalf("formats length = %d, want 1", len(info.Formats))
	}

	f := info.Formats[0]
	if f.FormatID != "18" || f.Ext != "mp4" || f.URL != "https://cdn.example.com/18" {
		t.Errorf("format mapped wrong: %+v", f)
	}
	if f.Filesize == nil || *f.Filesize != 1000 {
		t.Errorf("filesize = %v, want 1000", f.Filesize)
	}
	if f.Bitrate == nil || *f.Bitrate != 500.5 {
		t.Errorf("bitrate = %v, want 500.5", f.Bitrate)
	}
}

// TestMediaInfoDurationAbsent tests that a missing duration renders empty.
func TestMediaInfoDurationAbsent(t *testing.T) {
	t.Parallel()

	info, err := MediaInfo([]byte(`{"id": "x", "title": "t"}`), "https://example.com/x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.DurationDisplay != "" {
		t.Errorf("duration_display = %q, want empty", info.DurationDisplay)
	}
}

// TestMediaInfoIDFallback tests the id -> webpage_url fallback.
func TestMediaInfoIDFallback(t *testing.T) {
	t.Parallel()

	info, err := MediaInfo([]byte(`{"title": "t", "webpage_url": "https://example.com/page"}`), "https://example.com/page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ID != "https://example.com/page" {
		t.Errorf("id = %q, want webpage_url fallback", info.ID)
	}
}

// TestMediaInfoUploaderFallback tests uploader -> uploader_id -> "".
func TestMediaInfoUploaderFallback(t *testing.T) {
	t.Parallel()

	info, err := MediaInfo([]byte(`{"id": "x", "uploader_id": "@someone"}`), "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Uploader != "@someone" {
		t.Errorf("uploader = %q, want uploader_id fallback", info.Uploader)
	}

	info, err = MediaInfo([]byte(`{"id": "x"}`), "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Uploader != "" {
		t.Errorf("uploader = %q, want empty", info.Uploader)
	}
}

// TestMediaInfoFormatSort tests descending filesize order with a stable tie break.
func TestMediaInfoFormatSort(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"id": "x", "formats": [
		{"format_id": "a"},
		{"format_id": "b", "filesize": 300},
		{"format_id": "c", "filesize": 100},
		{"format_id": "d", "filesize": 300},
		{"format_id": "e"}
	]}`)

	info, err := MediaInfo(raw, "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make([]string, 0, len(info.Formats))
	for _, f := range info.Formats {
		got = append(got, f.FormatID)
	}

	// b before d (both 300, source order), a before e (both unknown -> 0).
	want := []string{"b", "d", "c", "a", "e"}
	if len(got) != len(want) {
		t.Fatalf("formats length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("format order = %v, want %v", got, want)
		}
	}
}

// TestMediaInfoDefaults tests that absent sequences come back empty, not null.
func TestMediaInfoDefaults(t *testing.T) {
	t.Parallel()

	info, err := MediaInfo([]byte(`{}`), "https://example.com/v")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Thumbnails == nil || len(info.Thumbnails) != 0 {
		t.Errorf("thumbnails = %v, want empty slice", info.Thumbnails)
	}
	if info.Formats == nil || len(info.Formats) != 0 {
		t.Errorf("formats = %v, want empty slice", info.Formats)
	}
	if info.RequestURL != "https://example.com/v" {
		t.Errorf("request_url = %q, want the input URL", info.RequestURL)
	}
}

// TestMediaInfoBadDump tests that non-JSON output yields ErrBadDump.
func TestMediaInfoBadDump(t *testing.T) {
	t.Parallel()

	_, err := MediaInfo([]byte("WARNING: not json"), "u")
	if err == nil {
		t.Fatal("expected an error for malformed output")
	}
	if !errors.Is(err, ErrBadDump) {
		t.Errorf("error = %v, want ErrBadDump", err)
	}
}
