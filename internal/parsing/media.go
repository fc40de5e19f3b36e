// Package parsing projects raw extraction tool output into response models.
package parsing

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"fetcharr/internal/models"
)

// ErrBadDump flags metadata output that did not parse as the expected JSON.
// Distinct from the tool itself failing.
var ErrBadDump = errors.New("malformed metadata dump")

// MediaInfo parses a raw -J metadata dump and normalizes it, echoing
// requestURL into the result.
func MediaInfo(raw []byte, requestURL string) (*models.MediaInfo, error) {
	var dump models.MetadataDump
	if err := json.Unmarshal(raw, &dump); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDump, err)
	}

	info := &models.MediaInfo{
		Title:           dump.Title,
		ID:              dump.ID,
		Uploader:        dump.Uploader,
		DurationDisplay: durationDisplay(dump.Duration),
		Thumbnails:      dump.Thumbnails,
		Formats:         projectFormats(dump.Formats),
		RequestURL:      requestURL,
	}

	if info.ID == "" {
		info.ID = dump.WebpageURL
	}
	if info.Uploader == "" {
		info.Uploader = dump.UploaderID
	}
	if info.Thumbnails == nil {
		info.Thumbnails = []json.RawMessage{}
	}

	return info, nil
}

// projectFormats maps raw format entries 1:1 and orders them largest first.
// Entries without a filesize sort as size 0; ties keep their source order.
func projectFormats(raw []models.DumpFormat) []models.FormatDescriptor {
	formats := make([]models.FormatDescriptor, 0, len(raw))
	for _, f := range raw {
		formats = append(formats, models.FormatDescriptor{
			FormatID: f.FormatID,
			Format:   f.Format,
			Ext:      f.Ext,
			Filesize: f.Filesize,
			URL:      f.URL,
			Bitrate:  f.TBR,
		})
	}

	sort.SliceStable(formats, func(i, j int) bool {
		return filesizeOrZero(formats[i]) > filesizeOrZero(formats[j])
	})
	return formats
}

func filesizeOrZero(f models.FormatDescriptor) int64 {
	if f.Filesize == nil {
		return 0
	}
	return *f.Filesize
}

// durationDisplay renders numeric seconds as "Xm Ys", or "" when the source
// provides no duration.
func durationDisplay(seconds *float64) string {
	if seconds == nil {
		return ""
	}
	total := int(*seconds)
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}
