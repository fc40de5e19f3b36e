package server

import "regexp"

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// downloadExt derives the attachment filename suffix from the requested
// format identifier, stripped to alphanumerics. No format (or a format that
// sanitizes to nothing) falls back to "media".
func downloadExt(formatID string) string {
	cleaned := nonAlnum.ReplaceAllString(formatID, "")
	if cleaned == "" {
		return "media"
	}
	return cleaned
}
