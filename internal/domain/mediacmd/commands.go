// Package mediacmd holds constants for media extraction command flags.
package mediacmd

const (
	YTDLP    = "yt-dlp"
	DumpJSON = "-J"
	Format   = "-f"
	Output   = "-o"
	ToStdout = "-"
)
