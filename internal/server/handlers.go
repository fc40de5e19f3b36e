package server

import (
	"encoding/json"
	"io"
	"net/http"

	"fetcharr/internal/domain/mediacmd"
	"fetcharr/internal/models"
	"fetcharr/internal/parsing"
	"fetcharr/internal/utils/logging"
)

// handleInfo returns normalized metadata for a media URL.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	var q models.MediaQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if q.URL == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}

	out, err := s.invoker.RunCaptured(s.cfg.ToolPath, []string{mediacmd.DumpJSON, q.URL})
	if err != nil {
		logging.E("metadata fetch failed for %q: %v", q.URL, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	info, err := parsing.MediaInfo(out, q.URL)
	if err != nil {
		logging.E("metadata parse failed for %q: %v", q.URL, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		logging.E("failed to encode JSON: %v", err)
	}
}

// handleDownload streams the selected format's bytes to the client as an
// attachment. Once streaming begins a tool failure can only surface as a
// truncated transfer, since the headers are already committed.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	mediaURL := r.URL.Query().Get("url")
	if mediaURL == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}
	formatID := r.URL.Query().Get("format_id")

	args := make([]string, 0, 5)
	if formatID != "" {
		args = append(args, mediacmd.Format, formatID)
	}
	args = append(args, mediacmd.Output, mediacmd.ToStdout, mediaURL)

	stream, err := s.invoker.RunStreaming(s.cfg.ToolPath, args)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	// Covers every exit path; a no-op once the process is gone.
	defer stream.Terminate()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="download.`+downloadExt(formatID)+`"`)

	// Kill the tool the moment the client goes away. Nothing else reaps it.
	copyDone := make(chan struct{})
	go func() {
		select {
		case <-r.Context().Done():
			stream.Terminate()
		case <-copyDone:
		}
	}()

	written, copyErr := io.Copy(w, stream.Output())
	close(copyDone)

	code := stream.Wait()
	switch {
	case r.Context().Err() != nil:
		logging.D(1, "client aborted download of %q after %d bytes", mediaURL, written)
	case code != 0:
		logging.E("%s exited with code %d during download of %q (%d bytes sent)", s.cfg.ToolPath, code, mediaURL, written)
	case copyErr != nil:
		logging.E("response write failed for %q: %v", mediaURL, copyErr)
	default:
		logging.D(1, "download of %q complete: %d bytes", mediaURL, written)
	}
}
