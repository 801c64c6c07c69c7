package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"

	"ytresolve/models"
)

// YtDlpEngine runs the yt-dlp binary in JSON mode. Each Extract call is one
// subprocess; cookies are passed explicitly per call via the option set,
// never through ambient process state.
type YtDlpEngine struct {
	path string
}

var _ Engine = (*YtDlpEngine)(nil)

func NewYtDlpEngine(path string) *YtDlpEngine {
	if strings.TrimSpace(path) == "" {
		path = "yt-dlp"
	}
	return &YtDlpEngine{path: path}
}

// Extract resolves the identifier (a URL or a search directive such as
// "ytsearch1:...") into a raw metadata record. Engine faults are returned
// with yt-dlp's own stderr message so failures stay debuggable upstream.
func (e *YtDlpEngine) Extract(ctx context.Context, identifier string, opts Options) (*models.RawMetadata, error) {
	args := []string{"-J", "--no-warnings"}
	if !opts.Download {
		args = append(args, "--skip-download")
	}
	if !opts.PlaylistExpansion {
		args = append(args, "--no-playlist")
	}
	if opts.FormatSelection != "" {
		args = append(args, "-f", opts.FormatSelection)
	}
	if opts.CookieSource != "" {
		args = append(args, "--cookies", opts.CookieSource)
	}
	args = append(args, identifier)

	cmd := exec.CommandContext(ctx, e.path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	log.Printf("[ytdlp] %s took %s (err=%v)", identifier, time.Since(start).Round(time.Millisecond), err)
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, fmt.Errorf("yt-dlp: %w", err)
	}

	var meta models.RawMetadata
	if err := json.Unmarshal(stdout.Bytes(), &meta); err != nil {
		return nil, fmt.Errorf("decode yt-dlp output: %w", err)
	}
	return &meta, nil
}
