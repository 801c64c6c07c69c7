package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"ytresolve/internal/classify"
	"ytresolve/models"
	"ytresolve/services/respcache"
	"ytresolve/services/resolver"
	"ytresolve/services/suggest"
	"ytresolve/utils/duration"
)

type resolverService interface {
	Resolve(ctx context.Context, url, query string, mode resolver.Mode) (*models.RawMetadata, error)
}

var _ resolverService = (*resolver.Service)(nil)

type suggestService interface {
	Search(query string, limit int) ([]models.Suggestion, error)
}

var _ suggestService = (*suggest.Service)(nil)

// MediaHandler serves the metadata and stream-listing routes. Responses are
// cached by request signature; format listings carry a bounded TTL because
// the stream URLs inside them are time-limited signed links.
type MediaHandler struct {
	Resolver resolverService
	Suggest  suggestService
	Cache    respcache.Store

	formatTTL      time.Duration
	maxSuggestions int
	group          singleflight.Group
}

func NewMediaHandler(r resolverService, s suggestService, cache respcache.Store, formatTTL time.Duration, maxSuggestions int) *MediaHandler {
	return &MediaHandler{
		Resolver:       r,
		Suggest:        s,
		Cache:          cache,
		formatTTL:      formatTTL,
		maxSuggestions: maxSuggestions,
	}
}

// Alive is the liveness probe mounted at the root path.
func (h *MediaHandler) Alive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "✅ YouTube Search API is alive!"})
}

// VideoData serves the full metadata projection for a URL or search query.
// Entries have no expiry; the projection carries no signed stream URLs.
func (h *MediaHandler) VideoData(w http.ResponseWriter, r *http.Request) {
	url := strings.TrimSpace(r.URL.Query().Get("url"))
	query := strings.TrimSpace(r.URL.Query().Get("query"))

	h.serveCached(w, r, "video-data", []string{url, query}, 0, func() (any, error) {
		meta, err := h.Resolver.Resolve(r.Context(), url, query, resolver.ModeMetadataOnly)
		if err != nil {
			return nil, err
		}
		return h.videoDataPayload(meta, query), nil
	})
}

func (h *MediaHandler) videoDataPayload(meta *models.RawMetadata, query string) models.VideoDataResponse {
	resp := models.VideoDataResponse{
		Title:         meta.Title,
		VideoURL:      meta.WebpageURL,
		Duration:      duration.ToISO8601(meta.DurationText()),
		UploadDate:    meta.UploadDate,
		ViewCount:     meta.ViewCount,
		LikeCount:     meta.LikeCount,
		Thumbnail:     meta.Thumbnail,
		Description:   meta.Description,
		Tags:          meta.Tags,
		IsLive:        meta.IsLive,
		AgeLimit:      meta.AgeLimit,
		AverageRating: meta.AverageRating,
		Channel: models.Channel{
			Name: meta.Uploader,
			URL:  meta.UploaderURL,
			ID:   meta.UploaderID,
		},
		Suggestions: []models.Suggestion{},
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}

	// Suggestions are ancillary; a provider fault never fails the request.
	term := query
	if term == "" {
		term = meta.Title
	}
	if term != "" {
		if suggestions, err := h.Suggest.Search(term, h.maxSuggestions); err != nil {
			log.Printf("[media] suggestions lookup failed for %q: %v", term, err)
		} else if suggestions != nil {
			resp.Suggestions = suggestions
		}
	}
	return resp
}

// Formats serves the complete classified stream-variant list.
func (h *MediaHandler) Formats(w http.ResponseWriter, r *http.Request) {
	h.serveFormats(w, r, "formats", func(f []models.ClassifiedFormat) []models.ClassifiedFormat { return f })
}

// Audio serves variants carrying audio (audio-only and progressive).
func (h *MediaHandler) Audio(w http.ResponseWriter, r *http.Request) {
	h.serveFormats(w, r, "audio", classify.AudioFormats)
}

// Video serves variants carrying video (video-only and progressive).
func (h *MediaHandler) Video(w http.ResponseWriter, r *http.Request) {
	h.serveFormats(w, r, "video", classify.VideoFormats)
}

func (h *MediaHandler) serveFormats(w http.ResponseWriter, r *http.Request, route string, view func([]models.ClassifiedFormat) []models.ClassifiedFormat) {
	url := strings.TrimSpace(r.URL.Query().Get("url"))
	query := strings.TrimSpace(r.URL.Query().Get("query"))

	h.serveCached(w, r, route, []string{url, query}, h.formatTTL, func() (any, error) {
		meta, err := h.Resolver.Resolve(r.Context(), url, query, resolver.ModeFull)
		if err != nil {
			return nil, err
		}
		return models.FormatListResponse{
			Title:    meta.Title,
			VideoURL: meta.WebpageURL,
			Formats:  view(classify.Classify(meta.Formats)),
		}, nil
	})
}

// Search serves the compact first-hit payload for a free-text query, with
// the remaining hits as suggestions.
func (h *MediaHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "Missing 'query' parameter.")
		return
	}

	h.serveCached(w, r, "search", []string{query}, 0, func() (any, error) {
		hits, err := h.Suggest.Search(query, h.maxSuggestions)
		if err != nil {
			return nil, &resolver.Error{Kind: resolver.KindExtractionFailed, Detail: err.Error()}
		}
		if len(hits) == 0 {
			return nil, &resolver.Error{Kind: resolver.KindNoResults, Detail: "no results found"}
		}
		first := hits[0]
		return models.SearchResponse{
			Title:       first.Title,
			Link:        first.Link,
			Duration:    first.Duration,
			Thumbnail:   first.Thumbnail,
			Suggestions: hits[1:],
		}, nil
	})
}

// ClearCache drops every cached response.
func (h *MediaHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.Cache.Clear()
	log.Printf("[media] response cache cleared")
	writeJSON(w, http.StatusOK, map[string]string{"status": "cache cleared"})
}

// serveCached runs the lookup, compute and store steps for one request. The
// refresh parameter bypasses the lookup outright and explicitly invalidates
// the old entry after recomputation, before the new one is stored. Identical
// in-flight computations are collapsed per signature; distinct signatures
// never serialize.
func (h *MediaHandler) serveCached(w http.ResponseWriter, r *http.Request, route string, params []string, ttl time.Duration, compute func() (any, error)) {
	sig := respcache.Key(route, params...)
	_, force := r.URL.Query()["refresh"]

	if !force {
		if payload, ok := h.Cache.Get(sig); ok {
			writeJSON(w, http.StatusOK, payload)
			return
		}
	}

	payload, err, _ := h.group.Do(sig, compute)
	if err != nil {
		writeResolveError(w, err)
		return
	}

	if force {
		h.Cache.Invalidate(sig)
	}
	h.Cache.Set(sig, payload, ttl)
	writeJSON(w, http.StatusOK, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[media] failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeResolveError maps the resolver's closed error-kind set onto HTTP
// statuses. Engine faults keep the upstream message for debuggability.
func writeResolveError(w http.ResponseWriter, err error) {
	var re *resolver.Error
	if !errors.As(err, &re) {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	switch re.Kind {
	case resolver.KindMissingIdentifier:
		writeError(w, http.StatusBadRequest, "Missing 'url' or 'query' parameter.")
	case resolver.KindNoResults:
		writeError(w, http.StatusNotFound, "No results found.")
	default:
		detail := re.Detail
		if detail == "" {
			detail = re.Error()
		}
		writeError(w, http.StatusInternalServerError, detail)
	}
}
