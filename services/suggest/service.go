package suggest

import (
	"fmt"
	"sort"

	"github.com/raitonoberu/ytsearch"

	"ytresolve/models"
	"ytresolve/utils/duration"
	"ytresolve/utils/similarity"
)

const watchURLBase = "https://www.youtube.com/watch?v="

// hit is the provider-neutral shape of one search result.
type hit struct {
	ID        string
	Title     string
	Seconds   int
	Thumbnail string
	Channel   string
}

// Service wraps the text-search provider and ranks its hits against the
// query. The provider call is swappable for tests.
type Service struct {
	search func(query string) ([]hit, error)
}

func NewService() *Service {
	return &Service{search: searchYouTube}
}

func searchYouTube(query string) ([]hit, error) {
	results, err := ytsearch.VideoSearch(query).Next()
	if err != nil {
		return nil, fmt.Errorf("video search: %w", err)
	}
	hits := make([]hit, 0, len(results.Videos))
	for _, v := range results.Videos {
		thumbnail := ""
		if len(v.Thumbnails) > 0 {
			thumbnail = v.Thumbnails[0].URL
		}
		hits = append(hits, hit{
			ID:        v.ID,
			Title:     v.Title,
			Seconds:   v.Duration,
			Thumbnail: thumbnail,
			Channel:   v.Channel.Title,
		})
	}
	return hits, nil
}

// Search returns up to limit suggestions for query, closest title match
// first. An empty result is valid, not an error.
func (s *Service) Search(query string, limit int) ([]models.Suggestion, error) {
	hits, err := s.search(query)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return similarity.Score(query, hits[i].Title) > similarity.Score(query, hits[j].Title)
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]models.Suggestion, 0, len(hits))
	for _, h := range hits {
		out = append(out, models.Suggestion{
			Title:     h.Title,
			Link:      watchURLBase + h.ID,
			Duration:  duration.FromSeconds(int64(h.Seconds)),
			Thumbnail: h.Thumbnail,
			Channel:   h.Channel,
		})
	}
	return out, nil
}
