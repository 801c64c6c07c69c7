package suggest

import (
	"errors"
	"testing"
)

func TestSearchRanksByTitleSimilarity(t *testing.T) {
	svc := &Service{search: func(query string) ([]hit, error) {
		return []hit{
			{ID: "b", Title: "Unrelated cooking stream", Seconds: 60},
			{ID: "a", Title: "Never Gonna Give You Up", Seconds: 213},
			{ID: "c", Title: "never gonna give you up reaction", Seconds: 300},
		}, nil
	}}

	got, err := svc.Search("never gonna give you up", 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(got))
	}
	if got[0].Link != "https://www.youtube.com/watch?v=a" {
		t.Errorf("closest title should rank first, got %q", got[0].Title)
	}
	if got[0].Duration != "PT213S" {
		t.Errorf("duration = %q, want PT213S", got[0].Duration)
	}
}

func TestSearchAppliesLimit(t *testing.T) {
	svc := &Service{search: func(query string) ([]hit, error) {
		return []hit{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}, {ID: "3", Title: "c"}}, nil
	}}

	got, err := svc.Search("a", 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected limit of 2, got %d", len(got))
	}
}

func TestSearchPropagatesProviderError(t *testing.T) {
	svc := &Service{search: func(query string) ([]hit, error) {
		return nil, errors.New("provider down")
	}}
	if _, err := svc.Search("anything", 0); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	svc := &Service{search: func(query string) ([]hit, error) { return nil, nil }}
	got, err := svc.Search("askjdh", 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected zero suggestions, got %d", len(got))
	}
}
