package classify

import (
	"reflect"
	"testing"

	"ytresolve/models"
)

func i64(v int64) *int64 { return &v }

func TestClassifyDropsUnplayableAndCodecless(t *testing.T) {
	raw := []models.RawStreamFormat{
		{FormatID: "18", VCodec: "h264", ACodec: "aac"}, // no URL, dropped
		{FormatID: "137", URL: "a", VCodec: "h264", ACodec: "none"},
		{FormatID: "sb0", URL: "b", VCodec: "none", ACodec: "none"}, // storyboard, dropped
		{FormatID: "22", URL: "c", VCodec: "h264", ACodec: "aac"},
	}

	got := Classify(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 classified formats, got %d", len(got))
	}
	if got[0].FormatID != "137" || got[0].Kind != models.KindVideoOnly || got[0].URL != "a" {
		t.Errorf("unexpected first element: %+v", got[0])
	}
	if got[1].FormatID != "22" || got[1].Kind != models.KindProgressive || got[1].URL != "c" {
		t.Errorf("unexpected second element: %+v", got[1])
	}
}

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		name   string
		vcodec string
		acodec string
		want   models.FormatKind
	}{
		{"progressive", "avc1.64001F", "mp4a.40.2", models.KindProgressive},
		{"video only", "vp9", "none", models.KindVideoOnly},
		{"audio only", "none", "opus", models.KindAudioOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]models.RawStreamFormat{{URL: "u", VCodec: tt.vcodec, ACodec: tt.acodec}})
			if len(got) != 1 {
				t.Fatalf("expected 1 format, got %d", len(got))
			}
			if got[0].Kind != tt.want {
				t.Errorf("kind = %q, want %q", got[0].Kind, tt.want)
			}
		})
	}
}

func TestClassifySizes(t *testing.T) {
	raw := []models.RawStreamFormat{
		{FormatID: "exact", URL: "u", ACodec: "opus", Filesize: i64(1_500_000), FilesizeApprox: i64(9)},
		{FormatID: "approx", URL: "u", ACodec: "opus", FilesizeApprox: i64(2_000_000_000)},
		{FormatID: "unknown", URL: "u", ACodec: "opus"},
	}

	got := Classify(raw)
	if got[0].FilesizeBytes != 1_500_000 || got[0].Filesize != "1.50 MB" {
		t.Errorf("exact filesize should win: %+v", got[0])
	}
	if got[1].FilesizeBytes != 2_000_000_000 || got[1].Filesize != "2.00 GB" {
		t.Errorf("approx filesize fallback failed: %+v", got[1])
	}
	if got[2].FilesizeBytes != 0 || got[2].Filesize != "0 B" {
		t.Errorf("unknown filesize should be zero: %+v", got[2])
	}
}

func TestClassifyPreservesOrderAndIsIdempotent(t *testing.T) {
	raw := []models.RawStreamFormat{
		{FormatID: "3", URL: "u3", ACodec: "opus", VCodec: "none"},
		{FormatID: "1", URL: "u1", ACodec: "aac", VCodec: "h264"},
		{FormatID: "2", URL: "u2", ACodec: "none", VCodec: "vp9"},
	}

	first := Classify(raw)
	second := Classify(raw)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("Classify is not idempotent over identical input")
	}

	ids := []string{first[0].FormatID, first[1].FormatID, first[2].FormatID}
	want := []string{"3", "1", "2"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("source order not preserved: got %v, want %v", ids, want)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	if got := Classify(nil); len(got) != 0 {
		t.Errorf("expected empty result for nil input, got %d elements", len(got))
	}
}

func TestAudioAndVideoViews(t *testing.T) {
	classified := Classify([]models.RawStreamFormat{
		{FormatID: "a", URL: "u", ACodec: "opus", VCodec: "none"},
		{FormatID: "v", URL: "u", ACodec: "none", VCodec: "vp9"},
		{FormatID: "p", URL: "u", ACodec: "aac", VCodec: "h264"},
	})

	audio := AudioFormats(classified)
	if len(audio) != 2 || audio[0].FormatID != "a" || audio[1].FormatID != "p" {
		t.Errorf("unexpected audio view: %+v", audio)
	}

	video := VideoFormats(classified)
	if len(video) != 2 || video[0].FormatID != "v" || video[1].FormatID != "p" {
		t.Errorf("unexpected video view: %+v", video)
	}
}
