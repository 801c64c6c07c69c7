package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"ytresolve/models"
)

// fakeEngine records the call it receives and replies with a canned result.
type fakeEngine struct {
	identifier string
	opts       Options
	calls      int
	meta       *models.RawMetadata
	err        error
}

func (f *fakeEngine) Extract(_ context.Context, identifier string, opts Options) (*models.RawMetadata, error) {
	f.calls++
	f.identifier = identifier
	f.opts = opts
	return f.meta, f.err
}

func TestResolveMissingIdentifier(t *testing.T) {
	eng := &fakeEngine{}
	svc := NewService(eng, "")

	_, err := svc.Resolve(context.Background(), "", "   ", ModeFull)
	require.Error(t, err)

	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindMissingIdentifier, kind)
	require.Zero(t, eng.calls, "engine must not be called on a caller contract violation")
}

func TestResolveQueryUsesSearchDirective(t *testing.T) {
	eng := &fakeEngine{meta: &models.RawMetadata{
		Entries: []models.RawMetadata{
			{ID: "first", Title: "First Hit"},
			{ID: "second"},
		},
	}}
	svc := NewService(eng, "cookies.txt")

	meta, err := svc.Resolve(context.Background(), "", "lofi beats", ModeMetadataOnly)
	require.NoError(t, err)
	require.Equal(t, "first", meta.ID, "first hit is the canonical record")
	require.Equal(t, "ytsearch1:lofi beats", eng.identifier)
	require.True(t, eng.opts.PlaylistExpansion, "search collections need expansion")
	require.Equal(t, "cookies.txt", eng.opts.CookieSource)
}

func TestResolveQueryNoResults(t *testing.T) {
	eng := &fakeEngine{meta: &models.RawMetadata{}}
	svc := NewService(eng, "")

	_, err := svc.Resolve(context.Background(), "", "askjdhaksjdh", ModeFull)
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindNoResults, kind)
}

func TestResolveURLModeMapping(t *testing.T) {
	eng := &fakeEngine{meta: &models.RawMetadata{ID: "v"}}
	svc := NewService(eng, "")

	_, err := svc.Resolve(context.Background(), "https://example.com/watch?v=v", "", ModeMetadataOnly)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/watch?v=v", eng.identifier)
	require.False(t, eng.opts.PlaylistExpansion, "metadata-only is a lightweight probe")
	require.False(t, eng.opts.Download)

	_, err = svc.Resolve(context.Background(), "https://example.com/watch?v=v", "", ModeFull)
	require.NoError(t, err)
	require.True(t, eng.opts.PlaylistExpansion, "full mode expands nested entries")
}

func TestResolveEngineFaultKeepsDetail(t *testing.T) {
	eng := &fakeEngine{err: errors.New("ERROR: unsupported URL: htp://nope")}
	svc := NewService(eng, "")

	_, err := svc.Resolve(context.Background(), "htp://nope", "", ModeFull)
	require.Error(t, err)

	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindExtractionFailed, kind)

	var re *Error
	require.ErrorAs(t, err, &re)
	require.NotEmpty(t, re.Detail)
	require.Contains(t, re.Detail, "unsupported URL", "engine message is preserved verbatim")
}

func TestResolveURLWinsOverQuery(t *testing.T) {
	eng := &fakeEngine{meta: &models.RawMetadata{ID: "v"}}
	svc := NewService(eng, "")

	_, err := svc.Resolve(context.Background(), "https://example.com/w", "also a query", ModeFull)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/w", eng.identifier)
}
