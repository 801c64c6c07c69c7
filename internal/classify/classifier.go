package classify

import (
	"strings"

	"ytresolve/models"
	"ytresolve/utils/humanize"
)

// codecPresent reports whether the engine listed a real codec for a track.
// The engine uses the string "none" as a sentinel for an absent track.
func codecPresent(codec string) bool {
	codec = strings.TrimSpace(codec)
	return codec != "" && codec != "none"
}

// Classify turns the engine's raw stream-format list into an ordered list of
// classified, sized variants. Input order is preserved; entries without a
// playable URL and entries with neither an audio nor a video track are
// dropped. A malformed individual format never aborts the whole list.
func Classify(raw []models.RawStreamFormat) []models.ClassifiedFormat {
	out := make([]models.ClassifiedFormat, 0, len(raw))
	for _, f := range raw {
		if strings.TrimSpace(f.URL) == "" {
			continue
		}

		hasVideo := codecPresent(f.VCodec)
		hasAudio := codecPresent(f.ACodec)

		var kind models.FormatKind
		switch {
		case hasVideo && hasAudio:
			kind = models.KindProgressive
		case hasVideo:
			kind = models.KindVideoOnly
		case hasAudio:
			kind = models.KindAudioOnly
		default:
			// Neither track is usable; unclassifiable.
			continue
		}

		var size int64
		if f.Filesize != nil {
			size = *f.Filesize
		} else if f.FilesizeApprox != nil {
			size = *f.FilesizeApprox
		}

		out = append(out, models.ClassifiedFormat{
			FormatID:      f.FormatID,
			Ext:           f.Ext,
			Kind:          kind,
			FilesizeBytes: size,
			Filesize:      humanize.Size(size),
			Width:         f.Width,
			Height:        f.Height,
			FPS:           f.FPS,
			ABR:           f.ABR,
			ASR:           f.ASR,
			URL:           f.URL,
		})
	}
	return out
}

// AudioFormats filters a classified list down to variants carrying audio
// (audio-only and progressive), preserving order.
func AudioFormats(formats []models.ClassifiedFormat) []models.ClassifiedFormat {
	out := make([]models.ClassifiedFormat, 0, len(formats))
	for _, f := range formats {
		if f.Kind == models.KindAudioOnly || f.Kind == models.KindProgressive {
			out = append(out, f)
		}
	}
	return out
}

// VideoFormats filters a classified list down to variants carrying video
// (video-only and progressive), preserving order.
func VideoFormats(formats []models.ClassifiedFormat) []models.ClassifiedFormat {
	out := make([]models.ClassifiedFormat, 0, len(formats))
	for _, f := range formats {
		if f.Kind == models.KindVideoOnly || f.Kind == models.KindProgressive {
			out = append(out, f)
		}
	}
	return out
}
