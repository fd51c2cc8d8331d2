package types

import "github.com/killallgit/transcript-api/internal/models"

// VideoFromModel converts a stored video into its API representation
func VideoFromModel(v *models.Video) Video {
	return Video{
		VideoID:    v.VideoID,
		URL:        v.URL,
		Title:      v.Title,
		Author:     v.Author,
		Language:   v.Language,
		Transcript: v.Transcript,
		UpdatedAt:  v.UpdatedAt,
	}
}

// VideosFromModels converts a list of stored videos
func VideosFromModels(vs []models.Video) []Video {
	out := make([]Video, len(vs))
	for i := range vs {
		out[i] = VideoFromModel(&vs[i])
	}
	return out
}
