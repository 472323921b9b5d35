package model

type SongResponse struct {
	Name     string                 `json:"name"`
	Tracks   map[string][]NoteEvent `json:"tracks"`
	Metadata *SongMetadata          `json:"metadata,omitempty"`
}

type TrackResponse struct {
	Song   string      `json:"song"`
	Track  string      `json:"track"`
	Events []NoteEvent `json:"events"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
