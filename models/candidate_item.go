package models

import "time"

// CandidateItem is a raw record returned by the discovery provider.
type CandidateItem struct {
	ID           int64
	Title        string
	Overview     string
	PosterPath   string
	BackdropPath string
	ReleaseDate  string
	GenreIDs     []int
	VoteAverage  float64
	VoteCount    int
}

const releaseDateLayout = "2006-01-02"

// GetReleaseTime returns the parsed release date or nil if it is missing or malformed.
func (s *CandidateItem) GetReleaseTime() *time.Time {
	if s.ReleaseDate == "" {
		return nil
	}
	t, err := time.Parse(releaseDateLayout, s.ReleaseDate)
	if err != nil {
		return nil
	}
	return &t
}
