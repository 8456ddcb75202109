package models

type StreamingAvailability struct {
	Region    string
	Providers []string
}

// EnrichmentResult holds whatever could be collected for a single item.
// Every field is optional.
type EnrichmentResult struct {
	ImdbID    string
	Streaming []StreamingAvailability
	Rating    *float64
}

func (s *EnrichmentResult) HasImdbID() bool {
	return s != nil && s.ImdbID != ""
}

func (s *EnrichmentResult) HasStreaming() bool {
	return s != nil && len(s.Streaming) > 0
}
