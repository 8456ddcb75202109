package models

type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

func (t ContentType) String() string {
	return string(t)
}

func ParseContentType(s string) (ContentType, bool) {
	switch ContentType(s) {
	case ContentTypeMovie:
		return ContentTypeMovie, true
	case ContentTypeSeries:
		return ContentTypeSeries, true
	}
	return "", false
}
