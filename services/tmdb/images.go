package tmdb

const imageBaseURL = "https://image.tmdb.org/t/p"

const (
	PosterSize   = "w500"
	BackdropSize = "w1280"
)

// ImageURL returns an empty string for an empty path.
func ImageURL(size string, path string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + "/" + size + path
}
