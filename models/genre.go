package models

import "strings"

type Genre string

const (
	GenreAction   Genre = "Action"
	GenreComedy   Genre = "Comedy"
	GenreDrama    Genre = "Drama"
	GenreHorror   Genre = "Horror"
	GenreRomance  Genre = "Romance"
	GenreThriller Genre = "Thriller"
	GenreSciFi    Genre = "Sci-Fi"
)

// Genres lists the genre filters offered to clients, in manifest order.
var Genres = []Genre{
	GenreAction,
	GenreComedy,
	GenreDrama,
	GenreHorror,
	GenreRomance,
	GenreThriller,
	GenreSciFi,
}

func (g Genre) String() string {
	return string(g)
}

// ParseGenre matches s against the known genres ignoring case and surrounding spaces.
func ParseGenre(s string) (Genre, bool) {
	s = strings.TrimSpace(s)
	for _, g := range Genres {
		if strings.EqualFold(s, string(g)) {
			return g, true
		}
	}
	return "", false
}
