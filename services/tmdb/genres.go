package tmdb

import "github.com/webtor-io/recent-catalog/models"

var movieGenreIDs = map[models.Genre]int{
	models.GenreAction:   28,
	models.GenreComedy:   35,
	models.GenreDrama:    18,
	models.GenreHorror:   27,
	models.GenreRomance:  10749,
	models.GenreThriller: 53,
	models.GenreSciFi:    878,
}

// TV genres on the provider side are coarser; Horror, Romance and Thriller
// have no tv counterpart and stay unfiltered.
var tvGenreIDs = map[models.Genre]int{
	models.GenreAction: 10759,
	models.GenreComedy: 35,
	models.GenreDrama:  18,
	models.GenreSciFi:  10765,
}

var genreNames = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
	10759: "Action & Adventure",
	10762: "Kids",
	10763: "News",
	10764: "Reality",
	10765: "Sci-Fi & Fantasy",
	10766: "Soap",
	10767: "Talk",
	10768: "War & Politics",
}

// GenreID maps a client genre onto the provider genre id for the media type.
func GenreID(mt MediaType, g models.Genre) (int, bool) {
	table := movieGenreIDs
	if mt == MediaTypeTV {
		table = tvGenreIDs
	}
	id, ok := table[g]
	return id, ok
}

func GenreName(id int) (string, bool) {
	name, ok := genreNames[id]
	return name, ok
}

// GenreNames resolves ids in order and drops the ones it does not know.
func GenreNames(ids []int) []string {
	var names []string
	for _, id := range ids {
		if name, ok := genreNames[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
