package database

import (
	"context"
	"log"

	"github.com/antnlgr/cinelike/internal/model"
	"github.com/antnlgr/cinelike/internal/repository"
)

// defaultMovies is the static catalog the service ships with. Rows follow the
// OMDb shape (imdb id, title, year, poster, type) used by the front-end.
var defaultMovies = []model.Movie{
	{ImdbID: "tt0111161", Title: "The Shawshank Redemption", Year: "1994", Poster: "https://m.media-amazon.com/images/M/MV5BMDAyY2FhYjctNDc5OS00MDNlLThi.jpg", Type: "movie"},
	{ImdbID: "tt0068646", Title: "The Godfather", Year: "1972", Poster: "https://m.media-amazon.com/images/M/MV5BM2MyNjYxNmUtYTAwNi00MTYxLWJm.jpg", Type: "movie"},
	{ImdbID: "tt0468569", Title: "The Dark Knight", Year: "2008", Poster: "https://m.media-amazon.com/images/M/MV5BMTMxNTMwODM0NF5BMl5BanBnXk.jpg", Type: "movie"},
	{ImdbID: "tt0110912", Title: "Pulp Fiction", Year: "1994", Poster: "https://m.media-amazon.com/images/M/MV5BNGNhMDIzZTUtNTBlZi00MTRlLWFj.jpg", Type: "movie"},
	{ImdbID: "tt0109830", Title: "Forrest Gump", Year: "1994", Poster: "https://m.media-amazon.com/images/M/MV5BNWIwODRlZTUtY2U3ZS00Yzg1LWJh.jpg", Type: "movie"},
	{ImdbID: "tt1375666", Title: "Inception", Year: "2010", Poster: "https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXk.jpg", Type: "movie"},
	{ImdbID: "tt0133093", Title: "The Matrix", Year: "1999", Poster: "https://m.media-amazon.com/images/M/MV5BNzQzOTk3OTAtNDQ0Zi00ZTVk.jpg", Type: "movie"},
	{ImdbID: "tt0137523", Title: "Fight Club", Year: "1999", Poster: "https://m.media-amazon.com/images/M/MV5BMmEzNTkxYjQtZTc0MC00YTVj.jpg", Type: "movie"},
	{ImdbID: "tt0167260", Title: "The Lord of the Rings: The Return of the King", Year: "2003", Poster: "https://m.media-amazon.com/images/M/MV5BNzA5ZDNlZWMtM2NhNS00NDJj.jpg", Type: "movie"},
	{ImdbID: "tt0816692", Title: "Interstellar", Year: "2014", Poster: "https://m.media-amazon.com/images/M/MV5BZjdkOTU3MDktN2IxOS00OGEy.jpg", Type: "movie"},
	{ImdbID: "tt0080684", Title: "Star Wars: Episode V - The Empire Strikes Back", Year: "1980", Poster: "https://m.media-amazon.com/images/M/MV5BYmU1NDRjNDgtMzhiMi00NjZm.jpg", Type: "movie"},
	{ImdbID: "tt0245429", Title: "Spirited Away", Year: "2001", Poster: "https://m.media-amazon.com/images/M/MV5BMjlmZmI5MDctNDE2YS00YWE0.jpg", Type: "movie"},
}

// SeedMovies fills the catalog from the static data set when it is empty.
// Already-present imdb ids are skipped, so running it on every startup never
// duplicates rows.
func SeedMovies(ctx context.Context, movies *repository.MovieRepo) error {
	n, err := movies.SeedIfEmpty(ctx, defaultMovies)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("database: seeded %d movies", n)
	}
	return nil
}
