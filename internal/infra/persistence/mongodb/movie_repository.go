package mongodb

import (
	"context"

	"vidly/internal/domain/entity"
	"vidly/internal/domain/repository"
	"vidly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// movieRepository implements the domain.MovieRepository interface on a
// MongoDB collection.
type movieRepository struct {
	coll *mongo.Collection
}

// NewMovieRepository is the constructor for movieRepository.
func NewMovieRepository(db *mongo.Database) repository.MovieRepository {
	return &movieRepository{coll: db.Collection(moviesCollection)}
}

// FindAll retrieves every movie, sorted by title.
func (repo *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list movies")
	}

	var movieMs []model.MovieModel
	if err := cursor.All(ctx, &movieMs); err != nil {
		return nil, errors.Wrap(err, "failed to decode movies")
	}

	movies := make([]*entity.Movie, 0, len(movieMs))
	for i := range movieMs {
		movie, err := toMovieDomain(&movieMs[i])
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}

	return movies, nil
}

// FindByID retrieves a single movie by its unique ID.
func (repo *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	var movieM model.MovieModel
	err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&movieM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMovieNotFound
		}

		return nil, errors.Wrap(err, "failed to find movie by id")
	}

	return toMovieDomain(&movieM)
}

// Create persists a new movie, assigning its id.
func (repo *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	if movie.ID == uuid.Nil {
		movie.ID = uuid.New()
	}

	if _, err := repo.coll.InsertOne(ctx, fromMovieDomain(movie)); err != nil {
		return errors.Wrap(err, "failed to create movie")
	}

	return nil
}

// Update replaces an existing movie document.
func (repo *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": movie.ID.String()}, fromMovieDomain(movie))
	if err != nil {
		return errors.Wrap(err, "failed to update movie")
	}
	if result.MatchedCount == 0 {
		return repository.ErrMovieNotFound
	}

	return nil
}

// Delete removes a movie by id.
func (repo *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to delete movie")
	}
	if result.DeletedCount == 0 {
		return repository.ErrMovieNotFound
	}

	return nil
}

// DecrementStock takes one copy off the shelf. The stock guard lives in the
// update filter, so two concurrent rentals of the last copy cannot both
// succeed and stock never goes negative.
func (repo *movieRepository) DecrementStock(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": id.String(), "numberInStock": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"numberInStock": -1}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to decrement movie stock")
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing movie from one that is simply out of copies.
		count, err := repo.coll.CountDocuments(ctx, bson.M{"_id": id.String()})
		if err != nil {
			return errors.Wrap(err, "failed to check movie existence")
		}
		if count == 0 {
			return repository.ErrMovieNotFound
		}

		return repository.ErrMovieOutOfStock
	}

	return nil
}

// IncrementStock puts one copy back on the shelf.
func (repo *movieRepository) IncrementStock(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$inc": bson.M{"numberInStock": 1}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to increment movie stock")
	}
	if result.MatchedCount == 0 {
		return repository.ErrMovieNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMovieDomain(data *model.MovieModel) (*entity.Movie, error) {
	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid movie id in store")
	}

	genreID, err := uuid.Parse(data.Genre.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid genre id in store")
	}

	return &entity.Movie{
		ID:              id,
		Title:           data.Title,
		Genre:           entity.GenreSnapshot{ID: genreID, Name: data.Genre.Name},
		NumberInStock:   data.NumberInStock,
		DailyRentalRate: data.DailyRentalRate,
	}, nil
}

func fromMovieDomain(data *entity.Movie) *model.MovieModel {
	return &model.MovieModel{
		ID:    data.ID.String(),
		Title: data.Title,
		Genre: model.GenreSnapshotModel{
			ID:   data.Genre.ID.String(),
			Name: data.Genre.Name,
		},
		NumberInStock:   data.NumberInStock,
		DailyRentalRate: data.DailyRentalRate,
	}
}
