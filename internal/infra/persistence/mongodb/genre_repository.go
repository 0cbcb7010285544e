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

// genreRepository implements the domain.GenreRepository interface on a
// MongoDB collection.
type genreRepository struct {
	coll *mongo.Collection
}

// NewGenreRepository is the constructor for genreRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewGenreRepository(db *mongo.Database) repository.GenreRepository {
	return &genreRepository{coll: db.Collection(genresCollection)}
}

// FindAll retrieves every genre, sorted by name.
func (repo *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list genres")
	}

	var genreMs []model.GenreModel
	if err := cursor.All(ctx, &genreMs); err != nil {
		return nil, errors.Wrap(err, "failed to decode genres")
	}

	genres := make([]*entity.Genre, 0, len(genreMs))
	for i := range genreMs {
		genre, err := toGenreDomain(&genreMs[i])
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}

	return genres, nil
}

// FindByID retrieves a single genre by its unique ID.
func (repo *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	var genreM model.GenreModel
	err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&genreM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrGenreNotFound
		}

		return nil, errors.Wrap(err, "failed to find genre by id")
	}

	return toGenreDomain(&genreM)
}

// Create persists a new genre, assigning its id.
func (repo *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	if genre.ID == uuid.Nil {
		genre.ID = uuid.New()
	}

	if _, err := repo.coll.InsertOne(ctx, fromGenreDomain(genre)); err != nil {
		return errors.Wrap(err, "failed to create genre")
	}

	return nil
}

// Update replaces an existing genre document.
func (repo *genreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": genre.ID.String()}, fromGenreDomain(genre))
	if err != nil {
		return errors.Wrap(err, "failed to update genre")
	}
	if result.MatchedCount == 0 {
		return repository.ErrGenreNotFound
	}

	return nil
}

// Delete removes a genre by id.
func (repo *genreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to delete genre")
	}
	if result.DeletedCount == 0 {
		return repository.ErrGenreNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and document models.

func toGenreDomain(data *model.GenreModel) (*entity.Genre, error) {
	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid genre id in store")
	}

	return &entity.Genre{ID: id, Name: data.Name}, nil
}

func fromGenreDomain(data *entity.Genre) *model.GenreModel {
	return &model.GenreModel{ID: data.ID.String(), Name: data.Name}
}
