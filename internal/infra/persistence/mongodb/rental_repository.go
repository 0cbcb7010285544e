package mongodb

import (
	"context"
	"time"

	"vidly/internal/domain/entity"
	"vidly/internal/domain/repository"
	"vidly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// rentalRepository implements the domain.RentalRepository interface on a
// MongoDB collection.
type rentalRepository struct {
	coll *mongo.Collection
}

// NewRentalRepository is the constructor for rentalRepository.
func NewRentalRepository(db *mongo.Database) repository.RentalRepository {
	return &rentalRepository{coll: db.Collection(rentalsCollection)}
}

// FindAll retrieves every rental, most recent checkout first.
func (repo *rentalRepository) FindAll(ctx context.Context) ([]*entity.Rental, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "dateOut", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rentals")
	}

	var rentalMs []model.RentalModel
	if err := cursor.All(ctx, &rentalMs); err != nil {
		return nil, errors.Wrap(err, "failed to decode rentals")
	}

	rentals := make([]*entity.Rental, 0, len(rentalMs))
	for i := range rentalMs {
		rental, err := toRentalDomain(&rentalMs[i])
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}

	return rentals, nil
}

// FindByCustomerAndMovie retrieves the most recent rental whose embedded
// customer and movie ids match the pair.
func (repo *rentalRepository) FindByCustomerAndMovie(ctx context.Context, customerID, movieID uuid.UUID) (*entity.Rental, error) {
	var rentalM model.RentalModel
	err := repo.coll.FindOne(ctx,
		bson.M{"customer._id": customerID.String(), "movie._id": movieID.String()},
		options.FindOne().SetSort(bson.D{{Key: "dateOut", Value: -1}}),
	).Decode(&rentalM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrRentalNotFound
		}

		return nil, errors.Wrap(err, "failed to find rental by customer and movie")
	}

	return toRentalDomain(&rentalM)
}

// Create persists a new rental with its snapshots, assigning its id.
func (repo *rentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	if rental.ID == uuid.Nil {
		rental.ID = uuid.New()
	}

	if _, err := repo.coll.InsertOne(ctx, fromRentalDomain(rental)); err != nil {
		return errors.Wrap(err, "failed to create rental")
	}

	return nil
}

// Close marks the rental returned in a single conditional update. The filter
// requires rentalFee to still be unset, which makes the "find open rental and
// mark it returned" step atomic: of two concurrent returns only one matches,
// the other gets ErrRentalAlreadyClosed.
func (repo *rentalRepository) Close(ctx context.Context, id uuid.UUID, dateReturned time.Time, rentalFee float64) (*entity.Rental, error) {
	var rentalM model.RentalModel
	err := repo.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id.String(), "rentalFee": nil},
		bson.M{"$set": bson.M{"dateReturned": dateReturned, "rentalFee": rentalFee}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rentalM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrRentalAlreadyClosed
		}

		return nil, errors.Wrap(err, "failed to close rental")
	}

	return toRentalDomain(&rentalM)
}

// --- Mapper Functions ---

func toRentalDomain(data *model.RentalModel) (*entity.Rental, error) {
	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid rental id in store")
	}

	customerID, err := uuid.Parse(data.Customer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid rental customer id in store")
	}

	movieID, err := uuid.Parse(data.Movie.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid rental movie id in store")
	}

	return &entity.Rental{
		ID: id,
		Customer: entity.CustomerSnapshot{
			ID:     customerID,
			Name:   data.Customer.Name,
			IsGold: data.Customer.IsGold,
			Phone:  data.Customer.Phone,
		},
		Movie: entity.MovieSnapshot{
			ID:              movieID,
			Title:           data.Movie.Title,
			DailyRentalRate: data.Movie.DailyRentalRate,
		},
		DateOut:      data.DateOut,
		DateReturned: data.DateReturned,
		RentalFee:    data.RentalFee,
	}, nil
}

func fromRentalDomain(data *entity.Rental) *model.RentalModel {
	return &model.RentalModel{
		ID: data.ID.String(),
		Customer: model.RentalCustomerModel{
			ID:     data.Customer.ID.String(),
			Name:   data.Customer.Name,
			IsGold: data.Customer.IsGold,
			Phone:  data.Customer.Phone,
		},
		Movie: model.RentalMovieModel{
			ID:              data.Movie.ID.String(),
			Title:           data.Movie.Title,
			DailyRentalRate: data.Movie.DailyRentalRate,
		},
		DateOut:      data.DateOut,
		DateReturned: data.DateReturned,
		RentalFee:    data.RentalFee,
	}
}
