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

// customerRepository implements the domain.CustomerRepository interface on a
// MongoDB collection.
type customerRepository struct {
	coll *mongo.Collection
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *mongo.Database) repository.CustomerRepository {
	return &customerRepository{coll: db.Collection(customersCollection)}
}

// FindAll retrieves every customer, sorted by name.
func (repo *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	var customerMs []model.CustomerModel
	if err := cursor.All(ctx, &customerMs); err != nil {
		return nil, errors.Wrap(err, "failed to decode customers")
	}

	customers := make([]*entity.Customer, 0, len(customerMs))
	for i := range customerMs {
		customer, err := toCustomerDomain(&customerMs[i])
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, nil
}

// FindByID retrieves a single customer by its unique ID.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&customerM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM)
}

// Create persists a new customer, assigning its id.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}

	if _, err := repo.coll.InsertOne(ctx, fromCustomerDomain(customer)); err != nil {
		return errors.Wrap(err, "failed to create customer")
	}

	return nil
}

// Update replaces an existing customer document.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": customer.ID.String()}, fromCustomerDomain(customer))
	if err != nil {
		return errors.Wrap(err, "failed to update customer")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer by id.
func (repo *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to delete customer")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) (*entity.Customer, error) {
	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid customer id in store")
	}

	return &entity.Customer{
		ID:     id,
		Name:   data.Name,
		IsGold: data.IsGold,
		Phone:  data.Phone,
	}, nil
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:     data.ID.String(),
		Name:   data.Name,
		IsGold: data.IsGold,
		Phone:  data.Phone,
	}
}
