package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bobTheBar/domain"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bottleCollection = "bottles"

// bottleDocument is the stored shape of a catalog bottle.
type bottleDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	SpiritType   string    `bson:"spiritType"`
	Region       string    `bson:"region,omitempty"`
	Price        float64   `bson:"price"`
	Flavors      []string  `bson:"flavors"`
	AgeStatement *float64  `bson:"ageStatement,omitempty"`
	ABV          *float64  `bson:"abv,omitempty"`
	Description  string    `bson:"description,omitempty"`
	ImageURL     string    `bson:"imageUrl,omitempty"`
	Embedding    []float64 `bson:"embedding,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func toDocument(b domain.Bottle) bottleDocument {
	flavors := make([]string, len(b.Flavors))
	for i, f := range b.Flavors {
		flavors[i] = string(f)
	}

	return bottleDocument{
		ID:           b.ID,
		Name:         b.Name,
		SpiritType:   string(b.SpiritType),
		Region:       string(b.Region),
		Price:        b.Price,
		Flavors:      flavors,
		AgeStatement: b.AgeStatement,
		ABV:          b.ABV,
		Description:  b.Description,
		ImageURL:     b.ImageURL,
		Embedding:    b.Embedding,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (d bottleDocument) toDomain() domain.Bottle {
	flavors := make([]domain.Flavor, len(d.Flavors))
	for i, f := range d.Flavors {
		flavors[i] = domain.Flavor(f)
	}

	return domain.Bottle{
		ID:           d.ID,
		Name:         d.Name,
		SpiritType:   domain.SpiritType(d.SpiritType),
		Region:       domain.Region(d.Region),
		Price:        d.Price,
		Flavors:      flavors,
		AgeStatement: d.AgeStatement,
		ABV:          d.ABV,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		Embedding:    d.Embedding,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// catalogProjection leaves out the embedding, which no read path needs.
var catalogProjection = bson.M{"embedding": 0}

type BottleRepository struct {
	db *driver.Database
}

func NewBottleRepository(db *driver.Database) *BottleRepository {
	return &BottleRepository{db: db}
}

func (r *BottleRepository) Create(ctx context.Context, bottle *domain.Bottle) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	now := time.Now().UTC()
	if bottle.CreatedAt.IsZero() {
		bottle.CreatedAt = now
	}
	bottle.UpdatedAt = now

	if _, err := r.db.Collection(bottleCollection).InsertOne(ctx, toDocument(*bottle)); err != nil {
		return fmt.Errorf("failed to create bottle: %w", err)
	}

	return nil
}

func (r *BottleRepository) FindByID(ctx context.Context, id string) (domain.Bottle, error) {
	if err := ctx.Err(); err != nil {
		return domain.Bottle{}, fmt.Errorf("context error: %w", err)
	}

	var doc bottleDocument
	opts := options.FindOne().SetProjection(catalogProjection)
	err := r.db.Collection(bottleCollection).FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return domain.Bottle{}, domain.ErrBottleNotFound
		}
		return domain.Bottle{}, fmt.Errorf("failed to find bottle: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *BottleRepository) FindAll(ctx context.Context) ([]domain.Bottle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	opts := options.Find().
		SetProjection(catalogProjection).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection(bottleCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bottles: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bottleDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bottles: %w", err)
	}

	bottles := make([]domain.Bottle, 0, len(docs))
	for _, d := range docs {
		bottles = append(bottles, d.toDomain())
	}

	return bottles, nil
}

func bottleIndexes() []driver.IndexModel {
	return []driver.IndexModel{
		{Keys: bson.D{{Key: "spiritType", Value: 1}, {Key: "region", Value: 1}}},
		{Keys: bson.D{{Key: "flavors", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
}

// EnsureIndexes creates the indexes the catalog queries rely on.
func (r *BottleRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(bottleCollection).Indexes().CreateMany(ctx, bottleIndexes())
	if err != nil {
		return fmt.Errorf("failed to create bottle indexes: %w", err)
	}
	return nil
}
