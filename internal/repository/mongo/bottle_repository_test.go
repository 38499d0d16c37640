package mongo

import (
	"testing"
	"time"

	"bobTheBar/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBottleDocument_Conversion(t *testing.T) {
	age := 16.0
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := domain.Bottle{
		ID:           "b-1",
		Name:         "Lagavulin 16",
		SpiritType:   domain.SpiritWhisky,
		Region:       domain.RegionIslay,
		Price:        89.5,
		Flavors:      []domain.Flavor{domain.FlavorPeaty, domain.FlavorSmoky},
		AgeStatement: &age,
		Embedding:    []float64{0.5, 0.25},
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	doc := toDocument(in)
	assert.Equal(t, "WHISKY", doc.SpiritType)
	assert.Equal(t, []string{"PEATY", "SMOKY"}, doc.Flavors)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var decoded bottleDocument
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	out := decoded.toDomain()
	assert.True(t, created.Equal(out.CreatedAt))
	out.CreatedAt, out.UpdatedAt = in.CreatedAt, in.UpdatedAt
	assert.Equal(t, in, out)
}

func TestBottleDocument_FieldNames(t *testing.T) {
	raw, err := bson.Marshal(toDocument(domain.Bottle{ID: "b-2", SpiritType: domain.SpiritGin}))
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Equal(t, "b-2", m["_id"])
	assert.Equal(t, "GIN", m["spiritType"])
	assert.Contains(t, m, "flavors")
	assert.NotContains(t, m, "flavorProfile")
	assert.NotContains(t, m, "embedding")
	assert.NotContains(t, m, "region")
}

func TestBottleDocument_DecodesExistingCatalogShape(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"_id":        "legacy-1",
		"name":       "Laphroaig 10",
		"spiritType": "WHISKY",
		"flavors":    bson.A{"PEATY", "SMOKY"},
		"price":      55.0,
	})
	require.NoError(t, err)

	var doc bottleDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, []domain.Flavor{domain.FlavorPeaty, domain.FlavorSmoky}, []domain.Flavor(doc.toDomain().Flavors))
}

func TestBottleIndexes_CoverFlavors(t *testing.T) {
	var keys []string
	for _, idx := range bottleIndexes() {
		for _, e := range idx.Keys.(bson.D) {
			keys = append(keys, e.Key)
		}
	}
	assert.Contains(t, keys, "flavors")
	assert.Contains(t, keys, "spiritType")
}
