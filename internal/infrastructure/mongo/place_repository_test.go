package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aliraza-dev/foodatlas-services/api/internal/catalog/application"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestBuildFilter_Empty(t *testing.T) {
	repo := &PlaceRepository{}
	filter := repo.buildFilter(application.SearchFilter{})
	assert.Equal(t, bson.M{}, filter)
}

func TestBuildFilter_SingleClause(t *testing.T) {
	repo := &PlaceRepository{}
	filter := repo.buildFilter(application.SearchFilter{Cuisine: "Biryani"})
	assert.Equal(t, bson.M{"cuisine": "Biryani"}, filter)
}

func TestBuildFilter_CombinesWithAnd(t *testing.T) {
	repo := &PlaceRepository{}
	filter := repo.buildFilter(application.SearchFilter{
		Query:     "Karachi",
		Cuisine:   "Biryani",
		Location:  "Karachi",
		MinRating: floatPtr(4),
	})

	clauses, ok := filter["$and"].([]bson.M)
	require.True(t, ok, "expected $and clause list")
	require.Len(t, clauses, 4)
	assert.Equal(t, bson.M{"cuisine": "Biryani"}, clauses[1])
	assert.Equal(t, bson.M{"location": "Karachi"}, clauses[2])
	assert.Equal(t, bson.M{"rating": bson.M{"$gte": 4.0}}, clauses[3])
}

func TestBuildFilter_RatingIsFloorNotEquality(t *testing.T) {
	repo := &PlaceRepository{}
	filter := repo.buildFilter(application.SearchFilter{MinRating: floatPtr(4)})
	assert.Equal(t, bson.M{"rating": bson.M{"$gte": 4.0}}, filter)
}

func TestNameRegex_CaseInsensitiveByDefault(t *testing.T) {
	repo := &PlaceRepository{}
	regex := repo.nameRegex("Karachi")
	assert.Equal(t, "Karachi", regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

func TestNameRegex_CaseSensitiveProfile(t *testing.T) {
	repo := &PlaceRepository{caseSensitive: true}
	regex := repo.nameRegex("Karachi")
	assert.Equal(t, "", regex.Options)
}

func TestNameRegex_QuotesMetaCharacters(t *testing.T) {
	repo := &PlaceRepository{}
	regex := repo.nameRegex("a.b*c")
	assert.Equal(t, `a\.b\*c`, regex.Pattern)
}

func TestMapPlaceDocument(t *testing.T) {
	id := primitive.NewObjectID()
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := PlaceDocument{
		ID:        id,
		Name:      "Karachi Spice",
		Cuisine:   "Biryani",
		Location:  "Karachi",
		Rating:    4.5,
		Images:    []string{"/images/a.png"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	place := mapPlaceDocument(doc)
	assert.Equal(t, id.Hex(), place.ID)
	assert.Equal(t, "Karachi Spice", place.Name)
	assert.Equal(t, 4.5, place.Rating)
	assert.Equal(t, []string{"/images/a.png"}, place.Images)
	assert.Equal(t, now, place.CreatedAt)
}

func TestMapPlaceDocument_NilImages(t *testing.T) {
	place := mapPlaceDocument(PlaceDocument{ID: primitive.NewObjectID()})
	assert.NotNil(t, place.Images)
	assert.Empty(t, place.Images)
}
