package mongo

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aliraza-dev/foodatlas-services/api/internal/catalog/application"
	"github.com/aliraza-dev/foodatlas-services/api/internal/catalog/domain"
)

// PlaceRepository implements application.PlaceRepository using MongoDB.
type PlaceRepository struct {
	collection    *mongo.Collection
	caseSensitive bool
}

// NewPlaceRepository creates a new Mongo-backed food place repository.
func NewPlaceRepository(db *mongo.Database, collectionName string, caseSensitive bool) *PlaceRepository {
	return &PlaceRepository{
		collection:    db.Collection(collectionName),
		caseSensitive: caseSensitive,
	}
}

// Search returns one page of matching food places together with the total
// match count computed before pagination. Results are ordered by rating
// descending with _id ascending as a tie-break so paging stays deterministic.
func (r *PlaceRepository) Search(ctx context.Context, filter application.SearchFilter, paging application.Paging) ([]domain.FoodPlace, int64, error) {
	mongoFilter := r.buildFilter(filter)

	total, err := r.collection.CountDocuments(ctx, mongoFilter)
	if err != nil {
		return nil, 0, err
	}

	offset := int64(paging.Page-1) * int64(paging.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(offset).
		SetLimit(int64(paging.Limit))

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	places := make([]domain.FoodPlace, 0)
	for cursor.Next(ctx) {
		var doc PlaceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		places = append(places, mapPlaceDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}

	return places, total, nil
}

// buildFilter assembles the AND-combined predicate set. An empty filter
// matches every record.
func (r *PlaceRepository) buildFilter(filter application.SearchFilter) bson.M {
	clauses := make([]bson.M, 0)
	if filter.Query != "" {
		clauses = append(clauses, bson.M{"name": r.nameRegex(filter.Query)})
	}
	if filter.Cuisine != "" {
		clauses = append(clauses, bson.M{"cuisine": filter.Cuisine})
	}
	if filter.Location != "" {
		clauses = append(clauses, bson.M{"location": filter.Location})
	}
	if filter.MinRating != nil {
		clauses = append(clauses, bson.M{"rating": bson.M{"$gte": *filter.MinRating}})
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0]
	default:
		return bson.M{"$and": clauses}
	}
}

// nameRegex builds a quoted substring-containment regex on name.
func (r *PlaceRepository) nameRegex(query string) primitive.Regex {
	pattern := regexp.QuoteMeta(query)
	opts := "i"
	if r.caseSensitive {
		opts = ""
	}
	return primitive.Regex{Pattern: pattern, Options: opts}
}

// FindAll returns the full listing without pagination.
func (r *PlaceRepository) FindAll(ctx context.Context) ([]domain.FoodPlace, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	places := make([]domain.FoodPlace, 0)
	for cursor.Next(ctx) {
		var doc PlaceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		places = append(places, mapPlaceDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return places, nil
}

// FindByID returns a single food place by its identifier.
func (r *PlaceRepository) FindByID(ctx context.Context, id string) (*domain.FoodPlace, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc PlaceDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	place := mapPlaceDocument(doc)
	return &place, nil
}

// SuggestNames returns up to limit names matching the same substring rule as
// Search, projecting name only so autocomplete never fetches full records.
func (r *PlaceRepository) SuggestNames(ctx context.Context, query string, limit int) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"name": 1}).
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"name": r.nameRegex(query)}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	names := make([]string, 0, limit)
	for cursor.Next(ctx) {
		var doc struct {
			Name string `bson:"name"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		names = append(names, doc.Name)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Create inserts a new food place after checking the name uniqueness invariant.
func (r *PlaceRepository) Create(ctx context.Context, place *domain.FoodPlace) error {
	if err := r.ensureNameFree(ctx, place.Name, primitive.NilObjectID); err != nil {
		return err
	}

	doc := PlaceDocument{
		ID:        primitive.NewObjectID(),
		Name:      place.Name,
		Cuisine:   place.Cuisine,
		Location:  place.Location,
		Rating:    place.Rating,
		Images:    place.Images,
		CreatedAt: place.CreatedAt,
		UpdatedAt: place.UpdatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	place.ID = doc.ID.Hex()
	return nil
}

// Update replaces the full field set of an existing food place.
func (r *PlaceRepository) Update(ctx context.Context, place *domain.FoodPlace) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(place.ID))
	if err != nil {
		return err
	}
	if err := r.ensureNameFree(ctx, place.Name, objectID); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":      place.Name,
		"cuisine":   place.Cuisine,
		"location":  place.Location,
		"rating":    place.Rating,
		"images":    place.Images,
		"updatedAt": place.UpdatedAt,
	}}
	result, err := r.collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a food place permanently.
func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ensureNameFree enforces the unique-name invariant, excluding the record
// being updated when exclude is set.
func (r *PlaceRepository) ensureNameFree(ctx context.Context, name string, exclude primitive.ObjectID) error {
	filter := bson.M{"name": name}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	err := r.collection.FindOne(ctx, filter).Err()
	if err == nil {
		return application.ErrDuplicateName
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	return nil
}

func mapPlaceDocument(doc PlaceDocument) domain.FoodPlace {
	return domain.FoodPlace{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Cuisine:   doc.Cuisine,
		Location:  doc.Location,
		Rating:    doc.Rating,
		Images:    append([]string{}, doc.Images...),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
