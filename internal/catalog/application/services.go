package application

import (
	"context"
	"errors"

	"github.com/aliraza-dev/foodatlas-services/api/internal/catalog/domain"
)

// ErrDuplicateName signals that another food place already uses the requested name.
// Surfaced as a conflict to the caller, never as a generic server error.
var ErrDuplicateName = errors.New("food place name already exists")

// PlaceRepository abstracts persistence for food places.
type PlaceRepository interface {
	Search(ctx context.Context, filter SearchFilter, paging Paging) ([]domain.FoodPlace, int64, error)
	FindAll(ctx context.Context) ([]domain.FoodPlace, error)
	FindByID(ctx context.Context, id string) (*domain.FoodPlace, error)
	SuggestNames(ctx context.Context, query string, limit int) ([]string, error)
	Create(ctx context.Context, place *domain.FoodPlace) error
	Update(ctx context.Context, place *domain.FoodPlace) error
	Delete(ctx context.Context, id string) error
}

// SearchFilter expresses the combined search predicate. Zero values mean the
// predicate is absent; an empty filter matches every record.
type SearchFilter struct {
	Query     string
	Cuisine   string
	Location  string
	MinRating *float64
}

// Paging controls the pagination window.
type Paging struct {
	Page  int
	Limit int
}

// SearchResult is the shaped output of a paginated search.
type SearchResult struct {
	Data        []domain.FoodPlace
	CurrentPage int
	TotalPages  int
	TotalItems  int64
}

// PlaceQueryService describes read use-cases.
type PlaceQueryService interface {
	Search(ctx context.Context, filter SearchFilter, paging Paging) (SearchResult, error)
	Suggest(ctx context.Context, query string) ([]string, error)
	ListAll(ctx context.Context) ([]domain.FoodPlace, error)
	Detail(ctx context.Context, id string) (*domain.FoodPlace, error)
}

// PlaceCommandService describes write use-cases.
type PlaceCommandService interface {
	Create(ctx context.Context, cmd UpsertPlaceCommand) (*domain.FoodPlace, error)
	Update(ctx context.Context, id string, cmd UpsertPlaceCommand) (*domain.FoodPlace, error)
	Delete(ctx context.Context, id string) error
}

// UpsertPlaceCommand captures a validated create/update payload.
type UpsertPlaceCommand struct {
	Name     string
	Cuisine  string
	Location string
	Rating   float64
	Images   []string
}
