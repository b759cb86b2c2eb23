package application

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/aliraza-dev/foodatlas-services/api/internal/catalog/domain"
)

// suggestionLimit caps autocomplete responses to keep the endpoint cheap.
const suggestionLimit = 5

// placeQueryService is the concrete implementation of PlaceQueryService.
type placeQueryService struct {
	repo PlaceRepository
}

// NewPlaceQueryService creates a new food place query service.
func NewPlaceQueryService(repo PlaceRepository) PlaceQueryService {
	return &placeQueryService{repo: repo}
}

func (s *placeQueryService) Search(ctx context.Context, filter SearchFilter, paging Paging) (SearchResult, error) {
	page := paging.Page
	if page < 1 {
		page = 1
	}
	limit := paging.Limit
	if limit < 1 {
		limit = 1
	}

	places, total, err := s.repo.Search(ctx, filter, Paging{Page: page, Limit: limit})
	if err != nil {
		return SearchResult{}, err
	}

	return SearchResult{
		Data:        places,
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		TotalItems:  total,
	}, nil
}

func (s *placeQueryService) Suggest(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return []string{}, nil
	}
	return s.repo.SuggestNames(ctx, query, suggestionLimit)
}

func (s *placeQueryService) ListAll(ctx context.Context) ([]domain.FoodPlace, error) {
	return s.repo.FindAll(ctx)
}

func (s *placeQueryService) Detail(ctx context.Context, id string) (*domain.FoodPlace, error) {
	return s.repo.FindByID(ctx, id)
}

// placeCommandService is the concrete implementation of PlaceCommandService.
type placeCommandService struct {
	repo PlaceRepository
}

// NewPlaceCommandService creates a new food place command service.
func NewPlaceCommandService(repo PlaceRepository) PlaceCommandService {
	return &placeCommandService{repo: repo}
}

func (s *placeCommandService) Create(ctx context.Context, cmd UpsertPlaceCommand) (*domain.FoodPlace, error) {
	now := time.Now().UTC()
	place := &domain.FoodPlace{
		Name:      cmd.Name,
		Cuisine:   cmd.Cuisine,
		Location:  cmd.Location,
		Rating:    cmd.Rating,
		Images:    append([]string{}, cmd.Images...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *placeCommandService) Update(ctx context.Context, id string, cmd UpsertPlaceCommand) (*domain.FoodPlace, error) {
	place := &domain.FoodPlace{
		ID:        id,
		Name:      cmd.Name,
		Cuisine:   cmd.Cuisine,
		Location:  cmd.Location,
		Rating:    cmd.Rating,
		Images:    append([]string{}, cmd.Images...),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, place); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *placeCommandService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
