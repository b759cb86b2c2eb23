package public

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	catalogapp "github.com/aliraza-dev/foodatlas-services/api/internal/catalog/application"
	catalogdomain "github.com/aliraza-dev/foodatlas-services/api/internal/catalog/domain"
	"github.com/aliraza-dev/foodatlas-services/api/internal/config"
	"github.com/aliraza-dev/foodatlas-services/api/internal/interfaces/http/common"
)

// searchParams is the normalized, validated form of the search query string.
type searchParams struct {
	Filter catalogapp.SearchFilter
	Paging catalogapp.Paging
}

// parseSearchParams validates raw search parameters against the policy before
// they reach query construction. page and limit are never fatal: unparseable
// values fall back to their defaults.
func parseSearchParams(values url.Values, policy config.SearchPolicy) (searchParams, error) {
	query := strings.TrimSpace(values.Get("query"))
	if utf8.RuneCountInString(query) > policy.MaxQueryLength {
		return searchParams{}, fmt.Errorf("query must be at most %d characters", policy.MaxQueryLength)
	}

	filter := catalogapp.SearchFilter{
		Query:    query,
		Cuisine:  values.Get("cuisine"),
		Location: values.Get("location"),
	}

	if raw := strings.TrimSpace(values.Get("rating")); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return searchParams{}, fmt.Errorf("rating must be a number")
		}
		if rating < 0 || rating > 5 {
			return searchParams{}, fmt.Errorf("rating must be between 0 and 5")
		}
		filter.MinRating = &rating
	}

	page, _ := common.ParsePositiveInt(values.Get("page"), 1)
	limit, _ := common.ParsePositiveInt(values.Get("limit"), policy.DefaultLimit)
	if policy.MaxLimit > 0 && limit > policy.MaxLimit {
		limit = policy.MaxLimit
	}

	return searchParams{
		Filter: filter,
		Paging: catalogapp.Paging{Page: page, Limit: limit},
	}, nil
}

// parseSuggestQuery validates the suggestion query under the same length rule.
func parseSuggestQuery(values url.Values, policy config.SearchPolicy) (string, error) {
	query := strings.TrimSpace(values.Get("query"))
	if utf8.RuneCountInString(query) > policy.MaxQueryLength {
		return "", fmt.Errorf("query must be at most %d characters", policy.MaxQueryLength)
	}
	return query, nil
}

// buildPlaceCommand validates a create/update payload into a command, naming
// the first rule that failed.
func buildPlaceCommand(req placeRequest, policy config.SearchPolicy) (catalogapp.UpsertPlaceCommand, error) {
	name, err := catalogdomain.NewRequiredText("name", req.Name)
	if err != nil {
		return catalogapp.UpsertPlaceCommand{}, err
	}
	cuisine, err := catalogdomain.NewRequiredText("cuisine", req.Cuisine)
	if err != nil {
		return catalogapp.UpsertPlaceCommand{}, err
	}
	location, err := catalogdomain.NewRequiredText("location", req.Location)
	if err != nil {
		return catalogapp.UpsertPlaceCommand{}, err
	}

	if req.Rating == nil {
		return catalogapp.UpsertPlaceCommand{}, fmt.Errorf("rating is required")
	}
	rating, err := catalogdomain.NewRating(*req.Rating)
	if err != nil {
		return catalogapp.UpsertPlaceCommand{}, err
	}

	images, err := catalogdomain.NewImageList(req.Images, policy.MinImages, policy.MaxImages)
	if err != nil {
		return catalogapp.UpsertPlaceCommand{}, err
	}

	return catalogapp.UpsertPlaceCommand{
		Name:     name.String(),
		Cuisine:  cuisine.String(),
		Location: location.String(),
		Rating:   rating.Float64(),
		Images:   images.Strings(),
	}, nil
}
