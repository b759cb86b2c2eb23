package public

import (
	"time"

	catalogdomain "github.com/aliraza-dev/foodatlas-services/api/internal/catalog/domain"
)

type placeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Cuisine   string    `json:"cuisine"`
	Location  string    `json:"location"`
	Rating    float64   `json:"rating"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type searchResponse struct {
	Data        []placeResponse `json:"data"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
	TotalItems  int64           `json:"totalItems"`
}

type placeRequest struct {
	Name     string   `json:"name"`
	Cuisine  string   `json:"cuisine"`
	Location string   `json:"location"`
	Rating   *float64 `json:"rating"`
	Images   []string `json:"images"`
}

type signupRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

func buildPlaceResponse(place catalogdomain.FoodPlace) placeResponse {
	images := place.Images
	if images == nil {
		images = []string{}
	}
	return placeResponse{
		ID:        place.ID,
		Name:      place.Name,
		Cuisine:   place.Cuisine,
		Location:  place.Location,
		Rating:    place.Rating,
		Images:    images,
		CreatedAt: place.CreatedAt,
		UpdatedAt: place.UpdatedAt,
	}
}
