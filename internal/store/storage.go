package store

import (
	"context"
	"errors"
	"time"

	"ruchi/internal/domain/reviews"
	"ruchi/internal/domain/spots"
	"ruchi/internal/domain/users"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	QueryTimeoutDuration = time.Second * 5
)

// HistoryLimit caps the recently viewed list per user.
const HistoryLimit = 20

// SpotResult is returned by operations that change both a spot and the
// user who earned points for it.
type SpotResult struct {
	Spot        *spots.FoodSpot `json:"spot"`
	Contributor *users.User     `json:"contributor,omitempty"`

	// AlreadyApproved is set when an approval found the spot approved.
	AlreadyApproved bool `json:"alreadyApproved,omitempty"`
}

type ReviewResult struct {
	Review *reviews.Review `json:"review"`
	Spot   *spots.FoodSpot `json:"spot"`
	Author *users.User     `json:"author"`
}

type FavoriteResult struct {
	Favorite bool            `json:"favorite"`
	Spot     *spots.FoodSpot `json:"spot"`
}

// Storage is the single owner of application state. Every method returns
// copies; mutating a returned value never changes stored state.
type Storage struct {
	Users interface {
		Create(context.Context, *users.User) error
		GetByID(context.Context, string) (*users.User, error)
		GetByEmail(context.Context, string) (*users.User, error)
		UpdateProfile(context.Context, string, users.ProfileUpdate) (*users.User, error)
		SavePushToken(context.Context, string, string) error
		PushTokens(context.Context, string) ([]string, error)
	}
	Spots interface {
		Create(context.Context, *spots.FoodSpot) (*SpotResult, error)
		GetByID(context.Context, string) (*spots.FoodSpot, error)
		GetBySeq(context.Context, int64) (*spots.FoodSpot, error)
		List(context.Context, spots.Filter) ([]spots.FoodSpot, int, error)
		ListPending(context.Context) ([]spots.FoodSpot, error)
		ListByUser(context.Context, string) ([]spots.FoodSpot, error)
		RecordView(ctx context.Context, spotID, userID string) (*spots.FoodSpot, error)
		Approve(context.Context, string) (*SpotResult, error)
		Delete(context.Context, string) error
		ToggleFavorite(ctx context.Context, userID, spotID string) (*FavoriteResult, error)
		Favorites(context.Context, string) ([]spots.FoodSpot, error)
		History(context.Context, string) ([]spots.FoodSpot, error)
	}
	Reviews interface {
		Add(context.Context, *reviews.Review) (*ReviewResult, error)
		ListBySpot(context.Context, string) ([]reviews.Review, error)
		ListByUser(context.Context, string) ([]reviews.Review, error)
	}
}

// NewID returns a time-ordered identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
