package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ruchi/internal/domain/reviews"
	"ruchi/internal/domain/spots"
	"ruchi/internal/domain/users"
	"ruchi/internal/notifications"
	"ruchi/internal/store"

	"github.com/go-chi/chi/v5"
)

type CreateReviewPayload struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=1000"`
}

type ReviewListResponse struct {
	Reviews     []reviews.Review `json:"reviews"`
	TotalReview int              `json:"total_reviews"`
}

// listSpotReviewsHandler godoc
//
//	@Summary		List reviews of a spot
//	@Description	Newest first. Reviews of a deleted spot are still listed; a pending spot's reviews are limited to its contributor and admins.
//	@Tags			reviews
//	@Produce		json
//	@Param			spotID	path		string	true	"Spot ID"
//	@Success		200		{object}	ReviewListResponse
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/spots/{spotID}/reviews [get]
func (app *application) listSpotReviewsHandler(w http.ResponseWriter, r *http.Request) {
	spotID := chi.URLParam(r, "spotID")

	spot, err := app.store.Spots.GetByID(r.Context(), spotID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// deleted spots keep their reviews
	case err != nil:
		app.internalServerError(w, r, err)
		return
	case !canView(getUserFromContext(r), spot):
		app.notFoundResponse(w, r, fmt.Errorf("spot %s is pending", spotID))
		return
	}

	list, err := app.store.Reviews.ListBySpot(r.Context(), spotID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := ReviewListResponse{Reviews: list, TotalReview: len(list)}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createReviewHandler godoc
//
//	@Summary		Review a spot
//	@Description	Adds a 1-5 star review, updates the spot's average and credits the author with points.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			spotID	path		string				true	"Spot ID"
//	@Param			payload	body		CreateReviewPayload	true	"Review"
//	@Success		201		{object}	store.ReviewResult
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/spots/{spotID}/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("unauthorized request"))
		return
	}

	var payload CreateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	payload.Comment = strings.TrimSpace(payload.Comment)

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	spotID := chi.URLParam(r, "spotID")
	if _, ok := app.visibleSpot(w, r, spotID); !ok {
		return
	}

	review := &reviews.Review{
		SpotID:  spotID,
		UserID:  user.ID,
		Rating:  payload.Rating,
		Comment: payload.Comment,
	}

	res, err := app.store.Reviews.Add(r.Context(), review)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, spots.ErrInvalidRating):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}
	app.withShareCode(res.Spot)

	app.notifyReview(res)

	if err := app.jsonResponse(w, http.StatusCreated, res); err != nil {
		app.internalServerError(w, r, err)
	}
}

// notifyReview tells the spot's contributor about the review and the author
// about a level change. Both are best-effort.
func (app *application) notifyReview(res *store.ReviewResult) {
	if app.push == nil {
		return
	}

	spot, author := res.Spot, res.Author
	rating := res.Review.Rating
	app.background("review push", func(ctx context.Context) error {
		err := notifications.SendNewReview(ctx, app.push, app.store.Users, spot, author.ID, author.Name, rating)
		if errors.Is(err, notifications.ErrNoPushTokens) {
			return nil
		}
		return err
	})

	app.notifyLevelUp(author, users.PointsAddReview)
}

// notifyLevelUp pushes a congratulation when the last gained points moved
// user into a new guide level.
func (app *application) notifyLevelUp(user *users.User, gained int) {
	if app.push == nil || user == nil {
		return
	}
	if users.LevelFor(user.RuchiPoints-gained) == user.GuideLevel {
		return
	}

	app.background("level up push", func(ctx context.Context) error {
		err := notifications.SendLevelUp(ctx, app.push, app.store.Users, user)
		if errors.Is(err, notifications.ErrNoPushTokens) {
			return nil
		}
		return err
	})
}
