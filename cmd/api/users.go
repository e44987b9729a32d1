package main

import (
	"errors"
	"net/http"
	"strings"

	"ruchi/internal/domain/reviews"
	"ruchi/internal/domain/spots"
	"ruchi/internal/domain/users"
	"ruchi/internal/store"
)

type userKey string

const userCtx userKey = "user"

func getUserFromContext(r *http.Request) *users.User {
	if user, ok := r.Context().Value(userCtx).(*users.User); ok {
		return user
	}
	return nil
}

type ProfileResponse struct {
	User     *users.User      `json:"user"`
	Progress users.Progress   `json:"progress"`
	Spots    []spots.FoodSpot `json:"spots"`
	Reviews  []reviews.Review `json:"reviews"`
}

// getProfileHandler godoc
//
//	@Summary		Current user's profile
//	@Description	Returns the user with level progress, the spots they added (pending included) and their reviews.
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	ProfileResponse
//	@Failure		401	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/users/me [get]
func (app *application) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("unauthorized request"))
		return
	}
	ctx := r.Context()

	added, err := app.store.Spots.ListByUser(ctx, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	written, err := app.store.Reviews.ListByUser(ctx, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := ProfileResponse{
		User:     user,
		Progress: users.ProgressFor(user.RuchiPoints),
		Spots:    app.withShareCodes(added),
		Reviews:  written,
	}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateProfilePayload struct {
	Name         *string             `json:"name" validate:"omitempty,min=1,max=100"`
	ProfileImage *string             `json:"profileImage" validate:"omitempty,url,max=500"`
	SocialLinks  *[]users.SocialLink `json:"socialLinks" validate:"omitempty,max=10,dive"`
}

// updateProfileHandler godoc
//
//	@Summary		Edit profile
//	@Description	Updates name, profile image and social links. Omitted fields are left unchanged.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		UpdateProfilePayload	true	"Profile fields"
//	@Success		200		{object}	users.User
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/me [patch]
func (app *application) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("unauthorized request"))
		return
	}

	var payload UpdateProfilePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if payload.Name != nil {
		name := strings.TrimSpace(*payload.Name)
		if name == "" {
			app.badRequestResponse(w, r, errors.New("name cannot be blank"))
			return
		}
		payload.Name = &name
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updated, err := app.store.Users.UpdateProfile(r.Context(), user.ID, users.ProfileUpdate{
		Name:         payload.Name,
		ProfileImage: payload.ProfileImage,
		SocialLinks:  payload.SocialLinks,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}
	updated.IsAdmin = app.isAdmin(updated)

	if err := app.jsonResponse(w, http.StatusOK, updated); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listFavoritesHandler godoc
//
//	@Summary		Favorite spots
//	@Tags			users
//	@Produce		json
//	@Success		200	{array}		spots.FoodSpot
//	@Failure		401	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/me/favorites [get]
func (app *application) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("unauthorized request"))
		return
	}

	list, err := app.store.Spots.Favorites(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	list = visibleOnly(user, list)

	if err := app.jsonResponse(w, http.StatusOK, app.withShareCodes(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listHistoryHandler godoc
//
//	@Summary		Recently viewed spots
//	@Description	Most recent first, at most 20.
//	@Tags			users
//	@Produce		json
//	@Success		200	{array}		spots.FoodSpot
//	@Failure		401	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/me/history [get]
func (app *application) listHistoryHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("unauthorized request"))
		return
	}

	list, err := app.store.Spots.History(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	list = visibleOnly(user, list)

	if err := app.jsonResponse(w, http.StatusOK, app.withShareCodes(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// SavePushTokenRequest represents the payload for saving/updating a push token
type SavePushTokenRequest struct {
	Token string `json:"token" validate:"required,max=255"`
}

// savePushTokenHandler godoc
//
//	@Summary		Save or update a push notification token
//	@Description	Stores a user's Expo push token
//	@Tags			Notifications
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	SavePushTokenRequest	true	"Push token data"
//	@Success		204
//	@Failure		400	{object}	error	"Bad Request"
//	@Failure		401	{object}	error	"Unauthorized"
//	@Failure		500	{object}	error	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/users/me/push-token [put]
func (app *application) savePushTokenHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("unauthorized request"))
		return
	}

	var payload SavePushTokenRequest
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Users.SavePushToken(r.Context(), user.ID, payload.Token); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
