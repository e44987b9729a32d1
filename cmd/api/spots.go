package main

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"ruchi/internal/domain/districts"
	"ruchi/internal/domain/reviews"
	"ruchi/internal/domain/spots"
	"ruchi/internal/domain/users"
	"ruchi/internal/params"
	"ruchi/internal/sharecode"
	"ruchi/internal/store"

	"github.com/go-chi/chi/v5"
)

// allFilter is what the feed dropdowns send for "no filter".
const allFilter = "All"

type LocationPayload struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

type CreateSpotPayload struct {
	Name        string           `json:"name" validate:"required,max=120"`
	Description string           `json:"description" validate:"max=2000"`
	Speciality  string           `json:"speciality" validate:"required,max=120"`
	FoodTypes   []string         `json:"foodTypes" validate:"required,min=1,max=5,dive,foodtype"`
	District    string           `json:"district" validate:"required,district"`
	Area        string           `json:"area" validate:"required,max=120"`
	Address     string           `json:"address" validate:"max=500"`
	Location    *LocationPayload `json:"location"`
	Images      []string         `json:"images" validate:"max=10,dive,url"`
	MapLink     *string          `json:"mapLink" validate:"omitempty,url,max=500"`
}

// trim strips surrounding blanks so whitespace-only fields fail "required".
func (p *CreateSpotPayload) trim() {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Speciality = strings.TrimSpace(p.Speciality)
	p.District = strings.TrimSpace(p.District)
	p.Area = strings.TrimSpace(p.Area)
	p.Address = strings.TrimSpace(p.Address)
	for i := range p.FoodTypes {
		p.FoodTypes[i] = strings.TrimSpace(p.FoodTypes[i])
	}
}

func (p *CreateSpotPayload) foodTypes() []spots.FoodType {
	out := make([]spots.FoodType, 0, len(p.FoodTypes))
	for _, s := range p.FoodTypes {
		ft, err := spots.ParseFoodType(s)
		if err != nil || slices.Contains(out, ft) {
			continue
		}
		out = append(out, ft)
	}
	return out
}

type SpotListResponse struct {
	Spots      []spots.FoodSpot  `json:"spots"`
	Pagination params.Pagination `json:"pagination"`
}

type SpotDetailResponse struct {
	Spot       *spots.FoodSpot  `json:"spot"`
	Reviews    []reviews.Review `json:"reviews"`
	IsFavorite bool             `json:"isFavorite"`
}

// withShareCode fills in the share code derived from the spot's sequence.
func (app *application) withShareCode(spot *spots.FoodSpot) {
	if app.shareCodes == nil || spot == nil || spot.Seq <= 0 {
		return
	}
	code, err := app.shareCodes.Encode(spot.Seq)
	if err != nil {
		app.logger.Warnw("could not encode share code", "spotID", spot.ID, "error", err.Error())
		return
	}
	spot.ShareCode = code
}

func (app *application) withShareCodes(list []spots.FoodSpot) []spots.FoodSpot {
	for i := range list {
		app.withShareCode(&list[i])
	}
	return list
}

// canView reports whether user may see spot. Pending spots are limited to
// their contributor and admins.
func canView(user *users.User, spot *spots.FoodSpot) bool {
	if spot.IsApproved {
		return true
	}
	return user != nil && (user.ID == spot.AddedBy || user.IsAdmin)
}

// visibleOnly drops the spots user may not see.
func visibleOnly(user *users.User, list []spots.FoodSpot) []spots.FoodSpot {
	out := make([]spots.FoodSpot, 0, len(list))
	for i := range list {
		if canView(user, &list[i]) {
			out = append(out, list[i])
		}
	}
	return out
}

// visibleSpot loads a spot for the caller and answers 404 when it is
// missing or still pending for someone else.
func (app *application) visibleSpot(w http.ResponseWriter, r *http.Request, spotID string) (*spots.FoodSpot, bool) {
	spot, err := app.store.Spots.GetByID(r.Context(), spotID)
	if err != nil {
		app.spotLookupError(w, r, err)
		return nil, false
	}

	if !canView(getUserFromContext(r), spot) {
		app.notFoundResponse(w, r, fmt.Errorf("spot %s is pending", spotID))
		return nil, false
	}
	return spot, true
}

// listSpotsHandler godoc
//
//	@Summary		Browse the feed
//	@Description	Lists approved spots, newest first. district and category accept "All" for no filter; q matches name or speciality.
//	@Tags			spots
//	@Produce		json
//	@Param			district	query		string	false	"Canonical district name"
//	@Param			category	query		string	false	"Food type"
//	@Param			q			query		string	false	"Search text"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			limit		query		int		false	"Page size"		default(15)
//	@Success		200			{object}	SpotListResponse
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/spots [get]
func (app *application) listSpotsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := params.ParsePagination(q)

	filter := spots.Filter{
		Search:       q.Get("q"),
		ApprovedOnly: true,
		Limit:        p.Limit,
		Offset:       p.Offset,
	}

	if d := strings.TrimSpace(q.Get("district")); d != "" && d != allFilter {
		if !districts.IsCanonical(d) {
			app.badRequestResponse(w, r, fmt.Errorf("unknown district %q", d))
			return
		}
		filter.District = d
	}

	if c := strings.TrimSpace(q.Get("category")); c != "" && c != allFilter {
		ft, err := spots.ParseFoodType(c)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		filter.FoodType = ft
	}

	list, total, err := app.store.Spots.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)

	response := SpotListResponse{Spots: app.withShareCodes(list), Pagination: p}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createSpotHandler godoc
//
//	@Summary		Add a spot
//	@Description	Submits a spot for review. It stays pending until an admin approves it. The contributor earns points immediately.
//	@Tags			spots
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateSpotPayload	true	"Spot details"
//	@Success		201		{object}	store.SpotResult
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/spots [post]
func (app *application) createSpotHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("unauthorized request"))
		return
	}

	var payload CreateSpotPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	payload.trim()

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	spot := &spots.FoodSpot{
		Name:        payload.Name,
		Description: payload.Description,
		Speciality:  payload.Speciality,
		FoodTypes:   payload.foodTypes(),
		Location:    spots.KeralaCentre,
		District:    payload.District,
		Area:        payload.Area,
		Address:     payload.Address,
		Images:      payload.Images,
		AddedBy:     user.ID,
		MapLink:     payload.MapLink,
	}
	if payload.Location != nil {
		spot.Location = spots.Location{Lat: payload.Location.Lat, Lng: payload.Location.Lng}
	}
	if len(spot.Images) == 0 {
		spot.Images = []string{spots.PlaceholderImage(spot.Speciality)}
	}

	res, err := app.store.Spots.Create(r.Context(), spot)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.withShareCode(res.Spot)

	app.logger.Infow("spot submitted", "spotID", res.Spot.ID, "userID", user.ID, "district", res.Spot.District)
	app.notifyLevelUp(res.Contributor, users.PointsAddSpot)

	if err := app.jsonResponse(w, http.StatusCreated, res); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getSpotHandler godoc
//
//	@Summary		Spot detail
//	@Description	Returns a spot with its reviews and counts the view. Signed-in users also get it added to their history. Pending spots are visible to their contributor and admins only.
//	@Tags			spots
//	@Produce		json
//	@Param			spotID	path		string	true	"Spot ID"
//	@Success		200		{object}	SpotDetailResponse
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/spots/{spotID} [get]
func (app *application) getSpotHandler(w http.ResponseWriter, r *http.Request) {
	spotID := chi.URLParam(r, "spotID")
	user := getUserFromContext(r)
	ctx := r.Context()

	if _, ok := app.visibleSpot(w, r, spotID); !ok {
		return
	}

	var viewerID string
	if user != nil {
		viewerID = user.ID
	}
	spot, err := app.store.Spots.RecordView(ctx, spotID, viewerID)
	if err != nil {
		app.spotLookupError(w, r, err)
		return
	}
	app.withShareCode(spot)

	list, err := app.store.Reviews.ListBySpot(ctx, spotID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := SpotDetailResponse{Spot: spot, Reviews: list}
	if user != nil {
		favs, err := app.store.Spots.Favorites(ctx, user.ID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		response.IsFavorite = slices.ContainsFunc(favs, func(s spots.FoodSpot) bool { return s.ID == spotID })
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getSpotByShareCodeHandler godoc
//
//	@Summary		Open a share link
//	@Description	Resolves a short share code to an approved spot.
//	@Tags			spots
//	@Produce		json
//	@Param			code	path		string	true	"Share code"
//	@Success		200		{object}	spots.FoodSpot
//	@Failure		404		{object}	error
//	@Router			/s/{code} [get]
func (app *application) getSpotByShareCodeHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if app.shareCodes == nil {
		app.notFoundResponse(w, r, sharecode.ErrInvalidCode)
		return
	}

	seq, err := app.shareCodes.Decode(code)
	if err != nil {
		app.notFoundResponse(w, r, err)
		return
	}

	spot, err := app.store.Spots.GetBySeq(r.Context(), seq)
	if err != nil {
		app.spotLookupError(w, r, err)
		return
	}
	if !spot.IsApproved {
		app.notFoundResponse(w, r, fmt.Errorf("spot %s is pending", spot.ID))
		return
	}
	app.withShareCode(spot)

	if err := app.jsonResponse(w, http.StatusOK, spot); err != nil {
		app.internalServerError(w, r, err)
	}
}

type FavoriteResponse struct {
	Favorite   bool   `json:"favorite"`
	SpotID     string `json:"spotId"`
	LikesCount int    `json:"likesCount"`
}

// toggleFavoriteHandler godoc
//
//	@Summary		Toggle favorite
//	@Description	Adds the spot to the user's favorites, or removes it if already there.
//	@Tags			spots
//	@Produce		json
//	@Param			spotID	path		string	true	"Spot ID"
//	@Success		200		{object}	FavoriteResponse
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/spots/{spotID}/favorite [put]
func (app *application) toggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("unauthorized request"))
		return
	}

	spotID := chi.URLParam(r, "spotID")
	if _, ok := app.visibleSpot(w, r, spotID); !ok {
		return
	}

	res, err := app.store.Spots.ToggleFavorite(r.Context(), user.ID, spotID)
	if err != nil {
		app.spotLookupError(w, r, err)
		return
	}

	response := FavoriteResponse{
		Favorite:   res.Favorite,
		SpotID:     res.Spot.ID,
		LikesCount: res.Spot.LikesCount,
	}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// spotLookupError maps a missing spot to 404 and anything else to 500.
func (app *application) spotLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		app.notFoundResponse(w, r, err)
		return
	}
	app.internalServerError(w, r, err)
}
