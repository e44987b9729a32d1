package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"ruchi/internal/domain/districts"
	"ruchi/internal/domain/spots"
	"ruchi/internal/geocode"
)

// listDistrictsHandler godoc
//
//	@Summary	Canonical Kerala districts
//	@Tags		locations
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/districts [get]
func (app *application) listDistrictsHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, districts.Kerala); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listFoodTypesHandler godoc
//
//	@Summary	Food categories
//	@Tags		locations
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/food-types [get]
func (app *application) listFoodTypesHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, spots.FoodTypes); err != nil {
		app.internalServerError(w, r, err)
	}
}

type ManualDistrictResponse struct {
	Place     *geocode.Place `json:"place,omitempty"`
	Districts []string       `json:"districts"`
}

// resolveLocationHandler godoc
//
//	@Summary		Detect district from coordinates
//	@Description	Reverse geocodes a point and maps it to a canonical district. When no district matches the response is 422 with the list to choose from.
//	@Tags			locations
//	@Produce		json
//	@Param			lat	query		number	true	"Latitude"
//	@Param			lng	query		number	true	"Longitude"
//	@Success		200	{object}	geocode.Resolution
//	@Failure		400	{object}	ErrorBadRequestResponse
//	@Failure		422	{object}	ManualDistrictResponse
//	@Failure		502	{object}	error
//	@Router			/locations/resolve [get]
func (app *application) resolveLocationHandler(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid lat: %w", err))
		return
	}
	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid lng: %w", err))
		return
	}

	res, err := app.geocoder.Locate(r.Context(), lat, lng)
	if err != nil {
		if errors.Is(err, geocode.ErrInvalidCoordinates) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.upstreamErrorResponse(w, r, err, "could not look up your location, please pick your district")
		return
	}

	if res.District == "" {
		app.unprocessableResponse(w, r, districts.ErrUnresolved, ManualDistrictResponse{
			Place:     &res.Place,
			Districts: districts.Kerala,
		})
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, res); err != nil {
		app.internalServerError(w, r, err)
	}
}
