package main

import (
	"context"
	"errors"
	"net/http"

	"ruchi/internal/domain/spots"
	"ruchi/internal/domain/users"
	"ruchi/internal/mailer"
	"ruchi/internal/notifications"
	"ruchi/internal/store"

	"github.com/go-chi/chi/v5"
)

// listPendingSpotsHandler godoc
//
//	@Summary		Spots awaiting approval
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}		spots.FoodSpot
//	@Failure		401	{object}	error
//	@Failure		403	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/spots/pending [get]
func (app *application) listPendingSpotsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Spots.ListPending(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, app.withShareCodes(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// approveSpotHandler godoc
//
//	@Summary		Approve a spot
//	@Description	Publishes a pending spot and credits its contributor. Approving twice is a no-op flagged with alreadyApproved.
//	@Tags			admin
//	@Produce		json
//	@Param			spotID	path		string	true	"Spot ID"
//	@Success		200		{object}	store.SpotResult
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/spots/{spotID}/approve [post]
func (app *application) approveSpotHandler(w http.ResponseWriter, r *http.Request) {
	spotID := chi.URLParam(r, "spotID")

	res, err := app.store.Spots.Approve(r.Context(), spotID)
	if err != nil {
		app.spotLookupError(w, r, err)
		return
	}
	app.withShareCode(res.Spot)

	if !res.AlreadyApproved {
		app.logger.Infow("spot approved", "spotID", spotID, "by", getUserFromContext(r).ID)
		app.notifyApproval(res.Spot, res.Contributor)
	}

	if err := app.jsonResponse(w, http.StatusOK, res); err != nil {
		app.internalServerError(w, r, err)
	}
}

// notifyApproval pushes and mails the contributor. Failures are logged only.
func (app *application) notifyApproval(spot *spots.FoodSpot, contributor *users.User) {
	if contributor == nil {
		return
	}
	app.notifyLevelUp(contributor, users.PointsSpotApproved)

	if app.push != nil {
		app.background("approval push", func(ctx context.Context) error {
			err := notifications.SendSpotApproved(ctx, app.push, app.store.Users, spot)
			if errors.Is(err, notifications.ErrNoPushTokens) {
				return nil
			}
			return err
		})
	}

	if app.mailer != nil {
		vars := struct {
			Username string
			SpotName string
			District string
			Points   int
			ShareURL string
		}{
			Username: contributor.Name,
			SpotName: spot.Name,
			District: spot.District,
			Points:   users.PointsSpotApproved,
			ShareURL: app.config.apiURL + "/v1/s/" + spot.ShareCode,
		}
		name, email := contributor.Name, contributor.Email

		app.background("approval email", func(ctx context.Context) error {
			status, err := app.mailer.Send(ctx, mailer.SpotApprovedTemplate, name, email, vars)
			if err != nil {
				return err
			}
			app.logger.Infow("Email sent", "status code", status)
			return nil
		})
	}
}

// deleteSpotHandler godoc
//
//	@Summary		Reject or remove a spot
//	@Description	Deletes the spot. Its reviews are kept.
//	@Tags			admin
//	@Param			spotID	path	string	true	"Spot ID"
//	@Success		204
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/spots/{spotID} [delete]
func (app *application) deleteSpotHandler(w http.ResponseWriter, r *http.Request) {
	spotID := chi.URLParam(r, "spotID")

	if err := app.store.Spots.Delete(r.Context(), spotID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("spot deleted", "spotID", spotID, "by", getUserFromContext(r).ID)
	w.WriteHeader(http.StatusNoContent)
}
