package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"ruchi/internal/auth"
	"ruchi/internal/domain/users"
	"ruchi/internal/mailer"
	"ruchi/internal/store"
)

// ErrorBadRequestResponse represents the standard error format for bad request API responses.
//
//	@name			ErrorBadRequestResponse
//	@description	Standard error response format returned by all bad request API endpoints
type ErrorBadRequestResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"It show error from err.Error()"`
	Status  int    `json:"status" example:"400"`
}

// ErrorInternalServerResponse represents the standard error format for internal server API responses.
//
//	@name			ErrorInternalServerResponse
//	@description	Standard error response format returned by all internal server error API endpoints
type ErrorInternalServerResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"the server encountered a problem"`
	Status  int    `json:"status" example:"500"`
}

type RegisterUserPayload struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=3,max=72"`
}

// TokenResponse represents the structure of the tokens in the response. made for swagger doc success output
type TokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	UserID       string      `json:"user_id"`
	Role         string      `json:"role"`
	User         *users.User `json:"user,omitempty"`
}

// Envelope is a wrapper for API responses.made for swagger doc success output
type Envelope struct {
	Data TokenResponse `json:"data"`
}

// registerUserHandler godoc
//
//	@Summary		Registers a user
//	@Description	Creates an account and signs the user in straight away
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RegisterUserPayload			true	"User credentials"
//	@Success		201		{object}	Envelope					"User registered"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		409		{object}	error						"Email already registered"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Router			/authentication/user [post]
func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload RegisterUserPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := &users.User{
		Name:  strings.TrimSpace(payload.Name),
		Email: strings.TrimSpace(payload.Email),
	}
	// hash the user password.
	if err := user.Password.Set(payload.Password); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.createUser(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			app.conflictResponse(w, r, users.ErrDuplicateEmail)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.respondWithTokens(w, r, http.StatusCreated, user)
}

type CreateUserTokenPayload struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=3,max=72"`
}

// createTokenHandler godoc
//
//	@Summary		Login to get Token
//	@Description	Creates a token for a user after signin or login. With mock login enabled an unknown email creates a fresh account.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateUserTokenPayload	true	"User credentials"
//	@Success		200		{object}	Envelope				"Token to save at MMKV"
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		500		{object}	error
//	@Router			/authentication/token [post]
func (app *application) createTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateUserTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	user, err := app.store.Users.GetByEmail(ctx, payload.Email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		if !app.config.auth.mockLogin {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		user, err = app.mockSignUp(ctx, payload.Email, payload.Password)
		if errors.Is(err, store.ErrConflict) {
			// a concurrent first login created the account
			user, err = app.store.Users.GetByEmail(ctx, payload.Email)
			if err == nil {
				if err := app.checkPassword(user, payload.Password); err != nil {
					app.unauthorizedErrorResponse(w, r, err)
					return
				}
			}
		}
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
	case err != nil:
		app.internalServerError(w, r, err)
		return
	default:
		if err := app.checkPassword(user, payload.Password); err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
	}

	app.respondWithTokens(w, r, http.StatusOK, user)
}

// checkPassword accepts accounts created by mock login without a password
// only while mock login stays enabled.
func (app *application) checkPassword(user *users.User, password string) error {
	if !user.Password.IsSet() {
		if app.config.auth.mockLogin {
			return nil
		}
		return errors.New("account has no password")
	}
	return user.Password.Compare(password)
}

func (app *application) mockSignUp(ctx context.Context, email, password string) (*users.User, error) {
	user := &users.User{
		Name:  nameFromEmail(email),
		Email: strings.TrimSpace(email),
	}
	if password != "" {
		if err := user.Password.Set(password); err != nil {
			return nil, err
		}
	}

	if err := app.createUser(ctx, user); err != nil {
		return nil, err
	}
	app.logger.Infow("mock login created user", "userID", user.ID)
	return user, nil
}

// nameFromEmail capitalises the local part of an address.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	r, size := utf8.DecodeRuneInString(local)
	if r == utf8.RuneError {
		return local
	}
	return string(unicode.ToUpper(r)) + local[size:]
}

func (app *application) createUser(ctx context.Context, user *users.User) error {
	user.GuideLevel = users.LevelFor(user.RuchiPoints)
	user.IsAdmin = app.isAdmin(user)

	if err := app.store.Users.Create(ctx, user); err != nil {
		return err
	}

	if app.mailer != nil {
		name, email := user.Name, user.Email
		level := user.GuideLevel
		app.background("welcome email", func(ctx context.Context) error {
			vars := struct {
				Username string
				Level    users.GuideLevel
			}{Username: name, Level: level}

			status, err := app.mailer.Send(ctx, mailer.WelcomeTemplate, name, email, vars)
			if err != nil {
				return err
			}
			app.logger.Infow("Email sent", "status code", status)
			return nil
		})
	}
	return nil
}

func (app *application) respondWithTokens(w http.ResponseWriter, r *http.Request, status int, user *users.User) {
	role := auth.RoleUser
	if user.IsAdmin {
		role = auth.RoleAdmin
	}

	accessToken, refreshToken, err := app.authenticator.GenerateTokens(user.ID, role)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		Role:         role,
		User:         user,
	}

	if err := app.jsonResponse(w, status, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

type RefreshTokenPayload struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// refreshTokenHandler godoc
//
//	@Summary		Refresh tokens
//	@Description	Exchanges a refresh token for a new token pair
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RefreshTokenPayload	true	"Refresh token"
//	@Success		200		{object}	Envelope
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Router			/authentication/refresh [post]
func (app *application) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload RefreshTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token, err := app.authenticator.ValidateRefreshToken(payload.RefreshToken)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	userID, _, err := auth.Subject(token)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	user, err := app.store.Users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}
	user.IsAdmin = app.isAdmin(user)

	app.respondWithTokens(w, r, http.StatusOK, user)
}
