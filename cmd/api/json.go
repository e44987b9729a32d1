package main

import (
	"encoding/json"
	"net/http"

	"ruchi/internal/domain/districts"
	"ruchi/internal/domain/spots"
	"ruchi/internal/domain/users"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// init registers the domain tags used in request payloads.
func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// one of the 14 canonical district names
	Validate.RegisterValidation("district", func(fl validator.FieldLevel) bool {
		return districts.IsCanonical(fl.Field().String())
	})

	Validate.RegisterValidation("foodtype", func(fl validator.FieldLevel) bool {
		_, err := spots.ParseFoodType(fl.Field().String())
		return err == nil
	})

	Validate.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		_, err := users.ParsePlatform(fl.Field().String())
		return err == nil
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	type envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	}

	return writeJSON(w, status, &envelope{
		Success: false,
		Message: message,
		Status:  status,
	})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	type envelope struct {
		Data any `json:"data"`
	}
	return writeJSON(w, status, &envelope{Data: data})
}
