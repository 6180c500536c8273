// Package bind decodes request parameters and bodies into typed values.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type RequiredParamError struct {
	ParamName string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("query parameter '%s' is required", e.ParamName)
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

type InvalidBodyError struct {
	Err error
}

func (e *InvalidBodyError) Error() string {
	return fmt.Sprintf("invalid request body: %s", e.Err.Error())
}

func (e *InvalidBodyError) Unwrap() error {
	return e.Err
}

// IsBindError reports whether err was produced while binding a request.
func IsBindError(err error) bool {
	var (
		e1 *RequiredParamError
		e2 *InvalidParamFormatError
		e3 *InvalidBodyError
	)

	return errors.As(err, &e1) ||
		errors.As(err, &e2) ||
		errors.As(err, &e3)
}

// PathParam binds the chi URL parameter name into dest.
func PathParam(r *http.Request, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dest,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return &InvalidParamFormatError{ParamName: name, Err: err}
	}

	return nil
}

// QueryParam binds the form-style query parameter name into dest.
func QueryParam(r *http.Request, name string, required bool, dest any) error {
	query := r.URL.Query()
	if required && !query.Has(name) {
		return &RequiredParamError{ParamName: name}
	}

	if err := runtime.BindQueryParameter("form", true, required, name, query, dest); err != nil {
		return &InvalidParamFormatError{ParamName: name, Err: err}
	}

	return nil
}

// JSONBody decodes the request body into dest.
func JSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return &InvalidBodyError{Err: errors.New("request body is empty")}
		}
		return &InvalidBodyError{Err: err}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &InvalidBodyError{Err: errors.New("request body must contain a single JSON value")}
	}

	return nil
}
