package apperr

import "github.com/tuanvumaihuynh/parts-inventory/pkg/zerror"

const (
	ValidationErrorCode = "VALIDATION_FAILED"
	PartNotFoundCode    = "PART_NOT_FOUND"
)

var (
	ValidationErr   = zerror.NewUnprocessableEntity(ValidationErrorCode, "validation error")
	PartNotFoundErr = zerror.NewNotFound(PartNotFoundCode, "part not found")
)
