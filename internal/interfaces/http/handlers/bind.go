package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"timedpost/internal/shared/logger"
	"timedpost/internal/shared/security"
	"timedpost/internal/shared/utils"
)

// bindableRequest is implemented by every request DTO: trim, then validate,
// then fill omitted optional fields.
type bindableRequest interface {
	Normalize()
	ApplyDefaults()
}

// bindRequest runs the in-handler half of the admission pipeline: strict
// decode, normalization, schema validation, defaulting.
//
// On success ok is true and fields is nil. Decode failures (malformed JSON,
// unknown keys, wrong-typed fields) are terminal: the response is written
// here and fields comes back nil. Validator failures come back as a non-nil
// field map with no response written, because the contact handler must
// inspect the map before deciding between a 400 and a fake success.
func bindRequest(c *gin.Context, log logger.Interface, req bindableRequest) (fields utils.FieldErrors, ok bool) {
	if err := utils.DecodeJSONStrict(c.Request.Body, req); err != nil {
		var shapeErrs utils.FieldErrors
		if errors.As(err, &shapeErrs) {
			rejectValidation(c, log, shapeErrs)
			return nil, false
		}
		utils.InvalidJSONResponse(c)
		return nil, false
	}

	req.Normalize()

	if fields := utils.ValidateStruct(req); fields != nil {
		return fields, false
	}

	req.ApplyDefaults()
	return nil, true
}

// rejectValidation records the failure and writes the standard 400. Only
// field names and counts reach the log; submitted values never do.
func rejectValidation(c *gin.Context, log logger.Interface, fields utils.FieldErrors) {
	security.LogEvent(log, c.Request, security.EventValidationFailure, map[string]any{
		"field_count": len(fields),
	})
	utils.ValidationErrorResponse(c, fields)
}
