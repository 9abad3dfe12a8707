package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timedpost/internal/application/contact/dto"
	"timedpost/internal/application/contact/usecases"
	"timedpost/internal/shared/logger"
	"timedpost/internal/shared/security"
)

const honeypotField = "company_website"

type ContactHandler struct {
	submitUseCase *usecases.SubmitContactUseCase
	logger        logger.Interface
}

func NewContactHandler(submitUseCase *usecases.SubmitContactUseCase, logger logger.Interface) *ContactHandler {
	return &ContactHandler{submitUseCase: submitUseCase, logger: logger}
}

// Submit handles the contact form. Automated submissions caught by the
// honeypot or the timing check get a response byte-identical to genuine
// success and go nowhere.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	fields, ok := bindRequest(c, h.logger, &req)
	if !ok {
		// A filled honeypot surfaces as a validation failure on that one
		// field. It outranks any other failure: bots get a fake success,
		// not field feedback.
		if _, tripped := fields[honeypotField]; tripped {
			security.LogEvent(h.logger, c.Request, security.EventHoneypotTriggered, nil)
			h.respondSuccess(c)
			return
		}
		if fields != nil {
			rejectValidation(c, h.logger, fields)
		}
		return
	}

	if usecases.HoneypotTripped(req.CompanyWebsite) {
		security.LogEvent(h.logger, c.Request, security.EventHoneypotTriggered, nil)
		h.respondSuccess(c)
		return
	}

	if tooFast, elapsed := usecases.SubmittedTooFast(req.FormTime, time.Now()); tooFast {
		security.LogEvent(h.logger, c.Request, security.EventTimingCheckFailed, map[string]any{
			"duration_ms": elapsed.Milliseconds(),
		})
		h.respondSuccess(c)
		return
	}

	h.submitUseCase.Execute(c.Request.Context(), req)
	h.respondSuccess(c)
}

// respondSuccess is the single source of the success body, for both genuine
// and fake outcomes.
func (h *ContactHandler) respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your message. We'll get back to you soon!",
	})
}
