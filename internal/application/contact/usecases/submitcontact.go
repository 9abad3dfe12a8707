package usecases

import (
	"context"
	"strings"

	"timedpost/internal/application/contact/dto"
	"timedpost/internal/infrastructure/email"
	"timedpost/internal/shared/goroutine"
	"timedpost/internal/shared/logger"
	"timedpost/internal/shared/utils/logutil"
)

// SubmitContactUseCase records a genuine contact submission and dispatches
// the notification email. The mailer may be nil (SMTP unconfigured); the
// submission is then only logged.
type SubmitContactUseCase struct {
	mailer email.Service
	logger logger.Interface
}

func NewSubmitContactUseCase(mailer email.Service, logger logger.Interface) *SubmitContactUseCase {
	return &SubmitContactUseCase{mailer: mailer, logger: logger}
}

// Execute never fails on delivery problems: the email goes out
// asynchronously and errors are only logged, so the caller's response does
// not depend on SMTP health.
func (uc *SubmitContactUseCase) Execute(ctx context.Context, req dto.ContactRequest) {
	// PII stays out of logs: truncated name, domain only, length only.
	uc.logger.Infow("contact form submission received",
		"name", logutil.TruncateForLog(req.Name, 20),
		"email_domain", emailDomain(req.Email),
		"message_length", len(req.Message),
	)

	if uc.mailer == nil {
		uc.logger.Infow("email delivery not configured, skipping notification")
		return
	}

	name, addr, message := req.Name, req.Email, req.Message
	goroutine.SafeGo(uc.logger, "contact-notification", func() {
		if err := uc.mailer.SendContactNotification(name, addr, message); err != nil {
			uc.logger.Errorw("failed to send contact notification", "error", err)
		}
	})
}

func emailDomain(addr string) string {
	if _, domain, ok := strings.Cut(addr, "@"); ok {
		return domain
	}
	return ""
}
