// Package notify delivers booking emails through an EmailJS-compatible
// REST endpoint.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"tourbook/internal/pkg/config"
	"tourbook/internal/usecase/commands"
)

type emailPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

type EmailNotifier struct {
	cfg    config.MailConfig
	client *http.Client
}

func NewEmailNotifier(cfg config.MailConfig) *EmailNotifier {
	return &EmailNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// SendApprovalEmail posts the booking-approved template. Delivery is
// best-effort: every failure path logs and returns false, nothing panics
// or propagates.
func (n *EmailNotifier) SendApprovalEmail(ctx context.Context, mail commands.ApprovalEmail) bool {
	if !n.cfg.Enabled {
		slog.Debug("mail disabled, approval email skipped", "to", mail.TouristEmail)
		return false
	}

	payload := emailPayload{
		ServiceID:  n.cfg.ServiceID,
		TemplateID: n.cfg.TemplateID,
		UserID:     n.cfg.PublicKey,
		TemplateParams: map[string]string{
			"to_email":     mail.TouristEmail,
			"tourist_name": mail.TouristName,
			"guide_name":   mail.GuideName,
			"place_name":   mail.PlaceName,
			"booking_date": mail.Date,
			"booking_time": mail.Time,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("approval email marshal failed", "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Error("approval email request build failed", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		slog.Warn("approval email send failed", "to", mail.TouristEmail, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		slog.Warn("approval email rejected",
			"to", mail.TouristEmail, "status", resp.StatusCode, "body", string(detail))
		return false
	}

	slog.Info("approval email sent", "to", mail.TouristEmail)
	return true
}
