package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/config"
)

const smsRequestTimeout = 15 * time.Second

var _ CodeSender = (*SMSService)(nil)

// SMSService delivers challenge codes through a bulk-SMS OTP gateway.
type SMSService struct {
	cfg        *config.SMSConfig
	httpClient *http.Client
}

// NewSMSService returns a sender that posts OTP messages to the configured gateway.
func NewSMSService(smsCfg *config.SMSConfig) *SMSService {
	return &SMSService{
		cfg:        smsCfg,
		httpClient: &http.Client{Timeout: smsRequestTimeout},
	}
}

// SendCode posts the code to the gateway's OTP route. destination should be
// digits only (country code + number). The code itself is never logged.
func (s *SMSService) SendCode(ctx context.Context, destination, code string) error {
	if s.cfg == nil || s.cfg.APIKey == "" {
		return fmt.Errorf("sms: API key not configured")
	}

	body := map[string]any{
		"route":     "otp",
		"sender":    s.cfg.Sender,
		"numbers":   destination,
		"variables": code,
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sms: request failed status=%d body=%s", resp.StatusCode, string(b))
	}
	return nil
}
