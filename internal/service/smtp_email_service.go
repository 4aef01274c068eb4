package service

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/SimpnicServerTeam/scs-mfa-server/internal/config"
	"github.com/rs/zerolog/log"
)

var _ CodeSender = (*SMTPEmailService)(nil)

// SMTPEmailService delivers challenge codes over SMTP.
type SMTPEmailService struct {
	cfg     *config.SmtpConfig
	appName string
}

type unencryptedAuth struct {
	smtp.Auth
}

func (a unencryptedAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	s := *server
	s.TLS = true
	return a.Auth.Start(&s)
}

func sendToMail(user, password, smtpAddr, authHostname, subject, date, body string, to []string) error {
	auth := unencryptedAuth{
		smtp.PlainAuth("", user, password, authHostname),
	}
	contentType := "Content-Type: text/plain; charset=UTF-8"

	msg := []byte("To: " + strings.Join(to, ";") + "\r\nFrom: " + user + "\r\nSubject: " + subject +
		"\r\nDate: " + date + "\r\nReply-To: " + user + "\r\n" + contentType + "\r\n\r\n" + body)
	return smtp.SendMail(smtpAddr, auth, user, to, msg)
}

// NewSMTPEmailService creates a new SMTPEmailService.
func NewSMTPEmailService(smtpCfg *config.SmtpConfig, appName string) *SMTPEmailService {
	if smtpCfg == nil {
		log.Warn().Msg("SMTP configuration is nil. Email sending will likely fail.")
		return &SMTPEmailService{cfg: &config.SmtpConfig{}, appName: appName}
	}
	return &SMTPEmailService{cfg: smtpCfg, appName: appName}
}

// SendCode emails the one-time challenge code to the destination address.
func (s *SMTPEmailService) SendCode(ctx context.Context, destination, code string) error {
	if s.cfg.Host == "" || s.cfg.User == "" || s.cfg.Port == "" {
		log.Error().Str("toEmail", destination).Msg("SMTP host, user, or port not configured. Cannot send verification code.")
		return fmt.Errorf("SMTP service not fully configured (host, user, or port missing)")
	}

	subject := fmt.Sprintf("Your %s verification code", s.appName)
	body := fmt.Sprintf("Hello,\n\nYour %s verification code is: %s\n\nThis code will expire in 5 minutes.\n\nIf you did not request this, please ignore this email.", s.appName, code)
	date := time.Now().UTC().Format(time.RFC1123Z)
	smtpAddr := s.cfg.Host + ":" + s.cfg.Port

	if err := sendToMail(s.cfg.User, s.cfg.Password, smtpAddr, s.cfg.Host, subject, date, body, []string{destination}); err != nil {
		log.Error().Err(err).Str("toEmail", destination).Msg("Failed to send verification code email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("toEmail", destination).Msg("Verification code email sent")
	return nil
}
