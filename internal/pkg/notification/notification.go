package notification

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// StatusNotifier delivers a one-time message to a candidate after an admin
// changed their application's status. Delivery is best-effort: callers log
// and swallow errors, the status change itself is the durable fact.
type StatusNotifier interface {
	SendStatusUpdate(toEmail, toName, applicationCode, statusLabel, detailLink string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// EmailNotifier implements StatusNotifier over SMTP
type EmailNotifier struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailNotifier creates a new EmailNotifier
func NewEmailNotifier(config SMTPConfig, logger zerolog.Logger) *EmailNotifier {
	return &EmailNotifier{
		config: config,
		logger: logger,
	}
}

// SendStatusUpdate composes and sends the status-change email.
// When SMTP credentials are not configured the message is logged instead of
// sent, so development setups work without a mail account.
func (n *EmailNotifier) SendStatusUpdate(toEmail, toName, applicationCode, statusLabel, detailLink string) error {
	subject := fmt.Sprintf("Cập nhật trạng thái hồ sơ %s", applicationCode)
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<p>Xin chào %s,</p>
				<p>Hồ sơ ứng tuyển <strong>%s</strong> của bạn vừa được cập nhật trạng thái: <strong>%s</strong>.</p>
				<p>Xem chi tiết tại: <a href="%s">%s</a></p>
				<p>Trân trọng,<br>Ban tuyển sinh</p>
			</div>
		</body>
		</html>
	`, toName, applicationCode, statusLabel, detailLink, detailLink)

	if n.config.Username == "" || n.config.Password == "" {
		n.logger.Warn().
			Str("toEmail", toEmail).
			Str("applicationCode", applicationCode).
			Str("statusLabel", statusLabel).
			Msg("SMTP credentials not configured - status notification not sent")
		return nil
	}

	message := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		n.config.FromName, n.config.FromEmail, toEmail, subject, body)

	addr := n.config.Host + ":" + strconv.Itoa(n.config.Port)
	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	if err := smtp.SendMail(addr, auth, n.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send status notification to %s: %w", toEmail, err)
	}

	n.logger.Info().
		Str("toEmail", toEmail).
		Str("applicationCode", applicationCode).
		Msg("Status notification sent")
	return nil
}
