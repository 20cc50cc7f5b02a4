package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendLeaveApproval(to, leaveType string, startDate, endDate time.Time) error
	SendLeaveRejection(to, leaveType, reason string) error
	SendOvertimeApproval(to string, overtimeDate time.Time, totalHours float64) error
	SendOvertimeRejection(to, reason string) error
	SendPasswordReset(to, resetLink, expiresAt string) error
	SendVerification(to, verifyLink, expiresAt string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type leaveDecisionEmailData struct {
	LeaveType string
	StartDate string
	EndDate   string
	Reason    string
}

func (s *emailServiceImpl) SendLeaveApproval(to, leaveType string, startDate, endDate time.Time) error {
	data := leaveDecisionEmailData{
		LeaveType: leaveType,
		StartDate: startDate.Format("2006-01-02"),
		EndDate:   endDate.Format("2006-01-02"),
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_approved.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Leave Request Approved", body.String())
}

func (s *emailServiceImpl) SendLeaveRejection(to, leaveType, reason string) error {
	data := leaveDecisionEmailData{
		LeaveType: leaveType,
		Reason:    reason,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_rejected.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Leave Request Rejected", body.String())
}

type overtimeDecisionEmailData struct {
	OvertimeDate string
	TotalHours   float64
	Reason       string
}

func (s *emailServiceImpl) SendOvertimeApproval(to string, overtimeDate time.Time, totalHours float64) error {
	data := overtimeDecisionEmailData{
		OvertimeDate: overtimeDate.Format("2006-01-02"),
		TotalHours:   totalHours,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "overtime_approved.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Overtime Request Approved", body.String())
}

func (s *emailServiceImpl) SendOvertimeRejection(to, reason string) error {
	data := overtimeDecisionEmailData{Reason: reason}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "overtime_rejected.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Overtime Request Rejected", body.String())
}

type linkEmailData struct {
	Link      string
	ExpiresAt string
}

func (s *emailServiceImpl) SendPasswordReset(to, resetLink, expiresAt string) error {
	data := linkEmailData{Link: resetLink, ExpiresAt: expiresAt}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "password_reset.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Reset Password", body.String())
}

func (s *emailServiceImpl) SendVerification(to, verifyLink, expiresAt string) error {
	data := linkEmailData{Link: verifyLink, ExpiresAt: expiresAt}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "verify_email.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Verify Your Email", body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
