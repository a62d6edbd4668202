package service

import (
	"fmt"
	"strings"

	"github.com/Raam751/ClassPulse/internal/config"
	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailService is a best-effort notifier. Every failure is logged and
// discarded; nothing here may fail the operation that triggered the mail.
type EmailService struct {
	Config    *config.MailConfig
	Analytics *AnalyticsService
}

func NewEmailService(cfg *config.MailConfig, analytics *AnalyticsService) *EmailService {
	return &EmailService{
		Config:    cfg,
		Analytics: analytics,
	}
}

// SendSessionSummary mails the owning teacher the analytics of an ended
// session.
func (s *EmailService) SendSessionSummary(sessionID uint) error {
	analytics, err := s.Analytics.GetSessionAnalytics(sessionID)
	if err != nil {
		return err
	}

	session, err := s.Analytics.SessionRepo.FindByID(sessionID)
	if err != nil {
		return err
	}
	if session.CreatedBy == nil {
		return fmt.Errorf("session %d has no owning teacher loaded", sessionID)
	}

	subject := "Session Summary: " + session.Title
	return s.send(session.CreatedBy.Email, subject, buildSessionSummaryHTML(analytics))
}

func (s *EmailService) SendWelcome(user *model.User) {
	html := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Welcome to ClassPulse, %s!</h2>
	<p>Your account has been created successfully.</p>
	<p><strong>Role:</strong> %s</p>
	<p>Start engaging with your classroom today!</p>
	<br>
	<p>Best regards,<br>The ClassPulse Team</p>
</body>
</html>`, user.Name, user.Role)

	if err := s.send(user.Email, "Welcome to ClassPulse!", html); err != nil {
		logger.Log.Warn("welcome email failed", zap.String("email", user.Email), zap.Error(err))
	}
}

func (s *EmailService) send(to, subject, html string) error {
	if !s.Config.Enabled {
		logger.Log.Debug("mail disabled, dropping message", zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.Config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.Config.Host, s.Config.Port, s.Config.Username, s.Config.Password)
	return d.DialAndSend(m)
}

func buildSessionSummaryHTML(analytics *SessionAnalytics) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Session Summary: %s</h2>
	<hr>
	<h3>Overview</h3>
	<ul>
		<li><strong>Status:</strong> %s</li>
		<li><strong>Total Questions:</strong> %d</li>
		<li><strong>Total Responses:</strong> %d</li>
		<li><strong>Unique Participants:</strong> %d</li>
		<li><strong>Avg Responses/Question:</strong> %.2f</li>
	</ul>`,
		analytics.SessionTitle,
		analytics.SessionStatus,
		analytics.TotalQuestions,
		analytics.TotalResponses,
		analytics.UniqueParticipants,
		analytics.AverageResponsesPerQuestion,
	)

	if len(analytics.QuestionAnalytics) > 0 {
		b.WriteString("<h3>Question Breakdown</h3><ul>")
		for _, qa := range analytics.QuestionAnalytics {
			fmt.Fprintf(&b, "<li><strong>%s</strong> (%d responses)</li>", qa.QuestionText, qa.ResponseCount)
		}
		b.WriteString("</ul>")
	}

	b.WriteString(`
	<br>
	<p>Best regards,<br>The ClassPulse Team</p>
</body>
</html>`)

	return b.String()
}
