package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"quizmaster/config"
)

// MailSender is what the notification jobs depend on; tests substitute a recorder.
type MailSender interface {
	Send(to []string, subject, textBody, htmlBody string) error
}

// Mailer sends mail over SMTP (MailHog locally, a real relay in production).
type Mailer struct {
	Host     string
	Port     string
	Sender   string
	Password string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Sender:   cfg.EmailSender,
		Password: cfg.Password,
	}
}

const mimeBoundary = "=_quizmaster_alt"

// Send delivers a message. When htmlBody is non-empty the message is sent as
// multipart/alternative with the plain-text part first.
func (m *Mailer) Send(to []string, subject, textBody, htmlBody string) error {
	var msg strings.Builder
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("From: Quiz Master <%s>\r\n", m.Sender))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ",")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))

	if htmlBody == "" {
		msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		msg.WriteString(textBody)
	} else {
		msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", mimeBoundary))
		msg.WriteString(fmt.Sprintf("--%s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n", mimeBoundary, textBody))
		msg.WriteString(fmt.Sprintf("--%s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n", mimeBoundary, htmlBody))
		msg.WriteString(fmt.Sprintf("--%s--\r\n", mimeBoundary))
	}

	addr := m.Host + ":" + m.Port
	var auth smtp.Auth
	if m.Password != "" {
		auth = smtp.PlainAuth("", m.Sender, m.Password, m.Host)
	}

	return smtp.SendMail(addr, auth, m.Sender, to, []byte(msg.String()))
}

// ReminderEmail builds the fixed daily reminder message.
func ReminderEmail(fullname string) (subject, text string) {
	if fullname == "" {
		fullname = "User"
	}
	subject = "We miss you at Quiz Master!"
	text = fmt.Sprintf(`Hi %s,

We miss you at Quiz Master! Come back and test your knowledge with our new quizzes.

Regards,
The Quiz Master Team`, fullname)
	return subject, text
}

// QuizScoreLine is one attempted quiz in a monthly report.
type QuizScoreLine struct {
	QuizName string
	Score    int
}

// MonthlyReportEmail builds the HTML and plain-text monthly summary.
func MonthlyReportEmail(fullname, monthName string, lines []QuizScoreLine, avgScore float64) (subject, text, html string) {
	name := fullname
	if name == "" {
		name = "there"
	}

	var items strings.Builder
	var plainItems strings.Builder
	for _, l := range lines {
		items.WriteString(fmt.Sprintf("<li><strong>%s:</strong> %d</li>", l.QuizName, l.Score))
		plainItems.WriteString(fmt.Sprintf("- Quiz: %s, Score: %d\n", l.QuizName, l.Score))
	}

	subject = fmt.Sprintf("Your Quiz Master Report for %s", monthName)

	html = fmt.Sprintf(`
	<html>
	<head>
		<style>
			body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; }
			.container { padding: 25px; border: 1px solid #e0e0e0; border-radius: 8px; max-width: 600px; margin: 20px auto; background-color: #f9f9f9; }
			.header { font-size: 24px; color: #2c3e50; margin-bottom: 20px; }
			.footer { margin-top: 25px; font-size: 12px; color: #888; text-align: center; }
			ul { list-style-type: none; padding-left: 0; }
			li { background: #ffffff; margin-bottom: 8px; padding: 12px; border-radius: 5px; border-left: 4px solid #3498db; }
		</style>
	</head>
	<body>
		<div class="container">
			<p class="header">Your Monthly Report for %s</p>
			<p>Hi %s,</p>
			<p>Here is your quiz activity summary from last month:</p>
			<ul>%s</ul>
			<p>Your average score for the month was: <strong>%.2f</strong></p>
			<p>Keep up the great work!</p>
			<div class="footer">
				<p>Regards,<br>The Quiz Master Team</p>
			</div>
		</div>
	</body>
	</html>
	`, monthName, name, items.String(), avgScore)

	text = fmt.Sprintf(`Hi %s,

Here is your activity report for %s:
%s
Average Score: %.2f

Keep up the great work!

Regards,
The Quiz Master Team`, name, monthName, plainItems.String(), avgScore)

	return subject, text, html
}
