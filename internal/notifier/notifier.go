// Package notifier delivers best-effort mail. Failures are logged and
// absorbed; no caller ever sees a send error.
package notifier

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/Radek987976/hyperbare-manager/internal/config"
	"github.com/Radek987976/hyperbare-manager/internal/logger"
	"github.com/Radek987976/hyperbare-manager/internal/model"
)

var triggeredTmpl = template.Must(template.New("wo_triggered").Parse(`<html><body>
<h3>Maintenance due: {{.Title}}</h3>
<p>Work order <b>{{.Title}}</b> reached its run-hour trigger.</p>
<ul>
<li>Trigger: {{printf "%.1f" .Trigger}} h</li>
<li>Current counter: {{printf "%.1f" .Current}} h</li>
<li>Priority: {{.Priority}}</li>
</ul>
</body></html>`))

type MailSender struct {
	cfg config.SMTP
}

func NewMailSender(cfg config.SMTP) *MailSender {
	return &MailSender{cfg: cfg}
}

// Send delivers one HTML message. The returned flag reports delivery;
// errors never propagate.
func (s *MailSender) Send(ctx context.Context, recipient, subject, htmlBody string) bool {
	log := logger.With(
		logger.String("recipient", recipient),
		logger.String("subject", subject),
	)

	if !s.cfg.Enabled() {
		log.Debug(ctx, "mail disabled, dropping message")
		return false
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.cfg.From(), recipient, subject, htmlBody,
	)

	var auth smtp.Auth
	if s.cfg.Username() != "" {
		auth = smtp.PlainAuth("", s.cfg.Username(), s.cfg.Password(), s.cfg.Host())
	}

	if err := smtp.SendMail(s.cfg.Addr(), auth, s.cfg.From(), []string{recipient}, []byte(msg)); err != nil {
		log.Error(ctx, "send mail", logger.ErrorF(err))
		return false
	}

	log.Info(ctx, "mail sent")
	return true
}

// WorkOrderTriggered notifies a technician that an hour-based work order
// tripped its trigger.
func (s *MailSender) WorkOrderTriggered(ctx context.Context, recipient string, wo *model.WorkOrder, currentHours float64) bool {
	var trigger float64
	if wo.TriggerRunHours != nil {
		trigger = *wo.TriggerRunHours
	}

	var buf bytes.Buffer
	err := triggeredTmpl.Execute(&buf, struct {
		Title    string
		Trigger  float64
		Current  float64
		Priority string
	}{
		Title:    wo.Title,
		Trigger:  trigger,
		Current:  currentHours,
		Priority: wo.Priority,
	})
	if err != nil {
		logger.Error(ctx, "render trigger mail", logger.ErrorF(err))
		return false
	}

	return s.Send(ctx, recipient, "Maintenance due: "+wo.Title, buf.String())
}
