package notification

import (
	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/invoicing-api/pkg/config"
	"github.com/jhoicas/invoicing-api/pkg/logger"
)

// SMTPDriver envío real de correo vía gomail.
type SMTPDriver struct {
	dialer *gomail.Dialer
	from   string
	log    *logger.Logger
}

// NewSMTPDriver construye el driver desde la configuración SMTP.
func NewSMTPDriver(cfg config.NotifyConfig, log *logger.Logger) *SMTPDriver {
	return &SMTPDriver{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.FromEmail,
		log:    log,
	}
}

// Send arma y envía el correo. reference viaja en un header propio para poder
// correlacionar rebotes y confirmaciones de entrega con el recurso de origen.
func (d *SMTPDriver) Send(toEmail, subject, message, reference string) bool {
	m := gomail.NewMessage()
	m.SetHeader("From", d.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetHeader("X-Resource-Reference", reference)
	m.SetBody("text/plain", message)

	if err := d.dialer.DialAndSend(m); err != nil {
		d.log.Error().
			Err(err).
			Str("to", toEmail).
			Str("reference", reference).
			Msg("smtp: fallo enviando correo")
		return false
	}
	return true
}
