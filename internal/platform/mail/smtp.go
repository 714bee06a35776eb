package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicacaracas/citas-api/internal/config"
	gomail "github.com/wneessen/go-mail"
)

const smtpTimeout = 15 * time.Second

// SMTPTransport implements Transport with a fresh go-mail client per call.
type SMTPTransport struct {
	cfg config.MailConfig
}

var _ Transport = (*SMTPTransport)(nil)

// NewSMTPTransport creates an SMTPTransport for cfg.
func NewSMTPTransport(cfg config.MailConfig) *SMTPTransport {
	return &SMTPTransport{cfg: cfg}
}

func (t *SMTPTransport) client() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(t.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(t.cfg.Username),
		gomail.WithPassword(t.cfg.Password),
		gomail.WithTimeout(smtpTimeout),
	}
	if t.cfg.SSL {
		opts = append(opts, gomail.WithSSLPort(false))
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(t.cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return client, nil
}

// Send dials the server, delivers msg and closes the connection.
func (t *SMTPTransport) Send(ctx context.Context, msg *gomail.Msg) error {
	client, err := t.client()
	if err != nil {
		return err
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// Verify dials and authenticates without sending anything.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	client, err := t.client()
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	return client.Close()
}
