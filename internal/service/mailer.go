package service

import (
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"VoiceTalent-Backend/internal/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Notification is a contact-message email queued for relay.
type Notification struct {
	ReplyTo string
	To      string
	Subject string
	Text    string
}

// MailerConfig holds configuration for the relay worker.
type MailerConfig struct {
	QueueSize     int
	RetryAttempts int
	RetryDelay    time.Duration
	StopTimeout   time.Duration
}

// DefaultMailerConfig returns sensible default configuration.
func DefaultMailerConfig() MailerConfig {
	return MailerConfig{
		QueueSize:     100,
		RetryAttempts: 3,
		RetryDelay:    2 * time.Second,
		StopTimeout:   10 * time.Second,
	}
}

// Mailer relays contact-message notifications over SMTP from a background
// worker. Delivery is strictly best-effort: enqueue never blocks the
// caller and failures are logged, not surfaced.
type Mailer struct {
	smtp    config.SMTP
	cfg     MailerConfig
	log     *zap.Logger
	dialer  *gomail.Dialer
	queue   chan *Notification
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

// NewMailer creates a mailer. The relay is disabled (Enabled returns
// false) when no SMTP user is configured; messages are then stored
// without notification, never rejected.
func NewMailer(smtp config.SMTP, cfg MailerConfig, log *zap.Logger) *Mailer {
	m := &Mailer{
		smtp:  smtp,
		cfg:   cfg,
		log:   log,
		queue: make(chan *Notification, cfg.QueueSize),
		done:  make(chan struct{}),
	}
	if smtp.User != "" {
		m.dialer = gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password)
	}
	return m
}

// Enabled reports whether SMTP relay is configured.
func (m *Mailer) Enabled() bool {
	return m.dialer != nil
}

// Start launches the relay worker. No-op when relay is disabled.
func (m *Mailer) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started || !m.Enabled() {
		if !m.Enabled() {
			m.log.Info("SMTP relay disabled, contact messages will be stored without email notification")
		}
		return
	}

	m.wg.Add(1)
	go m.worker()
	m.started = true
	m.log.Info("mailer started", zap.String("smtp_host", m.smtp.Host), zap.Int("smtp_port", m.smtp.Port))
}

// Stop drains the worker with a timeout.
func (m *Mailer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started {
		return
	}
	close(m.done)

	finished := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		m.log.Info("mailer stopped")
	case <-time.After(m.cfg.StopTimeout):
		m.log.Warn("mailer shutdown timeout reached")
	}
	m.started = false
}

// Enqueue submits a notification for delivery. Never blocks: when the
// queue is full or the relay is disabled the notification is dropped.
func (m *Mailer) Enqueue(n *Notification) {
	if !m.Enabled() {
		return
	}

	select {
	case m.queue <- n:
	default:
		m.log.Warn("mail queue is full, dropping notification", zap.String("to", n.To))
	}
}

func (m *Mailer) worker() {
	defer m.wg.Done()

	for {
		select {
		case n := <-m.queue:
			m.sendWithRetry(n)
		case <-m.done:
			// Drain remaining queued notifications before exiting
			for {
				select {
				case n := <-m.queue:
					m.sendWithRetry(n)
				default:
					return
				}
			}
		}
	}
}

func (m *Mailer) sendWithRetry(n *Notification) {
	var lastErr error

	for attempt := 1; attempt <= m.cfg.RetryAttempts; attempt++ {
		if err := m.send(n); err == nil {
			if attempt > 1 {
				m.log.Info("notification delivered after retry",
					zap.String("to", n.To),
					zap.Int("attempt", attempt))
			}
			return
		} else {
			lastErr = err
		}

		if attempt == m.cfg.RetryAttempts {
			break
		}

		delay := m.cfg.RetryDelay * time.Duration(1<<(attempt-1))
		select {
		case <-time.After(delay):
		case <-m.done:
			m.log.Info("mailer shutdown during retry delay", zap.String("to", n.To))
			return
		}
	}

	m.log.Error("failed to deliver notification",
		zap.String("to", n.To),
		zap.Int("attempts", m.cfg.RetryAttempts),
		zap.Error(lastErr))
}

func (m *Mailer) send(n *Notification) error {
	from := m.smtp.From
	if from == "" {
		from = m.smtp.User
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", from, "Voice Talent Contact")
	msg.SetHeader("To", n.To)
	msg.SetHeader("Reply-To", n.ReplyTo)
	msg.SetHeader("Subject", n.Subject)
	msg.SetBody("text/plain", n.Text)
	msg.AddAlternative("text/html", fmt.Sprintf(
		"<h2>Tin nhắn liên hệ mới</h2><p><strong>Từ:</strong> %s</p><p><strong>Nội dung:</strong></p><p>%s</p>",
		html.EscapeString(n.ReplyTo),
		strings.ReplaceAll(html.EscapeString(n.Text), "\n", "<br>")))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
