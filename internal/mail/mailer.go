package mail

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/iwansal64/report-web-api/internal/config"
)

const (
	maxAttempts  = 3
	retryBackoff = 2 * time.Second
)

// Sender is the piece of gomail the worker needs; tests swap in a fake.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type job struct {
	to      string
	subject string
	body    string
}

// Mailer dispatches email off the request path. Jobs go through a
// bounded queue into a single worker; a full queue drops the job with a
// log line rather than blocking a handler.
type Mailer struct {
	sender Sender
	from   string
	jobs   chan job
	log    *slog.Logger
	wg     sync.WaitGroup
	once   sync.Once
}

func New(cfg *config.Config, log *slog.Logger) *Mailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return NewWithSender(dialer, cfg.SMTPUser, cfg.MailQueueSize, log)
}

func NewWithSender(sender Sender, from string, queueSize int, log *slog.Logger) *Mailer {
	if queueSize <= 0 {
		queueSize = 64
	}
	m := &Mailer{
		sender: sender,
		from:   from,
		jobs:   make(chan job, queueSize),
		log:    log,
	}
	m.wg.Add(1)
	go m.run()
	return m
}

// SendSignupToken queues the registration confirmation email.
func (m *Mailer) SendSignupToken(to, token string) {
	body := fmt.Sprintf(
		`<p style="letter-spacing: 2px; font-size: 26px">Hello! This is your token for registration: <code style="letter-spacing: 1px; font-weight: bold; font-style: italic;">[%s]</code> . If you found this email mistaken, we're sorry but you can ignore this.</p>`,
		token,
	)
	m.enqueue(job{to: to, subject: "Confirm Account Registration", body: body})
}

func (m *Mailer) enqueue(j job) {
	select {
	case m.jobs <- j:
	default:
		m.log.Error("mail queue full, dropping message", "to", j.to, "subject", j.subject)
	}
}

func (m *Mailer) run() {
	defer m.wg.Done()
	for j := range m.jobs {
		m.deliver(j)
	}
}

func (m *Mailer) deliver(j job) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", j.to)
	msg.SetHeader("Subject", j.subject)
	msg.SetBody("text/html", j.body)

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = m.sender.DialAndSend(msg); err == nil {
			return
		}
		if attempt < maxAttempts {
			time.Sleep(time.Duration(attempt) * retryBackoff)
		}
	}
	m.log.Error("failed to send email", "to", j.to, "subject", j.subject, "error", err)
}

// Close drains the queue and stops the worker.
func (m *Mailer) Close() {
	m.once.Do(func() {
		close(m.jobs)
	})
	m.wg.Wait()
}
