package mailer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/frontline-homeworks/backend/pkg/helpers"
)

// Notifier delivers email jobs fire-and-forget. Enqueue must never block a
// request on delivery and its errors are logged, not surfaced.
type Notifier interface {
	Enqueue(ctx context.Context, job EmailJob)
}

// RabbitNotifier publishes jobs to the email queue; a separate worker
// consumes and sends them.
type RabbitNotifier struct {
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func (n *RabbitNotifier) Enqueue(ctx context.Context, job EmailJob) {
	if err := n.Pub.PublishJSON(ctx, job); err != nil {
		n.Logger.WithError(err).WithField("to", job.To).Warn("email job publish failed")
	}
}

// DirectNotifier sends via Mailgun in a goroutine when no queue is
// configured. The request context may be cancelled before the send
// finishes, so it deliberately uses a background context.
type DirectNotifier struct {
	MG     *Mailgun
	Logger *logrus.Logger
}

func (n *DirectNotifier) Enqueue(_ context.Context, job EmailJob) {
	go func() {
		if err := n.MG.SendJob(context.Background(), job); err != nil {
			n.Logger.WithError(err).WithField("to", job.To).Warn("email send failed")
		}
	}()
}

// NopNotifier drops jobs; used when mail sending is disabled and in tests.
type NopNotifier struct{}

func (NopNotifier) Enqueue(context.Context, EmailJob) {}
