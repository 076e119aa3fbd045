package worker

import (
	"context"
	"fmt"
	"time"

	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Cba40/blogCBA/internal/mailer"
	"github.com/Cba40/blogCBA/internal/service"
	"github.com/Cba40/blogCBA/pkg/envutils"
	"github.com/Cba40/blogCBA/pkg/natsinfo"
)

type ContactConfig struct {
	// Inbox is where contact-form messages end up.
	Inbox string
	// SiteURL feeds the email footer.
	SiteURL string
}

func NewContactConfig() *ContactConfig {
	return &ContactConfig{
		Inbox:   envutils.Env("CONTACT_INBOX", "contacto@cbablog.local"),
		SiteURL: envutils.Env("SITE_URL", "http://localhost:5173"),
	}
}

type contactConsumerWorker struct {
	js     nats.JetStreamContext
	mailer service.Mailer
	config *ContactConfig
	log    *zap.SugaredLogger
}

func (w *contactConsumerWorker) handler(ctx context.Context) func(msg *nats.Msg) {
	return func(msg *nats.Msg) {
		var message natsinfo.ContactMessage

		if err := message.Unmarshal(msg.Data); err != nil {
			w.log.Errorf("unable deserialize %s contact payload. Err:%s", msg.Subject, err)
			_ = msg.Ack()
			return
		}

		html, err := mailer.RenderNewsletter(mailer.NewsletterParams{
			Subject:    fmt.Sprintf("Contacto: %s", message.Subject),
			Paragraphs: mailer.SplitParagraphs(message.Content),
			SiteURL:    w.config.SiteURL,
			Year:       message.ReceivedAt.Year(),
		})
		if err != nil {
			w.log.Errorf("unable render contact message. Err:%s", err)
			_ = msg.Ack()
			return
		}

		// Delivery errors leave the message unacked for redelivery.
		if err := w.mailer.Send(ctx, mailer.Mail{
			To:      w.config.Inbox,
			Subject: fmt.Sprintf("Contacto: %s", message.Subject),
			HTML:    html,
		}); err != nil {
			w.log.Errorf("unable deliver contact message to %s. Err:%s", w.config.Inbox, err)
			return
		}

		w.log.Infof("Delivered contact message from %s.", message.ReceivedAt.Format(time.RFC3339))
		_ = msg.Ack()
	}
}

func (w *contactConsumerWorker) start(ctx context.Context) {
	if _, err := natsinfo.CreateOrUpdateStream(w.js, natsinfo.CONTACT_STREAM_CONFIG); err != nil {
		w.log.Panicf("unable set-up nats %s stream. Err:%s", natsinfo.CONTACT_STREAM_CONFIG.Name, err)
	}

	queueGroup := "backend-contact-consumer"
	stream, subject, subOpts, config := natsinfo.ContactStream_NewMessageConsumerConfig(queueGroup)

	if _, err := natsinfo.CreateOrUpdateConsumer(w.js, stream, config); err != nil {
		w.log.Panicf("unable set-up nats %s consumer. Err:%s", queueGroup, err)
	}

	if _, err := w.js.QueueSubscribe(subject, queueGroup, w.handler(ctx), subOpts...); err != nil {
		w.log.Panicf("unable start nats %s consumer. Err:%s", queueGroup, err)
	}

	<-ctx.Done()
}

type StartContactConsumerWorkerParams struct {
	fx.In

	JS     nats.JetStreamContext
	Mailer service.Mailer
	Config *ContactConfig
	Log    *zap.SugaredLogger
}

func StartContactConsumerWorker(params StartContactConsumerWorkerParams) {
	worker := &contactConsumerWorker{
		js:     params.JS,
		mailer: params.Mailer,
		config: params.Config,
		log:    params.Log,
	}
	go worker.start(context.Background())
}
