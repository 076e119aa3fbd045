package natsinfo

import (
	"errors"

	nats "github.com/nats-io/nats.go"
)

const CONTACT_STREAM_MESSAGE_SUBJECT = "contact.message"

var CONTACT_STREAM_CONFIG = &nats.StreamConfig{
	Name:      "CONTACT",
	Retention: nats.WorkQueuePolicy,
	Discard:   nats.DiscardOld,
	Subjects:  []string{CONTACT_STREAM_MESSAGE_SUBJECT},
}

func ContactStream_NewMessageConsumerConfig(queueGroup string) (stream string, subject string, subOpts []nats.SubOpt, config *nats.ConsumerConfig) {
	config = &nats.ConsumerConfig{
		Durable:        queueGroup,
		DeliverSubject: queueGroup + "-deliver",
		DeliverGroup:   queueGroup,
		AckPolicy:      nats.AckExplicitPolicy,
	}
	subOpts = []nats.SubOpt{
		nats.Bind(CONTACT_STREAM_CONFIG.Name, queueGroup),
		nats.ManualAck(),
	}
	return CONTACT_STREAM_CONFIG.Name, CONTACT_STREAM_MESSAGE_SUBJECT, subOpts, config
}

func CreateOrUpdateStream(js nats.JetStreamContext, config *nats.StreamConfig) (*nats.StreamInfo, error) {
	info, err := js.AddStream(config)
	if errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
		info, err = js.UpdateStream(config)
	}
	return info, err
}

func CreateOrUpdateConsumer(js nats.JetStreamContext, stream string, config *nats.ConsumerConfig, opts ...nats.JSOpt) (*nats.ConsumerInfo, error) {
	info, err := js.AddConsumer(stream, config, opts...)
	if errors.Is(err, nats.ErrConsumerNameAlreadyInUse) {
		info, err = js.UpdateConsumer(stream, config, opts...)
	}
	return info, err
}

// Publisher is the slice of nats.JetStreamContext needed to emit messages.
type Publisher interface {
	Publish(subj string, data []byte, opts ...nats.PubOpt) (*nats.PubAck, error)
}

type Marshaler interface {
	Marshal() ([]byte, error)
}

func JsPublish(js Publisher, subject string, m Marshaler) (*nats.PubAck, error) {
	data, err := m.Marshal()
	if err != nil {
		return nil, err
	}
	return js.Publish(subject, data)
}
