package natsinfo

import (
	"fmt"
	"time"

	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Cba40/blogCBA/pkg/envutils"
)

type NatsConfig struct {
	Port string
	Host string
}

func (c *NatsConfig) GetURL() string {
	if c.Host == "" || c.Port == "" {
		return nats.DefaultURL
	}
	return fmt.Sprintf("nats://%s:%s", c.Host, c.Port)
}

func NewNatsConfig() *NatsConfig {
	return &NatsConfig{
		Host: envutils.Env("NATS_HOST", "localhost"),
		Port: envutils.Env("NATS_PORT", "4222"),
	}
}

type NewNatsConnectionParams struct {
	fx.In
	Lifecycle fx.Lifecycle

	Config *NatsConfig
	Log    *zap.SugaredLogger
}

type NewNatsConnectionResult struct {
	fx.Out

	Conn *nats.Conn
	JS   nats.JetStreamContext
}

func NewNatsConnection(params NewNatsConnectionParams) (NewNatsConnectionResult, error) {
	conn, err := nats.Connect(params.Config.GetURL(),
		nats.Timeout(time.Second*30),
		nats.RetryOnFailedConnect(true),
	)
	if err != nil {
		return NewNatsConnectionResult{}, err
	}

	js, err := conn.JetStream()
	if err != nil {
		return NewNatsConnectionResult{}, err
	}

	wait := make(chan struct{})
	go func() {
		defer close(wait)
		ticker := time.NewTicker(time.Millisecond * 10)
		defer ticker.Stop()
		done := time.NewTimer(time.Second * 30)
		defer done.Stop()
		for {
			select {
			case <-done.C:
				params.Log.Panicf("unable establish nats connection, state: %s", conn.Status())
			case <-ticker.C:
				if nats.CONNECTED == conn.Status() {
					return
				}
			}
		}
	}()
	<-wait

	params.Lifecycle.Append(fx.StopHook(conn.Drain))

	return NewNatsConnectionResult{
		Conn: conn,
		JS:   js,
	}, nil
}
