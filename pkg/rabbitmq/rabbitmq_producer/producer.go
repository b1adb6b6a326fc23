package rabbitmq_producer

import (
	"context"
	"fmt"
	"sync"

	"agency-service/pkg/rabbitmq/rabbitmq_common"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PublisherConfig описывает обменник, в который пишет производитель
type PublisherConfig struct {
	ExchangeName    string // пустая строка - default exchange
	ExchangeType    string // direct, fanout, topic, headers
	DurableExchange bool
	ExchangeArgs    amqp.Table

	// Если false, обменник должен уже существовать
	DeclareExchangeIfMissing bool

	Logger rabbitmq_common.Logger
}

func (c PublisherConfig) validate() error {
	if !c.DeclareExchangeIfMissing {
		return nil
	}
	if c.ExchangeName == "" {
		return fmt.Errorf("producer: exchange name is required when DeclareExchangeIfMissing is true")
	}
	if c.ExchangeType == "" {
		return fmt.Errorf("producer: exchange type is required when DeclareExchangeIfMissing is true")
	}
	return nil
}

// Publisher публикует сообщения через канал общего соединения.
// Закрытый канал переоткрывается при следующей публикации.
type Publisher struct {
	config  PublisherConfig
	manager *rabbitmq_common.ConnectionManager

	mu      sync.Mutex
	channel *amqp.Channel

	Logger rabbitmq_common.Logger
}

func NewPublisher(cfg PublisherConfig, connManager *rabbitmq_common.ConnectionManager) (*Publisher, error) {
	if connManager == nil {
		return nil, fmt.Errorf("producer: connection manager cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}

	p := &Publisher{config: cfg, manager: connManager, Logger: logger}
	if err := p.openChannel(); err != nil {
		return nil, err
	}
	return p, nil
}

// openChannel вызывается под p.mu или до публикации объекта
func (p *Publisher) openChannel() error {
	_, ch, err := p.manager.GetChannel()
	if err != nil {
		return fmt.Errorf("producer: failed to get channel: %w", err)
	}

	if p.config.DeclareExchangeIfMissing {
		p.Logger.Debug("Declaring exchange", "name", p.config.ExchangeName, "type", p.config.ExchangeType)
		err = ch.ExchangeDeclare(
			p.config.ExchangeName,
			p.config.ExchangeType,
			p.config.DurableExchange,
			false, // auto-delete
			false, // internal
			false, // no-wait
			p.config.ExchangeArgs,
		)
		if err != nil {
			_ = ch.Close()
			return fmt.Errorf("producer: failed to declare exchange '%s': %w", p.config.ExchangeName, err)
		}
	}

	p.channel = ch
	return nil
}

// Publish отправляет сообщение в обменник из конфигурации
func (p *Publisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || p.channel.IsClosed() {
		p.Logger.Warn("Producer channel is closed, reopening", "exchange", p.config.ExchangeName)
		if err := p.openChannel(); err != nil {
			return err
		}
	}

	err := p.channel.PublishWithContext(ctx, p.config.ExchangeName, routingKey,
		false, // mandatory
		false, // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("producer: failed to publish message: %w", err)
	}
	return nil
}

// Close закрывает только канал; соединением владеет ConnectionManager
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil {
		return nil
	}
	err := p.channel.Close()
	p.channel = nil
	if err != nil {
		p.Logger.Error(err, "Error closing producer channel")
		return err
	}
	p.Logger.Debug("Producer closed")
	return nil
}
