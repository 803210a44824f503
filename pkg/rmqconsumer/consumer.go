// Package rmqconsumer tails domain events from a RabbitMQ topic exchange and
// writes one line per event.
package rmqconsumer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"marketplace-api/config"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

var ErrDeliveriesClosed = errors.New("delivery channel closed")

type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery

	mu  sync.Mutex
	out io.Writer
}

func New(cfg config.MQ, logger *zap.Logger, out io.Writer) *Consumer {
	return &Consumer{
		cfg: cfg,
		log: logger,
		out: out,
	}
}

func (c *Consumer) Connect(dsn string) error {
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}
	c.conn, c.chConsume = conn, ch

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

// Init declares the exchange and the durable tail queue, binds the queue with
// every key in bindingKeys and starts consuming.
func (c *Consumer) Init(bindingKeys []string) error {
	if err := c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err := c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range bindingKeys {
		if err := c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err := c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	deliveries, err := c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	c.chDelivery = deliveries

	return nil
}

// DeliveryWorker blocks until ctx is done or the broker closes the channel.
func (c *Consumer) DeliveryWorker(ctx context.Context) error {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker stopped")
	}()

	for {
		select {
		case msg, ok := <-c.chDelivery:
			if !ok {
				return ErrDeliveriesClosed
			}
			if err := c.delivery(msg); err != nil {
				c.log.Error("mq read message error", zap.Error(err), zap.String("routing_key", msg.RoutingKey))
				_ = msg.Nack(false, false)
				continue
			}
			_ = msg.Ack(false)
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Consumer) delivery(msg amqp091.Delivery) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := fmt.Fprintf(c.out,
		"Action=%s EventBody=%s\n",
		msg.RoutingKey,
		string(msg.Body),
	)

	return err
}

func (c *Consumer) Close() {
	if c.chConsume != nil {
		_ = c.chConsume.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
