package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// ItemEvent описывает событие изменения предмета инвентаря.
type ItemEvent struct {
	Action string `json:"action"` // created, updated или removed
	ItemID int    `json:"item_id"`
	Name   string `json:"name,omitempty"`
}

// Publisher публикует события инвентаря в заранее объявленный exchange.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher создаёт Publisher поверх открытого канала.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// PublishItemEvent публикует событие в RabbitMQ.
func (p *Publisher) PublishItemEvent(event ItemEvent) error {
	const op = "rabbitmq.PublishItemEvent"
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = p.ch.Publish(
		ExchangeName,
		RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
