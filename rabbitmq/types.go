// SPDX-License-Identifier: GPL-3.0-only

package rabbitmq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

type Config struct {
	amqpURL  string
	exchange string
}

type Client struct {
	Exchange string
	Conn     *amqp.Connection
	Channel  *amqp.Channel
}
