// Package messaging delivers notifications, either directly through the channel senders
// or through a Kafka topic drained by a Worker.
package messaging
