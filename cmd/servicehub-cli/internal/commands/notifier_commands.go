package commands

import (
	"fmt"

	"github.com/MGTheTrain/servicehub/internal/infrastructure/connector"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/messaging"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// NotifierCommandHandler runs the out-of-process notification worker.
type NotifierCommandHandler struct {
	logger logger.Logger
}

// NewNotifierCommandHandler initializes a NotifierCommandHandler with a console logger.
func NewNotifierCommandHandler() (*NotifierCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &NotifierCommandHandler{logger: loggerInstance}, nil
}

// RunNotifierCmd consumes the notification topic and delivers messages until interrupted
func (commandHandler *NotifierCommandHandler) RunNotifierCmd(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if cfg.Notifications.Queue != config.QueueKafka {
		commandHandler.logger.Error("notifications.queue must be ", config.QueueKafka, " to run a worker, got ", cfg.Notifications.Queue)
		return
	}

	senders := connector.NewSenders(&cfg.Notifications)
	worker := messaging.NewWorker(&cfg.Notifications.Kafka, senders, commandHandler.logger)

	commandHandler.logger.Info("Notification worker started on topic ", cfg.Notifications.Kafka.Topic)
	if err := worker.Run(cmd.Context()); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Notification worker stopped")
}

// InitNotifierCommands registers notification worker commands
func InitNotifierCommands(rootCmd *cobra.Command) error {
	handler, err := NewNotifierCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create notifier command handler %w", err)
	}

	var runNotifierCmd = &cobra.Command{
		Use:   "run-notifier",
		Short: "Consume the Kafka notification topic and deliver email and WhatsApp messages",
		Run:   handler.RunNotifierCmd,
	}
	rootCmd.AddCommand(runNotifierCmd)

	return nil
}
