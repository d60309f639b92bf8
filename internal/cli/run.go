package cli

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"promotimer/internal/core/trigger"
	"promotimer/internal/log"
	"promotimer/internal/queue"
)

// Execute runs the run command.
func (c *RunCommand) Execute(args []string) error {
	settings, err := c.globals.setup()
	if err != nil {
		return err
	}
	defer log.Close()

	store, closer, err := c.globals.openStore(settings, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands := queue.New()
	log.Info("starting countdown",
		"version", c.version,
		"mode", settings.Countdown.Mode,
		"form", settings.Countdown.FormTriggerID,
		"terminal", c.Terminal)

	if c.Terminal {
		return c.runTerminal(ctx, settings, store, commands)
	}
	return c.runDesktop(ctx, settings, store, commands)
}

// consumeCommands stands in for the form service: it drains the queue in
// order and hands each command to notify.
func consumeCommands(ctx context.Context, commands *queue.Queue, notify func(trigger.Command)) {
	logger := log.With("component", "form-service")
	_ = commands.Consume(ctx, func(command trigger.Command) {
		payload, err := json.Marshal(command)
		if err != nil {
			logger.Warn("encode form command", "command", command.String(), "error", err)
			return
		}
		logger.Info("form command", "command", command.Name, "form", command.FormID, "payload", string(payload))
		if notify != nil {
			notify(command)
		}
	})
	logger.Debug("form service stopped")
}
