package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"promotimer/internal/core/countdown"
	"promotimer/internal/core/model"
	"promotimer/internal/core/promo"
	"promotimer/internal/core/trigger"
	"promotimer/internal/log"
	"promotimer/internal/queue"
	"promotimer/internal/ui/chime"
	"promotimer/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

// chimeTail keeps the speaker open long enough for the tone to finish.
const chimeTail = 600 * time.Millisecond

func (c *RunCommand) runTerminal(ctx context.Context, settings model.Settings, store countdown.KeyValueStore, commands *queue.Queue) error {
	if !isInteractive(os.Stdout) {
		return fmt.Errorf("--terminal needs an interactive terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	ui := terminal.New(screen, terminal.Config{
		Title:    "Limited offer",
		CTALabel: settings.Countdown.CTALabel,
		CTAURL:   settings.Countdown.CTAURL,
	})

	widget := promo.Initialize(settings.Countdown, promo.Collaborators{
		Store:     store,
		Commands:  commands,
		Scheduler: ui,
		Display:   ui,
	})
	ui.SetOnInteract(widget.Interact)
	if !widget.Enabled() {
		ui.SetStatus("No end date configured")
	}

	var sound *chime.Chime
	if c.Chime {
		sound = chime.New()
		if err := sound.Init(); err != nil {
			log.Warn("chime disabled", "error", err)
			sound = nil
		} else {
			defer sound.Close()
			widget.Engine().OnExpire(sound.Play)
		}
	}

	consumerCtx, cancelConsumer := context.WithCancel(ctx)
	defer cancelConsumer()
	go consumeCommands(consumerCtx, commands, func(command trigger.Command) {
		ui.SetStatus(fmt.Sprintf("%s sent for form %s", command.Name, command.FormID))
	})

	widget.Start()
	runErr := ui.Run(ctx)
	screen.Fini()

	if widget.Removed() {
		fmt.Println("The offer has expired.")
		if sound != nil {
			time.Sleep(chimeTail)
		}
	}
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
