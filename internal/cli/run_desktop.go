package cli

import (
	"context"
	"fmt"

	"promotimer/internal/core/countdown"
	"promotimer/internal/core/model"
	"promotimer/internal/core/promo"
	"promotimer/internal/core/trigger"
	"promotimer/internal/log"
	"promotimer/internal/platform"
	"promotimer/internal/queue"
	"promotimer/internal/ui/banner"
	"promotimer/internal/ui/chime"
	"promotimer/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

func (c *RunCommand) runDesktop(ctx context.Context, settings model.Settings, store countdown.KeyValueStore, commands *queue.Queue) error {
	lock, err := platform.AcquireInstanceLock(c.globals.instanceKey(settings))
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	fyneApp := app.NewWithID("com.promotimer.app")

	bannerWindow := banner.New(fyneApp, banner.Config{
		Title:    "Limited offer",
		CTALabel: settings.Countdown.CTALabel,
		CTAURL:   settings.Countdown.CTAURL,
	})
	scheduler := banner.NewFrameScheduler()

	widget := promo.Initialize(settings.Countdown, promo.Collaborators{
		Store:     store,
		Commands:  commands,
		Scheduler: scheduler,
		Display:   bannerWindow,
	})
	bannerWindow.SetOnInteract(widget.Interact)

	desktopApp, hasTray := fyneApp.(desktop.App)
	var trayManager *tray.Manager
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: bannerWindow.Show,
			OnClaim: func() {
				bannerWindow.Activate(trigger.TargetCTA)
			},
			OnQuit: fyneApp.Quit,
		})
		trayManager.SetClaimEnabled(widget.TriggerBound() || settings.Countdown.CTAURL != "")
		if !widget.Enabled() {
			trayManager.SetStatus("no end date")
		}
		bannerWindow.SetOnClosed(nil)
	} else {
		log.Info("system tray unsupported on this platform")
		bannerWindow.SetOnClosed(fyneApp.Quit)
	}

	lastStatus := ""
	widget.Engine().OnTick(func(breakdown countdown.Breakdown) {
		status := formatBreakdown(breakdown)
		if trayManager == nil || status == lastStatus {
			return
		}
		lastStatus = status
		trayManager.SetStatus(status)
	})

	if c.Chime {
		sound := chime.New()
		if err := sound.Init(); err != nil {
			log.Warn("chime disabled", "error", err)
		} else {
			defer sound.Close()
			widget.Engine().OnExpire(sound.Play)
		}
	}

	lifecycle := widget.Subscribe(4)
	go func() {
		for event := range lifecycle {
			if event.Type != promo.LifecycleRemoved {
				continue
			}
			log.Info("offer expired", "end", event.EndMoment)
			fyne.Do(func() {
				scheduler.Stop()
				if trayManager == nil {
					fyneApp.Quit()
					return
				}
				trayManager.SetExpired()
			})
		}
	}()

	go consumeCommands(ctx, commands, func(command trigger.Command) {
		if command.Name != trigger.CommandOpenForm {
			return
		}
		fyneApp.SendNotification(fyne.NewNotification("Limited offer", fmt.Sprintf("Opening form %s", command.FormID)))
	})

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	fyneApp.Lifecycle().SetOnStarted(widget.Start)
	bannerWindow.Show()
	fyneApp.Run()
	return nil
}
