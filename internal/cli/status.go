package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"promotimer/internal/core/countdown"
	"promotimer/internal/core/model"
	"promotimer/internal/log"
)

// statusReport is the JSON shape of the status command.
type statusReport struct {
	Mode       string               `json:"mode"`
	FormID     string               `json:"form_trigger_id,omitempty"`
	Anchor     *time.Time           `json:"anchor,omitempty"`
	EndMoment  *time.Time           `json:"end_moment,omitempty"`
	Remaining  *countdown.Breakdown `json:"remaining,omitempty"`
	Expired    bool                 `json:"expired"`
	Configured bool                 `json:"configured"`

	// AnchorCorrupt is set when the stored anchor is unusable; the next run
	// replaces it.
	AnchorCorrupt bool `json:"anchor_corrupt,omitempty"`
}

// Execute runs the status command. It never creates an anchor.
func (c *StatusCommand) Execute(args []string) error {
	settings, err := c.globals.setup()
	if err != nil {
		return err
	}
	defer log.Close()

	report := statusReport{
		Mode:       string(settings.Countdown.Mode),
		FormID:     settings.Countdown.FormTriggerID,
		Configured: true,
	}

	switch settings.Countdown.Mode {
	case model.ModeAbsolute:
		end, err := model.ParseEndMoment(settings.Countdown.AbsoluteEnd, time.Local)
		if err != nil {
			report.Configured = false
			break
		}
		report.EndMoment = &end
	default:
		store, closer, err := c.globals.openStore(settings, false)
		if err != nil {
			return err
		}
		defer closer.Close()

		anchor, ok, err := countdown.ReadAnchor(store, time.Now())
		switch {
		case errors.Is(err, countdown.ErrCorruptAnchor):
			report.AnchorCorrupt = true
		case err != nil:
			log.Warn("stored anchor unreadable", "error", err)
		}
		if ok {
			end := anchor.Add(settings.Countdown.RelativeDuration)
			report.Anchor = &anchor
			report.EndMoment = &end
		}
	}

	if report.EndMoment != nil {
		remaining := time.Until(*report.EndMoment)
		if remaining <= 0 {
			report.Expired = true
		} else {
			breakdown := countdown.Decompose(remaining)
			report.Remaining = &breakdown
		}
	}

	if c.globals.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	printStatus(report, settings.Countdown)
	return nil
}

func printStatus(report statusReport, config model.CountdownConfig) {
	fmt.Println(bold("Promo Timer Status"))
	fmt.Println("==================")
	fmt.Printf("Mode:        %s\n", report.Mode)
	if config.TriggerEnabled() {
		fmt.Printf("Form:        %s\n", report.FormID)
	} else {
		fmt.Printf("Form:        %s\n", dim("none (clicks do nothing)"))
	}

	if config.Mode != model.ModeAbsolute {
		switch {
		case report.Anchor != nil:
			fmt.Printf("Started:     %s\n", formatMoment(*report.Anchor))
		case report.AnchorCorrupt:
			fmt.Printf("Started:     %s\n", red("stored start time is invalid (replaced on next run)"))
		default:
			fmt.Printf("Started:     not yet (a %s window begins on first run)\n", config.RelativeDuration)
		}
	}

	switch {
	case !report.Configured:
		fmt.Printf("Ends:        %s\n", red("no valid end date configured"))
		return
	case report.EndMoment == nil:
		return
	}
	fmt.Printf("Ends:        %s\n", formatMoment(*report.EndMoment))

	if report.Expired {
		fmt.Printf("Remaining:   %s\n", red("expired"))
		return
	}
	fmt.Printf("Remaining:   %s\n", green(formatBreakdown(*report.Remaining)))
}
