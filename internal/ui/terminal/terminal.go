// Package terminal renders the countdown widget in a terminal with tcell.
// Input, frames and rendering all run on the Run loop goroutine.
package terminal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"promotimer/internal/core/promo"
	"promotimer/internal/core/trigger"
	"promotimer/internal/log"

	"github.com/gdamore/tcell/v2"
)

const defaultFrameInterval = 16 * time.Millisecond // ~60 FPS

// Config defines terminal visuals.
type Config struct {
	Title         string
	CTALabel      string
	CTAURL        string
	FrameInterval time.Duration
}

type rect struct {
	x, y, width, height int
}

func (area rect) contains(x, y int) bool {
	return x >= area.x && x < area.x+area.width && y >= area.y && y < area.y+area.height
}

// UI is a terminal display sink and frame scheduler.
type UI struct {
	screen     tcell.Screen
	config     Config
	onInteract func(trigger.Target) trigger.Outcome

	mu       sync.Mutex
	pending  []func()
	frame    promo.Frame
	hasFrame bool
	removed  bool
	status   string

	buttons tcell.ButtonMask
	ctaBox  rect
}

// New creates a UI on an initialized screen.
func New(screen tcell.Screen, config Config) *UI {
	if config.FrameInterval <= 0 {
		config.FrameInterval = defaultFrameInterval
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &UI{screen: screen, config: config}
}

// SetOnInteract sets the handler invoked for clicks on the widget or its CTA.
func (ui *UI) SetOnInteract(handler func(trigger.Target) trigger.Outcome) {
	ui.onInteract = handler
}

// ScheduleNextFrame queues callback for the next frame.
func (ui *UI) ScheduleNextFrame(callback func()) {
	ui.mu.Lock()
	ui.pending = append(ui.pending, callback)
	ui.mu.Unlock()
}

// Render stores the frame drawn at the end of the current frame.
func (ui *UI) Render(frame promo.Frame) {
	ui.mu.Lock()
	ui.frame = frame
	ui.hasFrame = true
	ui.mu.Unlock()
}

// Remove clears the widget; Run returns after the current frame.
func (ui *UI) Remove() {
	ui.mu.Lock()
	ui.removed = true
	ui.mu.Unlock()
}

// Removed reports whether the widget was removed.
func (ui *UI) Removed() bool {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.removed
}

// SetStatus sets the footer line.
func (ui *UI) SetStatus(status string) {
	ui.mu.Lock()
	ui.status = status
	ui.mu.Unlock()
}

// Run drives frames and input until ctx is done, the user quits, or the
// widget is removed.
func (ui *UI) Run(ctx context.Context) error {
	ticker := time.NewTicker(ui.config.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := ui.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ui.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !ui.handleEvent(ev) {
				return nil
			}
			ui.draw()

		case <-ticker.C:
			ui.runFrame()
			ui.draw()
			if ui.Removed() {
				return nil
			}
		}
	}
}

func (ui *UI) runFrame() {
	ui.mu.Lock()
	callbacks := ui.pending
	ui.pending = nil
	ui.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}
}

func (ui *UI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyEnter {
			ui.interact(trigger.TargetCTA)
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && ui.buttons&tcell.Button1 == 0
		ui.buttons = buttons
		if !pressed {
			return true
		}
		x, y := ev.Position()
		if ui.ctaBox.contains(x, y) {
			ui.interact(trigger.TargetCTA)
		} else {
			ui.interact(trigger.TargetWidget)
		}

	case *tcell.EventResize:
		ui.screen.Sync()
	}

	return true
}

func (ui *UI) interact(target trigger.Target) {
	if ui.Removed() {
		return
	}
	var outcome trigger.Outcome
	if ui.onInteract != nil {
		outcome = ui.onInteract(target)
	}
	if target != trigger.TargetCTA || outcome.PreventDefault || ui.config.CTAURL == "" {
		return
	}
	log.Info("call-to-action followed", "url", ui.config.CTAURL)
	ui.SetStatus("Visit " + ui.config.CTAURL)
}

func (ui *UI) draw() {
	ui.mu.Lock()
	frame := ui.frame
	hasFrame := ui.hasFrame
	removed := ui.removed
	status := ui.status
	ui.mu.Unlock()

	ui.screen.Clear()
	if removed {
		ui.ctaBox = rect{}
		ui.screen.Show()
		return
	}

	width, height := ui.screen.Size()
	centerY := height / 2

	titleStyle := tcell.StyleDefault.Bold(true)
	ui.drawCentered(centerY-3, width, ui.config.Title, titleStyle)

	digits := "--  --  --  --"
	if hasFrame {
		digits = fmt.Sprintf("%s  %s  %s  %s", frame.Digits[0], frame.Digits[1], frame.Digits[2], frame.Digits[3])
	}
	digitStyle := tcell.StyleDefault.Bold(true).Foreground(digitColor(frame.Color))
	ui.drawCentered(centerY-1, width, digits, digitStyle)
	ui.drawCentered(centerY, width, unitLine(frame.Digits), tcell.StyleDefault.Dim(true))

	cta := "[ " + ui.config.CTALabel + " ]"
	ctaX := ui.drawCentered(centerY+2, width, cta, tcell.StyleDefault.Reverse(true))
	ui.ctaBox = rect{x: ctaX, y: centerY + 2, width: len([]rune(cta)), height: 1}

	if status != "" {
		ui.drawCentered(height-1, width, status, tcell.StyleDefault.Dim(true))
	}
	ui.screen.Show()
}

// drawCentered draws text centered on row y and returns its first column.
func (ui *UI) drawCentered(y, width int, text string, style tcell.Style) int {
	runes := []rune(text)
	x := (width - len(runes)) / 2
	if x < 0 {
		x = 0
	}
	for i, r := range runes {
		ui.screen.SetContent(x+i, y, r, nil, style)
	}
	return x
}

// unitLine aligns unit captions under each digit group.
func unitLine(digits [4]string) string {
	units := [4]string{"d", "h", "m", "s"}
	line := ""
	for i, unit := range units {
		groupWidth := len(digits[i])
		if groupWidth < 2 {
			groupWidth = 2
		}
		line += fmt.Sprintf("%-*s", groupWidth, unit)
		if i < len(units)-1 {
			line += "  "
		}
	}
	return line
}

func digitColor(hint string) tcell.Color {
	if hint == "" {
		return tcell.ColorYellow
	}
	parsed := tcell.GetColor(hint)
	if parsed == tcell.ColorDefault {
		return tcell.ColorYellow
	}
	return parsed
}
