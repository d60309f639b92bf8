// Package banner renders the countdown widget in a Fyne window.
package banner

import (
	"image/color"
	"net/url"

	"promotimer/internal/core/promo"
	"promotimer/internal/core/trigger"
	"promotimer/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Config defines banner visuals.
type Config struct {
	Title    string
	CTALabel string
	// CTAURL is opened by the call-to-action unless the click was claimed
	// by the form trigger.
	CTAURL   string
}

// Window shows the countdown digits and the call-to-action control.
type Window struct {
	window     fyne.Window
	digits     [4]*canvas.Text
	titleLabel *canvas.Text
	ctaButton  *widget.Button
	tapArea    *tapArea
	onInteract func(trigger.Target) trigger.Outcome
	ctaURL     *url.URL
	openURL    func(*url.URL) error
	removed    bool
}

var unitNames = [4]string{"DAYS", "HOURS", "MINUTES", "SECONDS"}

// New creates a banner window. It is not shown until Show is called.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	banner := &Window{window: window, openURL: app.OpenURL}
	if config.CTAURL != "" {
		parsed, err := url.Parse(config.CTAURL)
		if err != nil {
			log.Warn("ignoring call-to-action link", "url", config.CTAURL, "error", err)
		} else {
			banner.ctaURL = parsed
		}
	}

	background := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 230})

	titleLabel := canvas.NewText(config.Title, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 18
	banner.titleLabel = titleLabel

	groups := make([]fyne.CanvasObject, 0, len(unitNames))
	for i, name := range unitNames {
		digit := canvas.NewText("--", defaultDigitColor)
		digit.Alignment = fyne.TextAlignCenter
		digit.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
		digit.TextSize = 32
		banner.digits[i] = digit

		unit := canvas.NewText(name, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		unit.Alignment = fyne.TextAlignCenter
		unit.TextSize = 11

		groups = append(groups, container.NewVBox(digit, unit))
	}

	banner.ctaButton = widget.NewButton(config.CTALabel, func() {
		banner.interact(trigger.TargetCTA)
	})
	banner.ctaButton.Importance = widget.HighImportance
	banner.tapArea = newTapArea(func() {
		banner.interact(trigger.TargetWidget)
	})

	content := container.NewVBox(
		titleLabel,
		container.NewGridWithColumns(len(groups), groups...),
		container.NewHBox(layout.NewSpacer(), banner.ctaButton, layout.NewSpacer()),
	)
	window.SetContent(container.NewStack(background, banner.tapArea, container.NewPadded(content)))
	window.Resize(fyne.NewSize(420, 180))
	return banner
}

// SetOnInteract sets the handler invoked for clicks on the banner or its CTA.
func (banner *Window) SetOnInteract(handler func(trigger.Target) trigger.Outcome) {
	banner.onInteract = handler
}

// Show displays the banner unless it was removed.
func (banner *Window) Show() {
	if banner.removed {
		return
	}
	banner.window.CenterOnScreen()
	banner.window.Show()
}

// Render updates the digits for one countdown frame.
func (banner *Window) Render(frame promo.Frame) {
	fill := digitColor(frame.Color)
	for i, digit := range banner.digits {
		if digit.Text == frame.Digits[i] && digit.Color == fill {
			continue
		}
		digit.Text = frame.Digits[i]
		digit.Color = fill
		digit.Refresh()
	}
}

// Remove hides the banner for the rest of the session.
func (banner *Window) Remove() {
	banner.removed = true
	banner.window.Hide()
}

// Removed reports whether the banner was removed.
func (banner *Window) Removed() bool {
	return banner.removed
}

// SetOnClosed sets the handler run when the user closes the window.
func (banner *Window) SetOnClosed(handler func()) {
	banner.window.SetCloseIntercept(func() {
		banner.window.Hide()
		if handler != nil {
			handler()
		}
	})
}

// Activate handles an interaction as if the target had been clicked.
func (banner *Window) Activate(target trigger.Target) {
	banner.interact(target)
}

// interact reports the click and, for the call-to-action, follows its link
// unless the trigger claimed the click.
func (banner *Window) interact(target trigger.Target) {
	var outcome trigger.Outcome
	if banner.onInteract != nil {
		outcome = banner.onInteract(target)
	}
	if target != trigger.TargetCTA || outcome.PreventDefault || banner.ctaURL == nil {
		return
	}
	if err := banner.openURL(banner.ctaURL); err != nil {
		log.Warn("open call-to-action link", "url", banner.ctaURL.String(), "error", err)
	}
}

// tapArea turns clicks anywhere on the banner background into interactions.
type tapArea struct {
	widget.BaseWidget
	onTapped func()
}

func newTapArea(onTapped func()) *tapArea {
	area := &tapArea{onTapped: onTapped}
	area.ExtendBaseWidget(area)
	return area
}

func (area *tapArea) Tapped(*fyne.PointEvent) {
	if area.onTapped != nil {
		area.onTapped()
	}
}

func (area *tapArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
