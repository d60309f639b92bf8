package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnClaim func()
	OnQuit  func()
}

// Manager handles system tray state.
type Manager struct {
	app         MenuHost
	statusItem  *fyne.MenuItem
	showItem    *fyne.MenuItem
	claimItem   *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
	expired     bool
}

// New creates a tray manager with the provided callbacks.
func New(app MenuHost, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Offer: starting...", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show timer", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	manager.claimItem = fyne.NewMenuItem("Claim offer", func() {
		if manager.callbacks.OnClaim != nil {
			manager.callbacks.OnClaim()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetExpired disables the offer items once the countdown is over.
func (manager *Manager) SetExpired() {
	manager.expired = true
	manager.showItem.Disabled = true
	manager.claimItem.Disabled = true
	manager.refreshStatus()
}

// SetClaimEnabled toggles the claim item.
func (manager *Manager) SetClaimEnabled(enabled bool) {
	manager.claimItem.Disabled = !enabled || manager.expired
	manager.refreshMenu()
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if manager.expired {
		status = "expired"
	}
	manager.statusItem.Label = fmt.Sprintf("Offer: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("promotimer",
		manager.statusItem,
		manager.showItem,
		manager.claimItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
