package cli

import (
	"fmt"

	"promotimer/internal/core/countdown"
	"promotimer/internal/log"
)

// Execute runs the clear command.
func (c *ClearCommand) Execute(args []string) error {
	settings, err := c.globals.setup()
	if err != nil {
		return err
	}
	defer log.Close()

	store, closer, err := c.globals.openStore(settings, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	_, ok, err := store.Get(countdown.AnchorKey)
	if err != nil {
		return fmt.Errorf("read anchor: %w", err)
	}
	if !ok {
		fmt.Println("No countdown anchor stored.")
		return nil
	}
	if err := countdown.ClearAnchor(store); err != nil {
		return err
	}
	fmt.Println("Countdown anchor cleared. The next run starts a new window.")
	return nil
}
