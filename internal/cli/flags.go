package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config    string `long:"config" description:"Path to config file (default: user config dir)"`
	Store     string `long:"store" description:"Path to the anchor database (overrides store_path)"`
	Ephemeral bool   `long:"ephemeral" description:"Keep the anchor in memory only"`
	JSON      bool   `long:"json" description:"Output in JSON format"`
	Verbose   bool   `long:"verbose" description:"Enable verbose output"`
	LogFile   string `long:"log-file" description:"Also write JSON logs to this file"`
	Version   bool   `long:"version" description:"Show version and exit"`
}

// RunCommand — show the countdown widget.
type RunCommand struct {
	Terminal bool `long:"terminal" description:"Render in the terminal instead of a desktop window"`
	Chime    bool `long:"chime" description:"Play a tone when the countdown expires"`

	globals *GlobalFlags
	version string
}

// StatusCommand — print the countdown state without starting it.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}

// ClearCommand — delete the stored anchor so the next run starts a new window.
type ClearCommand struct {
	globals *GlobalFlags
	version string
}

// InitCommand — write a config file.
type InitCommand struct {
	Mode   string `long:"mode" description:"Countdown mode: relative | manual" default:"relative"`
	End    string `long:"end" description:"End moment for manual mode (e.g. 2030-01-01T00:00:00Z)"`
	FormID string `long:"form-id" description:"External form identifier opened on click"`
	Color  string `long:"color" description:"Digit color hint (e.g. #ff3366)"`
	CTAURL string `long:"cta-url" description:"Link the call-to-action opens when no form is configured or after expiry"`
	Force  bool   `long:"force" description:"Overwrite an existing config file"`

	globals *GlobalFlags
	version string
}
