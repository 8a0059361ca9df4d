package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/teranos/hsctui/bridge"
	"github.com/teranos/hsctui/capability"
	"github.com/teranos/hsctui/cmd/hsctui/commands"
	"github.com/teranos/hsctui/config"
	"github.com/teranos/hsctui/errors"
	"github.com/teranos/hsctui/form"
	"github.com/teranos/hsctui/logger"
	"github.com/teranos/hsctui/tui"
)

var rootCmd = &cobra.Command{
	Use:   "hsctui",
	Short: "Terminal front-end for headsetcontrol",
	Long: `hsctui - adjust and monitor USB headset settings from the terminal.

hsctui shells out to the headsetcontrol command-line tool for every
operation. At startup it asks the attached headset which parameters it
supports and builds the form from that answer: sliders and toggles for
adjustable settings, live meters for battery level and chat-mix dial.

Settings are applied immediately and live on the headset itself; nothing
is persisted by hsctui. Configuration (poll intervals, tool path) is read
from ` + "~/.config/hsctui/config.toml" + ` and reloaded on change.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntP("batterypolltime", "b", config.DefaultBatterySeconds,
		"Seconds between battery reads, 0 disables the loop")
	rootCmd.Flags().IntP("chatmixpolltime", "c", config.DefaultChatmixSeconds,
		"Seconds between chat-mix reads, 0 disables the loop")
	rootCmd.Flags().BoolP("debug", "d", false,
		"Show every known parameter regardless of device support, log at debug level")
	rootCmd.Flags().String("tool", "",
		"Path to the headsetcontrol executable (default: from config, then PATH lookup)")
	rootCmd.Flags().Int("timeout", config.DefaultTimeoutSeconds,
		"Seconds before a single headsetcontrol invocation is abandoned")

	rootCmd.AddCommand(commands.CapsCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	cfgPath := config.DefaultPath()
	if err := config.WriteDefault(cfgPath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not write default config: %v\n", err)
	}

	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	debug, _ := cmd.Flags().GetBool("debug")
	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = logger.DefaultLogPath()
	}
	if err := logger.Initialize(logPath, debug); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	br := bridge.New(cfg.Tool.Path, bridge.WithTimeout(cfg.Tool.Timeout()))
	ctx := context.Background()

	letters, err := br.Discover(ctx)
	if err != nil {
		return errors.WithHint(err,
			"check that a supported headset is plugged in and that headsetcontrol is installed")
	}
	logger.Logger.Infow("discovered device capabilities", "letters", letters)

	// The guard is always bound to the discovered set, even in debug mode:
	// debug widens what the form displays, never what reaches the device.
	br.Restrict(capability.Catalog().Filter(letters))
	reg := displayRegistry(letters, debug)

	title := "Headset"
	if name, err := br.DeviceName(ctx); err == nil {
		title = name
	} else {
		logger.Logger.Debugw("device name scrape failed", "error", err)
	}

	ctrl := form.NewController(reg, br, logger.Logger)
	model := tui.New(tui.Params{
		Title:           title,
		Controller:      ctrl,
		BatteryInterval: cfg.Poll.BatteryInterval(),
		ChatmixInterval: cfg.Poll.ChatmixInterval(),
		Logger:          logger.Logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	watcher, err := config.NewWatcher(cfgPath, func(reloaded *config.Config) {
		p.Send(tui.ConfigReloadedMsg{Config: reloaded})
	})
	if err != nil {
		logger.Logger.Warnw("config watcher unavailable, live reload disabled", "error", err)
	} else {
		defer watcher.Close()
	}

	_, err = p.Run()
	return err
}

// displayRegistry returns the registry backing the form. Debug mode shows
// every known parameter so unsupported ones can still be inspected; edits on
// them are suppressed by the bridge guard.
func displayRegistry(letters string, debug bool) *capability.Registry {
	if debug {
		return capability.Catalog()
	}
	return capability.Catalog().Filter(letters)
}

// applyFlagOverrides folds explicitly set command-line flags over the loaded
// config. Flags left at their defaults never override file or environment
// values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("batterypolltime") {
		cfg.Poll.BatterySeconds, _ = cmd.Flags().GetInt("batterypolltime")
	}
	if cmd.Flags().Changed("chatmixpolltime") {
		cfg.Poll.ChatmixSeconds, _ = cmd.Flags().GetInt("chatmixpolltime")
	}
	if cmd.Flags().Changed("tool") {
		cfg.Tool.Path, _ = cmd.Flags().GetString("tool")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Tool.TimeoutSeconds, _ = cmd.Flags().GetInt("timeout")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
