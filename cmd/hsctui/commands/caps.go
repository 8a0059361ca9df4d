package commands

import (
	"context"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/hsctui/bridge"
	"github.com/teranos/hsctui/capability"
	"github.com/teranos/hsctui/config"
)

// CapsCmd queries the attached headset and prints which parameters it
// supports, without entering the TUI.
var CapsCmd = &cobra.Command{
	Use:   "caps",
	Short: "List headset parameters and device support",
	Long: `Query the attached headset for its supported parameter set and print
every parameter hsctui knows about, marking which ones this device
implements and what kind of widget each gets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if tool, _ := cmd.Flags().GetString("tool"); tool != "" {
			cfg.Tool.Path = tool
		}

		br := bridge.New(cfg.Tool.Path, bridge.WithTimeout(cfg.Tool.Timeout()))
		letters, err := br.Discover(context.Background())
		if err != nil {
			return err
		}

		name := "unknown device"
		if n, err := br.DeviceName(context.Background()); err == nil {
			name = n
		}
		pterm.Info.Printf("Found %s (capabilities: %s)\n", name, letters)

		data := pterm.TableData{{"Key", "Parameter", "Widget", "Supported"}}
		for cap := range capability.Catalog().All() {
			supported := ""
			if strings.ContainsRune(letters, cap.Key) {
				supported = "yes"
			}
			data = append(data, []string{
				string(cap.Key), cap.Label, cap.Widget().String(), supported,
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	CapsCmd.Flags().String("tool", "", "Path to the headsetcontrol executable")
}
