package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"splitpane/app"
	"splitpane/config"
	"splitpane/log"
	"splitpane/ui"
)

var (
	version        = "0.3.0"
	configFlag     string
	axisFlag       string
	gutterFlag     float64
	sizesFlag      string
	rtlFlag        bool
	disabledFlag   bool
	transitionFlag bool
	rootCmd        = &cobra.Command{
		Use:   "splitpane",
		Short: "splitpane - Resizable split panes in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize(false)
			defer log.Close()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return app.Run(ctx, cfg)
		},
	}

	layoutCmd = &cobra.Command{
		Use:   "layout [WIDTHxHEIGHT]",
		Short: "Print the pane sizes for a terminal size",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(true)
			defer log.Close()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			width, height, err := terminalSize(args)
			if err != nil {
				return err
			}

			s := app.Snapshot(context.Background(), cfg, width, height)
			rows := make([][]string, 0, len(s.Split.Sizes))
			for i, size := range s.Split.Sizes {
				rows = append(rows, []string{
					s.Split.Titles[i],
					ui.FormatPercent(size),
					strconv.Itoa(s.Split.Cells[i]),
					s.Split.SizeExprs[i],
				})
			}
			headerStyle := lipgloss.NewStyle().Foreground(ui.TextMuted).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(ui.Border)).
				Headers("Pane", "Size", "Cells", "Style").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle.Padding(0, 1)
					}
					return lipgloss.NewStyle().Padding(0, 1)
				})

			fmt.Printf("%s %s, %s, gutter %g, %dx%d\n", s.Split.Axis, s.Split.Direction,
				s.Layout.Mode, s.Split.GutterSize, s.Layout.ContentWidth, s.Layout.ContentHeight)
			fmt.Println(t.Render())
			return nil
		},
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect [WIDTHxHEIGHT]",
		Short: "Print a text snapshot of the layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(true)
			defer log.Close()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			width, height, err := terminalSize(args)
			if err != nil {
				return err
			}
			fmt.Print(app.Snapshot(context.Background(), cfg, width, height).ToText())
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Log: %s\n", log.FileName())

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of splitpane",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("splitpane version %s\n", version)
		},
	}
)

// loadConfig reads the config file and applies the command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if configFlag != "" {
		c, err := config.LoadConfigFile(configFlag)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else {
		cfg = config.LoadConfig()
	}

	flags := cmd.Flags()
	if axisFlag != "" {
		if axisFlag != "horizontal" && axisFlag != "vertical" {
			return nil, fmt.Errorf("invalid axis: %s (must be 'horizontal' or 'vertical')", axisFlag)
		}
		cfg.Axis = axisFlag
	}
	if flags.Changed("gutter") {
		if gutterFlag <= 0 {
			return nil, fmt.Errorf("invalid gutter size: %g (must be positive)", gutterFlag)
		}
		cfg.GutterSize = gutterFlag
	}
	if sizesFlag != "" {
		if err := cfg.ApplySizes(sizesFlag); err != nil {
			return nil, err
		}
	}
	if rtlFlag {
		cfg.Dir = "rtl"
	}
	if disabledFlag {
		cfg.Disabled = true
	}
	if flags.Changed("transition") {
		cfg.UseTransition = transitionFlag
	}
	return cfg, nil
}

// terminalSize parses a WIDTHxHEIGHT argument. Without one it asks the
// terminal and falls back to 80x24.
func terminalSize(args []string) (int, int, error) {
	if len(args) == 0 {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 || height <= 0 {
			return 80, 24, nil
		}
		return width, height, nil
	}

	w, h, ok := strings.Cut(strings.ToLower(args[0]), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (want WIDTHxHEIGHT)", args[0])
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid width %q", w)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid height %q", h)
	}
	return width, height, nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "",
		"Config file to use instead of ~/.splitpane/config.json (.json or .toml)")
	flags.StringVarP(&axisFlag, "axis", "a", "", "Split axis ('horizontal' or 'vertical')")
	flags.Float64VarP(&gutterFlag, "gutter", "g", config.DefaultGutterSize, "Gutter size in cells")
	flags.StringVarP(&sizesFlag, "sizes", "s", "", "Comma separated pane sizes in percent (e.g. '30,70')")
	flags.BoolVar(&rtlFlag, "rtl", false, "Lay panes out right to left")
	flags.BoolVar(&disabledFlag, "disabled", false, "Lock the gutters")
	flags.BoolVar(&transitionFlag, "transition", true, "Report size transitions")

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
