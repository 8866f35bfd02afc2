package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"flipd/internal/config"
)

func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flipd",
		Short:         "Windowed slot pool over an ordered sequence of items",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> config.Config
	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (.yaml, .yml, .json or .toml)")
	pf.Int("window", config.DefaultWindowSize, "Number of resident slots")
	pf.Int("offset", 0, "Position of the focused slot inside the window")
	pf.Bool("loop", false, "Wrap around the ends of the sequence")
	pf.Bool("animate-first", false, "Animate the first populated plan")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug|info|warn|error (defaults FLIPD_LOG_LEVEL)")
	pf.String("log-format", config.DefaultLogFormat, "Log format: console|json")

	root.AddCommand(buildServeCmd(), buildWalkCmd(), buildBrowseCmd())
	return root
}

// resolveConfig loads the --config file, if any, and overlays every flag the
// user set explicitly. Unset fields get defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	flags := cmd.Flags()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if v := os.Getenv("FLIPD_ADDR"); v != "" && cfg.Addr == "" {
		cfg.Addr = v
	}
	if v := os.Getenv("FLIPD_LOG_LEVEL"); v != "" && cfg.LogLevel == "" {
		cfg.LogLevel = v
	}
	if flags.Changed("window") {
		cfg.WindowSize, _ = flags.GetInt("window")
	}
	if flags.Changed("offset") {
		cfg.ActiveOffset, _ = flags.GetInt("offset")
	}
	if flags.Changed("loop") {
		cfg.Loop, _ = flags.GetBool("loop")
	}
	if flags.Changed("animate-first") {
		cfg.AnimateFirst, _ = flags.GetBool("animate-first")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if f := flags.Lookup("addr"); f != nil && f.Changed {
		cfg.Addr = f.Value.String()
	}
	if f := flags.Lookup("items-dir"); f != nil && f.Changed {
		cfg.ItemsDir = f.Value.String()
	}
	if f := flags.Lookup("items-ext"); f != nil && f.Changed {
		cfg.ItemsExt = f.Value.String()
	}
	if f := flags.Lookup("cors-origins"); f != nil && f.Changed {
		cfg.CORSOrigins = splitCSV(f.Value.String())
	}
	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}

// splitCSV splits a comma-separated list, trimming blanks and dropping empties.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
