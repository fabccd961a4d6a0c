package main

import (
	"fmt"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/pjscruggs/slogcp"
	avlog "github.com/pjscruggs/slogcp-avlog"
	"github.com/pjscruggs/slogcp-avlog/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "avlog",
		Short:         "Inspect and drive the libavutil log bridge",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (.yaml, .toml or .json)")

	root.AddCommand(
		newLevelsCmd(),
		newConfigCmd(opts),
		newEmitCmd(opts),
		newVersionCmd(),
	)
	return root
}

// loadConfig resolves the file, overlays the environment and validates.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return config.Config{}, err
	}
	config.FromEnv(&cfg)
	if _, _, err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Print the level, native value, filter and slog level table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LEVEL\tNATIVE\tFILTER\tSLOG")
			for _, l := range avlog.Levels() {
				slogLevel := "-"
				if sl, ok := l.Filter().SlogLevel(); ok {
					slogLevel = sl.String()
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", l, l.Native(), l.Filter(), slogLevel)
			}
			return w.Flush()
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}
}

func newEmitCmd(opts *rootOptions) *cobra.Command {
	var native bool
	cmd := &cobra.Command{
		Use:   "emit <level> <message...>",
		Short: "Log a message through av_log and the bridge",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := avlog.ParseLevel(args[0])
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Apply(); err != nil {
				return err
			}

			if !native {
				// Open the handler down to trace so the libavutil threshold is
				// the only filter in play.
				handler, err := slogcp.NewHandler(cmd.OutOrStdout(), slogcp.WithLevel(avlog.LevelTraceSlog))
				if err != nil {
					return fmt.Errorf("create slogcp handler: %w", err)
				}
				defer avlog.Install(handler, cfg.AdapterOptions()...).Close()
			}
			avlog.Print(nil, level, strings.Join(args[1:], " "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&native, "native", false, "skip the bridge and use libavutil's default output on stderr")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "avlog v%s\n", Version)
			fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
