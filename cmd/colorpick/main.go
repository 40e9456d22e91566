package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/diamondburned/colorpick"
	"github.com/diamondburned/colorpick/internal/config"
	"github.com/diamondburned/colorpick/internal/discord/state"
	"github.com/diamondburned/colorpick/internal/logger"
	"github.com/diamondburned/colorpick/internal/urlutils"
	"github.com/pkg/errors"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "colorpick",
	Short: "Discord bot that lets members pick their name color",
	Long: `colorpick serves the /pick slash command, which gives the member a
role named after the chosen color and removes their previous color role.

Configuration is read from the environment, a .env file in the working
directory and, if given, the --config file. DISCORD_TOKEN is required.`,
	SilenceUsage: true,
	RunE:         runBot,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and serve commands (default)",
	Args:  cobra.NoArgs,
	RunE:  runBot,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Overwrite the application commands and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(false)
		if err != nil {
			return err
		}
		defer log.Sync()

		bot, err := colorpick.New(cfg, log)
		if err != nil {
			return err
		}

		return bot.Register()
	},
}

var openInvite bool

var inviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Print the URL that adds the bot to a server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(false)
		if err != nil {
			return err
		}
		defer log.Sync()

		inst, err := state.NewFromToken(cfg.Token, log)
		if err != nil {
			return err
		}

		url := urlutils.InviteURL(inst.AppID, urlutils.InvitePermissions)
		fmt.Fprintln(cmd.OutOrStdout(), url)

		if openInvite {
			if err := open.Run(url); err != nil {
				return errors.Wrap(err, "failed to open browser")
			}
		}

		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <color>",
	Short: "Resolve a color offline and print the role it maps to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(true)
		if err != nil {
			return err
		}
		defer log.Sync()

		c, err := colorpick.NewResolver(cfg).Resolve(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "hex:    #%s\n", c.Hex)
		fmt.Fprintf(out, "name:   %s\n", c.Name)
		fmt.Fprintf(out, "source: %s\n", c.Source)
		fmt.Fprintf(out, "role:   %s\n", colorpick.NewNamer(cfg).RoleName(c))
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(true)
		if err != nil {
			return err
		}
		defer log.Sync()

		values, err := cfg.Values()
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, values[key])
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json, toml or env)")
	inviteCmd.Flags().BoolVar(&openInvite, "open", false, "open the URL in a browser")

	rootCmd.AddCommand(runCmd, registerCmd, inviteCmd, resolveCmd, configCmd)
}

// setup loads the configuration and builds the logger. Offline commands do not
// need a token.
func setup(offline bool) (config.Config, *zap.Logger, error) {
	cfg, log, _, err := setupViper(offline)
	return cfg, log, err
}

func setupViper(offline bool) (config.Config, *zap.Logger, *viper.Viper, error) {
	v, err := config.NewViper(configFile)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	load := config.Load
	if offline {
		load = config.LoadOffline
	}

	cfg, err := load(v)
	if err != nil {
		return config.Config{}, nil, nil, errors.Wrap(err, "failed to load config")
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Dev: cfg.Dev()})
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	return cfg, log, v, nil
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, log, v, err := setupViper(false)
	if err != nil {
		return err
	}
	defer log.Sync()

	// Only the log level is applied without a restart.
	if configFile != "" {
		config.Watch(v, func(cfg config.Config) {
			if err := logger.SetLevel(cfg.LogLevel); err != nil {
				log.Warn("failed to change log level", zap.Error(err))
				return
			}
			log.Info("log level changed", zap.String("level", cfg.LogLevel))
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot, err := colorpick.New(cfg, log)
	if err != nil {
		return err
	}

	return bot.Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
