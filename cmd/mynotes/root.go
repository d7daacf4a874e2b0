package main

import (
	"github.com/joho/godotenv"
	"github.com/oliverisaac/mynotes/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	dbPath     string
	verbose    bool
}

type cli struct {
	opts rootOptions
	app  *application
	root *cobra.Command
}

func newCLI() *cli {
	c := &cli{}

	c.root = &cobra.Command{
		Use:           "mynotes",
		Short:         "Create, search, edit and delete short text notes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(".env"); err != nil {
				logrus.Debugf("No .env loaded: %v", err)
			}

			cfg, err := c.opts.config()
			if err != nil {
				return err
			}

			logrus.SetLevel(cfg.Level())
			if c.opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			logrus.Debugf("Using database %s", cfg.DBPath)

			c.app, err = newApplication(cfg)
			return err
		},
	}

	flags := c.root.PersistentFlags()
	flags.StringVar(&c.opts.configPath, "config", "", "Path to a YAML config file (default $MYNOTES_CONFIG)")
	flags.StringVar(&c.opts.dbPath, "db", "", "Path to the notes database (overrides config)")
	flags.BoolVarP(&c.opts.verbose, "verbose", "v", false, "Enable verbose logging")

	app := func() *application { return c.app }
	c.root.AddCommand(
		newServeCmd(app),
		newAddCmd(app),
		newListCmd(app),
		newEditCmd(app),
		newDeleteCmd(app),
		newPrefsCmd(app),
	)

	return c
}

// Execute runs the selected command and closes the database whether or not
// the command succeeded.
func (c *cli) Execute() error {
	err := c.root.Execute()
	if c.app != nil {
		if closeErr := c.app.Close(); closeErr != nil {
			logrus.Warnf("Closing database: %v", closeErr)
		}
		c.app = nil
	}
	return err
}

// config loads the file and environment, letting flags win over both.
func (o *rootOptions) config() (types.Config, error) {
	fromFlags := func(cfg *types.Config) {
		if o.dbPath != "" {
			cfg.DBPath = o.dbPath
		}
	}

	if o.configPath == "" {
		return types.ConfigFromEnv(fromFlags)
	}
	return types.LoadConfig(o.configPath, fromFlags)
}
