package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukerupert/togethertracker/internal/config"
	"github.com/dukerupert/togethertracker/internal/logging"
	"github.com/dukerupert/togethertracker/internal/tracker"
	"github.com/dukerupert/togethertracker/internal/ui"
)

const Version = "0.1.0"

var (
	configPath string

	app          *tracker.App
	closeBackend = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:           "tracker",
	Short:         "TogetherTracker: family tasks, points and rewards",
	Long:          "TogetherTracker keeps a household's tasks, points, rewards and shopping list on this device.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default tracker.yaml or $TRACKER_CONFIG)")

	rootCmd.AddCommand(
		newSignUpCmd(),
		newSignInCmd(),
		newSignOutCmd(),
		newDashboardCmd(),
		newTaskCmd(),
		newRewardCmd(),
		newMemberCmd(),
		newShopCmd(),
		newSettingsCmd(),
	)

	err := rootCmd.Execute()
	if cerr := closeBackend(); cerr != nil && err == nil {
		err = fmt.Errorf("close storage: %w", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

func setup() error {
	path := configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	s, closer, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	closeBackend = closer

	app = tracker.New(s, tracker.Options{
		Logger:            logger,
		AllowRecompletion: cfg.Tasks.AllowRecompletion,
	})
	app.Restore()
	ui.ApplyTheme(app.DisplaySettings())
	return nil
}

func requireSession() error {
	if app.Account() == nil {
		return errors.New("not signed in (run tracker signup or tracker signin)")
	}
	return nil
}

// withSession is the pre-run hook for command groups that need a signed-in
// household. It replaces the root hook, so it runs setup itself.
func withSession(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	return requireSession()
}
