package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/orbital/audio"
	"github.com/lixenwraith/orbital/config"
	"github.com/lixenwraith/orbital/effect"
	"github.com/lixenwraith/orbital/engine"
	"github.com/lixenwraith/orbital/logging"
	"github.com/lixenwraith/orbital/status"
	"github.com/lixenwraith/orbital/terminal"
)

func newRunCmd(app *App) *cobra.Command {
	var (
		logFile string
		noSound bool
		stats   bool
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the ring interactively in the terminal",
		Long: `Run the ring interactively in the terminal.

Mouse: click a hub to navigate, hold to expand, drag on the ring to rotate,
wheel to zoom. Keys: Tab/arrows move focus, Enter activates, Space expands,
digits jump, +/- resize, Escape collapses or closes. Ctrl+C quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, closeLog, err := openLog(logFile)
			if err != nil {
				return err
			}
			defer closeLog()
			logging.ConfigureRuntime(w)
			log := logging.New("cli")

			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			catalog, err := app.loadCatalog()
			if err != nil {
				return err
			}
			keys, err := app.loadKeyTable()
			if err != nil {
				return err
			}

			ctrl, err := engine.NewController(cfg, catalog, engine.WithKeyTable(keys))
			if err != nil {
				return err
			}
			defer ctrl.Dispose()

			router := effect.NewRouter()
			analytics := status.NewAnalytics(status.NewRegistry())
			router.Register(analytics)

			if cfg.HapticEnabled && !noSound {
				haptics := audio.NewHaptics(nil)
				if err := haptics.Initialize(); err != nil {
					log.Warn().Err(err).Msg("audio unavailable, haptics disabled")
				} else {
					defer haptics.Cleanup()
					router.Register(haptics)
				}
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("screen create failed: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("screen init failed: %w", err)
			}
			terminal.SetCrashScreen(screen)
			defer func() {
				if r := recover(); r != nil {
					terminal.HandleCrash(r)
				}
			}()
			screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
			screen.HideCursor()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			host := terminal.NewHost(screen, ctrl, router)
			if watch {
				err := config.Watch(app.ConfigPath,
					func(c config.Config) { host.Reload(app.forSubject(c)) },
					func(err error) { log.Warn().Err(err).Msg("config edit rejected") })
				if err != nil {
					terminal.SetCrashScreen(nil)
					screen.Fini()
					return err
				}
			}
			log.Info().Str("variant", cfg.Variant).Str("layout", cfg.Layout).Msg("session started")
			runErr := host.Run(ctx)
			terminal.SetCrashScreen(nil)
			screen.Fini()

			if stats {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, titleStyle.Render("session"))
				for _, line := range analytics.Lines() {
					fmt.Fprintln(out, "  "+line)
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "orbital.log", "log destination; empty disables logging")
	cmd.Flags().BoolVar(&noSound, "no-sound", false, "do not render haptic pulses as audio clicks")
	cmd.Flags().BoolVar(&stats, "stats", false, "print session analytics on exit")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-apply --config on every save")
	return cmd
}

// openLog keeps log output off the terminal the ring draws on
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file open failed (%s): %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
