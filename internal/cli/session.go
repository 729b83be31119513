package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessro/ringer/internal/config"
	"github.com/tessro/ringer/internal/event"
	"github.com/tessro/ringer/internal/launch"
	"github.com/tessro/ringer/internal/logging"
)

// formFlags are the flags that seed the launch form.
type formFlags struct {
	cmd        *cobra.Command
	executable string
	tower      string
	stage      int
	method     string
}

func (f *formFlags) register(cmd *cobra.Command) {
	f.cmd = cmd
	fl := cmd.Flags()
	fl.StringVar(&f.executable, "executable", "", "bot executable (overrides config)")
	fl.StringVarP(&f.tower, "tower", "t", "", "tower ID")
	fl.IntVarP(&f.stage, "stage", "s", 0, "number of bells (2-24)")
	fl.StringVarP(&f.method, "method", "m", "", `method name, e.g. "Plain Bob"`)
}

func (f formFlags) changed(name string) bool {
	return f.cmd != nil && f.cmd.Flags().Changed(name)
}

// form merges config defaults with any flags the user set.
func (f formFlags) form(cfg *config.Config) (launch.Form, error) {
	form := launch.Form{
		Identifier: cfg.GetTowerID(),
		Stage:      cfg.GetStage(),
		Method:     cfg.GetMethod(),
	}
	if f.changed("tower") {
		form.Identifier = f.tower
	}
	if f.changed("stage") {
		if err := config.ValidateStage(f.stage); err != nil {
			return launch.Form{}, fmt.Errorf("--stage: %w", err)
		}
		form.Stage = f.stage
	}
	if f.changed("method") {
		form.Method = f.method
	}
	return form, nil
}

// sessionOptions controls how a command wires the supervisor.
type sessionOptions struct {
	flags formFlags

	// quietSpawner sends the bot's stdout and stderr to the bot log
	// instead of the terminal.
	quietSpawner bool
	// logToStderr mirrors ringer's own log to stderr.
	logToStderr bool
}

// session is everything one ringer invocation runs on: the loaded
// config, the form state, the supervisor and the event bus.
type session struct {
	cfgPath string
	cfg     *config.Config
	state   *launch.State
	sup     *launch.Supervisor
	spawner *launch.ExecSpawner
	bus     *event.Bus

	// warning is a non-fatal setup problem, e.g. a missing executable.
	warning error

	closers []func()
}

func newSession(opts sessionOptions) (_ *session, err error) {
	s := &session{bus: event.New()}
	defer func() {
		if err != nil {
			s.Close()
		}
	}()

	s.cfgPath, err = config.Path(configPath)
	if err != nil {
		return nil, err
	}
	s.cfg, err = config.LoadFromPath(s.cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", s.cfgPath, err)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", s.cfgPath, err)
	}

	level := logLevel
	if level == "" {
		level = s.cfg.GetLogLevel()
	}
	if err := config.ValidateLogLevel(level); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	var cleanup func()
	if opts.logToStderr {
		cleanup, err = logging.SetupMulti(logging.DefaultLogPath(), os.Stderr, logging.ParseLevel(level))
	} else {
		cleanup, err = logging.Setup(logging.DefaultLogPath(), logging.ParseLevel(level))
	}
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, cleanup)

	form, err := opts.flags.form(s.cfg)
	if err != nil {
		return nil, err
	}

	executable := s.cfg.GetExecutable()
	pinned := opts.flags.changed("executable")
	if pinned {
		executable = opts.flags.executable
	}
	if err := config.ValidateExecutable(executable); err != nil {
		slog.Warn("bot executable unusable", "executable", executable, "error", err)
		s.warning = err
	}

	// The bot runs in its own process group, which is never the
	// terminal's foreground group, so a read from the terminal would stop
	// it with SIGTTIN. It gets /dev/null instead.
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, func() { devNull.Close() })
	spawner := &launch.ExecSpawner{Stdin: devNull}
	if opts.quietSpawner {
		botLog, err := logging.OpenAppend(s.cfg.GetBotLog())
		if err != nil {
			return nil, fmt.Errorf("open bot log: %w", err)
		}
		s.closers = append(s.closers, func() { botLog.Close() })
		spawner.Stdout = botLog
		spawner.Stderr = botLog
	}

	s.spawner = spawner
	s.state = launch.NewState(form)
	s.sup = launch.NewSupervisor(executable, spawner, s.bus)

	if s.cfg.WatchEnabled() {
		s.watch(pinned)
	}

	slog.Info("session ready",
		"config", s.cfgPath,
		"executable", executable,
		"tower", form.Identifier,
		"stage", form.Stage,
		"method", form.Method,
	)
	return s, nil
}

// watch reloads the config on change and swaps the executable, unless
// --executable pinned it.
func (s *session) watch(pinned bool) {
	w := config.NewWatcher(s.cfgPath)
	w.OnReload(func(cfg *config.Config) {
		if !pinned {
			s.sup.SetExecutable(cfg.GetExecutable())
		}
		event.Publish(s.bus, event.ConfigReloaded{Path: s.cfgPath, Executable: s.sup.Executable()})
	})
	if err := w.Start(context.Background()); err != nil {
		slog.Warn("config watcher not started", "path", s.cfgPath, "error", err)
		return
	}
	s.closers = append(s.closers, func() {
		if err := w.Stop(); err != nil {
			slog.Debug("config watcher stop", "error", err)
		}
	})
}

// Close releases everything the session opened, newest first.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
