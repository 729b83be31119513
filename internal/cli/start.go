package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tessro/ringer/internal/event"
	"github.com/tessro/ringer/internal/launch"
)

var startFlags formFlags

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Launch the bot without the form",
	Long: `Launch the bot once with the configured tower, stage and method, then wait.

The bot writes to this terminal and reads nothing from it (its stdin is
/dev/null). It is stopped on SIGINT or SIGTERM; if it exits on its own,
start returns with its exit status.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	s, err := newSession(sessionOptions{
		flags:       startFlags,
		logToStderr: true,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	if s.warning != nil {
		return s.warning
	}

	exited := make(chan event.ProcessExited, 1)
	unsubscribe := event.Subscribe(s.bus, func(ev event.ProcessExited) {
		select {
		case exited <- ev:
		default:
		}
	})
	defer unsubscribe()

	out := cmd.OutOrStdout()
	if err := s.sup.Start(s.state); err != nil {
		if !launch.StartedWithWarning(err) {
			return fmt.Errorf("start: %w", err)
		}
		fmt.Fprintf(out, "⚠️  %v\n", err)
	}

	full, _ := s.state.Visible().FullMethodName()
	fmt.Fprintf(out, "🔔 Ringing %s at tower %s (pid %d)\n", full, s.state.Visible().Identifier, s.state.Active().Pid())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var exitErr error
	select {
	case sig := <-sigCh:
		fmt.Fprintf(out, "🛑 Stopping bot (%s)\n", sig)
	case ev := <-exited:
		if ev.Err != nil {
			exitErr = fmt.Errorf("bot exited: %w", ev.Err)
		} else {
			fmt.Fprintf(out, "🔕 Bot exited (pid %d)\n", ev.PID)
		}
	}

	if err := s.sup.OnWindowClose(s.state); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return exitErr
}

func init() {
	startFlags.register(startCmd)
	rootCmd.AddCommand(startCmd)
}
