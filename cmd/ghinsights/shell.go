package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/m-zajac/ghinsights/internal/chart"
	"github.com/m-zajac/ghinsights/internal/render"
	"github.com/spf13/cobra"
)

func newShellCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Read github links line by line and print their dashboards",
		Long: `Every line starts a new query. A query still running when the next line
is entered is cancelled and its result is never printed. Type "exit" to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			session := app.NewSession(c.newService())
			return runShell(ctx, session, cmd.InOrStdin(), cmd.OutOrStdout(), c)
		},
	}
}

func runShell(ctx context.Context, session *app.Session, in io.Reader, out io.Writer, c *cli) error {
	l := c.l.WithField("component", "shell")
	w := &syncWriter{w: out}

	var wg sync.WaitGroup
	defer wg.Wait()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			session.Cancel()
			return nil
		}

		w.println(render.Loading(input))

		wg.Add(1)
		go func() {
			defer wg.Done()

			state, current := session.Run(ctx, input)
			if !current {
				l.Debugf("discarding stale result of %q", input)
				return
			}
			switch state.Stage {
			case app.StageReady:
				w.print(render.Dashboard(chart.Build(state.Report)))
			case app.StageFailed:
				w.println(render.Error(state.Err))
			}
		}()
	}

	if err := scanner.Err(); err != nil {
		session.Cancel()
		return fmt.Errorf("reading input: %w", err)
	}

	return nil
}

type syncWriter struct {
	m sync.Mutex
	w io.Writer
}

func (w *syncWriter) print(s string) {
	w.m.Lock()
	defer w.m.Unlock()

	_, _ = fmt.Fprint(w.w, s)
}

func (w *syncWriter) println(s string) {
	w.print(s + "\n")
}
