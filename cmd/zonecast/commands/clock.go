package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"zonecast/internal/domains/converter/model"
	"zonecast/shared/constant"
)

func clockCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Print live clocks for the source and target zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runClock(ctx, cmd, count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after this many ticks (0 runs until interrupted)")

	return cmd
}

func runClock(ctx context.Context, cmd *cobra.Command, count int) error {
	feed := source.NewFeed()
	defer feed.Stop()

	ticks, err := feed.Start(ctx)
	if err != nil {
		return err
	}

	zones := append([]model.ZoneID{model.ZoneID(cfg.Converter.SourceZone)}, configuredTargets()...)
	out := cmd.OutOrStdout()

	for ticked := 0; count <= 0 || ticked < count; ticked++ {
		now, ok := <-ticks
		if !ok {
			return nil
		}

		fmt.Fprintf(out, "\n%s UTC\n", now.UTC().Format(constant.ClockLayoutSecond))

		if err := printTimes(out, converter.CurrentTimes(ctx, now, zones)); err != nil {
			return err
		}
	}

	return nil
}
