package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"zonecast/internal/domains/converter/model"
	"zonecast/shared/constant"
	"zonecast/shared/timezone"
)

func convertCmd() *cobra.Command {
	var date, clockValue string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a date and time into the target zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			zone := model.ZoneID(cfg.Converter.SourceZone)
			ctx := cmd.Context()

			current := converter.CurrentTimes(ctx, source.Now(), []model.ZoneID{zone})
			if len(current) == 0 {
				return fmt.Errorf("unknown source zone %q", zone)
			}

			wall := current[0].Civil.AsUTC()

			if date == "" {
				date = wall.Format(constant.DateLayout)
			}

			if clockValue == "" {
				clockValue = wall.Format(constant.ClockLayoutSecond)
			}

			civil, err := model.ParseCivilDateTime(date, clockValue)
			if err != nil {
				return err
			}

			conversion, err := converter.Convert(ctx, model.SourceSelection{Civil: civil, Zone: zone}, configuredTargets())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s %s (%s = %s UTC)\n\n",
				timezone.DisplayName(zone.String()), civil, zone, conversion.UTC.Format(constant.CivilLayout))

			if len(conversion.Times) == 0 {
				fmt.Fprintln(out, constant.ResponseMessageNoTargets)
			} else if err := printTimes(out, conversion.Times); err != nil {
				return err
			}

			for _, skipped := range conversion.Skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %s\n", skipped.Zone, skipped.Reason)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date as YYYY-MM-DD (default today in the source zone)")
	cmd.Flags().StringVar(&clockValue, "time", "", "time as HH:MM or HH:MM:SS (default now in the source zone)")

	return cmd
}
