package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"zonecast/config"
	"zonecast/infras/otel"
	"zonecast/internal/domains/clock"
	"zonecast/internal/domains/converter/model"
	"zonecast/internal/domains/converter/resolver"
	"zonecast/internal/domains/converter/service"
	"zonecast/shared/logger"
	"zonecast/shared/timezone"
)

var (
	cfg       *config.Config
	converter service.Converter
	source    *clock.Source

	sourceZone  string
	targetZones []string
	basis       string
)

func Execute() error {
	root := &cobra.Command{
		Use:          "zonecast",
		Short:        "Convert dates and times between time zones",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Get()

			logger.InitFromConfig(cfg)

			if sourceZone != "" {
				cfg.Converter.SourceZone = sourceZone
			}

			if cmd.Flags().Changed("targets") {
				cfg.Converter.TargetZones = targetZones
			}

			switch basis {
			case "":
			case config.BasisCivil, config.BasisInstant:
				cfg.Converter.Basis = basis
			default:
				return fmt.Errorf("basis must be %q or %q", config.BasisCivil, config.BasisInstant)
			}

			provider := timezone.NewProvider(timezone.NewCatalogFromConfig(cfg))
			converter = service.New(resolver.New(provider, cfg), provider, cfg, otel.New(cfg))
			source = clock.NewSource(cfg)

			return nil
		},
	}

	root.PersistentFlags().StringVarP(&sourceZone, "source", "s", "", "source zone (default from CONVERTER_SOURCE_ZONE)")
	root.PersistentFlags().StringSliceVarP(&targetZones, "targets", "t", nil, "comma separated target zones (default from CONVERTER_TARGET_ZONES)")
	root.PersistentFlags().StringVar(&basis, "basis", "", "target offset basis: civil or instant")

	root.AddCommand(convertCmd(), zonesCmd(), clockCmd())

	return root.Execute()
}

func configuredTargets() []model.ZoneID {
	targets := model.NewTargetZoneSet(model.ZoneID(cfg.Converter.SourceZone))

	for _, zone := range cfg.Converter.TargetZones {
		targets.Add(model.ZoneID(zone), model.ZoneID(cfg.Converter.SourceZone))
	}

	return targets.Zones()
}

func printTimes(out io.Writer, times []model.ConvertedTime) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ZONE\tTIME\tDATE\tABBR\tOFFSET")

	for _, t := range times {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			timezone.DisplayName(t.Zone.String()), t.Time, t.Date, t.Abbreviation, timezone.FormatOffset(t.Offset))
	}

	return w.Flush()
}
