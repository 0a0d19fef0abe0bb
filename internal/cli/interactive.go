package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yildizm/testimonialhero/internal/clipboard"
	"github.com/yildizm/testimonialhero/internal/config"
	"github.com/yildizm/testimonialhero/internal/logger"
	"github.com/yildizm/testimonialhero/internal/testimonial"
	"github.com/yildizm/testimonialhero/internal/ui"
)

// runInteractive opens the TUI on the configured testimonial source
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	log := getLogger()
	defer func() { _ = log.Sync() }()

	deps, fixture, err := buildDeps(cfg, clipboard.NewSystem(), log)
	if err != nil {
		return err
	}

	opts := ui.RunOptions{AltScreen: cfg.UI.AltScreen}
	if cfg.Testimonials.Watch {
		opts.Fixture = fixture
	}

	log.Info("starting interactive session",
		zap.String("source", cfg.Testimonials.Source),
		zap.Bool("watch", opts.Fixture != nil))

	if err := ui.Run(deps, opts); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}

// buildDeps wires the interface collaborators from cfg. The fixture is nil
// unless the source is a file.
func buildDeps(cfg *config.Config, clip clipboard.Writer, log *zap.Logger) (*ui.Deps, *testimonial.FileSource, error) {
	source, fixture, err := openSource(cfg.Testimonials)
	if err != nil {
		return nil, nil, err
	}
	now, err := testimonial.ClockAt(cfg.Testimonials.ReferenceDate)
	if err != nil {
		return nil, nil, err
	}

	deps := ui.NewDeps(clip, source, linksFromConfig(cfg.Links), logger.Component(log, "ui"))
	deps.Now = now
	return deps, fixture, nil
}

// openSource returns the configured testimonial source. The fixture is nil
// unless the source is a file.
func openSource(cfg config.TestimonialsConfig) (testimonial.Source, *testimonial.FileSource, error) {
	if cfg.Source != config.SourceFile {
		return testimonial.Mock(), nil, nil
	}

	fixture, err := testimonial.LoadFile(config.ExpandPath(cfg.Path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load testimonials: %w", err)
	}
	return fixture, fixture, nil
}

func linksFromConfig(cfg config.LinksConfig) testimonial.Links {
	return testimonial.Links{Host: cfg.Host, DemoSlug: cfg.DemoSlug}
}
