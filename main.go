package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"go.uber.org/zap"

	"suah.dev/chipflow/flow"
)

const (
	chipPadding  = 4
	windowWidth  = 480
	windowHeight = 320
)

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runApp(ctx context.Context, cfg *Config, col *collector, logger *zap.Logger) {
	a := app.NewWithID("dev.suah.chipflow")
	a.Settings().SetTheme(&chipTheme{padding: chipPadding})
	w := a.NewWindow("chipflow")

	b := newBoard(cfg, logger.Named("board"))
	b.fallbackWidth = windowWidth
	b.onCopy = func(label string) {
		w.Clipboard().SetContent(label)
		b.prependLog(fmt.Sprintf("copied %q", label))
	}

	kick := make(chan struct{}, 1)
	desk, isDesktop := a.(desktop.App)
	if isDesktop {
		m := fyne.NewMenu("chipflow",
			fyne.NewMenuItem("Show", func() {
				w.Show()
			}),
			fyne.NewMenuItem("Refresh", func() {
				select {
				case kick <- struct{}{}:
				default:
				}
			}))
		desk.SetSystemTrayMenu(m)
	}
	b.onIcon = func(r fyne.Resource) {
		w.SetIcon(r)
		if isDesktop {
			desk.SetSystemTrayIcon(r)
		}
	}

	b.prependLog("starting...")

	w.SetContent(container.NewAppTabs(
		container.NewTabItem("Board", container.NewVScroll(b.flow)),
		container.NewTabItem("Logs", container.NewStack(b.logs)),
	))
	w.Resize(fyne.NewSize(windowWidth, windowHeight))
	w.SetCloseIntercept(func() {
		w.Hide()
	})

	go b.run(ctx, col, cfg.interval, kick)

	w.ShowAndRun()
}

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to the JSON config")
	printMode := flag.Bool("print", false, "print chips wrapped to the terminal width and exit")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	flow.SetLogger(logger.Named("flow"))

	cfg := &Config{}
	if err := cfg.Load(*configPath); err != nil {
		logger.Fatal("can't load config", zap.String("path", *configPath), zap.Error(err))
	}

	col := &collector{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    logger.Named("collect"),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *printMode {
		chips, errs := col.collect(ctx)
		for _, err := range errs {
			logger.Warn("source failed", zap.Error(err))
		}
		if err := printChips(os.Stdout, chips, len(errs) > 0, termWidth(os.Stdout), int(cfg.Spacing)); err != nil {
			logger.Error("can't print chips", zap.Error(err))
		}
		return
	}

	runApp(ctx, cfg, col, logger)
}
