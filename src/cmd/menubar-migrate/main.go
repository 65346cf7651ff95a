package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/menubar-go/menubar-go/src/configs"
	"github.com/menubar-go/menubar-go/src/consts"
	"github.com/menubar-go/menubar-go/src/log"
	"github.com/menubar-go/menubar-go/src/pkg/defaults"
	"github.com/menubar-go/menubar-go/src/pkg/hotkey"
	"github.com/menubar-go/menubar-go/src/pkg/migration"
	"github.com/menubar-go/menubar-go/src/pkg/notice"
	"github.com/menubar-go/menubar-go/src/pkg/sentry"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run 迁移失败不影响退出码，只有无法打开配置或存储时返回非零
func run(args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("menubar-migrate", "Migrate persisted "+consts.AppName+" settings to the current format.")
	app.Version(consts.AppVersion)
	app.Writer(stderr)
	confFile := app.Flag("config", "Path to the yaml config file.").Short('c').String()
	dbPath := app.Flag("db", "Path to the settings database. Overrides the config file and MENUBAR_DB.").String()
	debug := app.Flag("debug", "Enable debug logging.").Bool()
	envFile := app.Flag("env-file", "Optional dotenv file with SENTRY_DSN / MENUBAR_DB.").Default(".env").String()
	metricsFile := app.Flag("metrics-file", "Write migration counters in the Prometheus text format to this file.").String()

	if _, err := app.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if err := loadEnvFile(*envFile); err != nil {
		fmt.Fprintf(stderr, "failed to load %s: %v\n", *envFile, err)
		return 1
	}
	config, err := getConfig(*confFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	config.ApplyEnv()
	if *dbPath != "" {
		config.Store.Path = *dbPath
	}
	if *debug {
		config.Debug = true
	}
	if err := config.Verify(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	configs.SetCurrentConfig(config)

	logger, closer, err := log.New(config)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer closer.Close()
	logger.Debugf("%+v", consts.GetAppInfo())

	store, err := defaults.NewSQLiteStore(config.Store.Path, config.Store.CacheSize)
	if err != nil {
		logger.WithError(err).Error("failed to open settings store")
		return 1
	}
	defer store.Close()

	if err := sentry.Init(sentry.Options{
		DSN:         config.Sentry.DSN,
		Environment: config.Sentry.Environment,
		Release:     consts.AppVersion,
		Store:       store,
	}); err != nil {
		logger.WithError(err).Warn("failed to initialize sentry")
	}
	defer sentry.Flush(2 * time.Second)
	defer sentry.Recover()

	registry := prometheus.NewRegistry()
	metrics, err := migration.NewMetrics(registry)
	if err != nil {
		logger.WithError(err).Error("failed to register metrics")
		return 1
	}

	manager, err := migration.New(store, hotkey.NewSettings(store),
		migration.WithLogger(logger),
		migration.WithPresenter(notice.Multi(notice.NewWriterPresenter(stdout), notice.NewLogPresenter(logger))),
		migration.WithReporter(sentry.NewReporter()),
		migration.WithMetrics(metrics),
	)
	if err != nil {
		logger.WithError(err).Error("failed to create migration manager")
		return 1
	}

	report := manager.RunAll()
	logger.WithFields(logrus.Fields{
		"run_id":  report.RunID,
		"db_path": store.Path(),
		"failed":  len(report.Failed()),
	}).Info("settings migration finished")

	if *metricsFile != "" {
		if err := prometheus.WriteToTextfile(*metricsFile, registry); err != nil {
			logger.WithError(err).Warn("failed to write metrics file")
		}
	}
	return 0
}
