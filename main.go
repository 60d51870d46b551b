package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"go.uber.org/zap"

	"github.com/telclab/topup-sandbox/config"
	"github.com/telclab/topup-sandbox/runner"
)

// LoadConfig loads the default configuration and overrides it with the
// config file specified by the --config flag, when present.
func LoadConfig() *koanf.Koanf {
	configPath := kingpin.Flag("config", "Path to the application config file").Short('c').Default("config.yml").String()

	kingpin.Parse()

	k := koanf.New(".")
	_ = k.Load(rawbytes.Provider(config.DefaultConfig), yaml.Parser())

	if *configPath != "" {
		_ = k.Load(file.Provider(*configPath), yaml.Parser())
	}

	return k
}

func newLogger(k *koanf.Koanf, appKonf *config.Config) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	_ = cfg.Level.UnmarshalText([]byte(k.String("logger.level")))
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = appKonf.Application
	cfg.OutputPaths = []string{"stdout"}

	logger, _ := cfg.Build()

	return logger
}

func main() {
	k := LoadConfig()
	appKonf := config.Config{}

	if err := k.Unmarshal("", &appKonf); err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if err := appKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !appKonf.IsProdMode {
		k.Print()
	}

	logger := newLogger(k, &appKonf)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run, err := runner.New(&appKonf, logger)
	if err != nil {
		logger.Fatal("cannot create runner", zap.Error(err))
	}

	defer func() {
		if err := run.Close(context.Background()); err != nil {
			logger.Error("error closing runner", zap.Error(err))
		}
	}()

	if err := run.Run(ctx); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}
