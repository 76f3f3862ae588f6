package main

import (
	"context"
	"flag"
	"os"

	"github.com/mdmdirector/phonewatch/checker"
	"github.com/mdmdirector/phonewatch/config"
	"github.com/mdmdirector/phonewatch/geelark"
	"github.com/mdmdirector/phonewatch/log"
	"github.com/mdmdirector/phonewatch/notify"
	"github.com/mdmdirector/phonewatch/utils"
	"github.com/pkg/errors"
)

func main() {
	flag.String("env-file", "", "Path to a .env file to load before reading the environment.")
	flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Bool("debug", false, "Enable debug output")
	flag.Bool("dry-run", false, "Log the alert email instead of sending it.")
	flag.Parse()

	if err := log.Setup(); err != nil {
		log.Fatalf("Unable to parse the log level - %s", err)
	}

	if err := loadEnvFile(); err != nil {
		log.Fatal(err)
	}

	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func loadEnvFile() error {
	if path := utils.EnvFile(); path != "" {
		return config.LoadDotEnv(path)
	}
	if _, err := os.Stat(".env"); err == nil {
		return config.LoadDotEnv(".env")
	}
	return nil
}

func run(ctx context.Context) error {
	cfg, err := config.FromEnvironment()
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}

	var notifier notify.Notifier = notify.DryRunNotifier{}
	if !utils.DryRun() {
		notifier, err = notify.New(cfg)
		if err != nil {
			return err
		}
	}

	client := geelark.NewClient(cfg.GeelarkAPI, cfg.BearerToken, cfg.HTTPTimeout)
	log.Debugf("checking %d phones against %s", len(cfg.DeviceIDs()), cfg.GeelarkAPI)

	_, err = checker.New(cfg, client, notifier).Run(ctx)
	return err
}
