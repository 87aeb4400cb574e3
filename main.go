package main

import (
	"flag"
	"os"

	"github.com/emzola/librarium/config"
	"github.com/emzola/librarium/data"
	"github.com/emzola/librarium/handler"
	"github.com/emzola/librarium/internal/jsonlog"
	"github.com/emzola/librarium/repository"
	"github.com/emzola/librarium/service"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

func main() {
	logger := jsonlog.New(os.Stderr, jsonlog.LevelInfo)

	// Initialize configuration: defaults, then file and environment, with
	// command line flags taking precedence.
	var (
		configPath string
		env        string
		logLevel   string
		name       string
		demo       bool
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config file")
	flag.StringVar(&env, "env", "", "Environment(development|staging|production)")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level(debug|info|error|fatal|off)")
	flag.StringVar(&name, "name", "", "Library name")
	flag.BoolVar(&demo, "demo", false, "Run the fixed demo scenario instead of the menu")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.PrintFatal(err, map[string]string{"config": configPath})
	}
	if env != "" {
		cfg.Env = env
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if name != "" {
		cfg.Library.Name = name
	}
	cfg.Demo = demo

	logger = jsonlog.New(os.Stderr, jsonlog.ParseLevel(cfg.LogLevel))

	// Application layers
	address, err := data.NewAddress(cfg.Library.Street, cfg.Library.Number, cfg.Library.PostalCode, cfg.Library.Locality)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	repo := repository.New()
	service, err := service.New(cfg.Library.Name, address, logger, repo)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	handler := handler.New(cfg, logger, service, os.Stdin, os.Stdout)

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	logger.PrintInfo("library ready", map[string]string{
		"name": app.service.Name(),
		"env":  app.config.Env,
	})

	if app.config.Demo {
		if err := app.handler.RunDemo(); err != nil {
			logger.PrintFatal(err, nil)
		}
		return
	}
	app.handler.Run()
	logger.PrintInfo("session ended", nil)
}
