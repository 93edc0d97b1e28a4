package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/homedash/homedash/internal/app"
	"github.com/homedash/homedash/internal/config"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

func init() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	flagSet := pflag.NewFlagSet("homedash", pflag.ContinueOnError)
	configPath := flagSet.String("config", config.DefaultPath, "path to the YAML configuration file")
	summary := flagSet.Bool("summary", false, "print the dashboard summary and exit")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if *summary {
		if err := application.PrintSummary(context.Background(), os.Stdout, language.AmericanEnglish); err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := application.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
