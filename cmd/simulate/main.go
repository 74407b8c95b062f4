package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/kiryu-dev/chess/internal/config"
	"github.com/kiryu-dev/chess/internal/usecase/simulate"
	"github.com/kiryu-dev/chess/pkg/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "./config.yml", "path to config")
	outPath := flag.String("out", "", "path for the json report, stdout by default")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()
	logger, err := newLogger(*debug)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	cfg, err := config.New(*cfgPath)
	if err != nil {
		logger.Fatal(err.Error())
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case s := <-sigChan:
			logger.Info("captured signal: " + s.String())
			cancel()
		}
	}()
	report, err := simulate.New(cfg.Simulate, logger).Run(ctx)
	if err != nil {
		logger.Fatal(err.Error())
	}
	if err := writeReport(*outPath, report); err != nil {
		logger.Fatal(err.Error())
	}
	logger.Info("simulation finished",
		zap.Int("games", report.Games),
		zap.Int("white wins", report.WhiteWins),
		zap.Int("black wins", report.BlackWins),
		zap.Int("unfinished", report.Unfinished))
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func writeReport(path string, report simulate.Report) error {
	data, err := utils.MarshalJsonIndent(report)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WithMessage(err, "write report")
	}
	return nil
}
