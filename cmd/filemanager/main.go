package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileManager/internal/codec"
	"github.com/GriffinCanCode/FileManager/internal/config"
	"github.com/GriffinCanCode/FileManager/internal/logging"
	"github.com/GriffinCanCode/FileManager/internal/providers/filesystem"
	"github.com/GriffinCanCode/FileManager/internal/providers/system"
	"github.com/GriffinCanCode/FileManager/internal/shell"
)

func main() {
	username := flag.String("username", "", "name used to address the session user")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "usage: filemanager --username=<name>")
		os.Exit(1)
	}

	cfg := config.LoadOrDefault()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	compressor, err := codec.ForName(cfg.Shell.Compression)
	if err != nil {
		logger.Fatal("invalid compression config", zap.Error(err))
	}

	host := system.NewProvider()

	startDir := cfg.Shell.StartDir
	if startDir == "" {
		startDir, err = host.HomeDir()
		if err != nil {
			logger.Fatal("cannot determine start directory", zap.Error(err))
		}
	}

	session := shell.NewSession(*username, startDir, logger)

	interp := shell.NewInterpreter(shell.Options{
		Session:  session,
		Storage:  filesystem.NewOS(),
		Host:     host,
		Codec:    compressor,
		Terminal: shell.NewTerminal(os.Stdin, os.Stdout),
		Logger:   logger,
	})

	// An interrupt at any point becomes a clean farewell.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interp.Run(ctx)
}
