package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"dominoes/internal/app"
	"dominoes/internal/config"
	"dominoes/internal/domain"
	"dominoes/internal/logging"
	"dominoes/internal/ports/console"
	"dominoes/internal/random"
)

func main() {
	rt, err := config.ParseRuntime(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse flags: %v\n", err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, rt, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "dominoes: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run plays one game on in/out. Logs go to the rotating dir when set, to
// errOut at debug level, and nowhere otherwise so they never mix with prompts.
func run(ctx context.Context, rt config.Runtime, in io.Reader, out, errOut io.Writer) error {
	logOpts := logging.Options{Level: rt.LogLevel, Dir: rt.LogDir}
	if rt.LogDir == "" && rt.LogLevel == logrus.DebugLevel.String() {
		logOpts.Out = errOut
	}
	logger, closeLog, err := logging.New(logOpts)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(rt.ConfigPath)
	if err != nil {
		logger.WithError(err).Error("load config")
		return err
	}
	rng, seed, err := random.Source(rt.Seed)
	if err != nil {
		logger.WithError(err).Error("seed")
		return err
	}
	logger.WithFields(logrus.Fields{"seed": seed, "config": rt.ConfigPath}).Info("starting dominoes")

	names := [domain.PlayerCount]string{rt.Player1, rt.Player2}
	for seat := range names {
		if names[seat] == "" {
			names[seat] = cfg.PlayerName(seat)
		}
	}

	svc := app.NewService(rng, logger)
	res, err := console.NewSession(svc, in, out, cfg.DomainRules(), logger).Run(ctx, names)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"game_id":   res.GameID,
		"winner":    res.Winner,
		"abandoned": res.Abandoned,
		"turns":     res.Turns,
	}).Info("session finished")

	fmt.Fprintln(out, "\n[Game ended safely. Goodbye!]")
	return nil
}
