package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/seeyaaaaa/daily-dairy/pkg/app"
	"github.com/seeyaaaaa/daily-dairy/pkg/domain/service"
	"github.com/seeyaaaaa/daily-dairy/pkg/infrastructure/provider"
	"github.com/seeyaaaaa/daily-dairy/pkg/infrastructure/store"
	"github.com/seeyaaaaa/daily-dairy/transport"
)

func main() {
	cliApp := &cli.App{
		Name:   "dailydairy",
		Usage:  "milk delivery subscription service",
		Action: runServer,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.WithError(err).Fatal("service stopped")
	}
}

func runServer(_ *cli.Context) error {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	memStore := store.NewMemoryStore()
	auth := provider.NewMockAuth(cfg.OTPDelay, cfg.ResendCooldown)
	notifier := provider.NewLogNotifier()
	walker := provider.NewWalker(provider.LatLng{Lat: cfg.DairyLat, Lng: cfg.DairyLng}, cfg.WalkStepDeg, time.Now().UnixNano())

	dispatcher := app.NewLoggingDispatcher(notifier)

	sessions := service.NewSessionService(memStore, auth, cfg.DairyName, dispatcher)
	profile := service.NewProfileService(memStore, memStore, dispatcher)
	subscriptions := service.NewSubscriptionService(memStore, memStore, memStore, dispatcher)
	deliveries := service.NewDeliveryService(memStore, memStore, memStore, memStore, dispatcher)
	roster := service.NewRosterService(memStore, dispatcher)

	router := transport.Router(memStore, sessions, profile, subscriptions, deliveries, roster, walker)

	addr := ":" + cfg.Port
	srv := &http.Server{Addr: addr, Handler: router}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("addr", addr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := walker.Run(ctx, cfg.WalkTick); err != nil && err != context.Canceled {
			return err
		}
		return nil
	})

	g.Go(func() error {
		waitForKillSignal(ctx)
		log.Info("shutting down")
		err := srv.Shutdown(context.Background())
		cancel()
		return err
	})

	return g.Wait()
}

func waitForKillSignal(ctx context.Context) {
	killSignalChan := make(chan os.Signal, 1)
	signal.Notify(killSignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(killSignalChan)

	select {
	case <-ctx.Done():
	case killSignal := <-killSignalChan:
		switch killSignal {
		case os.Interrupt:
			log.Info("Got SIGINT...")
		case syscall.SIGTERM:
			log.Info("Got SIGTERM...")
		}
	}
}
