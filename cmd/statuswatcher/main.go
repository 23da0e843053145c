package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"openhours/internal/app/deps"
	"openhours/internal/app/services"
	"openhours/internal/core/domain/logging"
	trackplacestatuses "openhours/internal/core/services/track_place_statuses"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	ticker := time.NewTicker(deps.Config.StatusTrackingPeriod)
	defer ticker.Stop()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting periodic place status tracking.",
		logging.Entry("periodSeconds", deps.Config.StatusTrackingPeriod.Seconds()),
	)

loop:
	for {
		select {
		case <-stopCh:
			log.Info(context.Background(), "Stopping periodic place status tracking.")
			break loop
		case <-ticker.C:
			log.Debug(context.Background(), "Launching place status tracking service.")
			result, err := services.TrackPlaceStatuses.Run(context.Background(), trackplacestatuses.Input{})
			if err != nil {
				log.Error(context.Background(), "Tracking service returned an error.", logging.Entry("err", err))
				continue
			}
			log.Info(
				context.Background(),
				"Tracking run finished.",
				logging.Entry("checked", result.Checked),
				logging.Entry("changed", result.Changed),
				logging.Entry("failed", result.Failed),
			)
		}
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
