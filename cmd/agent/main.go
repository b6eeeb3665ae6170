package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamflow-backend/internal/availability"
	"teamflow-backend/internal/cache"
	"teamflow-backend/internal/config"
	"teamflow-backend/internal/logger"
	"teamflow-backend/internal/remote"
	"teamflow-backend/internal/sync"
	"teamflow-backend/internal/synckey"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// The agent is a headless sync client: it keeps a local snapshot cache
// reconciled against the remote scope record and logs the roster's live
// availability, the same loop a dashboard runs behind its UI.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Setup(cfg.LogLevel)

	scopeKey := synckey.Normalize(cfg.SyncKey)
	if !synckey.Valid(scopeKey) {
		if cfg.AccountEmail == "" {
			logrus.Fatal("Either SYNC_KEY or ACCOUNT_EMAIL must be set")
		}
		scopeKey = synckey.AccountScope(cfg.AccountEmail)
	}
	agentLog := logger.WithScope(scopeKey)

	store, err := cache.Open(cfg.CachePath)
	if err != nil {
		logrus.Fatal("Failed to open cache:", err)
	}
	defer store.Close()

	client := remote.New(cfg.RemoteBaseURL, store)

	engine := sync.NewEngine(sync.Config{
		HeartbeatInterval: cfg.HeartbeatInterval,
		PushDebounce:      cfg.PushDebounceInterval,
		SeedOnFresh:       true,
	}, scopeKey, client, store, agentLog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := engine.Start(ctx); err != nil {
		logrus.Fatal("Failed to start sync engine:", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	logAvailability(engine, agentLog)
	for {
		select {
		case <-ticker.C:
			logAvailability(engine, agentLog)
		case sig := <-sigCh:
			agentLog.Infof("received %s, stopping", sig)
			engine.Stop()
			return
		}
	}
}

func logAvailability(engine *sync.Engine, agentLog *logger.Logger) {
	snap := engine.Snapshot()
	state := engine.State()
	for _, person := range snap.Persons {
		result := engine.Availability(person.ID)
		fields := map[string]interface{}{
			"person": person.Name,
			"status": string(result.Status),
		}
		if result.Status == availability.StatusBusy && result.Entry != nil {
			fields["event"] = result.Entry.EventName
		}
		if result.Status == availability.StatusInBetween {
			fields["gap_minutes"] = result.GapMinutes
		}
		agentLog.WithFields(fields).Info("availability")
	}
	agentLog.WithFields(map[string]interface{}{
		"sync_status": string(state.Status),
		"offline":     state.Offline,
	}).Info("sync state")
}
