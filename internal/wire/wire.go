// Package wire provides dependency injection for the vouch application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	"github.com/example/vouch/internal/adapters/memstash"
	"github.com/example/vouch/internal/adapters/sqlite"
	"github.com/example/vouch/internal/app"
	"github.com/example/vouch/internal/config"
	"github.com/example/vouch/internal/db"
	"github.com/example/vouch/internal/ports/primary"
)

var (
	cfg                *config.Config
	messenger          *sqlite.ChatMessenger
	recommendService   primary.RecommendService
	checkService       primary.BackgroundCheckService
	observationService primary.ObservationService
	broadcastService   primary.BroadcastService
	workflowService    primary.WorkflowService
	once               sync.Once
)

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Messenger returns the singleton chat messenger adapter.
func Messenger() *sqlite.ChatMessenger {
	once.Do(initServices)
	return messenger
}

// RecommendService returns the singleton RecommendService instance.
func RecommendService() primary.RecommendService {
	once.Do(initServices)
	return recommendService
}

// BackgroundCheckService returns the singleton BackgroundCheckService instance.
func BackgroundCheckService() primary.BackgroundCheckService {
	once.Do(initServices)
	return checkService
}

// ObservationService returns the singleton ObservationService instance.
func ObservationService() primary.ObservationService {
	once.Do(initServices)
	return observationService
}

// BroadcastService returns the singleton BroadcastService instance.
func BroadcastService() primary.BroadcastService {
	once.Do(initServices)
	return broadcastService
}

// WorkflowService returns the singleton WorkflowService instance.
func WorkflowService() primary.WorkflowService {
	once.Do(initServices)
	return workflowService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Load config from the working directory, falling back to defaults
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	cfg, err = config.LoadConfig(cwd)
	if err != nil {
		cfg = config.Default()
	}

	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	checkRepo := sqlite.NewBackgroundCheckRepository(database)
	observationRepo := sqlite.NewObservationRepository(database)
	replicaRepo := sqlite.NewReplicaRepository(database)
	logWriter := sqlite.NewWorkflowLogWriter(database)
	messenger = sqlite.NewChatMessenger(database)
	stash := memstash.New()

	// Create services (primary ports implementation)
	recommendService = app.NewRecommendService(stash, checkRepo, observationRepo, replicaRepo, messenger, logWriter, cfg.ReviewChannelID, cfg.ReactionMarker, cfg.SlotCount, cfg.DraftTTL())
	checkService = app.NewBackgroundCheckService(checkRepo, observationRepo, logWriter, cfg.SlotCount)
	observationService = app.NewObservationService(checkRepo, observationRepo, replicaRepo, messenger, logWriter, cfg.SlotCount, cfg.PollChannelID)
	broadcastService = app.NewBroadcastService(checkRepo, observationRepo, replicaRepo, messenger, logWriter, cfg.SlotCount)
	workflowService = app.NewWorkflowService(recommendService, checkService, observationService, broadcastService, logWriter)
}
