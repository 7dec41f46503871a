package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/botsportsempire/gridiron/api"
	"github.com/botsportsempire/gridiron/api/handlers"
	"github.com/botsportsempire/gridiron/communication"
	"github.com/botsportsempire/gridiron/config"
	"github.com/botsportsempire/gridiron/insights"
	"github.com/botsportsempire/gridiron/mood"
	"github.com/botsportsempire/gridiron/registry"
	"github.com/botsportsempire/gridiron/storage"
	"github.com/botsportsempire/gridiron/workflows"

	"github.com/gin-gonic/gin"
	natsserver "github.com/nats-io/nats-server/v2/server"
)

func main() {
	// Parse command line flags
	dataDir := flag.String("data-dir", config.DataDir(), "BadgerDB data directory")
	apiPort := flag.String("api-port", config.HTTPPort(), "API server port")
	natsURL := flag.String("nats", config.NATSURL(), "NATS URL")
	embeddedNATS := flag.Bool("embedded-nats", false, "Run an in-process NATS server instead of dialing one")
	flag.Parse()

	// Create the storage directory
	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	db, err := storage.GetStorage(*dataDir)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer storage.CloseAll()

	bots := storage.NewBotRepository(db)
	leagues := storage.NewLeagueRepository(db)
	trades := storage.NewTradeRepository(db)
	engine := mood.NewEngine(bots)

	// Rebuild the public directory from persisted bots so restarts keep the roster
	all, err := bots.ListBots()
	if err != nil {
		log.Fatalf("Failed to load bots: %v", err)
	}
	registry.Warm(all)

	// Start NATS messaging
	url := *natsURL
	if *embeddedNATS {
		ns, err := natsserver.NewServer(&natsserver.Options{Port: -1, NoSigs: true})
		if err != nil {
			log.Fatalf("Failed to create embedded NATS server: %v", err)
		}
		go ns.Start()
		if !ns.ReadyForConnections(5 * time.Second) {
			log.Fatal("Embedded NATS server did not become ready")
		}
		defer ns.Shutdown()
		url = ns.ClientURL()
	}

	messenger, err := communication.NewMessenger(url)
	if err != nil {
		// Mood fan-out degrades to websocket-only without a broker.
		log.Printf("Warning: NATS unavailable at %s: %v", url, err)
		messenger = nil
	} else {
		defer messenger.Close()
	}

	handlers.Setup(handlers.Deps{
		Bots:      bots,
		Leagues:   leagues,
		Trades:    trades,
		Engine:    engine,
		Matchups:  workflows.NewMatchupService(bots, leagues, engine),
		Deals:     workflows.NewTradeService(bots, leagues, trades, engine),
		Drafts:    workflows.NewDraftService(bots, leagues, engine),
		Banter:    workflows.NewBanterService(bots, engine),
		Insights:  insights.NewExtractor(bots, leagues, trades),
		Messenger: messenger,
	})

	log.Printf("Gridiron server starting on port %s with %d bots in the directory",
		*apiPort, registry.Count())

	// Start API server
	router := gin.New()
	api.SetupRoutes(router)
	log.Fatal(router.Run(":" + *apiPort))
}
