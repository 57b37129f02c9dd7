package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/arifmahmud/live-tally/cliparse"
	"github.com/arifmahmud/live-tally/countdown"
	"github.com/arifmahmud/live-tally/db"
	"github.com/arifmahmud/live-tally/hub"
	"github.com/arifmahmud/live-tally/ingest"
	"github.com/arifmahmud/live-tally/ledger"
	"github.com/arifmahmud/live-tally/middleware"
	"github.com/arifmahmud/live-tally/router"
	"github.com/arifmahmud/live-tally/sim"
	"github.com/arifmahmud/live-tally/tally"
)

const shutdownGrace = 10 * time.Second

func main() {
	// .env is optional; exported variables win
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	if cfg.Deadline.IsZero() {
		cfg.Deadline = countdown.NextDeadline(time.Now())
	}
	slog.Info("Election deadline set", "deadline", cfg.Deadline)

	// Build the core: ledgers, aggregator, hub, clock, ingestion service
	votes := ledger.NewVoteLedger(dbConn)
	referendums := ledger.NewReferendumLedger(dbConn)
	identities := ledger.NewIdentityLedger(dbConn)
	agg := tally.NewAggregator(votes, referendums)

	var clock *countdown.Clock
	broadcast := hub.New(func() []hub.Event {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		events := []hub.Event{
			{Name: hub.EventVotes, Data: agg.Snapshot(ctx)},
			{Name: hub.EventReferendum, Data: agg.ReferendumSnapshot(ctx)},
		}
		if clock != nil {
			events = append(events, hub.Event{Name: hub.EventCountdown, Data: clock.Current()})
		}
		return events
	})

	clock = countdown.NewClock(cfg.Deadline, broadcast)
	clock.Start()

	svc := ingest.NewService(votes, referendums, identities, agg, broadcast)

	var driver *sim.Driver
	if cfg.SimulationEnabled {
		driver = sim.NewDriver(svc, cfg.SimulationInterval)
		driver.Start()
		slog.Info("Simulation driver enabled (demo mode)", "interval", cfg.SimulationInterval)
	} else {
		slog.Info("Simulation driver disabled (production mode)")
	}

	mux := router.NewRouter(router.Deps{
		Config:     cfg,
		Service:    svc,
		Aggregator: agg,
		Clock:      clock,
		Hub:        broadcast,
		Identities: identities,
		Votes:      votes,
	})

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin, mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		slog.Info("Shutting down")

		// Shutdown order: timer, simulation, subscriber streams, then
		// the HTTP server with a bounded grace period.
		clock.Stop()
		if driver != nil {
			driver.Stop()
		}
		broadcast.Close()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown timed out, forcing close", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
