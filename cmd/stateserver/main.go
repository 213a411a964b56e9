// Command stateserver exposes the engine's per-tick state over HTTP for
// presentation layers that cannot link the engine in-process. It advances the
// clock itself and serves the latest between-ticks snapshot; readers never
// drive the simulation.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orreryworks/solarsim/core"
	"github.com/orreryworks/solarsim/internal/logging"
	"github.com/orreryworks/solarsim/internal/observability"
	"github.com/orreryworks/solarsim/internal/viewstate"
	"github.com/orreryworks/solarsim/timectrl"
	"github.com/orreryworks/solarsim/units"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	epochJD := flag.Float64("epoch-jd", 2459945.5, "construction epoch as a Julian Date")
	tick := flag.Duration("tick", 30*time.Minute, "simulated time per tick")
	realtime := flag.Bool("realtime", true, "advance one tick per wall-clock tick interval")
	flag.Parse()

	ctx := context.Background()
	log := logging.NewFromEnv()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "init tracing", logging.Err(err))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, log)

	metrics, err := observability.NewSimCollector(nil)
	if err != nil {
		log.Error(ctx, "register metrics", logging.Err(err))
		os.Exit(1)
	}

	system, err := core.New(units.JD(*epochJD))
	if err != nil {
		log.Error(ctx, "build solar system", logging.Err(err))
		os.Exit(1)
	}

	mode := timectrl.Accelerated
	if *realtime {
		mode = timectrl.RealTime
	}
	runner := timectrl.NewRunner(system, *tick, mode)
	store := viewstate.NewStore(runner, metrics)
	store.Attach()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/bodies", handleBodies(store))
	mux.HandleFunc("/v1/time", handleTime(store))
	mux.Handle("/metrics", metrics.Handler())

	server := &http.Server{Addr: *addr, Handler: mux}
	go func() {
		log.Info(ctx, "state server listening",
			logging.String("addr", *addr),
			logging.Float64("epoch_jd", *epochJD),
			logging.Duration("tick", *tick),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "http server failed", logging.Err(err))
			os.Exit(1)
		}
	}()

	runner.Start(0)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn(ctx, "http shutdown failed", logging.Err(err))
	}
}

// handleBodies serves the full per-body snapshot for the current tick.
func handleBodies(store *viewstate.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, store.Current())
	}
}

// handleTime serves just the snapshot timestamp, for cheap polling.
func handleTime(store *viewstate.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		snap := store.Current()
		writeJSON(w, map[string]any{
			"julian_date": snap.JulianDate,
			"time":        snap.Time,
		})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
