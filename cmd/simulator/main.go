package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/orreryworks/solarsim/core"
	"github.com/orreryworks/solarsim/internal/logging"
	"github.com/orreryworks/solarsim/internal/observability"
	"github.com/orreryworks/solarsim/model"
	"github.com/orreryworks/solarsim/timectrl"
	"github.com/orreryworks/solarsim/units"
)

func main() {
	epochJD := flag.Float64("epoch-jd", 2459945.5, "construction epoch as a Julian Date (default 2023-01-01T00:00 UTC)")
	tick := flag.Duration("tick", 30*time.Minute, "simulated time per tick")
	duration := flag.Duration("duration", 24*time.Hour, "total simulated duration; 0 runs forever")
	accelerated := flag.Bool("accelerated", true, "run in accelerated mode (vs real-time)")
	overridePath := flag.String("elements-override", "", "optional JSON file of orbital-element overrides")
	metricsAddr := flag.String("metrics-addr", "", "optional address for the /metrics listener, e.g. :9090")
	flag.Parse()

	ctx := context.Background()
	log := logging.NewFromEnv()

	epoch := units.JD(*epochJD)
	elements := model.DefaultElements(epoch)

	if *overridePath != "" {
		f, err := os.Open(*overridePath)
		if err != nil {
			log.Error(ctx, "open elements override", logging.Err(err))
			os.Exit(1)
		}
		summary, err := core.LoadElementsOverride(&elements, f)
		f.Close()
		if err != nil {
			log.Error(ctx, "load elements override", logging.Err(err))
			os.Exit(1)
		}
		log.Info(ctx, "applied element overrides", logging.Int("bodies", len(summary.Bodies)))
	}

	system, err := core.NewWithElements(epoch, elements)
	if err != nil {
		log.Error(ctx, "build solar system", logging.Err(err))
		os.Exit(1)
	}

	var metrics *observability.SimCollector
	if *metricsAddr != "" {
		metrics, err = observability.NewSimCollector(nil)
		if err != nil {
			log.Error(ctx, "register metrics", logging.Err(err))
			os.Exit(1)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Warn(ctx, "metrics listener stopped", logging.Err(err))
			}
		}()
		log.Info(ctx, "metrics listening", logging.String("addr", *metricsAddr))
	}

	mode := timectrl.RealTime
	if *accelerated {
		mode = timectrl.Accelerated
	}
	runner := timectrl.NewRunner(system, *tick, mode)

	runner.AddListener(func(now units.JulianDate) {
		if metrics != nil {
			metrics.RecordTick(now.Days())
		}
		runner.Read(func(sys *core.SolarSystem) {
			fields := []logging.Field{
				logging.Float64("jd", now.Days()),
				logging.String("date", now.Time().Format(time.RFC3339)),
			}
			for _, b := range sys.Bodies() {
				if b == model.Sun {
					continue
				}
				pos := sys.PositionOf(b)
				fields = append(fields, logging.Float64(b.String()+"_au", units.Meters(pos.Norm()).AU()))
			}
			log.Info(ctx, "tick", fields...)
		})
	})

	log.Info(ctx, "starting simulation",
		logging.Float64("epoch_jd", epoch.Days()),
		logging.Duration("tick", *tick),
		logging.Duration("duration", *duration),
		logging.Int("bodies", len(system.Bodies())),
	)
	done := runner.Start(*duration)
	<-done
	log.Info(ctx, "simulation complete", logging.Float64("final_jd", runner.Now().Days()))
}
