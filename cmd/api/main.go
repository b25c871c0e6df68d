package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/bpmn-compliance/config"
	httpapi "github.com/GoSim-25-26J-441/bpmn-compliance/internal/api/http"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/api/http/routes"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bootstrap"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/repository"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/service"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/versioning"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := service.Deps{}
	routerDeps := bootstrap.RouterDeps{
		ServiceName: "bpmn-compliance",
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
	}

	var db *sql.DB
	if cfg.Database.Enabled() {
		db, err = postgres.NewConnection(ctx, &cfg.Database, postgres.Options{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		runs := repository.NewRunRepository(db)
		if err := runs.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to prepare run log: %v", err)
		}
		deps.Runs = runs
		routerDeps.V1.Runs = runs
		routerDeps.DB = db
		log.Println("[info] run log enabled")
	}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("[warn] redis unreachable, report cache disabled: %v", err)
		} else {
			deps.Cache = repository.NewReportCache(rdb, cfg.Redis.TTL)
			routerDeps.Cache = httpapi.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
			log.Printf("[info] report cache enabled ttl=%s", cfg.Redis.TTL)
		}
	}

	svc := service.New(service.Options{
		OutDir:        cfg.Compliance.OutDir,
		DotBin:        cfg.Compliance.DotBin,
		TargetScore:   cfg.Compliance.TargetScore,
		MaxIterations: cfg.Compliance.MaxIterations,
	}, deps)
	routerDeps.V1 = routes.V1Deps{
		Service:        svc,
		OutDir:         cfg.Compliance.OutDir,
		Runs:           routerDeps.V1.Runs,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	}

	retention := versioning.NewScheduler(cfg.Compliance.OutDir, cfg.Compliance.VersionRetentionDays)
	if err := retention.Start(); err != nil {
		log.Fatalf("Failed to start version retention: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           bootstrap.BuildRouter(routerDeps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[info] listening on :%s env=%s version=%s", cfg.Server.Port, cfg.App.Environment, cfg.App.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[info] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	retention.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[error] shutdown: %v", err)
	}
}
