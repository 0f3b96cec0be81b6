package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tanav-bollam/UHACCS-Hackathon/internal/api"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/config"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/plans"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/rl"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/store"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/tracker"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/vision"
)

func main() {
	// Logger
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// SQLite
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Stores
	sessionStore := store.NewSessionStore(db)
	scheduleStore := store.NewScheduleStore(db)

	// Attention sampling
	camera := vision.NewCamera(cfg.CameraDevice, cfg.CameraStub)
	detector := vision.NewDetector()

	// Recommendation agent
	agent := rl.NewAgentConfigured(cfg.LearningRate, cfg.Gamma, cfg.Epsilon)
	env := rl.NewEnvironment()

	// Session orchestrator
	svc := tracker.New(sessionStore, camera, detector, agent, env, cfg.SampleInterval, logger)

	// Seed schedule templates
	if len(cfg.TemplateDirs) > 0 {
		templates, err := plans.ScanTemplates(cfg.TemplateDirs)
		if err != nil {
			logger.Warn("failed to scan schedule templates", "error", err)
		}
		for _, tpl := range templates {
			if err := scheduleStore.Save(tpl); err != nil {
				logger.Warn("failed to seed schedule template", "schedule_id", tpl.ID, "error", err)
			}
		}
		if len(templates) > 0 {
			logger.Info("seeded schedule templates", "count", len(templates))
		}
	}

	// Background attention sampler
	samplerCtx, stopSampler := context.WithCancel(context.Background())
	samplerDone := make(chan struct{})
	go func() {
		svc.Run(samplerCtx)
		close(samplerDone)
	}()

	// Router
	router := api.NewRouter(db, svc, scheduleStore, cfg.FrontendDir, logger)

	// Server
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("focus tutor server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	// Stop the sampler and wait for it before releasing the camera so no
	// in-flight sample touches a released device.
	stopSampler()
	<-samplerDone
	camera.Release()

	logger.Info("server stopped")
}
