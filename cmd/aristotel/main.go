package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/Abeke05/Aristotel/internal/repository"
	"github.com/Abeke05/Aristotel/internal/seed"
	"github.com/Abeke05/Aristotel/internal/service"
	"github.com/Abeke05/Aristotel/pkg/config"
	"github.com/Abeke05/Aristotel/pkg/logger"
	"github.com/Abeke05/Aristotel/pkg/storage"
)

// Bootstrap for the record-keeping core: prepares the data directory and
// installs the demo dataset on first run. The presentation layer drives
// the services directly; there is no server or command surface here.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	store, err := storage.Open(cfg.DataDir, logr)
	if err != nil {
		logr.Fatal("failed to open store", zap.Error(err))
	}

	if cfg.Seed.Enabled {
		if err := seed.Ensure(store, logr); err != nil {
			logr.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	ctx := context.Background()
	users := repository.NewUserRepository(store)
	grades := repository.NewGradeRepository(store)
	entries := repository.NewScheduleRepository(store)

	userSvc := service.NewUserService(users, grades, logr)
	gradeSvc := service.NewGradeService(grades, logr)
	scheduleSvc := service.NewScheduleService(entries, logr)

	logr.Info("store ready",
		zap.String("data_dir", cfg.DataDir),
		zap.Int("students", len(userSvc.ListStudents(ctx))),
		zap.Int("teachers", len(userSvc.ListTeachers(ctx))),
		zap.Int("grades", len(gradeSvc.All(ctx))),
		zap.Int("schedule_entries", len(scheduleSvc.All(ctx))))
}
