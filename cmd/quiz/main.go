package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/fergusquiz/internal/auth"
	"github.com/vytor/fergusquiz/internal/catalog"
	"github.com/vytor/fergusquiz/internal/config"
	"github.com/vytor/fergusquiz/internal/console"
	"github.com/vytor/fergusquiz/internal/db"
	"github.com/vytor/fergusquiz/internal/logger"
	"github.com/vytor/fergusquiz/internal/models"
	"github.com/vytor/fergusquiz/internal/repository/sqlite"
	"github.com/vytor/fergusquiz/internal/roster"
	"github.com/vytor/fergusquiz/internal/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	// Initialize logger
	opts := []logger.Option{logger.WithLevel(logger.ParseLevel(cfg.LogLevel))}
	if cfg.LogFile != "" {
		f, err := logger.OpenFile(cfg.LogFile)
		if err != nil {
			logger.Error("failed to open log file %s: %v", cfg.LogFile, err)
			return 1
		}
		defer f.Close()
		opts = append(opts, logger.WithOutput(f))
	} else {
		opts = append(opts, logger.WithColors(true))
	}
	log := logger.New(opts...)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("Fergus' Quiz starting")
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("subjects_path=%s", cfg.SubjectsPath)
	log.Debug("report_path=%s", cfg.ReportPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("bcrypt_cost=%d", cfg.BcryptCost)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		return 1
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	ctx, cancel := context.WithCancel(logger.NewContext(context.Background(), log))
	defer cancel()

	store := sqlite.NewRosterStore(database.DB)
	students, err := roster.Load(ctx, store)
	if err != nil {
		log.Error("failed to load roster: %v", err)
		return 1
	}

	subjects, err := catalog.Load(cfg.SubjectsPath)
	if err != nil {
		log.Error("failed to load subjects: %v", err)
		return 1
	}
	for _, s := range subjects.All() {
		for _, d := range models.Difficulties() {
			n, err := sqlite.CountAttempts(ctx, database.DB, s.ID, d)
			if err != nil {
				log.Warn("failed to count attempts for %s:%s: %v", s.ID, d, err)
				continue
			}
			log.Debug("%s:%s has %d questions and %d recorded attempts", s.ID, d, len(s.QuestionsFor(d)), n)
		}
	}

	app := session.NewApp(
		console.New(os.Stdin, os.Stdout),
		students,
		subjects,
		auth.NewBcryptHasher(cfg.BcryptCost),
		cfg.ReportPath,
	)
	ctrl := session.NewController(app)

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Run(ctx)
	}()

	// Wait for the console to finish or a shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err = <-done:
	case sig := <-stop:
		log.Info("received signal %v, shutting down", sig)
		cancel()
		// The console may be blocked reading stdin; every mutation has
		// already been saved, so stop waiting after a short grace period.
		select {
		case err = <-done:
		case <-time.After(2 * time.Second):
			log.Warn("console still waiting for input, exiting")
			err = nil
		}
	}

	if err != nil {
		log.Error("console stopped: %v", err)
		return 1
	}
	log.Info("Fergus' Quiz stopped")
	return 0
}
