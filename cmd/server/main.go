package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
	"github.com/cajubelt/2025-xmas-website/internal/engine"
	"github.com/cajubelt/2025-xmas-website/internal/infrastructure/results"
	"github.com/cajubelt/2025-xmas-website/internal/server"
	"github.com/cajubelt/2025-xmas-website/internal/strategy"
	"github.com/cajubelt/2025-xmas-website/internal/version"
	"github.com/cajubelt/2025-xmas-website/pkg/logger"
	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var replayPath string
	var batchMode bool
	var resultsPath string
	var runDir string
	var randomLevels int
	var seed int64
	flag.StringVar(&replayPath, "replay", "", "Path to .xrun run record to re-simulate")
	flag.BoolVar(&batchMode, "batch", false, "Evaluate every strategy against every scenario and exit")
	flag.StringVar(&resultsPath, "results", "", "Path to SQLite results database (empty to disable)")
	flag.StringVar(&runDir, "runs", "", "Directory for .xrun run records")
	flag.IntVar(&randomLevels, "random", 0, "Number of generated levels to add to the batch suite")
	flag.Int64Var(&seed, "seed", 1, "Base seed for generated levels")
	flag.Parse()

	logger.Log.Info("Starting survival game server...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if resultsPath != "" {
		cfg.ResultsPath = resultsPath
	}
	if runDir != "" {
		cfg.RunDir = runDir
	}

	gameService := engine.NewService(cfg)

	// База результатов опциональна: без нее сервер полностью работоспособен.
	if resultsPath != "" {
		store, err := results.New(cfg.ResultsPath)
		if err != nil {
			logger.Log.WithError(err).Warn("Results store unavailable, continuing without it")
		} else {
			gameService.Results = store
			defer store.Close()
		}
	}

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay Simulation")
		runReplay(gameService, replayPath)
		return
	}

	// РЕЖИМ ПАКЕТНОЙ ПРОВЕРКИ
	if batchMode {
		logger.Log.Info("📋 Mode: Batch Evaluation")
		runBatch(gameService, randomLevels, seed)
		return
	}

	port := os.Getenv("XMAS_PORT")
	if port == "" {
		port = "8080"
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	for _, id := range gameService.SessionIDs() {
		gameService.CloseSession(id)
	}

	logger.Log.Info("Done.")
}

// runReplay детерминированно пересобирает записанную партию и печатает итог.
func runReplay(svc *engine.GameService, path string) {
	rec, err := svc.Recorder.Load(path)
	if err != nil {
		logger.Log.Fatal("Failed to load run record:", err)
	}

	w, err := engine.ReplayRecord(rec)
	if err != nil {
		logger.Log.Fatal("Replay failed:", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"scenario": rec.ScenarioID,
		"strategy": rec.Strategy,
		"outcome":  w.Outcome.String(),
		"turns":    w.Turn,
		"score":    w.Score,
	}).Info("Replay finished")

	if svc.Results != nil {
		if _, err := svc.Results.SaveRun(replayToRun(rec, w)); err != nil {
			logger.Log.WithError(err).Warn("Failed to persist replay result")
		}
	}
}

// replayToRun собирает строку результатов для пересобранной партии.
func replayToRun(rec *domain.RunRecord, w *domain.World) results.Run {
	scenarioName := ""
	if s, err := engine.ScenarioByID(rec.ScenarioID); err == nil {
		scenarioName = s.Name
	}
	return results.Run{
		ScenarioID:   rec.ScenarioID,
		ScenarioName: scenarioName,
		Strategy:     rec.Strategy,
		Mode:         "replay",
		Won:          w.Outcome == domain.OutcomeWon,
		Outcome:      w.Outcome.String(),
		Turns:        w.Turn,
		Score:        w.Score,
	}
}

// runBatch прогоняет все стратегии по всем уровням (встроенным плюс
// сгенерированным, если запрошены) и сохраняет вердикты.
func runBatch(svc *engine.GameService, randomLevels int, seed int64) {
	suite := append([]engine.Scenario{}, engine.Scenarios()...)
	for i := 0; i < randomLevels; i++ {
		suite = append(suite, engine.GenerateScenario(100+i, seed+int64(i)))
	}

	batchResults := engine.EvaluateSuite(svc.Strategies, suite)

	failed := 0
	badExit := false
	for _, r := range batchResults {
		entry := logger.Log.WithFields(logrus.Fields{
			"scenario": r.ScenarioName,
			"strategy": r.Strategy,
			"outcome":  r.Outcome.String(),
			"turns":    r.Turns,
			"score":    r.Score,
		})
		if r.Fault != "" {
			entry.WithField("fault", r.Fault).Warn("Strategy fault")
			badExit = true
		} else if r.Won {
			entry.Info("WON")
		} else {
			entry.Info("not won")
			failed++
		}

		// "First Contact" - smoke-уровень: эталонная стратегия обязана
		// его выигрывать. Проигрыш означает регрессию симулятора.
		if r.Strategy == strategy.NameChase && r.ScenarioID == 0 && !r.Won {
			badExit = true
		}

		if svc.Results != nil {
			if _, err := svc.Results.SaveRun(resultToRun(r)); err != nil {
				logger.Log.WithError(err).Warn("Failed to persist batch result")
			}
		}
	}

	logger.Log.Infof("Batch done: %d runs, %d not won", len(batchResults), failed)
	if badExit {
		os.Exit(1)
	}
}

func resultToRun(r engine.BatchResult) results.Run {
	return results.Run{
		ScenarioID:   r.ScenarioID,
		ScenarioName: r.ScenarioName,
		Strategy:     r.Strategy,
		Mode:         "batch",
		Won:          r.Won,
		Outcome:      r.Outcome.String(),
		Turns:        r.Turns,
		Score:        r.Score,
		Fault:        r.Fault,
	}
}
