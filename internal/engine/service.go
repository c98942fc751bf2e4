package engine

import (
	"sync"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
	"github.com/cajubelt/2025-xmas-website/internal/infrastructure/results"
	"github.com/cajubelt/2025-xmas-website/internal/infrastructure/storage"
	"github.com/cajubelt/2025-xmas-website/internal/network"
	"github.com/cajubelt/2025-xmas-website/internal/strategy"
	"github.com/cajubelt/2025-xmas-website/pkg/api"
	"github.com/cajubelt/2025-xmas-website/pkg/logger"
	"github.com/sirupsen/logrus"
)

// GameService - корень движка: хаб рассылки, реестр стратегий,
// хранилища и активные сессии (по одной партии на подключение).
type GameService struct {
	Config     Config
	Hub        *network.Broadcaster
	Strategies *strategy.Registry
	Generator  *strategy.GeneratorClient

	// Recorder всегда есть (пишет .xrun на диск).
	// Results может быть nil, если база результатов не сконфигурирована.
	Recorder *storage.RunService
	Results  *results.Store

	mu       sync.RWMutex
	Sessions map[string]*Session
}

func NewService(cfg Config) *GameService {
	return &GameService{
		Config:     cfg,
		Hub:        network.NewBroadcaster(),
		Strategies: strategy.NewRegistry(),
		Generator:  strategy.NewGeneratorFromEnv(),
		Recorder:   storage.NewRunService(cfg.RunDir),
		Sessions:   make(map[string]*Session),
	}
}

// OpenSession создает партию для нового подключения и запускает её цикл.
func (s *GameService) OpenSession(id string) *Session {
	sess := newSession(id, s)

	s.mu.Lock()
	s.Sessions[id] = sess
	s.mu.Unlock()

	go sess.Run()
	logger.Log.WithField("session_id", id).Info("Session opened")
	return sess
}

// CloseSession останавливает цикл партии и забывает её.
// Незавершенные партии не сохраняются: без терминального исхода
// запись бесполезна для сравнения стратегий.
func (s *GameService) CloseSession(id string) {
	s.mu.Lock()
	sess, ok := s.Sessions[id]
	if ok {
		delete(s.Sessions, id)
	}
	s.mu.Unlock()

	if ok {
		close(sess.done)
		logger.Log.WithField("session_id", id).Info("Session closed")
	}
}

// GetSession возвращает сессию по ID (nil, если такой нет).
func (s *GameService) GetSession(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Sessions[id]
}

// SessionIDs возвращает ID всех активных сессий.
func (s *GameService) SessionIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.Sessions))
	for id := range s.Sessions {
		ids = append(ids, id)
	}
	return ids
}

// ProcessCommand принимает команду от транспорта и направляет её
// в горутину соответствующей сессии.
func (s *GameService) ProcessCommand(sessionID string, cmd api.ClientCommand) {
	actionType := domain.ParseAction(cmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"action":     cmd.Action,
		}).Warn("Unknown action")
		return
	}

	sess := s.GetSession(sessionID)
	if sess == nil {
		logger.Log.WithField("session_id", sessionID).Warn("Command for unknown session")
		return
	}

	sess.CommandChan <- domain.InternalCommand{
		Action:    actionType,
		SessionID: sessionID,
		Payload:   cmd.Payload,
	}
}

// finishRun сохраняет артефакты завершенной партии: бинарную запись ходов
// и строку в базе результатов. Сбои хранилищ партию не ломают - только лог.
func (s *GameService) finishRun(rec *domain.RunRecord, w *domain.World, sc Scenario, mode string) {
	if path, err := s.Recorder.Save(rec); err != nil {
		logger.Log.WithError(err).Warn("Failed to save run record")
	} else {
		logger.Log.WithField("path", path).Debug("Run record saved")
	}

	if s.Results == nil {
		return
	}
	_, err := s.Results.SaveRun(results.Run{
		ScenarioID:   sc.ID,
		ScenarioName: sc.Name,
		Strategy:     rec.Strategy,
		Mode:         mode,
		Won:          w.Outcome == domain.OutcomeWon,
		Outcome:      w.Outcome.String(),
		Turns:        w.Turn,
		Score:        w.Score,
	})
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to persist run result")
	}
}
