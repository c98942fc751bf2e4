package engine

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
	"github.com/cajubelt/2025-xmas-website/internal/strategy"
	"github.com/cajubelt/2025-xmas-website/pkg/api"
	"github.com/cajubelt/2025-xmas-website/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ControlState - состояние интерактивного цикла партии.
// Ортогонально исходу мира (domain.Outcome): пауза не означает проигрыш.
type ControlState uint8

const (
	ControlNotStarted ControlState = iota
	ControlRunning
	ControlPaused
)

func (c ControlState) String() string {
	switch c {
	case ControlRunning:
		return "RUNNING"
	case ControlPaused:
		return "PAUSED"
	default:
		return "NOT_STARTED"
	}
}

// Session - одна интерактивная партия одного подключенного клиента.
//
// Всем состоянием владеет ЕДИНСТВЕННАЯ горутина Run: команды приходят через
// CommandChan, тики - от внутреннего тикера. Блокировок нет, потому что нет
// конкурентных мутаций; наружу уходят только готовые снапшоты.
type Session struct {
	ID  string
	svc *GameService

	CommandChan chan domain.InternalCommand
	done        chan struct{}

	// snapshot - последнее опубликованное состояние. Единственное поле,
	// которое можно читать из чужих горутин (debug-эндпоинты).
	snapshot atomic.Pointer[api.ServerResponse]

	// Поля ниже принадлежат горутине Run.
	scenario     Scenario
	world        *domain.World
	control      ControlState
	strategyName string        // "manual", если герой водится руками
	strat        strategy.Func // nil в ручном режиме
	manualTarget domain.Position
	hasTarget    bool
	lastError    string
	record       *domain.RunRecord
}

func newSession(id string, svc *GameService) *Session {
	sess := &Session{
		ID:          id,
		svc:         svc,
		CommandChan: make(chan domain.InternalCommand, 100),
		done:        make(chan struct{}),
	}
	sess.resetTo(Scenarios()[0])

	// Стартовый снапшот, чтобы debug-эндпоинты видели партию
	// еще до первой публикации из игрового цикла.
	state := sess.buildState("UPDATE")
	sess.snapshot.Store(&state)
	return sess
}

// Run запускает игровой цикл ЭТОЙ сессии. Должен быть вызван в горутине.
func (sess *Session) Run() {
	logger.Log.WithField("session_id", sess.ID).Info("Session loop started")

	ticker := time.NewTicker(sess.svc.Config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sess.done:
			logger.Log.WithField("session_id", sess.ID).Info("Session loop stopped")
			return

		case cmd := <-sess.CommandChan:
			sess.handleCommand(cmd)

		case <-ticker.C:
			if sess.control == ControlRunning {
				sess.tick()
			}
		}
	}
}

// tick выполняет ровно один ход: стратегия -> симулятор -> публикация.
// Ход атомарен: при сбое стратегии мир НЕ меняется (частичных ходов не бывает).
func (sess *Session) tick() {
	// Терминальная партия не продвигается. Это no-op, а не ошибка:
	// просто останавливаем планировщик и напоминаем клиенту состояние.
	if sess.world.Outcome.Terminal() {
		sess.control = ControlPaused
		sess.publish("UPDATE")
		return
	}

	target, err := sess.resolveTarget()
	if err != nil {
		sess.control = ControlPaused
		sess.lastError = err.Error()
		logger.Log.WithFields(logrus.Fields{
			"session_id": sess.ID,
			"strategy":   sess.strategyName,
		}).WithError(err).Warn("Strategy fault, loop halted")
		sess.publish("ERROR")
		return
	}

	sess.world = Step(sess.world, target)
	sess.record.Ticks = append(sess.record.Ticks, domain.RunTick{
		Turn:   sess.world.Turn,
		Target: target,
	})

	if sess.world.Outcome.Terminal() {
		sess.control = ControlPaused
		sess.record.Strategy = sess.strategyName
		sess.svc.finishRun(sess.record, sess.world, sess.scenario, "interactive")
	}

	sess.publish("UPDATE")
}

// resolveTarget выбирает точку назначения героя на этот ход.
func (sess *Session) resolveTarget() (domain.Position, error) {
	if sess.strat != nil {
		return strategy.SafeCall(sess.strat, sess.world)
	}
	if sess.hasTarget {
		return sess.manualTarget, nil
	}
	// Ручной режим без цели: стоим на месте.
	return sess.world.Hero, nil
}

func (sess *Session) handleCommand(cmd domain.InternalCommand) {
	switch cmd.Action {
	case domain.ActionInit:
		sess.publish("INIT")

	case domain.ActionScenario:
		var p api.ScenarioPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			sess.fail("bad SCENARIO payload: " + err.Error())
			return
		}
		if err := p.Validate(); err != nil {
			sess.fail(err.Error())
			return
		}
		s, err := ScenarioByID(p.ID)
		if err != nil {
			sess.fail(err.Error())
			return
		}
		sess.resetTo(s)
		sess.publish("UPDATE")

	case domain.ActionStrategy:
		var p api.StrategyPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			sess.fail("bad STRATEGY payload: " + err.Error())
			return
		}
		if p.Name == "" {
			sess.strat = nil
			sess.strategyName = "manual"
		} else {
			f, err := sess.svc.Strategies.Get(p.Name)
			if err != nil {
				sess.fail(err.Error())
				return
			}
			sess.strat = f
			sess.strategyName = p.Name
		}
		sess.lastError = ""
		sess.publish("UPDATE")

	case domain.ActionTarget:
		var p api.TargetPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			sess.fail("bad TARGET payload: " + err.Error())
			return
		}
		if err := p.Validate(); err != nil {
			sess.fail(err.Error())
			return
		}
		// Явная цель переводит партию в ручной режим.
		sess.strat = nil
		sess.strategyName = "manual"
		sess.manualTarget = domain.Position{X: p.X, Y: p.Y}
		sess.hasTarget = true
		sess.publish("UPDATE")

	case domain.ActionStart:
		if !sess.world.Outcome.Terminal() {
			sess.control = ControlRunning
		}
		sess.publish("UPDATE")

	case domain.ActionPause:
		if sess.control == ControlRunning {
			sess.control = ControlPaused
		}
		sess.publish("UPDATE")

	case domain.ActionStep:
		// Одиночный шаг имеет смысл только вне автопрогона.
		if sess.control != ControlRunning {
			sess.tick()
		}

	case domain.ActionReset:
		sess.resetTo(sess.scenario)
		sess.publish("UPDATE")

	default:
		logger.Log.WithFields(logrus.Fields{
			"session_id": sess.ID,
			"action":     cmd.Action.String(),
		}).Warn("Unhandled action")
	}
}

// resetTo начинает свежую партию на данном сценарии.
// Стратегия и ручной режим переживают сброс, цель и ошибка - нет.
func (sess *Session) resetTo(s Scenario) {
	sess.scenario = s
	sess.world = s.NewWorld()
	sess.control = ControlNotStarted
	sess.hasTarget = false
	sess.lastError = ""
	if sess.strategyName == "" {
		sess.strategyName = "manual"
	}
	sess.record = &domain.RunRecord{
		ScenarioID: s.ID,
		Strategy:   sess.strategyName,
		Timestamp:  time.Now().Unix(),
	}
}

func (sess *Session) fail(msg string) {
	sess.lastError = msg
	sess.publish("ERROR")
}

func (sess *Session) publish(msgType string) {
	state := sess.buildState(msgType)
	sess.snapshot.Store(&state)
	sess.svc.Hub.SendTo(sess.ID, state)
}

// DebugSnapshot возвращает последний опубликованный снапшот партии.
// Безопасен из любой горутины: это неизменяемая копия состояния
// (DTO строится заново при каждой публикации), а не живые поля цикла.
func (sess *Session) DebugSnapshot() api.ServerResponse {
	return *sess.snapshot.Load()
}
