package strategy

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
)

// Func - стратегия: отображение состояния мира в точку назначения героя.
// Вызывается ровно один раз за ход. Код стратегии считается НЕДОВЕРЕННЫМ:
// он может вернуть ошибку, паниковать или выдать любые координаты
// (координаты не проверяются на попадание в поле - это допустимо).
type Func func(w *domain.World) (domain.Position, error)

// ErrUnknownStrategy возвращается при запросе незарегистрированного имени.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Registry - реестр именованных стратегий.
// Фронтенд выбирает стратегию по имени; это статически типизированная
// замена исполнению пользовательского кода на лету.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry создает реестр со встроенными стратегиями.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}
	r.Register(NameHold, HoldPosition)
	r.Register(NameChase, ChaseNearestZombie)
	r.Register(NameGuard, GuardThreatenedHuman)
	return r
}

// Register добавляет или заменяет стратегию под данным именем.
func (r *Registry) Register(name string, f Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = f
}

// Get возвращает стратегию по имени.
func (r *Registry) Get(name string) (Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.funcs[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Names возвращает отсортированный список зарегистрированных имен.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SafeCall вызывает стратегию на ЗАЩИТНОЙ КОПИИ мира и превращает панику
// в обычную ошибку. Граница доверия проходит именно здесь: дальше движка
// сбой стратегии не распространяется, состояние партии не повреждается.
func SafeCall(f Func, w *domain.World) (pos domain.Position, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy panicked: %v", r)
		}
	}()

	pos, err = f(w.Clone())
	if err != nil {
		return domain.Position{}, fmt.Errorf("strategy failed: %w", err)
	}
	return pos, nil
}
