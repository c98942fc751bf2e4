package engine

import (
	"github.com/cajubelt/2025-xmas-website/internal/domain"
	"github.com/cajubelt/2025-xmas-website/pkg/api"
)

// buildState собирает снапшот сессии для отправки клиенту.
// INIT дополнительно несет справочники уровней и стратегий для меню.
func (sess *Session) buildState(msgType string) api.ServerResponse {
	resp := api.ServerResponse{
		Type:         msgType,
		SessionID:    sess.ID,
		ScenarioID:   sess.scenario.ID,
		ScenarioName: sess.scenario.Name,
		Strategy:     sess.strategyName,
		Control:      sess.control.String(),
		World:        buildWorldView(sess.world),
		Error:        sess.lastError,
	}

	if msgType == "INIT" {
		resp.Scenarios = ScenarioInfos()
		resp.Strategies = sess.svc.Strategies.Names()
	}
	return resp
}

// buildWorldView конвертирует доменный мир в DTO.
func buildWorldView(w *domain.World) *api.WorldView {
	view := &api.WorldView{
		Hero:    api.PositionView{X: w.Hero.X, Y: w.Hero.Y},
		Humans:  make([]api.HumanView, len(w.Humans)),
		Zombies: make([]api.ZombieView, len(w.Zombies)),
		Score:   w.Score,
		Turn:    w.Turn,
		Outcome: w.Outcome.String(),
		Summary: w.Summary,
	}

	for i, h := range w.Humans {
		view.Humans[i] = api.HumanView{
			ID:    h.ID,
			Pos:   api.PositionView{X: h.Pos.X, Y: h.Pos.Y},
			Alive: h.Alive,
		}
	}
	for i, z := range w.Zombies {
		view.Zombies[i] = api.ZombieView{
			ID:      z.ID,
			Pos:     api.PositionView{X: z.Pos.X, Y: z.Pos.Y},
			NextPos: api.PositionView{X: z.NextPos.X, Y: z.NextPos.Y},
			Alive:   z.Alive,
		}
	}
	return view
}

// ScenarioInfos возвращает карточки всех уровней для меню выбора.
func ScenarioInfos() []api.ScenarioInfo {
	infos := make([]api.ScenarioInfo, 0, len(scenarios))
	for _, s := range scenarios {
		infos = append(infos, api.ScenarioInfo{
			ID:      s.ID,
			Name:    s.Name,
			Humans:  len(s.humans),
			Zombies: len(s.zombies),
		})
	}
	return infos
}
