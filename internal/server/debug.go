package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cajubelt/2025-xmas-website/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты.
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/sessions", h.handleListSessions)
	mux.HandleFunc("/debug/state", h.handleSessionState)
	mux.HandleFunc("/debug/results", h.handleResults)
}

// /debug/sessions - список активных партий.
func (h *DebugHandler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	type SessionSummary struct {
		SessionID  string `json:"session_id"`
		Subscribed bool   `json:"subscribed"`
	}

	var summary []SessionSummary
	for _, id := range h.Service.SessionIDs() {
		summary = append(summary, SessionSummary{
			SessionID:  id,
			Subscribed: h.Service.Hub.HasSubscriber(id),
		})
	}

	writeJSON(w, summary)
}

// /debug/state?id=<session> - последний опубликованный снапшот партии.
// Снапшот обновляется атомарно из игрового цикла, так что читать его
// отсюда безопасно; он может отставать от живого состояния на один тик.
func (h *DebugHandler) handleSessionState(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	sess := h.Service.GetSession(id)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	writeJSON(w, sess.DebugSnapshot())
}

// /debug/results?limit=20 - последние сохраненные прогоны.
func (h *DebugHandler) handleResults(w http.ResponseWriter, r *http.Request) {
	if h.Service.Results == nil {
		http.Error(w, "Results store is not configured", http.StatusServiceUnavailable)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := h.Service.Results.RecentRuns(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, runs)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локальной debug-страницы)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустой результат отдаем как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
