package server

import (
	"encoding/json"
	"net/http"

	"randroom/pkg/logger"
)

// DebugHandler предоставляет доступ к последнему кадру партии
type DebugHandler struct {
	Server *Server
}

func NewDebugHandler(s *Server) *DebugHandler {
	return &DebugHandler{Server: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /debug/state", h.handleState)
	mux.HandleFunc("GET /debug/spectators", h.handleSpectators)
}

// /debug/state - последний кадр в том виде, в каком его видит игрок
func (h *DebugHandler) handleState(w http.ResponseWriter, _ *http.Request) {
	frame, ok := h.Server.Hub.Last()
	if !ok {
		http.Error(w, "No frame published yet", http.StatusNotFound)
		return
	}
	writeJSON(w, frame)
}

// /debug/spectators - число подключенных зрителей
func (h *DebugHandler) handleSpectators(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]int{"spectators": h.Server.Hub.SubscriberCount()})
}

func writeJSON(w http.ResponseWriter, data any) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("debug response write failed")
	}
}
