package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	fileservice "pressboard/contexts/collaboration/file-service"
	messageservice "pressboard/contexts/collaboration/message-service"
	analyticsservice "pressboard/contexts/editorial/analytics-service"
	clientservice "pressboard/contexts/editorial/client-service"
	outletservice "pressboard/contexts/editorial/outlet-service"
	taskservice "pressboard/contexts/editorial/task-service"
	userservice "pressboard/contexts/identity/user-service"
	"pressboard/internal/platform/broadcast"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "pressboard/internal/platform/httpserver/docs"
)

type Modules struct {
	Tasks     taskservice.Module
	Clients   clientservice.Module
	Outlets   outletservice.Module
	Users     userservice.Module
	Messages  messageservice.Module
	Files     fileservice.Module
	Analytics analyticsservice.Module
}

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	modules Modules
	hub     *broadcast.Hub
}

func New(modules Modules, hub *broadcast.Hub, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		modules: modules,
		hub:     hub,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /ws/board", s.handleBoardSocket)

	s.mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	s.mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	s.mux.HandleFunc("GET /api/tasks/{task_id}", s.handleGetTask)
	s.mux.HandleFunc("PATCH /api/tasks/{task_id}", s.handleUpdateTask)
	s.mux.HandleFunc("DELETE /api/tasks/{task_id}", s.handleDeleteTask)
	s.mux.HandleFunc("POST /api/tasks/{task_id}/status", s.handleChangeStatus)
	s.mux.HandleFunc("POST /api/tasks/{task_id}/take", s.handleTakeTask)
	s.mux.HandleFunc("POST /api/tasks/{task_id}/undo", s.handleUndo)
	s.mux.HandleFunc("GET /api/tasks/{task_id}/history", s.handleListHistory)

	s.mux.HandleFunc("POST /api/clients", s.handleCreateClient)
	s.mux.HandleFunc("GET /api/clients", s.handleListClients)
	s.mux.HandleFunc("GET /api/clients/{client_id}", s.handleGetClient)
	s.mux.HandleFunc("PATCH /api/clients/{client_id}", s.handleUpdateClient)
	s.mux.HandleFunc("DELETE /api/clients/{client_id}", s.handleDeleteClient)

	s.mux.HandleFunc("POST /api/media", s.handleCreateOutlet)
	s.mux.HandleFunc("GET /api/media", s.handleListOutlets)
	s.mux.HandleFunc("GET /api/media/{outlet_id}", s.handleGetOutlet)
	s.mux.HandleFunc("PATCH /api/media/{outlet_id}", s.handleUpdateOutlet)
	s.mux.HandleFunc("DELETE /api/media/{outlet_id}", s.handleDeleteOutlet)

	s.mux.HandleFunc("POST /api/users", s.handleRegisterUser)
	s.mux.HandleFunc("GET /api/users", s.handleListUsers)
	s.mux.HandleFunc("GET /api/users/{user_id}", s.handleGetUser)
	s.mux.HandleFunc("PATCH /api/users/{user_id}", s.handleUpdateUser)

	s.mux.HandleFunc("GET /api/messages/task/{task_id}", s.handleListMessages)
	s.mux.HandleFunc("POST /api/messages/task/{task_id}", s.handlePostMessage)
	s.mux.HandleFunc("POST /api/messages/task/{task_id}/read", s.handleMarkMessagesRead)
	s.mux.HandleFunc("GET /api/messages/task/{task_id}/unread", s.handleUnreadCount)

	s.mux.HandleFunc("GET /api/files/task/{task_id}", s.handleListFiles)
	s.mux.HandleFunc("POST /api/files/task/{task_id}", s.handleUploadFile)
	s.mux.HandleFunc("GET /api/files/{file_id}", s.handleDownloadFile)
	s.mux.HandleFunc("DELETE /api/files/{file_id}", s.handleDeleteFile)

	s.mux.HandleFunc("GET /api/analytics/summary", s.handleAnalyticsSummary)
	s.mux.HandleFunc("GET /api/analytics/stages", s.handleAnalyticsStages)
	s.mux.HandleFunc("GET /api/analytics/publications", s.handleAnalyticsPublications)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
