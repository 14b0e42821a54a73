package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/gridwire/gridwire/backend-go/internal/auth"
	"github.com/gridwire/gridwire/backend-go/internal/config"
	mw "github.com/gridwire/gridwire/backend-go/internal/middleware"
	"github.com/gridwire/gridwire/backend-go/internal/session"
	"github.com/gridwire/gridwire/backend-go/internal/sheet"
	"github.com/gridwire/gridwire/backend-go/internal/store"
	"github.com/gridwire/gridwire/backend-go/internal/typeid"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := store.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	st := store.New(pool)

	authService := auth.NewService(st, cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)

	sheetService := sheet.NewService(st)
	sheetHandler := sheet.NewHandler(sheetService)

	hub := session.NewHub()
	go hub.Run()

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.AllowedOrigins))

	// Auth routes (public)
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authService.RequireAuth)

	api.HandleFunc("/sheets", sheetHandler.List).Methods("GET")
	api.HandleFunc("/sheets", sheetHandler.Create).Methods("POST")
	api.HandleFunc("/sheets/{sheetId}", sheetHandler.Get).Methods("GET")
	api.HandleFunc("/sheets/{sheetId}", sheetHandler.Delete).Methods("DELETE")
	api.HandleFunc("/sheets/{sheetId}/invite", sheetHandler.Invite).Methods("POST")
	api.HandleFunc("/sheets/{sheetId}/members", sheetHandler.ListMembers).Methods("GET")
	api.HandleFunc("/sheets/{sheetId}/members/{userId}", sheetHandler.RemoveMember).Methods("DELETE")

	// WebSocket endpoint
	r.HandleFunc("/ws/sheet/{sheetId}", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, hub, authService, sheetService)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, hub *session.Hub, authSvc *auth.Service, sheetSvc *sheet.Service) {
	vars := mux.Vars(r)
	sheetID := vars["sheetId"]

	var userID string
	var displayName string

	// The scratchpad sheet allows anonymous access
	const scratchpadSheetID = "sheet_scratchpad"
	if sheetID == scratchpadSheetID {
		userID = "anon-" + uuid.New().String()[:8]
		displayName = "Anonymous"
	} else {
		// Reject malformed sheet IDs before touching auth or the database.
		if err := typeid.Validate(sheetID, typeid.PrefixSheet); err != nil {
			http.Error(w, "no such sheet", http.StatusNotFound)
			return
		}

		// Auth via query param for real sheets
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		var err error
		userID, err = authSvc.ValidateToken(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		if err := sheetSvc.CheckMembership(r.Context(), sheetID, userID); err != nil {
			http.Error(w, "not a sheet member", http.StatusForbidden)
			return
		}

		user, err := authSvc.GetUser(r.Context(), userID)
		if err != nil {
			http.Error(w, "user not found", http.StatusInternalServerError)
			return
		}
		displayName = user.DisplayName
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"localhost:5173", "localhost:3000"},
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	clientID := typeid.NewSessionID()
	client := session.NewClient(hub, conn, userID, displayName, sheetID, clientID)

	hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
