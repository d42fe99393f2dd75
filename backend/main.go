package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type StatusResponse struct {
	GameKey           string          `json:"game_key"`
	Settings          GameSettingsDTO `json:"settings"`
	Config            Config          `json:"config"`
	BoardSize         int             `json:"board_size"`
	Stones            []stoneDTO      `json:"stones"`
	Enclosures        []Enclosure     `json:"enclosures"`
	NextPlayer        int             `json:"next_player"`
	Status            string          `json:"status"`
	WinReason         string          `json:"win_reason"`
	MoveCount         int             `json:"move_count"`
	CapturedBlack     int             `json:"captured_black"`
	CapturedWhite     int             `json:"captured_white"`
	ConsecutivePasses int             `json:"consecutive_passes"`
	AiThinking        bool            `json:"ai_thinking"`
	TurnStartedAtMs   int64           `json:"turn_started_at_ms"`
}

type GameSettingsDTO struct {
	BoardSize       int    `json:"board_size"`
	Mode            string `json:"mode"`
	TargetMoves     int    `json:"target_moves"`
	CaptureTarget   int    `json:"capture_target"`
	BlackStarts     bool   `json:"black_starts"`
	HumanPlayer     int    `json:"human_player"`
	BlackDifficulty int    `json:"black_difficulty"`
	WhiteDifficulty int    `json:"white_difficulty"`
}

type stoneDTO struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Color int `json:"color"`
}

type apiMove struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type historyEntryDTO struct {
	X                 int         `json:"x"`
	Y                 int         `json:"y"`
	Player            int         `json:"player"`
	Pass              bool        `json:"pass"`
	IsAi              bool        `json:"is_ai"`
	ElapsedMs         float64     `json:"elapsed_ms"`
	CapturedCount     int         `json:"captured_count"`
	CapturedPositions []Position  `json:"captured_positions"`
	NewEnclosures     []Enclosure `json:"new_enclosures"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

type resetPayload struct {
	GameKey   string `json:"game_key"`
	BoardSize int    `json:"board_size"`
	Status    string `json:"status"`
}

type settingsPayload struct {
	Settings GameSettingsDTO `json:"settings"`
	Config   Config          `json:"config"`
}

func main() {
	appCfg, err := Setup(".env")
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := NewLogger(appCfg.DevelopmentLogs)
	defer logger.Sync()

	settings := DefaultGameSettings()
	settings.BoardSize = appCfg.BoardSize
	settings.AISeed = appCfg.AISeed
	controller := NewGameController(settings, logger)
	hub := NewHub()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx.Done())
	go func() {
		ticker := time.NewTicker(time.Duration(appCfg.TickIntervalMs) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if controller.Tick() && hub.HasClients() {
					if entry, ok := controller.LatestHistoryEntry(); ok {
						hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
					}
					hub.broadcastStatus <- controllerStatus(controller)
				}
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		next := settingsFromDTO(payload.Settings, controller.Settings())
		next.AISeed = appCfg.AISeed
		controller.StartGame(next)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		controller.Reset(controller.Settings())
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
			Config   *Config          `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		if payload.Settings != nil {
			controller.UpdateSettings(settingsFromDTO(*payload.Settings, controller.Settings()), false)
		}
		hub.broadcastSettings <- settingsPayload{
			Settings: settingsToDTO(controller.Settings()),
			Config:   GetConfig(),
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.ApplyHumanMove(Position{X: payload.X, Y: payload.Y})
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		if entry, ok := controller.LatestHistoryEntry(); ok {
			hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/pass", func(w http.ResponseWriter, r *http.Request) {
		applied, errMsg := controller.ApplyHumanPass()
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	server := &http.Server{
		Addr:    ":" + appCfg.ServerPort,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	logger.Infow("backend listening", "port", appCfg.ServerPort, "board_size", appCfg.BoardSize)
	select {
	case <-sigCtx.Done():
		logger.Infow("shutdown signal received")
	case err, ok := <-serverErrCh:
		if ok {
			logger.Errorw("server error", zap.Error(err))
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			logger.Errorw("forced close failed", zap.Error(closeErr))
		}
	}
	cancel()
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.Unregister(client)
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	stones := make([]stoneDTO, 0, state.Board.StoneCount())
	for _, p := range state.Board.Stones() {
		color, _ := state.Board.StoneAt(p)
		stones = append(stones, stoneDTO{X: p.X, Y: p.Y, Color: int(color)})
	}
	return StatusResponse{
		GameKey:           controller.GameKey(),
		Settings:          settingsToDTO(controller.Settings()),
		Config:            GetConfig(),
		BoardSize:         state.Board.Size(),
		Stones:            stones,
		Enclosures:        state.Enclosures,
		NextPlayer:        int(state.ToMove),
		Status:            state.Status.String(),
		WinReason:         state.WinReason,
		MoveCount:         state.MoveCount,
		CapturedBlack:     state.CapturedBlack,
		CapturedWhite:     state.CapturedWhite,
		ConsecutivePasses: state.ConsecutivePasses,
		AiThinking:        controller.AiThinking(),
		TurnStartedAtMs:   controller.CurrentTurnStartedAtMs(),
	}
}

func resetFromController(controller *GameController) resetPayload {
	state := controller.State()
	return resetPayload{
		GameKey:   controller.GameKey(),
		BoardSize: state.Board.Size(),
		Status:    state.Status.String(),
	}
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		X:                 entry.Move.X,
		Y:                 entry.Move.Y,
		Player:            int(entry.Player),
		Pass:              entry.Pass,
		IsAi:              entry.IsAi,
		ElapsedMs:         entry.ElapsedMs,
		CapturedCount:     len(entry.CapturedPositions),
		CapturedPositions: entry.CapturedPositions,
		NewEnclosures:     entry.NewEnclosures,
	}
}

func settingsToDTO(settings GameSettings) GameSettingsDTO {
	humanPlayer := -1
	if settings.BlackType == PlayerHuman {
		humanPlayer = int(ColorBlack)
	} else if settings.WhiteType == PlayerHuman {
		humanPlayer = int(ColorWhite)
	}
	return GameSettingsDTO{
		BoardSize:       settings.BoardSize,
		Mode:            settings.Mode.String(),
		TargetMoves:     settings.TargetMoves,
		CaptureTarget:   settings.CaptureTarget,
		BlackStarts:     settings.BlackStarts,
		HumanPlayer:     humanPlayer,
		BlackDifficulty: settings.BlackDifficulty,
		WhiteDifficulty: settings.WhiteDifficulty,
	}
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	next := base
	if dto.BoardSize > 0 {
		next.BoardSize = dto.BoardSize
	}
	switch dto.Mode {
	case "capture_race":
		next.Mode = ModeCaptureRace
	case "move_limit":
		next.Mode = ModeMoveLimit
	}
	if dto.TargetMoves > 0 {
		next.TargetMoves = dto.TargetMoves
	}
	if dto.CaptureTarget > 0 {
		next.CaptureTarget = dto.CaptureTarget
	}
	next.BlackStarts = dto.BlackStarts
	if dto.BlackDifficulty > 0 {
		next.BlackDifficulty = dto.BlackDifficulty
	}
	if dto.WhiteDifficulty > 0 {
		next.WhiteDifficulty = dto.WhiteDifficulty
	}
	switch dto.HumanPlayer {
	case int(ColorBlack):
		next.BlackType = PlayerHuman
		next.WhiteType = PlayerAI
	case int(ColorWhite):
		next.BlackType = PlayerAI
		next.WhiteType = PlayerHuman
	case -1:
		next.BlackType = PlayerAI
		next.WhiteType = PlayerAI
	}
	return next
}
