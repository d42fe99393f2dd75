package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Drives AI-vs-AI matches against a running backend over its HTTP API and
// tallies results per difficulty pairing.

type runner struct {
	client       *http.Client
	baseURL      string
	pollInterval time.Duration
	logger       *log.Logger
}

type statusResponse struct {
	Status        string `json:"status"`
	WinReason     string `json:"win_reason"`
	MoveCount     int    `json:"move_count"`
	CapturedBlack int    `json:"captured_black"`
	CapturedWhite int    `json:"captured_white"`
	BoardSize     int    `json:"board_size"`
}

type startRequest struct {
	Settings settingsDTO `json:"settings"`
}

type settingsDTO struct {
	BoardSize       int    `json:"board_size"`
	Mode            string `json:"mode"`
	TargetMoves     int    `json:"target_moves"`
	BlackStarts     bool   `json:"black_starts"`
	HumanPlayer     int    `json:"human_player"`
	BlackDifficulty int    `json:"black_difficulty"`
	WhiteDifficulty int    `json:"white_difficulty"`
}

type tally struct {
	games     int
	blackWins int
	whiteWins int
	draws     int
	moves     int
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "backend base URL")
	games := flag.Int("games", 10, "games per pairing")
	boardSize := flag.Int("board-size", 48, "board size")
	targetMoves := flag.Int("target-moves", 200, "move limit per game")
	blackLevel := flag.Int("black-level", 5, "black difficulty level")
	whiteLevel := flag.Int("white-level", 5, "white difficulty level")
	poll := flag.Duration("poll", 250*time.Millisecond, "status poll interval")
	flag.Parse()

	r := &runner{
		client:       &http.Client{Timeout: 10 * time.Second},
		baseURL:      *baseURL,
		pollInterval: *poll,
		logger:       log.New(os.Stdout, "[trainer] ", log.LstdFlags),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	result := tally{}
	for i := 0; i < *games; i++ {
		select {
		case <-stop:
			r.logger.Printf("interrupted after %d games", result.games)
			r.report(result, *blackLevel, *whiteLevel)
			return
		default:
		}
		status, err := r.playGame(settingsDTO{
			BoardSize:       *boardSize,
			Mode:            "move_limit",
			TargetMoves:     *targetMoves,
			BlackStarts:     i%2 == 0,
			HumanPlayer:     -1,
			BlackDifficulty: *blackLevel,
			WhiteDifficulty: *whiteLevel,
		}, stop)
		if err != nil {
			r.logger.Printf("game %d failed: %v", i+1, err)
			continue
		}
		result.games++
		result.moves += status.MoveCount
		switch status.Status {
		case "black_won":
			result.blackWins++
		case "white_won":
			result.whiteWins++
		default:
			result.draws++
		}
		r.logger.Printf("game %d: %s (%s) in %d moves, captures B=%d W=%d",
			i+1, status.Status, status.WinReason, status.MoveCount,
			status.CapturedBlack, status.CapturedWhite)
	}
	r.report(result, *blackLevel, *whiteLevel)
}

func (r *runner) playGame(settings settingsDTO, stop <-chan os.Signal) (statusResponse, error) {
	if err := r.postJSON("/api/start", startRequest{Settings: settings}); err != nil {
		return statusResponse{}, err
	}
	for {
		select {
		case <-stop:
			return statusResponse{}, fmt.Errorf("interrupted")
		case <-time.After(r.pollInterval):
		}
		status, err := r.fetchStatus()
		if err != nil {
			return statusResponse{}, err
		}
		if status.Status != "running" && status.Status != "not_started" {
			return status, nil
		}
	}
}

func (r *runner) fetchStatus() (statusResponse, error) {
	resp, err := r.client.Get(r.baseURL + "/api/status")
	if err != nil {
		return statusResponse{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return statusResponse{}, fmt.Errorf("status endpoint returned %d", resp.StatusCode)
	}
	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return statusResponse{}, err
	}
	return status, nil
}

func (r *runner) postJSON(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := r.client.Post(r.baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d", path, resp.StatusCode)
	}
	return nil
}

func (r *runner) report(result tally, blackLevel, whiteLevel int) {
	if result.games == 0 {
		r.logger.Printf("no completed games")
		return
	}
	r.logger.Printf("pairing black L%d vs white L%d: %d games, black %d, white %d, draws %d, avg moves %.1f",
		blackLevel, whiteLevel, result.games, result.blackWins, result.whiteWins,
		result.draws, float64(result.moves)/float64(result.games))
}
