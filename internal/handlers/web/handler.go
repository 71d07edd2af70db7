// Package web serves the score keeper over a JSON API. The game being scored
// is tracked per browser with a cookie holding its ID.
package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/ohhell/internal/services/game"
	"github.com/gin-gonic/gin"
)

// GameCookie holds the ID of the browser's current game
const GameCookie = "ohhell_game"

// Config holds configuration for the web handler
type Config struct {
	GameService game.Service

	// SecureCookie marks the game cookie HTTPS only
	SecureCookie bool
}

// Handler serves the HTTP API
type Handler struct {
	gameService  game.Service
	secureCookie bool
}

// New creates a new web handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	return &Handler{
		gameService:  cfg.GameService,
		secureCookie: cfg.SecureCookie,
	}, nil
}

// Register adds the API routes to r
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", h.healthz)

	api := r.Group("/api")
	api.POST("/new_game", h.newGame)
	api.POST("/add_round", h.addRound)
	api.POST("/undo_round", h.undoRound)
	api.GET("/game_state", h.gameState)
	api.POST("/reset", h.reset)
	api.GET("/history", h.listHistory)
	api.GET("/history/:id", h.getHistory)
	api.DELETE("/history/:id", h.deleteHistory)
}

// Router returns an engine with the API routes and gin's default middleware
func (h *Handler) Router() *gin.Engine {
	r := gin.Default()
	h.Register(r)
	return r
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) newGame(c *gin.Context) {
	var req newGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	output, err := h.gameService.CreateGame(c.Request.Context(), &game.CreateGameInput{
		Players:   req.Players,
		MaxRounds: req.MaxRounds,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	state := output.Game
	h.setGameCookie(c, state.GameID)

	handSize, dealer := nextHand(state)
	c.JSON(http.StatusOK, newGameResponse{
		GameID:      state.GameID,
		Players:     state.Players,
		MaxCards:    state.MaxCards,
		TotalRounds: state.TotalRounds,
		HandSize:    handSize,
		Dealer:      dealer,
	})
}

func (h *Handler) addRound(c *gin.Context) {
	gameID, ok := h.gameID(c)
	if !ok {
		return
	}

	var req roundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	output, err := h.gameService.AddRound(c.Request.Context(), &game.AddRoundInput{
		GameID: gameID,
		Bids:   req.Bids,
		Tricks: req.Tricks,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	state := output.Game
	handSize, dealer := nextHand(state)
	c.JSON(http.StatusOK, addRoundResponse{
		Success:      true,
		Scores:       state.Scores,
		Rounds:       state.Rounds,
		HandSize:     handSize,
		Dealer:       dealer,
		GameComplete: state.Complete,
	})
}

func (h *Handler) undoRound(c *gin.Context) {
	gameID, ok := h.gameID(c)
	if !ok {
		return
	}

	output, err := h.gameService.UndoRound(c.Request.Context(), &game.UndoRoundInput{
		GameID: gameID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	state := output.Game
	handSize, dealer := nextHand(state)
	c.JSON(http.StatusOK, undoRoundResponse{
		Success:      true,
		UndoneRound:  output.Round,
		Scores:       state.Scores,
		Rounds:       state.Rounds,
		HandSize:     handSize,
		Dealer:       dealer,
		GameComplete: state.Complete,
	})
}

func (h *Handler) gameState(c *gin.Context) {
	gameID, ok := h.gameID(c)
	if !ok {
		return
	}

	output, err := h.gameService.GetGame(c.Request.Context(), &game.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	state := output.Game
	handSize, dealer := nextHand(state)
	c.JSON(http.StatusOK, gameStateResponse{
		Players:      state.Players,
		Scores:       state.Scores,
		Rounds:       state.Rounds,
		CurrentRound: state.CurrentRound,
		HandSize:     handSize,
		Dealer:       dealer,
		MaxCards:     state.MaxCards,
		TotalRounds:  state.TotalRounds,
		GameComplete: state.Complete,
	})
}

// reset always succeeds and clears the cookie, even when the game is already gone
func (h *Handler) reset(c *gin.Context) {
	if gameID, err := c.Cookie(GameCookie); err == nil && gameID != "" {
		_, err := h.gameService.ResetGame(c.Request.Context(), &game.ResetGameInput{
			GameID: gameID,
		})
		if err != nil && !errors.Is(err, game.ErrGameNotFound) {
			respondError(c, err)
			return
		}
	}

	h.clearGameCookie(c)
	c.JSON(http.StatusOK, successResponse{Success: true})
}

func (h *Handler) listHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be a number"})
			return
		}
		limit = parsed
	}

	output, err := h.gameService.ListHistory(c.Request.Context(), &game.ListHistoryInput{
		Limit: limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	games := make([]*historySummary, 0, len(output.Records))
	for _, record := range output.Records {
		games = append(games, &historySummary{
			ID:          record.ID,
			CompletedAt: record.CompletedAt,
			Players:     record.Players,
			FinalScores: record.FinalScores,
			Winner:      record.Winner,
			TotalRounds: record.TotalRounds,
		})
	}

	c.JSON(http.StatusOK, historyListResponse{Games: games})
}

func (h *Handler) getHistory(c *gin.Context) {
	output, err := h.gameService.GetHistoryRecord(c.Request.Context(), &game.GetHistoryRecordInput{
		RecordID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Record)
}

func (h *Handler) deleteHistory(c *gin.Context) {
	output, err := h.gameService.DeleteHistoryRecord(c.Request.Context(), &game.DeleteHistoryRecordInput{
		RecordID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleteHistoryResponse{
		Success: true,
		Deleted: output.Deleted,
	})
}

// gameID reads the game cookie, responding with 404 when there is none
func (h *Handler) gameID(c *gin.Context) (string, bool) {
	gameID, err := c.Cookie(GameCookie)
	if err != nil || gameID == "" {
		c.JSON(http.StatusNotFound, errorResponse{Error: noActiveGame})
		return "", false
	}
	return gameID, true
}

func (h *Handler) setGameCookie(c *gin.Context, gameID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(GameCookie, gameID, 0, "/", "", h.secureCookie, true)
}

func (h *Handler) clearGameCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(GameCookie, "", -1, "/", "", h.secureCookie, true)
}

// nextHand returns the upcoming hand size and dealer, both nil once the game is complete
func nextHand(state *game.GameState) (*int, *string) {
	if state.Complete {
		return nil, nil
	}
	handSize := state.HandSize
	dealer := state.Dealer
	return &handSize, &dealer
}
