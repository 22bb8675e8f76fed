package domain

import (
	"time"

	"github.com/google/uuid"
)

// GameType identifies one of the cognitive training games.
type GameType string

const (
	GameGoNoGo           GameType = "GO_NO_GO"
	GameVisuospatialGrid GameType = "VISUOSPATIAL_GRID"
	GameSimonSequence    GameType = "SIMON_SEQUENCE"
	GameVisualSearch     GameType = "VISUAL_SEARCH"
)

// GameTypes lists every game in lexicographic enum-name order. Aggregations
// iterate this slice so ties resolve to the earliest entry.
var GameTypes = []GameType{
	GameGoNoGo,
	GameSimonSequence,
	GameVisualSearch,
	GameVisuospatialGrid,
}

func (g GameType) Valid() bool {
	switch g {
	case GameGoNoGo, GameVisuospatialGrid, GameSimonSequence, GameVisualSearch:
		return true
	}
	return false
}

// DisplayName is the human readable game name used in coaching text.
func (g GameType) DisplayName() string {
	switch g {
	case GameGoNoGo:
		return "Go/No-Go"
	case GameVisuospatialGrid:
		return "Visuospatial Grid"
	case GameSimonSequence:
		return "Simon Sequence"
	case GameVisualSearch:
		return "Visual Search"
	}
	return string(g)
}

// GameSession is the result of one completed game. Records are append-only.
type GameSession struct {
	ID                      string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID                  uuid.UUID `gorm:"type:uuid;not null;index:idx_sessions_user_ts" json:"-"`
	Timestamp               time.Time `gorm:"not null;index:idx_sessions_user_ts" json:"timestamp"`
	GameType                GameType  `gorm:"type:varchar(32);not null" json:"gameType"`
	DifficultyLevel         int       `gorm:"not null" json:"difficultyLevel"`
	Score                   int       `gorm:"not null" json:"score"`
	Accuracy                float64   `gorm:"not null" json:"accuracy"`
	ReactionTimeMs          *int      `json:"reactionTimeMs,omitempty"`
	ReactionTimeVariability *float64  `json:"reactionTimeVariability,omitempty"`
	OmissionErrors          int       `gorm:"not null;default:0" json:"omissionErrors"`
	CommissionErrors        int       `gorm:"not null;default:0" json:"commissionErrors"`
	// EMAID is a lookup key only; the EMA may be missing.
	EMAID             *string `gorm:"type:varchar(64)" json:"emaId,omitempty"`
	IsBaselineSession bool    `gorm:"not null" json:"isBaselineSession"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}

// Validate checks ranges and enum values of a decoded record.
func (s *GameSession) Validate() error {
	if s.ID == "" || s.Timestamp.IsZero() {
		return ErrMalformedRecord
	}
	if !s.GameType.Valid() || s.DifficultyLevel < 1 || s.Score < 0 {
		return ErrMalformedRecord
	}
	if s.Accuracy < 0 || s.Accuracy > 1 {
		return ErrMalformedRecord
	}
	if s.ReactionTimeMs != nil && *s.ReactionTimeMs < 0 {
		return ErrMalformedRecord
	}
	if s.ReactionTimeVariability != nil && *s.ReactionTimeVariability < 0 {
		return ErrMalformedRecord
	}
	if s.OmissionErrors < 0 || s.CommissionErrors < 0 {
		return ErrMalformedRecord
	}
	return nil
}

// CreateSessionRequest is the request body for recording a finished game.
// @Description Result of a completed cognitive game.
type CreateSessionRequest struct {
	// Optional client-generated ID (generated when empty)
	ID *string `json:"id,omitempty" validate:"omitempty,max=64"`
	// Completion time (defaults to now)
	Timestamp       *time.Time `json:"timestamp,omitempty" example:"2024-01-15T08:05:00Z"`
	GameType        GameType   `json:"gameType" validate:"required,gametype" example:"GO_NO_GO" enums:"GO_NO_GO,VISUOSPATIAL_GRID,SIMON_SEQUENCE,VISUAL_SEARCH"`
	DifficultyLevel int        `json:"difficultyLevel" validate:"required,min=1" example:"2"`
	Score           *int       `json:"score" validate:"required,min=0" example:"85"`
	Accuracy        *float64   `json:"accuracy" validate:"required,min=0,max=1" example:"0.92"`
	ReactionTimeMs  *int       `json:"reactionTimeMs,omitempty" validate:"omitempty,min=0" example:"420"`
	// Standard deviation of reaction times in ms
	ReactionTimeVariability *float64 `json:"reactionTimeVariability,omitempty" validate:"omitempty,min=0" example:"65.5"`
	OmissionErrors          int      `json:"omissionErrors" validate:"min=0" example:"1"`
	CommissionErrors        int      `json:"commissionErrors" validate:"min=0" example:"0"`
	// EMA taken right before the session; the most recent EMA is linked when omitted
	EMAID *string `json:"emaId,omitempty" validate:"omitempty,max=64"`
}

// SessionFilter contains filter parameters for listing sessions.
type SessionFilter struct {
	From     *time.Time
	To       *time.Time
	GameType *GameType
	Limit    int
	Cursor   string
}

// SessionListResponse is the response body for listing sessions.
// @Description Paginated list of game sessions, newest first.
type SessionListResponse struct {
	Data       []GameSession      `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}
