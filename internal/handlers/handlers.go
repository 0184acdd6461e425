package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pitchstats/matches-api/internal/cache"
	"github.com/pitchstats/matches-api/internal/logic"
	"github.com/pitchstats/matches-api/internal/store"
)

type Config struct {
	Store  store.MatchStore
	Cache  *cache.Cache
	Logger *zap.Logger
	// Services
	Filter     logic.FilterService
	Stats      logic.StatsService
	Prediction logic.PredictionService
	// Pagination bounds
	DefaultPageSize int
	MaxPageSize     int
}

type Handler struct {
	store           store.MatchStore
	cache           *cache.Cache
	logger          *zap.SugaredLogger
	validator       *validator.Validate
	filter          logic.FilterService
	stats           logic.StatsService
	prediction      logic.PredictionService
	defaultPageSize int
	maxPageSize     int
}

func New(cfg Config) *Handler {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	return &Handler{
		store:           cfg.Store,
		cache:           cfg.Cache,
		logger:          cfg.Logger.Sugar(),
		validator:       validator.New(),
		filter:          cfg.Filter,
		stats:           cfg.Stats,
		prediction:      cfg.Prediction,
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
	}
}
