package http

import (
	"time"

	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/validators"
)

const (
	tokenIssuer   = "til-stub"
	tokenDuration = 24 * time.Hour
)

type Handler struct {
	repo         Repository
	validator    validators.Validator
	tokenSignKey string

	logger *logger.Logger
}

func NewHandler(repo Repository, tokenSignKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		repo:         repo,
		validator:    validators.NewTILValidator(),
		tokenSignKey: tokenSignKey,
		logger:       logger,
	}
}
