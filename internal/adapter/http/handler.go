package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"passwordCheckerBackend/internal/core/domain"
	"passwordCheckerBackend/internal/pkg/metrics"
	"passwordCheckerBackend/internal/port"
)

type AnalyzeRequest struct {
	Password    string `json:"password" binding:"required"`
	CheckBreach bool   `json:"check_breach"`
}

type GenerateRequest struct {
	Type             string                        `json:"type"` // "password" (default) or "passphrase"
	Count            int                           `json:"count"`
	TotalLength      int                           `json:"total_length"`
	EnabledClasses   []domain.CharacterClass       `json:"enabled_classes"`
	ExcludeAmbiguous *bool                         `json:"exclude_ambiguous"`
	MinPerClass      map[domain.CharacterClass]int `json:"minimum_per_class"`
	WordCount        int                           `json:"word_count"`
	Separator        string                        `json:"separator"`
}

type PasswordHandler struct {
	service port.PasswordService
	metrics *metrics.Collector
	logger  *zap.Logger
}

func NewPasswordHandler(service port.PasswordService, collector *metrics.Collector, logger *zap.Logger) *PasswordHandler {
	return &PasswordHandler{
		service: service,
		metrics: collector,
		logger:  logger,
	}
}

func (h *PasswordHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	report, err := h.service.Analyze(c.Request.Context(), req.Password, req.CheckBreach)
	if err != nil {
		h.logger.Error("analyze failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *PasswordHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count := req.Count
	if count < 1 {
		count = 1
	}

	var (
		secrets []domain.GeneratedSecret
		err     error
	)
	if req.Type == "passphrase" {
		secrets, err = h.generatePassphrases(c, count, req)
	} else {
		secrets, err = h.service.GenerateBatch(c.Request.Context(), count, constraintsFromRequest(req))
	}
	if err != nil {
		var constraintErr domain.ConstraintError
		if errors.As(err, &constraintErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "constraint": string(constraintErr)})
			return
		}
		h.logger.Error("generate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if count == 1 {
		c.JSON(http.StatusOK, secrets[0])
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(secrets), "results": secrets})
}

func (h *PasswordHandler) generatePassphrases(c *gin.Context, count int, req GenerateRequest) ([]domain.GeneratedSecret, error) {
	opts := domain.DefaultPassphraseOptions()
	if req.WordCount > 0 {
		opts.WordCount = req.WordCount
	}
	if req.Separator != "" {
		opts.Separator = req.Separator
	}

	secrets := make([]domain.GeneratedSecret, 0, count)
	for i := 0; i < count; i++ {
		secret, err := h.service.GeneratePassphrase(c.Request.Context(), opts)
		if err != nil {
			return nil, err
		}
		secrets = append(secrets, secret)
	}
	return secrets, nil
}

func (h *PasswordHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}

func (h *PasswordHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func constraintsFromRequest(req GenerateRequest) domain.GenerationConstraints {
	constraints := domain.DefaultConstraints()
	if req.TotalLength > 0 {
		constraints.TotalLength = req.TotalLength
	}
	if len(req.EnabledClasses) > 0 {
		constraints.EnabledClasses = req.EnabledClasses
	}
	if req.ExcludeAmbiguous != nil {
		constraints.ExcludeAmbiguous = *req.ExcludeAmbiguous
	}
	if len(req.MinPerClass) > 0 {
		constraints.MinPerClass = req.MinPerClass
	}
	return constraints
}
