package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/Evowe/baseball-stats-api/internal/platform/logging"
	"github.com/Evowe/baseball-stats-api/internal/usecase"
)

type Handler struct {
	statsService   *usecase.StatsService
	exportService  *usecase.ExportService
	feedService    *usecase.FeedService
	accountService *usecase.AccountService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	statsService *usecase.StatsService,
	exportService *usecase.ExportService,
	feedService *usecase.FeedService,
	accountService *usecase.AccountService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		statsService:   statsService,
		exportService:  exportService,
		feedService:    feedService,
		accountService: accountService,
		logger:         logger,
		validator:      validator.New(),
	}
}

// decodeBody parses and validates a JSON request body into dst.
func (h *Handler) decodeBody(r *http.Request, dst any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed json body", usecase.ErrInvalidInput)
	}
	if err := h.validator.StructCtx(r.Context(), dst); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}
