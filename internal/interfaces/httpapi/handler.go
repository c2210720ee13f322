package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/platform/logging"
	"github.com/riskibarqy/scout-market/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

// Services groups the use cases served over HTTP.
type Services struct {
	Users         *usecase.UserService
	Lookups       *usecase.LookupService
	PlayerAds     *usecase.PlayerAdvertisementService
	ClubAds       *usecase.ClubAdvertisementService
	ClubOffers    *usecase.ClubOfferService
	PlayerOffers  *usecase.PlayerOfferService
	ClubHistories *usecase.ClubHistoryService
	Chats         *usecase.ChatService
	Favorites     *usecase.FavoriteService
	Problems      *usecase.ProblemService
	Summary       *usecase.SummaryService
}

type Handler struct {
	users         *usecase.UserService
	lookups       *usecase.LookupService
	playerAds     *usecase.PlayerAdvertisementService
	clubAds       *usecase.ClubAdvertisementService
	clubOffers    *usecase.ClubOfferService
	playerOffers  *usecase.PlayerOfferService
	clubHistories *usecase.ClubHistoryService
	chats         *usecase.ChatService
	favorites     *usecase.FavoriteService
	problems      *usecase.ProblemService
	summary       *usecase.SummaryService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		users:         services.Users,
		lookups:       services.Lookups,
		playerAds:     services.PlayerAds,
		clubAds:       services.ClubAds,
		clubOffers:    services.ClubOffers,
		playerOffers:  services.PlayerOffers,
		clubHistories: services.ClubHistories,
		chats:         services.Chats,
		favorites:     services.Favorites,
		problems:      services.Problems,
		summary:       services.Summary,
		logger:        logger,
		validator:     newRequestValidator(),
	}
}

// newRequestValidator reports fields by their JSON names.
func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldError names one request field that failed validation.
type fieldError struct {
	Field string
	Rule  string
}

// validationError is an ErrInvalidInput carrying the offending fields.
type validationError struct {
	fields []fieldError
}

func (e *validationError) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+" ("+f.Rule+")")
	}
	return usecase.ErrInvalidInput.Error() + ": validation failed: " + strings.Join(parts, ", ")
}

func (e *validationError) Unwrap() error {
	return usecase.ErrInvalidInput
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	fields := make([]fieldError, 0, len(invalid))
	for _, fe := range invalid {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		fields = append(fields, fieldError{Field: field, Rule: fe.Tag()})
	}
	return &validationError{fields: fields}
}

// decodeRequest reads a JSON body into dst and validates it.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

func requirePrincipal(ctx context.Context) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return principal, nil
}

// requireSelfOrAdmin guards per-user listings.
func requireSelfOrAdmin(principal user.Principal, userID string) error {
	if principal.IsAdmin() || principal.UserID == userID {
		return nil
	}
	return fmt.Errorf("%w: listing belongs to another user", usecase.ErrForbidden)
}

func pathValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.PathValue(name))
}

// userIDParam reads the {userID} segment of owner-scoped routes. A blank
// segment would otherwise widen the listing to every owner.
func userIDParam(r *http.Request) (string, error) {
	userID := pathValue(r, "userID")
	if userID == "" {
		return "", fmt.Errorf("%w: user id is required", usecase.ErrInvalidInput)
	}
	return userID, nil
}

func queryValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

type countDTO struct {
	Count int `json:"count"`
}
