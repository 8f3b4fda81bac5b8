package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phi-h-nguyen/modernfi-take-home/internal/domain/dto"
	"github.com/phi-h-nguyen/modernfi-take-home/internal/service"
)

// queryDateLayout is the date format accepted in query parameters.
const queryDateLayout = "2006-01-02"

// Handler provides HTTP handlers for the Treasury yields endpoint.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Route a request to single-date or range mode
//   - Translate service results and errors into JSON responses with
//     appropriate HTTP status codes
type Handler struct {
	svc service.YieldService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.YieldService) *Handler {
	return &Handler{svc: svc}
}

// GetTreasuryYields handles GET /api/yields/treasury requests.
//
// The endpoint serves two modes behind one path, selected by the
// presence of the "date" parameter:
//
//   - Single-date mode (?date=YYYY-MM-DD): the yield curve in effect on
//     that date, with Saturdays rolled back one day and Sundays two.
//   - Range mode (?year=2025 or ?years=2023,2024, plus optional
//     start_date/end_date): all matching days merged and sorted
//     ascending.
//
// GetTreasuryYields godoc
// @Summary      Get Treasury yield-curve data
// @Description  Single-date lookup (date param) or multi-year range query (year/years params)
// @Tags         yields
// @Produce      json
// @Param        date        query     string  false  "Effective date in YYYY-MM-DD (single-date mode)" example(2025-09-26)
// @Param        year        query     string  false  "Single year (range mode)" example(2025)
// @Param        years       query     string  false  "Comma-separated years (range mode)" example(2023,2024)
// @Param        start_date  query     string  false  "Inclusive lower bound in YYYY-MM-DD" example(2024-01-01)
// @Param        end_date    query     string  false  "Inclusive upper bound in YYYY-MM-DD" example(2024-06-30)
// @Success      200         {object}  dto.TreasuryRangeResponse  "Success"
// @Failure      400         {object}  dto.ErrorResponse          "Bad Request"
// @Failure      404         {object}  dto.ErrorResponse          "Not Found"
// @Failure      500         {object}  dto.ErrorResponse          "Internal Error"
// @Router       /api/yields/treasury [get]
func (h *Handler) GetTreasuryYields(c *gin.Context) {
	if dateParam := c.Query("date"); dateParam != "" {
		h.singleDate(c, dateParam)
		return
	}
	h.rangeQuery(c)
}

// singleDate resolves the effective yield curve for one calendar date.
func (h *Handler) singleDate(c *gin.Context, dateParam string) {
	target, err := time.Parse(queryDateLayout, dateParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid 'date' format, expected YYYY-MM-DD", err))
		return
	}

	resp, err := h.svc.EffectiveDate(c.Request.Context(), target)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// rangeQuery resolves a merged multi-year query with optional bounds.
func (h *Handler) rangeQuery(c *gin.Context) {
	// ─── Collect requested years ──────────────────────────────
	var years []string
	if s := c.Query("years"); s != "" {
		for _, y := range strings.Split(s, ",") {
			if y = strings.TrimSpace(y); y != "" {
				years = append(years, y)
			}
		}
	} else if y := strings.TrimSpace(c.Query("year")); y != "" {
		years = []string{y}
	}
	if len(years) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"missing required query param: 'date' (YYYY-MM-DD) or 'year'/'years'", nil))
		return
	}

	// ─── Parse optional date bounds ───────────────────────────
	var start, end *time.Time
	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse(queryDateLayout, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid 'start_date' format, expected YYYY-MM-DD", err))
			return
		}
		start = &parsed
	}
	if s := c.Query("end_date"); s != "" {
		parsed, err := time.Parse(queryDateLayout, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid 'end_date' format, expected YYYY-MM-DD", err))
			return
		}
		end = &parsed
	}

	// ─── Query service (with request context) ─────────────────
	resp, err := h.svc.RangeQuery(c.Request.Context(), years, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// respondServiceError maps the service error taxonomy onto HTTP status
// codes: validation and upstream failures are the caller's 400, missing
// data is 404, anything else is 500.
func respondServiceError(c *gin.Context, err error) {
	var ve *service.ValidationError
	var ue *service.UpstreamError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(ve.Message, nil))
	case errors.As(err, &ue):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(ue.Error(), nil))
	case errors.Is(err, service.ErrNoData):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data found for the requested parameters", nil))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error", err))
	}
}
