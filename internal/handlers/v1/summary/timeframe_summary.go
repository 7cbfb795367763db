package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
)

// TimeFrameBody is the request body for a custom projection window.
type TimeFrameBody struct {
	TimeFrame float64 `json:"timeFrame" exclusiveMinimum:"0" doc:"Months to project totals over"`
}

// TimeFrameSummaryInput is the Huma input for the time-frame aggregate.
type TimeFrameSummaryInput struct {
	Body TimeFrameBody
}

// TimeFrameSummaryHandler handles POST /timeframe.
type TimeFrameSummaryHandler struct {
	Service reportProvider
}

// NewTimeFrameSummaryHandler creates a new TimeFrameSummaryHandler.
func NewTimeFrameSummaryHandler(svc reportProvider) *TimeFrameSummaryHandler {
	return &TimeFrameSummaryHandler{Service: svc}
}

// Register registers the time-frame aggregate endpoint with the Huma API.
func (h *TimeFrameSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "timeframe-summary",
		Method:      http.MethodPost,
		Path:        "/timeframe",
		Summary:     "Get the ROI summary for a time frame",
		Description: "Returns every revenue and expense with totals projected over the requested number of months.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func parseTimeFrameInput(input *TimeFrameSummaryInput) (decimal.Decimal, error) {
	if input.Body.TimeFrame <= 0 {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "timeFrame must be a positive number of months")
	}
	return decimal.NewFromFloat(input.Body.TimeFrame), nil
}

func (h *TimeFrameSummaryHandler) handle(ctx context.Context, input *TimeFrameSummaryInput) (*SummaryOutput, error) {
	timeFrame, err := parseTimeFrameInput(input)
	if err != nil {
		return nil, err
	}
	return buildSummary(ctx, h.Service, timeFrame)
}
