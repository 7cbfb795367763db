package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/roi-server/internal/logging"
)

// GetSummaryInput is the Huma input for the default aggregate. It has no fields.
type GetSummaryInput struct{}

// GetSummaryHandler handles GET /.
type GetSummaryHandler struct {
	Service   reportProvider
	TimeFrame decimal.Decimal
}

// NewGetSummaryHandler creates a new GetSummaryHandler projecting over timeFrame months.
func NewGetSummaryHandler(svc reportProvider, timeFrame int) *GetSummaryHandler {
	return &GetSummaryHandler{
		Service:   svc,
		TimeFrame: decimal.NewFromInt(int64(timeFrame)),
	}
}

// Register registers the aggregate endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Get the ROI summary",
		Description: "Returns every revenue and expense with totals projected over the default time frame.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, _ *GetSummaryInput) (*SummaryOutput, error) {
	return buildSummary(ctx, h.Service, h.TimeFrame)
}

func buildSummary(ctx context.Context, svc reportProvider, timeFrame decimal.Decimal) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("timeFrame", timeFrame.String())
	}

	report, err := svc.Report(ctx, timeFrame)
	if err != nil {
		if logData != nil {
			logData.AddError(err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build summary", err)
	}

	if logData != nil {
		logData.AddData("revenueCount", len(report.Revenues))
		logData.AddData("expenseCount", len(report.Expenses))
	}

	return newSummaryOutput(report), nil
}
