package lineitem

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/roi-server/internal/logging"
	"github.com/carson-networks/roi-server/internal/operator/actions"
	"github.com/carson-networks/roi-server/internal/roi"
)

// CreateLineItemBody is the request body for creating a revenue or expense.
type CreateLineItemBody struct {
	Type    string  `json:"type" enum:"expenses,revenue" doc:"Store to create the line item in"`
	Name    string  `json:"name" minLength:"1" doc:"Line item name"`
	OneTime float64 `json:"oneTime" required:"true" doc:"One-time amount, zero is allowed"`
	Monthly float64 `json:"monthly" required:"true" doc:"Recurring monthly amount, zero is allowed"`
}

// CreateLineItemInput is the Huma input for creating a line item.
type CreateLineItemInput struct {
	Body CreateLineItemBody
}

// CreateLineItemOutput is the Huma output for creating a line item.
type CreateLineItemOutput struct {
	Status   int
	Location string `header:"Location" doc:"Path of the created line item"`
	Body     LineItem
}

// CreateLineItemHandler handles POST /.
type CreateLineItemHandler struct {
	Operator actionProcessor
}

// NewCreateLineItemHandler creates a new CreateLineItemHandler.
func NewCreateLineItemHandler(op actionProcessor) *CreateLineItemHandler {
	return &CreateLineItemHandler{Operator: op}
}

// Register registers the create line item endpoint with the Huma API.
func (h *CreateLineItemHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-line-item",
		Method:        http.MethodPost,
		Path:          "/",
		Summary:       "Create a revenue or expense",
		Description:   "Creates a line item in the revenue or expenses store selected by type.",
		Tags:          []string{"LineItems"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateLineItemInput(input *CreateLineItemInput) (*actions.CreateLineItem, error) {
	kind, err := roi.ParseKind(input.Body.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "type must be expenses or revenue", err)
	}

	if input.Body.Name == "" {
		return nil, huma.NewError(http.StatusBadRequest, "name is required")
	}

	return &actions.CreateLineItem{
		Kind:    kind,
		Name:    input.Body.Name,
		OneTime: decimal.NewFromFloat(input.Body.OneTime),
		Monthly: decimal.NewFromFloat(input.Body.Monthly),
	}, nil
}

func (h *CreateLineItemHandler) handle(ctx context.Context, input *CreateLineItemInput) (*CreateLineItemOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateLineItemInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createLineItemMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.AddError(err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create line item", err)
	}

	created := action.Created
	if logData != nil {
		logData.AddData("lineItemType", action.Kind.String())
		logData.AddData("lineItemID", created.ID.String())
	}

	return &CreateLineItemOutput{
		Status:   http.StatusCreated,
		Location: "/" + action.Kind.String() + "/" + created.ID.String(),
		Body:     NewLineItem(created),
	}, nil
}
