package lineitem

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/roi-server/internal/logging"
	"github.com/carson-networks/roi-server/internal/operator/actions"
	"github.com/carson-networks/roi-server/internal/roi"
)

// DeleteLineItemInput is the Huma input for deleting a line item.
type DeleteLineItemInput struct {
	Type string `path:"type" enum:"expenses,revenue" doc:"Store the line item belongs to"`
	ID   string `path:"id" minLength:"1" doc:"Line item UUID"`
}

// DeleteLineItemOutput is the Huma output for deleting a line item.
type DeleteLineItemOutput struct{}

// DeleteLineItemHandler handles DELETE /{type}/{id}.
type DeleteLineItemHandler struct {
	Operator actionProcessor
}

// NewDeleteLineItemHandler creates a new DeleteLineItemHandler.
func NewDeleteLineItemHandler(op actionProcessor) *DeleteLineItemHandler {
	return &DeleteLineItemHandler{Operator: op}
}

// Register registers the delete line item endpoint with the Huma API.
func (h *DeleteLineItemHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-line-item",
		Method:        http.MethodDelete,
		Path:          "/{type}/{id}",
		Summary:       "Delete a revenue or expense",
		Description:   "Deletes the line item with the given ID. Succeeds whether or not the ID exists.",
		Tags:          []string{"LineItems"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func parseDeleteLineItemInput(input *DeleteLineItemInput) (*actions.DeleteLineItem, error) {
	kind, err := roi.ParseKind(input.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "type must be expenses or revenue", err)
	}

	if input.ID == "" {
		return nil, huma.NewError(http.StatusBadRequest, "id is required")
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	return &actions.DeleteLineItem{Kind: kind, ID: id}, nil
}

func (h *DeleteLineItemHandler) handle(ctx context.Context, input *DeleteLineItemInput) (*DeleteLineItemOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseDeleteLineItemInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteLineItemMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.AddError(err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete line item", err)
	}

	if logData != nil {
		logData.AddData("lineItemType", action.Kind.String())
		logData.AddData("lineItemID", action.ID.String())
		logData.AddData("deletedCount", action.Deleted)
	}

	return &DeleteLineItemOutput{}, nil
}
