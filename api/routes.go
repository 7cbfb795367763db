package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humamux"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/roi-server/internal/handlers/v1/lineitem"
	"github.com/carson-networks/roi-server/internal/handlers/v1/status"
	"github.com/carson-networks/roi-server/internal/handlers/v1/summary"
	"github.com/carson-networks/roi-server/internal/logging"
	"github.com/carson-networks/roi-server/internal/operator/actions"
	"github.com/carson-networks/roi-server/internal/roi"
	"github.com/carson-networks/roi-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

// ActionProcessor runs write actions inside a transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ReportProvider builds the aggregate ROI report.
type ReportProvider interface {
	Report(ctx context.Context, timeFrame decimal.Decimal) (*service.ROIReport, error)
}

// Pinger checks database reachability for the status endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Rest struct {
	Logger           *logrus.Logger
	Port             string
	Reports          ReportProvider
	Operator         ActionProcessor
	DB               Pinger
	DefaultTimeFrame int
}

var remapValidationOnce sync.Once

// remapValidationStatus makes request validation failures surface as 400
// rather than huma's default 422.
func remapValidationStatus() {
	remapValidationOnce.Do(func() {
		newError := huma.NewError
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			if status == http.StatusUnprocessableEntity {
				status = http.StatusBadRequest
			}
			return newError(status, msg, errs...)
		}
	})
}

// Router builds the HTTP handler serving every route.
func (r *Rest) Router() http.Handler {
	remapValidationStatus()

	timeFrame := r.DefaultTimeFrame
	if timeFrame <= 0 {
		timeFrame = roi.DefaultTimeFrame
	}

	router := mux.NewRouter()

	statusHandler := status.NewHandler(r.DB)
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humamux.New(router, huma.DefaultConfig("ROI Server", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	summary.NewGetSummaryHandler(r.Reports, timeFrame).Register(api)
	summary.NewTimeFrameSummaryHandler(r.Reports).Register(api)
	lineitem.NewCreateLineItemHandler(r.Operator).Register(api)
	lineitem.NewDeleteLineItemHandler(r.Operator).Register(api)

	return router
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		listenErr <- server.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
