package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// HumaMiddleware attaches a fresh LogData to every huma operation and logs
// its outcome under the operation ID once the handler has written a response.
func HumaMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		loggingName := "Unknown"
		if op := ctx.Operation(); op != nil {
			loggingName = op.OperationID
		}

		logData := NewLogData(log)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		log.Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)

		switch {
		case status >= http.StatusInternalServerError:
			logData.Log().Errorf("Handler.%v.Error", loggingName)
		case status >= http.StatusBadRequest:
			logData.Log().Warnf("Handler.%v.Rejected", loggingName)
		default:
			logData.Log().Infof("Handler.%v.Complete", loggingName)
		}
	}
}
