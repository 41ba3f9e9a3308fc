package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"takehome-engine/internal/engine"
	"takehome-engine/internal/model"
)

// New returns the root request handler: POST /calculation plus health and
// metrics endpoints.
func New() fasthttp.RequestHandler {
	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())

	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/calculation":
			handleCalculation(ctx)
		case "/healthz":
			ctx.SetStatusCode(fasthttp.StatusOK)
			ctx.SetBodyString("ok")
		case "/metrics":
			metricsHandler(ctx)
		default:
			writeError(ctx, fasthttp.StatusNotFound, "Not found")
		}
	}
}

func handleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	start := time.Now()

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		calculationErrors.Inc()
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := engine.Process(&req)

	calculationsTotal.Inc()
	calculationDurationSeconds.Observe(time.Since(start).Seconds())

	body, err := json.Marshal(resp)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
