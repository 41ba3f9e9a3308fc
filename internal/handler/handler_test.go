package handler

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func doRequest(t *testing.T, method, path string, body []byte) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	New()(ctx)
	return ctx
}

func TestHandleCalculation(t *testing.T) {
	body := []byte(`{
		"taxpayer_income": {"gross_employment_income": 5000000},
		"dependents": [
			{"relationship": "spouse", "id": "sp", "age_category": "under70", "income": {}, "disability": "none", "is_cohabiting": true}
		]
	}`)

	ctx := doRequest(t, fasthttp.MethodPost, "/calculation", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp struct {
		Metadata struct {
			Outcome string `json:"calculation_outcome"`
		} `json:"calculation_metadata"`
		Result struct {
			TotalNetIncome int64 `json:"total_net_income"`
			Deductions     struct {
				NationalTax struct {
					Spouse int64 `json:"spouse_deduction"`
					Total  int64 `json:"total"`
				} `json:"national_tax"`
			} `json:"dependent_deductions"`
		} `json:"calculation_result"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.Equal(t, "SUCCESS", resp.Metadata.Outcome)
	require.EqualValues(t, 3_560_000, resp.Result.TotalNetIncome)
	require.EqualValues(t, 380_000, resp.Result.Deductions.NationalTax.Spouse)
	require.EqualValues(t, 380_000, resp.Result.Deductions.NationalTax.Total)
}

func TestHandleCalculationInvalidBody(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodPost, "/calculation", []byte(`{"dependents": [{"relationship": "robot"}]}`))
	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	require.Contains(t, string(ctx.Response.Body()), "Invalid request body")
}

func TestHandleCalculationWrongMethod(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/calculation", nil)
	require.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestHealthz(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/healthz", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	require.Equal(t, "ok", string(ctx.Response.Body()))
}

func TestNotFound(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/nope", nil)
	require.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
