package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-governance/internal/middlewares"
)

const (
	testAddress = "0x00000000000000000000000000000000000000aa"
	testID      = "11111111-2222-3333-4444-555555555555"
)

// newRequest builds a request with an optional JSON body, route id and caller.
func newRequest(method, target string, body any, id, caller string) *http.Request {
	var bodyBytes []byte
	switch v := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(v)
	default:
		bodyBytes, _ = json.Marshal(v)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(bodyBytes))
	ctx := req.Context()
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	if caller != "" {
		ctx = middlewares.WithAddress(ctx, caller)
	}
	return req.WithContext(ctx)
}

func decodeError(w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}
