package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/mrops-br/product-catalog-api/internal/app/mapper"
	"github.com/mrops-br/product-catalog-api/internal/app/service"
	"github.com/mrops-br/product-catalog-api/internal/infrastructure/repository/memory"
)

func newTestHandler(logger *slog.Logger) *ProductHandler {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := tracenoop.NewTracerProvider().Tracer("test")

	repo := memory.NewProductRepository(tracer, discard)
	svc := service.NewProductService(repo, mapper.NewProductMapper(), tracer, metricnoop.NewMeterProvider().Meter("test"), discard)
	return NewProductHandler(svc, logger)
}

func TestCreateProductMalformedBodyLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(slog.New(slog.NewJSONHandler(&buf, nil)))

	rec := httptest.NewRecorder()
	h.CreateProduct(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if entry["level"] != "WARN" || entry["msg"] != "Failed to decode request body" {
		t.Fatalf("unexpected log entry %v", entry)
	}
}

func TestCreateProductRejectsOversizedBody(t *testing.T) {
	h := newTestHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"name":"` + strings.Repeat("x", maxBodyBytes) + `","price":1}`
	rec := httptest.NewRecorder()
	h.CreateProduct(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"error":"request_too_large"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
