package handlers

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error { return f.err }

func TestReadyReportsDependencyFailure(t *testing.T) {
	handler := NewHealthHandler("sla-monitor", "test", map[string]Pinger{
		"postgres": &fakePinger{},
		"redis":    &fakePinger{err: errors.New("connection refused")},
	})

	app := fiber.New()
	app.Get("/health/ready", handler.Ready)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/ready", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestReadyAllDependenciesHealthy(t *testing.T) {
	handler := NewHealthHandler("sla-monitor", "test", map[string]Pinger{
		"postgres": &fakePinger{},
	})

	app := fiber.New()
	app.Get("/health/ready", handler.Ready)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/ready", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
