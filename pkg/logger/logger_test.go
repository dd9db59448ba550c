package logger

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	// Re-initialization replaces the global cleanly
	if err := Init(); err != nil {
		t.Fatalf("failed to re-initialize logger: %v", err)
	}
	if Get() == nil {
		t.Fatal("logger is nil after re-initialization")
	}
}

func TestLoggerFields(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	log := Get()
	log.Info(ctx, "competitor shaped",
		String("catId", "IWY"),
		Int("panelNumber", 2),
		Float64("exerciseTotal", 51.2),
		Duration("aggregation", 12*time.Millisecond),
	)
	log.Warn(ctx, "retrying query",
		Int("attempt", 2),
		Error(errors.New("connection reset")),
	)
}

func TestLoggerNamed(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	repoLog := Named("repository")
	if repoLog == nil {
		t.Fatal("named logger is nil")
	}

	ctx := context.Background()
	repoLog.Info(ctx, "query completed", String("table", "DisplayScreen"))
}

func TestFieldConstructors(t *testing.T) {
	if f := String("roundName", "Qualifying 1"); f.Key != "roundName" || f.Value != "Qualifying 1" {
		t.Errorf("String field mismatch: %+v", f)
	}
	if f := Int("panelNumber", 3); f.Value != 3 {
		t.Errorf("Int field mismatch: %+v", f)
	}
	if f := Duration("cacheTTL", 5*time.Minute); f.Value != 5*time.Minute {
		t.Errorf("Duration field mismatch: %+v", f)
	}
	err := errors.New("scan failed")
	if f := Error(err); f.Key != "error" || f.Value != err {
		t.Errorf("Error field mismatch: %+v", f)
	}
}

func TestSetLevelString(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	for _, level := range []string{"debug", "info", "warn", "warning", "error", ""} {
		if err := SetLevelString(level); err != nil {
			t.Errorf("SetLevelString(%q) failed: %v", level, err)
		}
	}
	if err := SetLevelString("loud"); err == nil {
		t.Error("SetLevelString accepted an unknown level")
	}
}
