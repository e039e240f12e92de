package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l, err := New("production", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("production logger must not log debug")
	}

	l, err = New("development", "warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) || !l.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("expected warn level override")
	}
}

func TestSetAndL(t *testing.T) {
	defer Set(nil)
	custom := zap.NewExample()
	Set(custom)
	if L() != custom {
		t.Fatalf("expected custom logger")
	}
	Set(nil)
	if L() == nil {
		t.Fatalf("expected nop logger")
	}
	if OrNop(nil) == nil {
		t.Fatalf("expected nop logger")
	}
}
