package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"Error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Errorf("toZapLevel(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestGet_ReturnsSingleton(t *testing.T) {
	a := Get(InfoLevel)
	b := Get(DebugLevel)
	if a != b {
		t.Fatalf("expected the same instance from Get")
	}
	if a.Named("rooms") == nil {
		t.Fatalf("Named returned nil")
	}
	Nop().Infow("discarded", "k", "v")
}
