package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestInitAndLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	Init()
	if L().GetLevel() != zerolog.DebugLevel {
		t.Fatalf("want debug level, got %v", L().GetLevel())
	}

	t.Setenv("LOG_LEVEL", "bogus")
	Init()
	if L().GetLevel() != zerolog.InfoLevel {
		t.Fatalf("unknown level must fall back to info, got %v", L().GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"err":     zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q)=%v want %v", in, got, want)
		}
	}
}

func TestLReturnsUsableLogger(t *testing.T) {
	l := L()
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Info().Msg("smoke")
}
