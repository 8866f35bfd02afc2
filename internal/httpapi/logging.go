package httpapi

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"flipd/pkg/types"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch s {
	case "off", "":
		return LevelOff
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// global default, read once
var defaultLogLevel = parseLevel(os.Getenv("FLIPD_LOG_LEVEL"))

func requestLogLevel(r *http.Request) LogLevel {
	// Per-request overrides
	if v := r.URL.Query().Get("log"); v != "" {
		if v == "1" {
			return LevelDebug
		}
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel
}

// logShift reports one window-moving request. Failures are logged from
// LevelError, successes from LevelInfo; LevelDebug adds the intents.
func logShift(r *http.Request, lvl LogLevel, op string, status int, dur time.Duration, plan types.PlanResponse, err error) {
	if lvl < LevelError || (err == nil && lvl < LevelInfo) {
		return
	}
	if zlog == nil {
		if err != nil {
			log.Printf("%s status=%d dur=%s err=%v", op, status, dur, err)
			return
		}
		log.Printf("%s status=%d dur=%s target=%d intents=%d", op, status, dur, plan.Target, len(plan.Intents))
		if lvl >= LevelDebug {
			for _, in := range plan.Intents {
				log.Printf("%s> %s logical=%d from=%d to=%d", op, in.Kind, in.Logical, in.From, in.To)
			}
		}
		return
	}
	ev := zlog.Info()
	if err != nil {
		ev = zlog.Error().Err(err)
	}
	ev = ev.Str("op", op).Int("status", status).Dur("dur", dur)
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		ev = ev.Str("request_id", rid)
	}
	if err == nil {
		ev = ev.Int("target", plan.Target).Bool("changed", plan.Changed).Int("intents", len(plan.Intents))
	}
	if lvl >= LevelDebug && len(plan.Intents) > 0 {
		arr := zerolog.Arr()
		for _, in := range plan.Intents {
			arr = arr.Dict(zerolog.Dict().Str("kind", in.Kind).Int("logical", in.Logical).Int("from", in.From).Int("to", in.To))
		}
		ev = ev.Array("plan", arr)
	}
	ev.Msg("shift")
}

// logf logs outside of a request when the default level allows it.
func logf(lvl LogLevel, format string, args ...any) {
	if defaultLogLevel < lvl {
		return
	}
	if zlog != nil {
		ev := zlog.Debug()
		switch lvl {
		case LevelError:
			ev = zlog.Error()
		case LevelInfo:
			ev = zlog.Info()
		}
		ev.Msgf(format, args...)
		return
	}
	log.Printf(format, args...)
}
