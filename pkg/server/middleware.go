package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const maxParamLogLen = 200

const slowRequestThreshold = 3 * time.Second

// loggingMiddleware logs every request with its duration. Requests slower
// than the threshold are logged at Warn; params are truncated.
func loggingMiddleware(logger *slog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			start := time.Now()
			result, err := next(ctx, method, req)
			elapsed := time.Since(start)

			attrs := []any{
				slog.String("method", method),
				slog.Int64("duration_ms", elapsed.Milliseconds()),
			}
			if params := req.GetParams(); params != nil {
				attrs = append(attrs, slog.String("params", truncate(fmt.Sprintf("%+v", params), maxParamLogLen)))
			}

			switch {
			case err != nil:
				attrs = append(attrs, slog.String("error", err.Error()))
				logger.Error("request failed", attrs...)
			case elapsed > slowRequestThreshold:
				logger.Warn("slow request", attrs...)
			default:
				logger.Debug("request completed", attrs...)
			}

			return result, err
		}
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
