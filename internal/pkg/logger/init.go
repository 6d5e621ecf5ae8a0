package logger

import (
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer

// InitLogger JSON 格式输出到标准输出，trace_id 从 ctx 自动附加
func InitLogger() {
	handler := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})
	log.SetDefault(log.New(&ContextHandler{handler}))
	LogWriter = os.Stdout
}
