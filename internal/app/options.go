package app

import (
	"os"
	"time"

	"github.com/foodgo-next/internal/config"
	"github.com/foodgo-next/internal/logger"

	"go.uber.org/zap"
)

// Options 应用运行选项，Signals 为空时不监听系统信号
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
}

// normalizeOptions 补齐缺省的日志器与停止超时
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return opts
}
