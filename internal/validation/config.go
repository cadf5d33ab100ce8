package validation

import (
	"time"

	"github.com/omeyang/tracekit/pkg/config/xconf"
	"github.com/omeyang/tracekit/pkg/observability/xlog"
)

// =============================================================================
// 服务配置
// =============================================================================

// Config 校验服务配置。
type Config struct {
	// Listen 监听地址，默认 ":7777"（harness 约定端口）。
	Listen string `koanf:"listen"`

	// CallbackTimeout 单次回调请求的超时，默认 5s。
	CallbackTimeout time.Duration `koanf:"callback_timeout"`

	// RetryAttempts 回调失败的最大尝试次数（含首次），默认 3。
	RetryAttempts int `koanf:"retry_attempts"`

	// RetryDelay 重试间隔，默认 100ms。
	RetryDelay time.Duration `koanf:"retry_delay"`

	// Log 日志配置。
	Log LogConfig `koanf:"log"`
}

// LogConfig 日志输出配置。
type LogConfig struct {
	// Level debug/info/warn/error，默认 info。
	Level string `koanf:"level"`

	// Format text/json，默认 text。
	Format string `koanf:"format"`

	// File 非空时输出到文件并按大小滚动。
	File string `koanf:"file"`

	// MaxSizeMB 单个日志文件上限，默认 100。
	MaxSizeMB int `koanf:"max_size_mb"`

	// MaxBackups 保留的滚动文件数，0 表示不限制。
	MaxBackups int `koanf:"max_backups"`
}

// DefaultConfig 返回全默认值的配置。
func DefaultConfig() Config {
	return Config{
		Listen:          ":7777",
		CallbackTimeout: 5 * time.Second,
		RetryAttempts:   3,
		RetryDelay:      100 * time.Millisecond,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig 从配置文件加载，path 为空时返回默认配置。
// 文件中缺失的字段保持默认值。
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	c, err := xconf.LoadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := c.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// BuildLogger 按日志配置构建 Logger，返回 cleanup。
func (c Config) BuildLogger() (xlog.LoggerWithLevel, func(), error) {
	level, err := xlog.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	opts := []xlog.Option{
		xlog.WithLevel(level),
		xlog.WithFormat(xlog.Format(c.Log.Format)),
	}
	if c.Log.File != "" {
		opts = append(opts, xlog.WithFile(c.Log.File, c.Log.MaxSizeMB, c.Log.MaxBackups))
	}
	return xlog.Build(opts...)
}
