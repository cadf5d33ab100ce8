package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// koanfConfig 是 Config 接口的 koanf 实现。
type koanfConfig struct {
	mu     sync.RWMutex
	k      *koanf.Koanf
	path   string
	format Format
}

// keyDelimiter koanf 的层级键分隔符。
const keyDelimiter = "."

// LoadFile 从文件加载配置，格式按扩展名推断（.yaml/.yml/.json）。
func LoadFile(path string) (Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := formatFromExt(path)
	if err != nil {
		return nil, err
	}

	cfg := &koanfConfig{path: path, format: format}
	k, err := loadFileInto(path, format)
	if err != nil {
		return nil, err
	}
	cfg.k = k
	return cfg, nil
}

// LoadBytes 从字节数据加载配置，格式必须显式指定。
// 返回的 Config 不支持 Reload。
func LoadBytes(data []byte, format Format) (Config, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}
	k := koanf.New(keyDelimiter)
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("xconf: parse config: %w", err)
	}
	return &koanfConfig{k: k, format: format}, nil
}

// Client 返回底层的 koanf 实例。
func (c *koanfConfig) Client() *koanf.Koanf {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.k
}

// Unmarshal 将指定路径的配置反序列化到目标结构体。
func (c *koanfConfig) Unmarshal(path string, target any) error {
	return c.Client().Unmarshal(path, target)
}

// Reload 重新加载配置文件。
//
// 设计决策: 先在锁外完成加载再整体替换实例，加载失败时旧配置保持可用，
// 读取方不会观察到半成品状态。
func (c *koanfConfig) Reload() error {
	if c.path == "" {
		return ErrNotFileBacked
	}
	k, err := loadFileInto(c.path, c.format)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.k = k
	c.mu.Unlock()
	return nil
}

// Path 返回配置文件路径。
func (c *koanfConfig) Path() string {
	return c.path
}

// Format 返回配置格式。
func (c *koanfConfig) Format() Format {
	return c.format
}

// =============================================================================
// 内部辅助
// =============================================================================

func loadFileInto(path string, format Format) (*koanf.Koanf, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("xconf: read config file: %w", err)
	}
	k := koanf.New(keyDelimiter)
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("xconf: parse config file %s: %w", path, err)
	}
	return k, nil
}

func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func formatFromExt(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
