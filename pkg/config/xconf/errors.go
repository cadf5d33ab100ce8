package xconf

import "errors"

var (
	// ErrUnsupportedFormat 配置格式不是 yaml/json。
	ErrUnsupportedFormat = errors.New("xconf: unsupported format")

	// ErrNotFileBacked 对字节数据创建的 Config 调用了仅文件配置支持的操作。
	ErrNotFileBacked = errors.New("xconf: config not backed by a file")

	// ErrEmptyPath 配置文件路径为空。
	ErrEmptyPath = errors.New("xconf: empty config path")
)
