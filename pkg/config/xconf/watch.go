package xconf

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// 配置文件变更监听
// =============================================================================

// Watch 监听配置文件变更并自动 Reload。
//
// 每次成功 Reload 后调用 onReload（可为 nil）；Reload 失败时配置保持
// 旧值并调用 onError（可为 nil）。ctx 取消后监听停止并释放资源。
//
// 设计决策: 监听配置文件所在目录而非文件本身。K8s ConfigMap 更新走
// symlink 原子替换，直接监听文件会在替换后收不到事件。
func Watch(ctx context.Context, cfg Config, onReload func(), onError func(error)) error {
	path := cfg.Path()
	if path == "" {
		return ErrNotFileBacked
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("xconf: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("xconf: watch dir: %w", err)
	}

	go func() {
		defer watcher.Close()
		base := filepath.Base(path)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := cfg.Reload(); err != nil {
					if onError != nil {
						onError(err)
					}
					continue
				}
				if onReload != nil {
					onReload()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			}
		}
	}()
	return nil
}
