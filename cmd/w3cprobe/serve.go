package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/tracekit/internal/validation"
	"github.com/omeyang/tracekit/pkg/config/xconf"
	"github.com/omeyang/tracekit/pkg/observability/xlog"
)

// shutdownTimeout 优雅退出时等待存量请求完成的上限。
const shutdownTimeout = 10 * time.Second

// runServe 启动校验服务，阻塞到 ctx 取消或服务异常退出。
func runServe(ctx context.Context, configPath, listenOverride string) error {
	cfg, err := validation.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if listenOverride != "" {
		cfg.Listen = listenOverride
	}

	log, cleanup, err := cfg.BuildLogger()
	if err != nil {
		return err
	}
	defer cleanup()
	xlog.SetDefault(log)

	// 配置热加载：当前仅日志级别在运行期生效
	if configPath != "" {
		if err := watchConfig(ctx, configPath, log); err != nil {
			log.Warn(ctx, "w3cprobe: config watch disabled", slog.Any("error", err))
		}
	}

	svc := validation.NewService(log, validation.NewCallbackClient(cfg))
	server := &http.Server{
		Addr:              cfg.Listen,
		Handler:           svc.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gctx, "w3cprobe: serving", slog.String("listen", cfg.Listen))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	log.Info(ctx, "w3cprobe: stopped")
	return err
}

// watchConfig 监听配置文件变更，热更新日志级别。
func watchConfig(ctx context.Context, path string, log xlog.LoggerWithLevel) error {
	cfg, err := xconf.LoadFile(path)
	if err != nil {
		return err
	}
	return xconf.Watch(ctx, cfg,
		func() {
			reloaded := validation.DefaultConfig()
			if err := cfg.Unmarshal("", &reloaded); err != nil {
				log.Warn(ctx, "w3cprobe: reload unmarshal failed", slog.Any("error", err))
				return
			}
			level, err := xlog.ParseLevel(reloaded.Log.Level)
			if err != nil {
				log.Warn(ctx, "w3cprobe: reload bad log level", slog.Any("error", err))
				return
			}
			log.SetLevel(level)
			log.Info(ctx, "w3cprobe: config reloaded", slog.String("log_level", level.String()))
		},
		func(err error) {
			log.Warn(ctx, "w3cprobe: config reload failed", slog.Any("error", err))
		},
	)
}
