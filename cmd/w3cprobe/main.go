// w3cprobe 是 W3C Trace Context 校验服务与配套探测工具。
//
// 用法:
//
//	w3cprobe <命令> [命令参数]
//
// 命令:
//
//	serve    启动校验服务（harness 的被测端）
//	send     向校验服务发送一条带新生成追踪上下文的测试请求
//
// serve 命令说明:
//
//	默认监听 :7777（w3c/trace-context harness 约定端口）。
//	--config 指定 YAML/JSON 配置文件时，文件变更会触发热加载，
//	当前仅日志级别在热加载后生效，监听地址变更需要重启。
//
// 退出码:
//
//	0: 正常退出
//	1: 参数错误、启动失败或运行期致命错误
//
// 示例:
//
//	w3cprobe serve
//	w3cprobe serve --config probe.yaml --listen :8080
//	w3cprobe send --url http://localhost:7777 --callback http://localhost:7777/callback
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/tracekit/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "w3cprobe",
		Usage: "W3C Trace Context validation service and probe",
		Commands: []*cli.Command{
			serveCommand(),
			sendCommand(),
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "w3cprobe:", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the validation service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path (yaml/json)",
			},
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "listen address, overrides config",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServe(ctx, cmd.String("config"), cmd.String("listen"))
		},
	}
}

func sendCommand() *cli.Command {
	return &cli.Command{
		Name:  "send",
		Usage: "send a probe request with a freshly generated trace context",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Usage:    "validation service endpoint",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "callback",
				Usage: "callback url the service should invoke",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runSend(ctx, cmd.String("url"), cmd.String("callback"))
		},
	}
}

// probePayload 构造 send 命令的测试动作列表。
func probePayload(callback string) ([]byte, error) {
	if callback == "" {
		return json.Marshal([]validation.Action{})
	}
	return json.Marshal([]validation.Action{
		{URL: callback, Arguments: json.RawMessage("[]")},
	})
}
