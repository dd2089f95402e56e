package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalContext 收到第一个 SIGINT 或 SIGTERM 时取消 context，第二个信号直接退出进程
func SetupSignalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
		<-c
		os.Exit(1)
	}()
	return ctx
}
