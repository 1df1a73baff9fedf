package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/vnmarket/vnstock-mcp/internal/config"
	"github.com/vnmarket/vnstock-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "vnstock-mcp",
		Short:        "MCP server for Vietnamese stock market data",
		RunE:         run,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("transport", "stdio", "Transport kind: stdio or http")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host (http transport)")
	root.PersistentFlags().Int("port", 8000, "HTTP port (http transport)")
	root.PersistentFlags().String("chart-url", "", "Chart API base URL")
	root.PersistentFlags().String("analysis-url", "", "Analysis API base URL")
	root.PersistentFlags().String("listing-url", "", "Symbol listing URL")
	root.PersistentFlags().Duration("request-timeout", 30*time.Second, "Provider request timeout")
	root.PersistentFlags().Int("result-cap", 100, "Maximum listing rows per response")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	srv := mcp.New(mcp.DefaultConfig())

	switch transport := config.Transport(); transport {
	case "stdio":
		return mcpserver.ServeStdio(srv.MCP)
	case "http":
		return serveHTTP(srv)
	default:
		return fmt.Errorf("unsupported transport type: %s", transport)
	}
}

func serveHTTP(srv *mcp.Server) error {
	addr := config.Host() + ":" + strconv.Itoa(config.Port())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("MCP server listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
