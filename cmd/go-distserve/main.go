// Copyright (c) 2025 Eli Janssen
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// go-distserve daemon
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/cactus/go-distserve/pkg/distserve"

	"github.com/alecthomas/kong"
	"github.com/cactus/mlog"
	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/common/version"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	// ServerName holds the server name string
	ServerName = "go-distserve"
	// ServerVersion holds the server version string
	ServerVersion = "no-version"
)

// CLI holds command line flag config
type CLI struct {
	Version    kong.VersionFlag `name:"version" short:"V" help:"Print version information and quit"`
	Listen     string           `name:"listen" default:"localhost:8000" help:"Address:Port to bind to for HTTP"`
	Root       string           `name:"root" default:"dist" help:"Build output directory to serve"`
	MaxConns   int              `name:"max-conns" default:"256" help:"Maximum number of concurrent connections"`
	AddHeaders []string         `name:"header" short:"H" help:"Extra header to return for each response. This option can be used multiple times to add multiple headers"`
	Stats      bool             `name:"stats" help:"Enable the running counters endpoint at /status"`
	Metrics    bool             `name:"metrics" help:"Enable the prometheus metrics endpoint at /metrics"`
	NoLogTS    bool             `name:"no-log-ts" help:"Do not add a timestamp to logging"`
	Verbose    bool             `name:"verbose" short:"v" help:"Show verbose (debug) log level output"`
}

func main() {
	cli := CLI{}
	kong.Parse(&cli,
		kong.Name(ServerName),
		kong.Description("Serve a pre-built static web app directory over HTTP with permissive CORS headers"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf(
				"%s %s (%s,%s-%s)",
				ServerName, ServerVersion, runtime.Version(), runtime.Compiler, runtime.GOARCH,
			),
		},
	)

	// start out with a very bare logger that only prints
	// the message (no special format or log elements)
	mlog.SetFlags(0)

	config := distserve.Config{
		RootDir:       cli.Root,
		Listen:        cli.Listen,
		ServerName:    ServerName,
		MaxConns:      cli.MaxConns,
		EnableStats:   cli.Stats,
		EnableMetrics: cli.Metrics,
	}

	addHeaders := make(map[string]string)
	for _, v := range cli.AddHeaders {
		s := strings.SplitN(v, ":", 2)
		if len(s) != 2 {
			mlog.Printf("ignoring bad header: '%s'", v)
			continue
		}

		s0 := strings.TrimSpace(s[0])
		s1 := strings.TrimSpace(s[1])

		if len(s0) == 0 || len(s1) == 0 {
			mlog.Printf("ignoring bad header: '%s'", v)
			continue
		}
		addHeaders[s0] = s1
	}
	config.AddHeaders = addHeaders

	srv, err := distserve.New(config)
	if err != nil {
		if errors.Is(err, distserve.ErrRootNotFound) {
			mlog.Fatalf("%s. Run the front-end build first to create it.", err)
		}
		mlog.Fatal("Error creating server", err)
	}

	// now configure a standard logger
	mlog.SetFlags(mlog.Lstd)
	if cli.NoLogTS {
		mlog.SetFlags(mlog.Flags() ^ mlog.Ltimestamp)
	}

	if cli.Verbose {
		mlog.SetFlags(mlog.Flags() | mlog.Ldebug)
		mlog.Debug("debug logging enabled")
	}

	// cgroup aware GOMAXPROCS
	if _, err := maxprocs.Set(maxprocs.Logger(mlog.Debugf)); err != nil {
		mlog.Printf("could not set GOMAXPROCS: %s", err)
	}

	if cli.Stats {
		mlog.Printf("Enabling stats at /status")
	}

	if cli.Metrics {
		mlog.Printf("Enabling metrics at /metrics")
		version.Version = ServerVersion
		prometheus.MustRegister(versioncollector.NewCollector("godistserve"))
	}

	if err := srv.Listen(); err != nil {
		mlog.Fatal(err)
	}

	mlog.Printf("Starting server on: %s", srv.Addr())
	mlog.Printf("Serving from: %s", srv.Root())
	mlog.Printf("Press Ctrl+C to stop the server")

	go func() {
		if err := srv.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			mlog.Fatal("Server failure", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	mlog.Print("Interrupt received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		mlog.Fatal("Server forced to shutdown", err)
	}

	mlog.Print("Server stopped")
}
