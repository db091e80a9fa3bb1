// Command hfpagd runs the HFP Audio Gateway per-device control plane
// daemon: a registry of PeerMachines (empty at start; this command
// creates and bonds no peers itself), a broadcast event bus, and a
// small HTTP surface for operational visibility.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sebas/hfpagd/config"
	"github.com/sebas/hfpagd/internal/banner"
	"github.com/sebas/hfpagd/internal/hfp"
	"github.com/sebas/hfpagd/internal/hfpevents"
	"github.com/sebas/hfpagd/internal/registry"
	"github.com/sebas/hfpagd/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(os.Stdout, false, cfg.LogLevel)
	slog.SetDefault(log)

	banner.Print("hfpagd", []banner.ConfigLine{
		{Label: "debug addr", Value: cfg.DebugAddr},
		{Label: "log level", Value: cfg.LogLevel},
		{Label: "connect timeout", Value: cfg.Timers.ConnectTimeout.String()},
		{Label: "dialing out timeout", Value: cfg.Timers.DialingOutTimeout.String()},
		{Label: "start vr timeout", Value: cfg.Timers.StartVrTimeout.String()},
		{Label: "clcc rsp timeout", Value: cfg.Timers.ClccRspTimeout.String()},
	})

	bus := hfpevents.NewBus(log)
	publisher := hfpevents.NewPublisher(bus)

	native := newStubNative(log)
	system := newStubSystem(log)
	wake := stubWakeLock{logger: log}

	var reg *registry.Manager
	factory := func(peer string, events hfp.Publisher) *hfp.Machine {
		return hfp.NewMachine(peer, native, system, reg, wake, events, cfg.Timers, log)
	}
	reg = registry.NewManager(factory, publisher, log)

	srv := newDebugServer(reg, bus, log)
	run(reg, srv, cfg, log)
}

func run(reg *registry.Manager, srv *http.Server, cfg *config.Config, log *slog.Logger) {
	log.Info("starting hfpagd", "debug_addr", cfg.DebugAddr)
	logNetworkInterfaces(log)

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	ln, err := net.Listen("tcp", cfg.DebugAddr)
	if err != nil {
		log.Error("failed to bind debug listener", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Error("debug server error", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("received signal, shutting down", "signal", fmt.Sprint(sig))
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)

	reg.ForEach(func(peer string, m *hfp.Machine) bool {
		m.Stop()
		return true
	})
}

func logNetworkInterfaces(log *slog.Logger) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return
	}
	for _, iface := range interfaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ip, _, err := net.ParseCIDR(addr.String())
			if err != nil {
				continue
			}
			log.Debug("network interface", "interface", iface.Name, "ip", ip.String())
		}
	}
}
