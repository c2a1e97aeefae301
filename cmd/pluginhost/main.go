package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stakeplug/internal/app"
	"stakeplug/internal/domain"
	"stakeplug/internal/host"
	"stakeplug/internal/plugin"
	_ "stakeplug/internal/plugins/all"
	"stakeplug/internal/services/contracts"
	"stakeplug/internal/store"
)

func main() {
	var (
		flags  app.Config
		memory bool
	)
	flag.StringVar(&flags.Home, "home", "", "config dir (default ~/.stakeplug)")
	flag.StringVar(&flags.ListenAddr, "addr", "", "listen address (default :8080)")
	flag.BoolVar(&memory, "memory", false, "keep contract records in memory only")
	flag.Parse()

	log.SetPrefix("[pluginhost] ")
	cfg, err := app.Load(flags)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var records domain.ContractStore
	if memory {
		records = store.NewMemoryContractStore()
	} else {
		if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
			log.Fatalf("create home: %v", err)
		}
		records = store.NewContractFileStore(cfg.Home)
	}

	logger := log.Default()
	srv := host.New(plugin.Default, contracts.New(plugin.Default, records), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("serving %d plugins on %s", len(plugin.Default.Names()), cfg.ListenAddr)
	if err := host.Serve(ctx, cfg.ListenAddr, srv.Handler()); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
	log.Println("shut down")
}
