package main

import (
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Mooshieblob1/galleryMKIII/internal/config"
	"github.com/Mooshieblob1/galleryMKIII/internal/gallery"
)

func main() {
	cfgFlag := flag.String("config", "", "path to gallery.yaml (optional)")
	addrFlag := flag.String("addr", "", "listen address, e.g. :8080 (overrides config)")
	flag.Parse()

	_ = godotenv.Load()

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(os.Stdout)

	cfg, err := config.Load(*cfgFlag)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	addr := cfg.Server.Addr
	if *addrFlag != "" {
		addr = *addrFlag
	}
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}

	handler := gallery.New(gallery.Config{
		SiteDir: cfg.SiteDir,
		Rules:   cfg.RewriteRules(),
		Label:   cfg.Images.Label,
		Logger:  log.Default(),
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		// Conservative timeouts to avoid slowloris and leaked connections blocking the server
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          log.New(os.Stdout, "HTTPERR ", log.LstdFlags|log.Lmicroseconds),
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Listen error on %s: %v", addr, err)
	}
	log.Println("Serving", cfg.SiteDir, "on", addr)
	log.Fatal(srv.Serve(ln))
}
