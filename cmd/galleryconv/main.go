package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Mooshieblob1/galleryMKIII/internal/config"
	"github.com/Mooshieblob1/galleryMKIII/internal/convert"
)

func main() {
	cfgFlag := flag.String("config", "", "path to gallery.yaml (optional)")
	forceFlag := flag.Bool("force", false, "re-encode even when targets are up to date")
	watchFlag := flag.Bool("watch", false, "keep running and re-convert changed images")
	flag.Parse()

	_ = godotenv.Load()

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(os.Stdout)

	cfg, err := config.Load(*cfgFlag)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	conv := &convert.Converter{
		Enc:    convert.WebP{Quality: cfg.Images.Quality},
		Force:  *forceFlag,
		Logger: log.Default(),
	}

	jobs := make([]convert.Job, 0, len(cfg.Images.Mappings))
	for _, m := range cfg.Images.Mappings {
		jobs = append(jobs, convert.Job{
			SourceDir: filepath.Join(cfg.SiteDir, filepath.FromSlash(m.Source)),
			TargetDir: filepath.Join(cfg.SiteDir, filepath.FromSlash(m.Target)),
			MaxWidth:  m.MaxWidth,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	failed := 0
	for _, job := range jobs {
		stats, err := conv.Run(ctx, job)
		if err != nil {
			log.Fatalf("convert error: %v", err)
		}
		failed += stats.Failed
	}

	if *watchFlag {
		if err := conv.Watch(ctx, jobs); err != nil && ctx.Err() == nil {
			log.Fatalf("watch error: %v", err)
		}
		return
	}
	if failed > 0 {
		os.Exit(1)
	}
}
