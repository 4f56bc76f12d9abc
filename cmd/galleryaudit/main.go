package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Mooshieblob1/galleryMKIII/internal/audit"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080/", "gallery page to audit")
	timeoutFlag := flag.Duration("timeout", 60*time.Second, "browser session timeout")
	scrollFlag := flag.Int("scrolls", 10, "viewport-height scroll steps")
	flag.Parse()

	_ = godotenv.Load()

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(os.Stdout)

	report, err := audit.Run(context.Background(), audit.Options{
		URL:         *urlFlag,
		Timeout:     *timeoutFlag,
		ScrollSteps: *scrollFlag,
		Logger:      log.Default(),
	})
	if err != nil {
		log.Fatalf("audit error: %v", err)
	}

	for _, img := range report.Images {
		state := "fallback"
		switch {
		case img.Errored():
			state = "error"
		case img.Preferred():
			state = "webp"
		}
		log.Printf("IMG %-8s %s (data-src=%s)", state, img.Src, img.DataSrc)
	}
	if !report.StylesPresent {
		log.Println("WARN loader styles missing from page")
	}

	_, _, errored := report.Counts()
	if errored > 0 || !report.StylesPresent {
		os.Exit(1)
	}
}
