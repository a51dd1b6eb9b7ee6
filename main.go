package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/menulens/menulens-go/api"
	"github.com/menulens/menulens-go/api/controllers"
	"github.com/menulens/menulens-go/api/notifyhub"
	"github.com/menulens/menulens-go/gallery"
	"github.com/menulens/menulens-go/lifecycle"
	"github.com/menulens/menulens-go/share"
	"github.com/menulens/menulens-go/tool"
	"github.com/menulens/menulens-go/transport"
	"github.com/menulens/menulens-go/types"
)

func main() {
	cfg := tool.SetFlags()

	settingsPath := cfg.UseConfigPath
	if settingsPath == "" {
		settingsPath = "settings.yaml"
	}
	store, err := tool.LoadStore(settingsPath)
	if err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}
	if cfg.UseBackendURL != "" {
		store.Set(tool.SettingBackendURL, cfg.UseBackendURL)
	}

	tool.InitLogger()
	switch strings.ToLower(cfg.Log) {
	case "", "dev":
		tool.DefaultLogger.SetLevel(log.DebugLevel)
	case "prod":
		tool.DefaultLogger.SetLevel(log.InfoLevel)
	case "none":
		tool.DefaultLogger.SetLevel(log.FatalLevel)
	default:
		tool.DefaultLogger.Warnf("Unknown log mode %q, using debug level", cfg.Log)
		tool.DefaultLogger.SetLevel(log.DebugLevel)
	}

	hub := notifyhub.New()

	backend := store.GetString(tool.SettingBackendURL, tool.DefaultBackendURL)
	client := transport.NewClient(backend)
	if cfg.SkipReachCheck {
		client.DisableReachabilityProbe()
	}

	galleryCtrl := gallery.New(hub)
	lifecycleCtrl := lifecycle.New(lifecycle.Config{
		Transport: client,
		Settings:  store,
		Sink:      hub,
		Results:   share.NewResults(),
	})
	// A fresh translation replaces whatever the carousel was showing.
	lifecycleCtrl.OnResult = func(t *types.MenuTranslation) {
		galleryCtrl.Close()
		var images []string
		for _, dish := range t.Dishes {
			images = append(images, dish.ImageURLs...)
		}
		if len(images) > 0 {
			galleryCtrl.Open(images, 0)
		}
	}

	port := cfg.UsePort
	if port <= 0 {
		port = api.DefaultPort
	}
	if cfg.UsePageURL != "" {
		controllers.PageURL = cfg.UsePageURL
	} else {
		controllers.PageURL = fmt.Sprintf("http://127.0.0.1:%d/", port)
	}

	server := api.NewServer(port, lifecycleCtrl, galleryCtrl, hub, store)
	if err := server.Start(); err != nil {
		tool.DefaultLogger.Fatalf("API server startup failed: %v", err)
	}
}
