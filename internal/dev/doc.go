// Package dev provides live reload for the development server.
//
// This package implements:
//   - File watching with fsnotify, debounced into one change per kind
//   - WebSocket-based browser refresh
//
// # Usage
//
//	reload := dev.NewReloadServer(logger)
//	router.Handle(dev.ReloadPath, reload)
//
//	w := dev.NewWatcher(dev.WatcherConfig{
//	    Paths:    dev.CollectWatchPaths(".", cfg),
//	    Ignore:   cfg.Dev.Ignore,
//	    Debounce: cfg.Dev.Debounce,
//	})
//	w.OnChange(reload.HandleChange)
//	go w.Start(ctx)
//
// # Reload Protocol
//
// The browser connects to /_dev/reload via WebSocket.
// Messages are JSON-encoded:
//
//	{"type": "reload"}                       // Triggers full page reload
//	{"type": "css", "file": "static/a.css"}  // Triggers CSS-only reload
//	{"type": "error", "error": "..."}        // Reports an error
//	{"type": "clear"}                        // Clears a reported error
package dev
