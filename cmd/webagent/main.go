// Package main provides a small non-interactive driver for the browser
// agent tools: navigate to a page, report matched elements, and optionally
// fill a form field. Intended for smoke-testing a deployment and as a
// reference for wiring the tools into an agent loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/webagent/pkg/browser"
	"github.com/entrhq/webagent/pkg/config"
)

func main() {
	var (
		configPath   = flag.String("config", "", "path to YAML config file (optional)")
		url          = flag.String("url", "https://example.com", "URL to navigate to")
		selector     = flag.String("selector", "a", "CSS selector to query after navigation")
		fillSelector = flag.String("fill-selector", "", "CSS selector of an input to fill (optional)")
		fillValue    = flag.String("fill-value", "", "value for -fill-selector")
	)
	flag.Parse()

	if err := run(*configPath, *url, *selector, *fillSelector, *fillValue); err != nil {
		log.Fatalf("webagent: %v", err)
	}
}

func run(configPath, url, selector, fillSelector, fillValue string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	agent, err := browser.New(cfg.Options())
	if err != nil {
		return err
	}

	if err := agent.Initialize(); err != nil {
		return err
	}
	// Cleanup must run on every exit path or the browser process leaks.
	defer agent.Cleanup()

	// Close the browser on interrupt as well.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		agent.Cleanup()
		os.Exit(1)
	}()

	nav, err := agent.GoToURL(url)
	if err != nil {
		return err
	}
	fmt.Println(nav)
	if !nav.OK() {
		return nil
	}

	elements, err := agent.GetElementsBySelector(selector)
	if err != nil {
		return err
	}
	fmt.Println(elements)

	if fillSelector != "" {
		filled, err := agent.FillForm(fillSelector, fillValue)
		if err != nil {
			return err
		}
		fmt.Println(filled)
	}

	return nil
}
