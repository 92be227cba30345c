package app

import (
	"testing"
	"time"
)

func TestCatalogOptions(t *testing.T) {
	cfg := Config{
		CatalogURL:      "http://catalog.test/api",
		Concurrency:     4,
		RequestInterval: 100 * time.Millisecond,
		Timeout:         time.Second,
	}
	opts := cfg.CatalogOptions()
	if opts.BaseURL != cfg.CatalogURL || opts.Concurrency != 4 {
		t.Fatalf("unexpected options %#v", opts)
	}
	if opts.RequestInterval != cfg.RequestInterval || opts.Timeout != cfg.Timeout {
		t.Fatalf("unexpected durations %#v", opts)
	}
}

func TestNewModelStartsLoadingWithoutFetching(t *testing.T) {
	model, loader := NewModel(Config{CatalogURL: "http://127.0.0.1:1", Limit: 5, Width: 80, Height: 24})
	defer loader.Wait()
	defer loader.Stop()
	if model == nil || loader == nil {
		t.Fatalf("expected model and loader")
	}
	if !model.Loading() {
		t.Fatalf("expected model to start in the loading state")
	}
}
