package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/pokedex-table/internal/app"
	"github.com/atomicstack/pokedex-table/internal/config"
	"github.com/atomicstack/pokedex-table/internal/logging"
	"github.com/atomicstack/pokedex-table/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	err := app.Run(runtimeCfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		logging.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Close()
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   cfg.Flags,
		"catalog": catalogTraceFields(cfg.App),
		"screen":  screenTraceFields(cfg.App),
		"logging": loggingTraceFields{File: logging.Path(), Trace: cfg.Logging.Trace},
		"tty":     collectTTYDetails(),
	}
	if cfg.EnvFile != "" {
		payload["envFile"] = cfg.EnvFile
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type catalogFields struct {
	URL             string `json:"url"`
	Limit           int    `json:"limit"`
	Concurrency     int    `json:"concurrency"`
	RequestInterval string `json:"request_interval"`
	Timeout         string `json:"timeout"`
}

func catalogTraceFields(cfg app.Config) catalogFields {
	return catalogFields{
		URL:             cfg.CatalogURL,
		Limit:           cfg.Limit,
		Concurrency:     cfg.Concurrency,
		RequestInterval: cfg.RequestInterval.String(),
		Timeout:         cfg.Timeout.String(),
	}
}

type screenFields struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Footer bool `json:"footer"`
}

func screenTraceFields(cfg app.Config) screenFields {
	return screenFields{Width: cfg.Width, Height: cfg.Height, Footer: cfg.ShowFooter}
}

type loggingTraceFields struct {
	File  string `json:"file"`
	Trace bool   `json:"trace"`
}

type ttyDetails struct {
	Size   *ttySize   `json:"size,omitempty"`
	Probes []ttyProbe `json:"probes"`
}

type ttySize struct {
	From   string `json:"from"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbe struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// collectTTYDetails reports which standard streams are terminals; the first
// one with a readable size is recorded as the detected screen size.
func collectTTYDetails() ttyDetails {
	var details ttyDetails
	for _, stream := range []struct {
		name string
		file *os.File
	}{{"stdin", os.Stdin}, {"stdout", os.Stdout}, {"stderr", os.Stderr}} {
		probe := probeTTY(stream.name, stream.file)
		if details.Size == nil && probe.Terminal && probe.Error == "" {
			details.Size = &ttySize{From: probe.Name, Width: probe.Width, Height: probe.Height}
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}

func probeTTY(name string, f *os.File) ttyProbe {
	probe := ttyProbe{Name: name}
	if f == nil {
		return probe
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return probe
	}
	probe.Terminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width, probe.Height = width, height
	return probe
}
