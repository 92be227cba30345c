package events

import "github.com/atomicstack/pokedex-table/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) List(url string, limit int) {
	logging.Trace("catalog.list", map[string]interface{}{"url": url, "limit": limit})
}

func (CatalogTracer) Listed(count int) {
	logging.Trace("catalog.listed", map[string]interface{}{"count": count})
}

func (CatalogTracer) Detail(name string) {
	logging.Trace("catalog.detail", map[string]interface{}{"name": name})
}

func (CatalogTracer) Resolved(count int) {
	logging.Trace("catalog.resolved", map[string]interface{}{"count": count})
}

func (CatalogTracer) Failure(stage string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.failure", map[string]interface{}{"stage": stage, "error": err.Error()})
}
