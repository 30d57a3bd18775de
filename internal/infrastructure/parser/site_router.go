package parser

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"JaundiceAnalyzer/internal/config"
	"JaundiceAnalyzer/internal/extract"
	"JaundiceAnalyzer/internal/ports"
)

type route struct {
	site     string
	strategy extract.Strategy
	options  map[string]string
}

// SiteRouter implements ports.Extractor by dispatching on the page host.
type SiteRouter struct {
	routes map[string]route
	logger *slog.Logger
}

var _ ports.Extractor = (*SiteRouter)(nil)

// NewSiteRouter binds config-defined sites to registered strategies.
func NewSiteRouter(reg *extract.Registry, sites []config.SiteConfig, log *slog.Logger) (*SiteRouter, error) {
	if reg == nil {
		return nil, fmt.Errorf("extractor registry is not configured")
	}

	routes := map[string]route{}
	for _, site := range sites {
		strategy, err := reg.Resolve(site.Extractor)
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", site.Name, err)
		}
		for _, host := range site.Hosts {
			routes[normalizeHost(host)] = route{site: site.Name, strategy: strategy, options: site.Options}
		}
	}

	return &SiteRouter{routes: routes, logger: log}, nil
}

// Extract picks the adapter for the page host. Pages from unknown hosts are
// reported as extract.ErrArticleNotFound.
func (r *SiteRouter) Extract(pageURL string, html string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid url %s: %v", extract.ErrArticleNotFound, pageURL, err)
	}

	rt, ok := r.lookup(parsed.Hostname())
	if !ok {
		return "", fmt.Errorf("%w: no extractor for host %q", extract.ErrArticleNotFound, parsed.Hostname())
	}

	r.debug("extract article", "site", rt.site, "extractor", rt.strategy.Name(), "url", pageURL)
	return rt.strategy.Extract(pageURL, html, rt.options)
}

// lookup matches the host itself and then each parent domain.
func (r *SiteRouter) lookup(host string) (route, bool) {
	host = normalizeHost(host)
	for host != "" {
		if rt, ok := r.routes[host]; ok {
			return rt, true
		}
		_, parent, found := strings.Cut(host, ".")
		if !found {
			break
		}
		host = parent
	}
	return route{}, false
}

func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	return strings.TrimPrefix(host, "www.")
}

func (r *SiteRouter) debug(msg string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}
