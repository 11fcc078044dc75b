package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MealSvcURL      string
	AdvisorSvcURL   string
	DashboardSvcURL string
	FrontendDir     string
}

type route struct {
	match  func(path string) bool
	target string
}

type Gateway struct {
	config Config
	client HTTPClient
	routes []route
	live   *httputil.ReverseProxy
}

var adviceRoute = regexp.MustCompile(`^/api/meals/[^/]+/advice$`)

const livePath = "/api/dashboard/live"

func NewGateway(config Config, client HTTPClient) (*Gateway, error) {
	dashboardURL, err := url.Parse(config.DashboardSvcURL)
	if err != nil {
		return nil, fmt.Errorf("invalid dashboard service url: %w", err)
	}

	// First match wins, so the advice route sits ahead of /api/meals.
	routes := []route{
		{match: adviceRoute.MatchString, target: config.AdvisorSvcURL},
		{match: prefix("/api/chat"), target: config.AdvisorSvcURL},
		{match: prefix("/api/tips"), target: config.AdvisorSvcURL},
		{match: prefix("/api/dashboard"), target: config.DashboardSvcURL},
		{match: prefix("/api/meals"), target: config.MealSvcURL},
		{match: prefix("/api/nutrition"), target: config.MealSvcURL},
		{match: prefix("/api/profile"), target: config.MealSvcURL},
		{match: prefix("/api/share"), target: config.MealSvcURL},
	}

	return &Gateway{
		config: config,
		client: client,
		routes: routes,
		live:   httputil.NewSingleHostReverseProxy(dashboardURL),
	}, nil
}

// prefix matches p itself and anything below it, but not /api/chatter for
// /api/chat.
func prefix(p string) func(string) bool {
	return func(path string) bool {
		return path == p || strings.HasPrefix(path, p+"/")
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	req.ContentLength = r.ContentLength

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, "Upstream service unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

// LiveProxy tunnels the dashboard WebSocket. The upgraded connection
// outlives the server's read and write timeouts, so they are cleared first.
func (g *Gateway) LiveProxy(w http.ResponseWriter, r *http.Request) {
	log.Printf("PROXY: %s %s -> %s (live)", r.Method, r.URL.Path, g.config.DashboardSvcURL)

	rc := http.NewResponseController(w)
	if err := rc.SetReadDeadline(time.Time{}); err != nil {
		log.Printf("WARN: could not clear read deadline: %v", err)
	}
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		log.Printf("WARN: could not clear write deadline: %v", err)
	}

	g.live.ServeHTTP(w, r)
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	for _, rt := range g.routes {
		if rt.match(path) {
			g.ProxyRequest(w, r, rt.target)
			return
		}
	}

	if strings.HasPrefix(path, "/api/") {
		log.Printf("[GATEWAY] Unmatched API route: %s", path)
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}

	g.serveFrontend(w, r)
}

// serveFrontend serves static assets and falls back to index.html so that
// client-side routes load the app.
func (g *Gateway) serveFrontend(w http.ResponseWriter, r *http.Request) {
	dir := g.config.FrontendDir
	name := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))

	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}
	http.ServeFile(w, r, filepath.Join(dir, "index.html"))
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.Path(livePath).HandlerFunc(g.LiveProxy)
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
