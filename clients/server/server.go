// Package server exposes the report generator over HTTP, with an
// in-memory asset store for uploaded letterhead images.
package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mutabaa-app/taqrir/pkg/domain"
	"github.com/mutabaa-app/taqrir/pkg/report"
)

// ── Config ──

// Config is the service configuration, read from the environment.
type Config struct {
	Port         string
	FontPath     string
	BoldFontPath string
	FetchTimeout time.Duration
	MaxUploadMB  int64
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:         envOr("PORT", "8080"),
		FontPath:     os.Getenv("FONT_PATH"),
		BoldFontPath: os.Getenv("BOLD_FONT_PATH"),
		FetchTimeout: 5 * time.Second,
		MaxUploadMB:  10,
	}
	if ms, err := strconv.Atoi(os.Getenv("FETCH_TIMEOUT_MS")); err == nil && ms > 0 {
		cfg.FetchTimeout = time.Duration(ms) * time.Millisecond
	}
	if mb, err := strconv.ParseInt(os.Getenv("MAX_UPLOAD_MB"), 10, 64); err == nil && mb > 0 {
		cfg.MaxUploadMB = mb
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ── Asset store ──

type asset struct {
	Name string
	Data []byte
	Mime string
}

// assetStore holds uploaded images (logo, stamp, avatars) referenced from
// report inputs as "asset:<id>". Implements imageres.AssetStore.
type assetStore struct {
	mu     sync.RWMutex
	assets map[string]*asset
}

func newAssetStore() *assetStore {
	return &assetStore{assets: make(map[string]*asset)}
}

func (as *assetStore) add(name string, data []byte, mimeType string) string {
	id := randomID()
	as.mu.Lock()
	as.assets[id] = &asset{Name: name, Data: data, Mime: mimeType}
	as.mu.Unlock()
	return id
}

func (as *assetStore) get(id string) (*asset, bool) {
	as.mu.RLock()
	a, ok := as.assets[id]
	as.mu.RUnlock()
	return a, ok
}

func (as *assetStore) remove(id string) {
	as.mu.Lock()
	delete(as.assets, id)
	as.mu.Unlock()
}

func (as *assetStore) list() []map[string]any {
	as.mu.RLock()
	defer as.mu.RUnlock()
	result := make([]map[string]any, 0, len(as.assets))
	for id, a := range as.assets {
		result = append(result, map[string]any{
			"id":   id,
			"name": a.Name,
			"mime": a.Mime,
			"size": len(a.Data),
		})
	}
	return result
}

// Asset satisfies imageres.AssetStore.
func (as *assetStore) Asset(id string) ([]byte, string, bool) {
	a, ok := as.get(id)
	if !ok {
		return nil, "", false
	}
	return a.Data, a.Mime, true
}

func randomID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// ── Server ──

type srv struct {
	composer *report.Composer
	assets   *assetStore
	log      *zap.Logger
	cfg      Config
}

// RunServe builds the pipeline and blocks serving HTTP.
func RunServe(args []string) error {
	cfg := LoadConfig()
	for i, a := range args {
		if (a == "--port" || a == "-p") && i+1 < len(args) {
			cfg.Port = args[i+1]
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	assets := newAssetStore()
	composer, err := report.NewComposer(report.Options{
		FontPath:     cfg.FontPath,
		BoldFontPath: cfg.BoldFontPath,
		FetchTimeout: cfg.FetchTimeout,
		Assets:       assets,
	})
	if err != nil {
		return fmt.Errorf("composer: %w", err)
	}

	s := &srv{composer: composer, assets: assets, log: logger, cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/reports/render", s.handleRender)
	mux.HandleFunc("POST /api/reports/message", s.handleMessage)
	mux.HandleFunc("POST /api/assets", s.handleUploadAsset)
	mux.HandleFunc("GET /api/assets/{id}", s.handleGetAsset)
	mux.HandleFunc("DELETE /api/assets/{id}", s.handleDeleteAsset)
	mux.HandleFunc("GET /api/assets", s.handleListAssets)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	addr := ":" + cfg.Port
	logger.Info("taqrir report service listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, mux)
}

// ── Reports ──

func (s *srv) handleRender(w http.ResponseWriter, r *http.Request) {
	var in domain.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "decode input: "+err.Error(), http.StatusBadRequest)
		return
	}
	in.Normalize()

	warnings, err := in.Validate()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	for _, warn := range warnings {
		s.log.Warn("render input", zap.String("student", in.Student.Name), zap.String("warning", warn))
	}

	start := time.Now()
	pdf, err := s.composer.Generate(r.Context(), in)
	if err != nil {
		s.log.Error("report generation failed", zap.Error(err))
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	}
	s.log.Info("report generated",
		zap.String("student", in.Student.Name),
		zap.String("date", in.Record.Date),
		zap.Int("bytes", len(pdf)),
		zap.Duration("took", time.Since(start)))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
	w.Write(pdf)
}

func (s *srv) handleMessage(w http.ResponseWriter, r *http.Request) {
	var in domain.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "decode input: "+err.Error(), http.StatusBadRequest)
		return
	}
	in.Normalize()

	text := report.SummaryText(in.Student, in.Record)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"phone": in.Student.GuardianPhone,
		"text":  text,
	})
}

// ── Assets ──

func (s *srv) handleUploadAsset(w http.ResponseWriter, r *http.Request) {
	r.ParseMultipartForm(s.cfg.MaxUploadMB << 20)
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadMB<<20))
	if err != nil {
		http.Error(w, "read file: "+err.Error(), http.StatusBadRequest)
		return
	}

	mimeType := mime.TypeByExtension(filepath.Ext(header.Filename))
	if mimeType == "" {
		mimeType = "image/png"
	}
	id := s.assets.add(header.Filename, data, mimeType)
	s.log.Info("asset uploaded", zap.String("id", id), zap.String("name", header.Filename), zap.Int("size", len(data)))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"id":   id,
		"name": header.Filename,
		"ref":  "asset:" + id,
		"url":  "/api/assets/" + id,
	})
}

func (s *srv) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	a, ok := s.assets.get(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", a.Mime)
	w.Write(a.Data)
}

func (s *srv) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.assets.get(id); !ok {
		http.NotFound(w, r)
		return
	}
	s.assets.remove(id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted", "id": id})
}

func (s *srv) handleListAssets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.assets.list())
}

func (s *srv) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
