package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	roleservice "folio/contexts/identity-access/role-service"
	listingservice "folio/contexts/market-core/listing-service"
	contentservice "folio/contexts/publishing-editorial/content-service"
	"folio/internal/platform/ledger"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "folio/internal/platform/httpserver/docs"
)

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	listing listingservice.Module
	content contentservice.Module
	roles   roleservice.Module
	assets  *ledger.AssetBook
	cash    *ledger.CashBook
}

func New(
	listing listingservice.Module,
	content contentservice.Module,
	roles roleservice.Module,
	assets *ledger.AssetBook,
	cash *ledger.CashBook,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		listing: listing,
		content: content,
		roles:   roles,
		assets:  assets,
		cash:    cash,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Mux exposes the routing table for tests.
func (s *Server) Mux() *http.ServeMux {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/marketplaces/{marketplace}/listings", s.handleOpenListing)
	s.mux.HandleFunc("GET /v1/marketplaces/{marketplace}/listings", s.handleListListings)
	s.mux.HandleFunc("GET /v1/marketplaces/{marketplace}/listings/{asset_id}", s.handleGetListing)
	s.mux.HandleFunc("POST /v1/marketplaces/{marketplace}/listings/{asset_id}/purchase", s.handlePurchaseListing)
	s.mux.HandleFunc("POST /v1/marketplaces/{marketplace}/listings/{asset_id}/cancel", s.handleCancelListing)

	s.mux.HandleFunc("POST /v1/books", s.handleCreateBook)
	s.mux.HandleFunc("GET /v1/books/{book_id}", s.handleGetBook)
	s.mux.HandleFunc("POST /v1/books/{book_id}/chapters", s.handleAddChapter)
	s.mux.HandleFunc("GET /v1/books/{book_id}/chapters", s.handleListChapters)
	s.mux.HandleFunc("POST /v1/chapters/{chapter_id}/reviews", s.handleSubmitReview)
	s.mux.HandleFunc("GET /v1/chapters/{chapter_id}/reviews", s.handleListReviews)
	s.mux.HandleFunc("POST /v1/collections/{collection_id}/exclusive-content", s.handleCreateExclusiveContent)
	s.mux.HandleFunc("POST /v1/access/verify", s.handleVerifyAccess)
	s.mux.HandleFunc("POST /v1/tips", s.handleTipWriter)

	s.mux.HandleFunc("POST /v1/roles", s.handleRegisterRole)
	s.mux.HandleFunc("GET /v1/users/{user_id}/roles", s.handleListUserRoles)
	s.mux.HandleFunc("GET /v1/users/{user_id}/roles/{role}", s.handleHasRole)

	s.mux.HandleFunc("POST /v1/ledger/assets", s.handleMintAsset)
	s.mux.HandleFunc("POST /v1/ledger/assets/{asset_id}/verify-collection", s.handleVerifyCollection)
	s.mux.HandleFunc("POST /v1/ledger/accounts/{account}/deposit", s.handleDeposit)
	s.mux.HandleFunc("GET /v1/ledger/accounts/{account}/balance", s.handleBalance)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
