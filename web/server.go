package web

import (
	"os"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// PortEnvVar overrides the listen port.
const PortEnvVar = "DOCSITE_PORT"

const defaultAddress = ":8000"

// listenAddress is resolved in NewServer and reported by Run.
var listenAddress = defaultAddress

// resolveAddress derives the listen address from the environment.
func resolveAddress() string {
	if port := os.Getenv(PortEnvVar); port != "" {
		return ":" + port
	}
	return defaultAddress
}

// NewServer creates and configures the RWeb server
func NewServer() *rweb.Server {
	address := resolveAddress()
	listenAddress = address

	s := rweb.NewServer(rweb.ServerOptions{
		Address: address,
		Verbose: true,
	})

	// Apply middleware
	s.Use(rweb.RequestInfo)          // Logs request info
	s.Use(CorsMiddleware)            // CORS headers
	s.Use(SecurityHeadersMiddleware) // Security headers
	s.Use(JWTAuthMiddleware)         // Populates editor identity when a token is present
	s.Use(LoggingMiddleware)         // Request logging

	setupRoutes(s)

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server) error {
	logger.Info("DocSite starting", "address", listenAddress)
	return s.Run()
}
