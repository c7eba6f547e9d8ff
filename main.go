package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharmahub/addresses"
	"pharmahub/auth"
	"pharmahub/cart"
	"pharmahub/db"
	"pharmahub/memstore"
	"pharmahub/orderfeed"
	"pharmahub/orders"
	"pharmahub/profile"
	"pharmahub/ratelim"
	"pharmahub/rdx"
	"pharmahub/routes"
	"pharmahub/stores"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, `{"status":"OK","message":"Backend is running"}`)
}

type backends struct {
	users     stores.UserStore
	addresses stores.AddressStore
	carts     stores.CartStore
	orders    stores.OrderStore
	close     func(context.Context) error
}

// openStores picks the backing per PHARMAHUB_STORE: "memory" serves the
// seeded demo data, anything else connects to MongoDB.
func openStores(ctx context.Context) (backends, error) {
	if os.Getenv("PHARMAHUB_STORE") == "memory" {
		log.Println("Using in-memory stores with seed data")
		return backends{
			users:     memstore.NewUsers(memstore.SeedUsers()...),
			addresses: memstore.NewAddresses(memstore.SeedAddresses()...),
			carts:     memstore.NewCarts(),
			orders:    memstore.NewOrders(memstore.SeedOrders()...),
			close:     func(context.Context) error { return nil },
		}, nil
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	mongo, err := db.Connect(ctx, uri)
	if err != nil {
		return backends{}, err
	}
	return backends{
		users:     mongo.Users,
		addresses: mongo.Addresses,
		carts:     mongo.Carts,
		orders:    mongo.Orders,
		close:     mongo.Close,
	}, nil
}

func setupRouter(b backends, hub *orderfeed.Hub, rl *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddAuthRoutes(router, &auth.API{Users: b.users}, rl)
	routes.AddCatalogRoutes(router)
	routes.AddAddressRoutes(router, &addresses.API{Addresses: b.addresses})
	routes.AddCartRoutes(router, &cart.API{Carts: b.carts})
	routes.AddOrderRoutes(router, &orders.API{Orders: b.orders, Carts: b.carts, Feed: hub}, hub)
	routes.AddUserRoutes(router, &profile.API{Users: b.users})

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":4000"
	} else if port[0] != ':' {
		port = ":" + port
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	b, err := openStores(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to open stores: %v", err)
	}

	if err := rdx.Init(); err != nil {
		log.Printf("Redis unavailable, caching disabled: %v", err)
	}

	rateLimiter := ratelim.NewRateLimiter()

	hub := orderfeed.NewHub()
	go hub.Run()

	router := setupRouter(b, hub, rateLimiter)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Shutting down order feed...")
		hub.Stop()
	})

	go func() {
		log.Printf("PharmaHub API listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	if err := b.close(shutdownCtx); err != nil {
		log.Printf("Store close failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
