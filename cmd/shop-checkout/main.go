package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KimTien0410/shop-checkout/internal/api/handlers"
	"github.com/KimTien0410/shop-checkout/internal/api/middleware"
	"github.com/KimTien0410/shop-checkout/internal/cache"
	"github.com/KimTien0410/shop-checkout/internal/config"
	"github.com/KimTien0410/shop-checkout/internal/gateway"
	"github.com/KimTien0410/shop-checkout/internal/health"
	"github.com/KimTien0410/shop-checkout/internal/metrics"
	service "github.com/KimTien0410/shop-checkout/internal/services"
	"github.com/KimTien0410/shop-checkout/internal/snapshot"
	"github.com/KimTien0410/shop-checkout/internal/telemetry"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title			Shop Checkout API
//	@version		1.0
//	@description	Storefront checkout service: cart, checkout session, vouchers and order history.
//	@BasePath		/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Host,
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(redisClient, cfg.Session.CheckoutTTL)

	defer func() {
		if err := redisCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Redis connection closed")
		}
	}()

	store := snapshot.NewStore(redisCache, cfg.Session.CheckoutTTL, cfg.Session.CartTTL)

	// Backend gateway setup
	backendClient := gateway.NewClient(&cfg.Backend)
	addressGateway := gateway.NewAddressGateway(backendClient)
	paymentMethodGateway := gateway.NewPaymentMethodGateway(backendClient)
	deliveryMethodGateway := gateway.NewDeliveryMethodGateway(backendClient)
	voucherGateway := gateway.NewVoucherGateway(backendClient)
	orderGateway := gateway.NewOrderGateway(backendClient)
	cartGateway := gateway.NewCartGateway(backendClient)

	jwtKey := []byte(cfg.Security.JWTKey)
	checkoutService := service.NewCheckoutService(addressGateway, paymentMethodGateway, deliveryMethodGateway, voucherGateway, orderGateway, cartGateway, store)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	cartService := service.NewCartService(cartGateway, store)
	cartHandler := handlers.NewCartHandler(cartService)
	voucherService := service.NewVoucherService(voucherGateway)
	voucherHandler := handlers.NewVoucherHandler(voucherService)
	orderService := service.NewOrderService(orderGateway)
	orderHandler := handlers.NewOrderHandler(orderService)
	referenceHandler := handlers.NewReferenceHandler(addressGateway, paymentMethodGateway, deliveryMethodGateway)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("gateways initialized", slog.String("env", cfg.Env), slog.String("backend", cfg.Backend.BaseURL))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/checkout", authMiddleware.Authenticate(checkoutHandler.StartCheckout()))
	routerMux.HandleFunc("GET /api/v1/checkout", authMiddleware.Authenticate(checkoutHandler.GetSession()))
	routerMux.HandleFunc("PATCH /api/v1/checkout/selection", authMiddleware.Authenticate(checkoutHandler.UpdateSelection()))
	routerMux.HandleFunc("POST /api/v1/checkout/voucher", authMiddleware.Authenticate(checkoutHandler.ApplyVoucher()))
	routerMux.HandleFunc("DELETE /api/v1/checkout/voucher", authMiddleware.Authenticate(checkoutHandler.RemoveVoucher()))
	routerMux.HandleFunc("POST /api/v1/checkout/place-order", authMiddleware.Authenticate(checkoutHandler.PlaceOrder()))
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.RemoveItems()))
	routerMux.HandleFunc("GET /api/v1/cart/count", authMiddleware.Authenticate(cartHandler.GetCount()))
	routerMux.HandleFunc("GET /api/v1/vouchers", authMiddleware.Authenticate(voucherHandler.ListVouchers()))
	routerMux.HandleFunc("GET /api/v1/vouchers/{id}/preview", authMiddleware.Authenticate(voucherHandler.PreviewVoucher()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("POST /api/v1/orders/{id}/cancel", authMiddleware.Authenticate(orderHandler.CancelOrder()))
	routerMux.HandleFunc("GET /api/v1/addresses", authMiddleware.Authenticate(referenceHandler.ListAddresses()))
	routerMux.HandleFunc("GET /api/v1/addresses/default", authMiddleware.Authenticate(referenceHandler.GetDefaultAddress()))
	routerMux.HandleFunc("GET /api/v1/payment-methods", authMiddleware.Authenticate(referenceHandler.ListPaymentMethods()))
	routerMux.HandleFunc("GET /api/v1/delivery-methods", authMiddleware.Authenticate(referenceHandler.ListDeliveryMethods()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "shop-checkout")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}

}
