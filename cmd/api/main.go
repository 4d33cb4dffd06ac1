package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"

	"chavi-website/internal/config"
	"chavi-website/internal/gateway"
	"chavi-website/internal/handlers"
	"chavi-website/internal/store"
)

func main() {
	log.Println("Starting website server...")

	// Load configuration from config.env in the working directory
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	// Connect to the database. No point accepting requests without it.
	db, err := sqlx.Connect("pgx", cfg.DSN)
	if err != nil {
		log.Fatal("cannot connect to database:", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	st := store.New(db)
	rzp := gateway.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	log.Println("Razorpay client initialized")

	// Set up our Gin router
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := handlers.NewHealthHandler(st, rzp)
	newsletterHandler := handlers.NewNewsletterHandler(st)
	volunteerHandler := handlers.NewVolunteerHandler(st)
	donationHandler := handlers.NewDonationHandler(st)
	paymentHandler := handlers.NewPaymentHandler(st, rzp)

	// All API routes under /api
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.POST("/newsletter", newsletterHandler.Subscribe)
		api.POST("/volunteers", volunteerHandler.Apply)
		api.POST("/donations", donationHandler.CreateDonation)
		api.GET("/donations/recent", donationHandler.Recent)
		api.POST("/create-order", paymentHandler.CreateOrder)
		api.POST("/verify-payment", paymentHandler.VerifyPayment)
	}

	// Everything else is the static site
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))

	// Start the server
	addr := ":" + cfg.Port
	log.Println("Server starting on http://localhost" + addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("could not start server:", err)
	}
}
