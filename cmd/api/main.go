package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rafaelmv2/funil-sdr/internal/infra/database"
	"github.com/rafaelmv2/funil-sdr/internal/infra/http/handlers"
	"github.com/rafaelmv2/funil-sdr/internal/infra/http/middleware"
	"github.com/rafaelmv2/funil-sdr/internal/infra/integration/whatsapp"
	"github.com/rafaelmv2/funil-sdr/internal/infra/mail"
	"github.com/rafaelmv2/funil-sdr/internal/infra/queue"
	"github.com/rafaelmv2/funil-sdr/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"),
		os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"),
		os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	campaignRepo := database.NewCampaignRepository(db)
	messageRepo := database.NewMessageRepository(db)
	workspaceRepo := database.NewWorkspaceRepository(db)

	// 2. Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)
	whatsappClient := whatsapp.NewClient()

	// 3. Worker de despacho (consome a fila e entrega no canal do lead)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, whatsappClient)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	renderer := usecase.NewMessageRenderer(nil)
	transitionUC := usecase.NewTransitionStageUseCase(leadRepo, campaignRepo, messageRepo, renderer)
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo)
	generateUC := usecase.NewGenerateMessageUseCase(leadRepo, campaignRepo, messageRepo, renderer)
	sendUC := usecase.NewSendMessageUseCase(messageRepo, leadRepo, campaignRepo, transitionUC, producer)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, transitionUC, leadRepo)
	messageHandler := handlers.NewMessageHandler(generateUC, sendUC, messageRepo)
	campaignHandler := handlers.NewCampaignHandler(campaignRepo)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/workspaces", workspaceHandler.HandleCreate)
	r.Get("/workspaces", workspaceHandler.HandleList)

	r.Route("/workspaces/{workspaceID}", func(r chi.Router) {
		r.Post("/leads", leadHandler.HandleCreate)
		r.Get("/leads/board", leadHandler.HandleBoard)
		r.Put("/leads/{leadID}", leadHandler.HandleUpdate)
		r.Delete("/leads/{leadID}", leadHandler.HandleDelete)
		r.Post("/leads/{leadID}/transition", leadHandler.HandleTransition)

		r.Post("/leads/{leadID}/messages", messageHandler.HandleGenerate)
		r.Get("/leads/{leadID}/messages", messageHandler.HandleListByLead)
		r.Post("/messages/{messageID}/send", messageHandler.HandleSend)
		r.Delete("/messages/{messageID}", messageHandler.HandleDelete)

		r.Post("/campaigns", campaignHandler.HandleCreate)
		r.Get("/campaigns", campaignHandler.HandleList)
		r.Put("/campaigns/{campaignID}", campaignHandler.HandleUpdate)
		r.Delete("/campaigns/{campaignID}", campaignHandler.HandleDelete)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Server Funil SDR rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
