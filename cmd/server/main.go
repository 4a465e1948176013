package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Maxito7/hotel_core/internal/application"
	"github.com/Maxito7/hotel_core/internal/config"
	"github.com/Maxito7/hotel_core/internal/email"
	"github.com/Maxito7/hotel_core/internal/infrastructure/repository"
	handlers "github.com/Maxito7/hotel_core/internal/interfaces/http"
	"github.com/Maxito7/hotel_core/internal/metrics"
	"github.com/Maxito7/hotel_core/internal/scheduler"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))
	app.Use(metrics.Middleware)

	// Repositorios
	reservaRepo := repository.NewReservaRepository(db)
	habitacionRepo := repository.NewHabitacionRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// Política vigente: tabla hotel_configuration con defaults del entorno
	configService := application.NewConfigService(configRepo)
	politica := configService.CargarPolitica(cfg.Politica)

	// Núcleo de reservas; los cerrojos se comparten con el servicio de
	// habitaciones para serializar toda mutación por habitación
	cerrojos := application.NewCerrojosPorClave()
	disponibilidad := application.NewDisponibilidadService(reservaRepo, habitacionRepo)
	validador := application.NewValidador(clienteRepo, habitacionRepo, servicioRepo, disponibilidad, politica, nil)
	reservaService := application.NewReservaService(
		reservaRepo,
		habitacionRepo,
		clienteRepo,
		servicioRepo,
		validador,
		disponibilidad,
		politica,
		cerrojos,
		nil,
	)
	reservaService.Suscribir(metrics.SuscriptorMetricas{})

	// Email Client
	emailClient, err := email.NewClient(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.SMTPFromName,
		cfg.SMTPFromEmail,
	)
	if err != nil {
		log.Printf("Warning: Email client initialization failed: %v", err)
		emailClient = nil // Continuar sin email
	}
	if emailClient != nil {
		notificador := application.NewNotificadorEmail(emailClient, reservaRepo, habitacionRepo, clienteRepo)
		reservaService.Suscribir(notificador)
	}

	// Habitaciones
	habitacionService := application.NewHabitacionService(habitacionRepo, cerrojos)
	habitacionHandler := handlers.NewHabitacionHandler(habitacionService)

	// Handlers
	reservaHandler := handlers.NewReservaHandler(reservaService)
	servicioHandler := handlers.NewServicioHandler(servicioRepo)
	configHandler := handlers.NewConfigHandler(politica)

	// Scheduler: completa reservas cuya salida ya pasó
	reservationScheduler := scheduler.NewReservationScheduler(reservaService)
	reservationScheduler.Start()
	defer reservationScheduler.Stop()

	api := app.Group("/api")

	// Rutas de habitaciones
	habitaciones := api.Group("/habitaciones")
	habitaciones.Get("/", habitacionHandler.GetAllHabitaciones)
	habitaciones.Get("/:id", habitacionHandler.GetHabitacionByID)
	habitaciones.Post("/:id/mantenimiento", habitacionHandler.IniciarMantenimiento)
	habitaciones.Post("/:id/liberar", habitacionHandler.FinalizarMantenimiento)

	// Rutas de servicios
	servicios := api.Group("/servicios")
	servicios.Get("/all", servicioHandler.GetAllServices)

	// Rutas de reservas
	reservas := api.Group("/reservas")
	reservas.Post("/", reservaHandler.CreateReserva)
	reservas.Post("/validar", reservaHandler.ValidarSolicitud)
	reservas.Post("/verificar-disponibilidad", reservaHandler.VerificarDisponibilidad)
	reservas.Get("/:id", reservaHandler.GetReservaByID)
	reservas.Get("/cliente/:clienteId", reservaHandler.GetReservasCliente)
	reservas.Post("/:id/confirmar", reservaHandler.ConfirmarReserva)
	reservas.Post("/:id/cancelar", reservaHandler.CancelarReserva)
	reservas.Post("/:id/completar", reservaHandler.CompletarReserva)
	reservas.Post("/:id/checkin", reservaHandler.RegistrarCheckIn)
	reservas.Post("/:id/checkout", reservaHandler.RegistrarCheckOut)

	// Configuración vigente
	api.Get("/config", configHandler.GetPolitica)

	// Métricas
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
