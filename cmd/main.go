package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addClinicalNoteHandler "github.com/psiagenda/agenda-service/internal/api/handlers/add_clinical_note"
	whatsappLinkHandler "github.com/psiagenda/agenda-service/internal/api/handlers/appointment_whatsapp_link"
	createAppointmentHandler "github.com/psiagenda/agenda-service/internal/api/handlers/create_appointment"
	createPatientHandler "github.com/psiagenda/agenda-service/internal/api/handlers/create_patient"
	createPublicBookingHandler "github.com/psiagenda/agenda-service/internal/api/handlers/create_public_booking"
	getBookableDaysHandler "github.com/psiagenda/agenda-service/internal/api/handlers/get_bookable_days"
	getBookableSlotsHandler "github.com/psiagenda/agenda-service/internal/api/handlers/get_bookable_slots"
	getBookingProfileHandler "github.com/psiagenda/agenda-service/internal/api/handlers/get_booking_profile"
	getPatientHandler "github.com/psiagenda/agenda-service/internal/api/handlers/get_patient"
	getSettingsHandler "github.com/psiagenda/agenda-service/internal/api/handlers/get_settings"
	interpretCommandHandler "github.com/psiagenda/agenda-service/internal/api/handlers/interpret_assistant_command"
	listAppointmentsHandler "github.com/psiagenda/agenda-service/internal/api/handlers/list_appointments"
	listPatientsHandler "github.com/psiagenda/agenda-service/internal/api/handlers/list_patients"
	markAppointmentReadHandler "github.com/psiagenda/agenda-service/internal/api/handlers/mark_appointment_read"
	summarizeNotesHandler "github.com/psiagenda/agenda-service/internal/api/handlers/summarize_patient_notes"
	updateAppointmentStatusHandler "github.com/psiagenda/agenda-service/internal/api/handlers/update_appointment_status"
	updatePatientHandler "github.com/psiagenda/agenda-service/internal/api/handlers/update_patient"
	updateSettingsHandler "github.com/psiagenda/agenda-service/internal/api/handlers/update_settings"
	"github.com/psiagenda/agenda-service/internal/api/middleware"
	"github.com/psiagenda/agenda-service/internal/config"
	"github.com/psiagenda/agenda-service/internal/domain"
	appointmentRepo "github.com/psiagenda/agenda-service/internal/infra/storage/appointment"
	patientRepo "github.com/psiagenda/agenda-service/internal/infra/storage/patient"
	settingsRepo "github.com/psiagenda/agenda-service/internal/infra/storage/settings"
	genaiClient "github.com/psiagenda/agenda-service/internal/integrations/genai"
	appointmentsService "github.com/psiagenda/agenda-service/internal/service/appointments"
	patientsService "github.com/psiagenda/agenda-service/internal/service/patients"
	settingsService "github.com/psiagenda/agenda-service/internal/service/settings"
	createPublicBookingUC "github.com/psiagenda/agenda-service/internal/usecase/create_public_booking"
	getBookableDaysUC "github.com/psiagenda/agenda-service/internal/usecase/get_bookable_days"
	getBookableSlotsUC "github.com/psiagenda/agenda-service/internal/usecase/get_bookable_slots"
	"github.com/psiagenda/agenda-service/pkg/dbmetrics"
	"github.com/psiagenda/agenda-service/pkg/logger"
	"github.com/psiagenda/agenda-service/pkg/metrics"
)

// systemClock is the production clock handed to components that take a
// TimeProvider
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting agenda-service...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (when enabled)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize the Gemini client. An empty API key is fine: the AI
	// features degrade to fixed messages.
	genAI, err := genaiClient.NewClient(context.Background(), cfg.GenAI.APIKey, cfg.GenAI.Model, log)
	if err != nil {
		log.Fatal("Failed to initialize GenAI client: %v", err)
	}
	defer genAI.Close()

	// Initialize repositories (with query metrics when enabled)
	var (
		appointmentRepository *appointmentRepo.Repository
		patientRepository     *patientRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		patientRepository = patientRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		patientRepository = patientRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
	}

	clock := systemClock{}
	publicBookingURL := cfg.Public.BaseURL + domain.PublicBookingPath

	// Initialize services
	settingsSvc := settingsService.NewService(settingsRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		patientRepository,
		log,
		publicBookingURL,
	)
	patientsSvc := patientsService.NewService(patientRepository, clock, log)

	// Initialize use cases
	getBookableDaysUseCase := getBookableDaysUC.NewUseCase(settingsSvc, log)
	getBookableSlotsUseCase := getBookableSlotsUC.NewUseCase(settingsSvc, log)
	createPublicBookingUseCase := createPublicBookingUC.NewUseCase(appointmentRepository, log)

	// Initialize handlers
	getBookingProfile := getBookingProfileHandler.NewHandler(settingsSvc, log)
	getBookableDays := getBookableDaysHandler.NewHandler(getBookableDaysUseCase, log)
	getBookableSlots := getBookableSlotsHandler.NewHandler(getBookableSlotsUseCase, log)
	createPublicBooking := createPublicBookingHandler.NewHandler(createPublicBookingUseCase, log)

	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	markAppointmentRead := markAppointmentReadHandler.NewHandler(appointmentsSvc, log)
	whatsappLink := whatsappLinkHandler.NewHandler(appointmentsSvc, log)

	listPatients := listPatientsHandler.NewHandler(patientsSvc, log)
	createPatient := createPatientHandler.NewHandler(patientsSvc, log)
	getPatient := getPatientHandler.NewHandler(patientsSvc, log)
	updatePatient := updatePatientHandler.NewHandler(patientsSvc, log)
	addClinicalNote := addClinicalNoteHandler.NewHandler(patientsSvc, log)

	summarizeNotes := summarizeNotesHandler.NewHandler(patientsSvc, genAI, log)
	interpretCommand := interpretCommandHandler.NewHandler(appointmentsSvc, genAI, clock, log)

	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Router setup
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (booking page)
	// ============================================================

	api.HandleFunc("/booking/profile", getBookingProfile.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking/days", getBookableDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking/slots", getBookableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking", createPublicBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (require X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Agenda ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/read", markAppointmentRead.HandleAll).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}/read", markAppointmentRead.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}/whatsapp", whatsappLink.Handle).Methods(http.MethodPost)

	// --- Patients ---
	protected.HandleFunc("/patients", listPatients.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/patients", createPatient.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}", getPatient.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", updatePatient.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}/notes", addClinicalNote.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}/summary", summarizeNotes.Handle).Methods(http.MethodPost)

	// --- Assistant ---
	protected.HandleFunc("/assistant/command", interpretCommand.Handle).Methods(http.MethodPost)

	// --- Settings ---
	protected.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
