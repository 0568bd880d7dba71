package routes

import (
	"time"

	"hospital-hms/internal/adapters/http/handlers"
	"hospital-hms/internal/adapters/http/middleware"
	"hospital-hms/internal/adapters/persistence/repositories"
	"hospital-hms/internal/config"
	"hospital-hms/internal/core/services"
	"hospital-hms/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps is the explicit dependency set the HTTP stack is built from.
// Tests wire it with in-memory repositories; main wires it from the
// database via NewDeps.
type Deps struct {
	Cfg          *config.Config
	DB           *gorm.DB
	Users        repositories.UserRepository
	Patients     repositories.PatientRepository
	Admissions   repositories.AdmissionRepository
	Appointments repositories.AppointmentRepository
	Doctors      repositories.DoctorRepository
	Sequences    repositories.SequenceRepository
}

// NewDeps builds the dependency set backed by the database
func NewDeps(db *gorm.DB, cfg *config.Config) *Deps {
	return &Deps{
		Cfg:          cfg,
		DB:           db,
		Users:        repositories.NewUserRepository(db),
		Patients:     repositories.NewPatientRepository(db),
		Admissions:   repositories.NewAdmissionRepository(db),
		Appointments: repositories.NewAppointmentRepository(db),
		Doctors:      repositories.NewDoctorRepository(db),
		Sequences:    repositories.NewSequenceRepository(db),
	}
}

// Setup configures all routes for the application
func Setup(app *fiber.App, deps *Deps) {
	signer := jwt.NewSigner(deps.Cfg.JWT.Secret, time.Duration(deps.Cfg.JWT.ExpiryHours)*time.Hour)

	// Initialize services
	authService := services.NewAuthService(deps.Users, signer)
	patientService := services.NewPatientService(deps.Patients, deps.Sequences)
	admissionService := services.NewAdmissionService(deps.Admissions, deps.Patients, deps.Sequences)
	doctorService := services.NewDoctorService(deps.Doctors, deps.Users, deps.Sequences)
	appointmentService := services.NewAppointmentService(deps.Appointments, deps.Patients, deps.Doctors, deps.Sequences)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB)
	authHandler := handlers.NewAuthHandler(authService)
	patientHandler := handlers.NewPatientHandler(patientService)
	admissionHandler := handlers.NewAdmissionHandler(admissionService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)

	authGuard := middleware.AuthMiddleware(authService)

	// Health check
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", authGuard, authHandler.Me)

	// Patient routes (all require authentication)
	patients := api.Group("/patients", authGuard)
	patients.Get("/", patientHandler.List)
	patients.Post("/", middleware.Authorize(middleware.OpRegisterPatient), patientHandler.Register)
	patients.Get("/:id", patientHandler.Get)
	patients.Put("/:id", middleware.Authorize(middleware.OpUpdatePatient), patientHandler.Update)
	patients.Delete("/:id", middleware.Authorize(middleware.OpDeletePatient), patientHandler.Delete)

	// Admission routes (all require authentication)
	admissions := api.Group("/admissions", authGuard)
	admissions.Get("/", admissionHandler.List)
	admissions.Post("/", middleware.Authorize(middleware.OpAdmitPatient), admissionHandler.Admit)
	admissions.Get("/:id", admissionHandler.Get)
	admissions.Put("/:id/vitals", middleware.Authorize(middleware.OpRecordVitals), admissionHandler.RecordVitals)
	admissions.Put("/:id/discharge", middleware.Authorize(middleware.OpDischargePatient), admissionHandler.Discharge)

	// Appointment routes (all require authentication)
	appointments := api.Group("/appointments", authGuard)
	appointments.Get("/", appointmentHandler.List)
	appointments.Post("/", middleware.Authorize(middleware.OpBookAppointment), appointmentHandler.Book)
	appointments.Get("/patient/:patientId", appointmentHandler.ListForPatient)
	appointments.Get("/:id", appointmentHandler.Get)
	appointments.Put("/:id/cancel", middleware.Authorize(middleware.OpCancelAppointment), appointmentHandler.Cancel)
	appointments.Put("/:id", middleware.Authorize(middleware.OpUpdateAppointment), appointmentHandler.Update)

	// Doctor routes (reads are public)
	doctors := api.Group("/doctors")
	doctors.Get("/", doctorHandler.List)
	doctors.Post("/", authGuard, middleware.Authorize(middleware.OpRegisterDoctor), doctorHandler.Register)
	doctors.Get("/specialization/:spec", doctorHandler.BySpecialization)
	doctors.Get("/:id", doctorHandler.Get)
	doctors.Put("/:id", authGuard, middleware.Authorize(middleware.OpUpdateDoctor), doctorHandler.Update)
}
