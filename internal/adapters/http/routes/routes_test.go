package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"hospital-hms/internal/adapters/http/middleware"
	"hospital-hms/internal/adapters/http/routes"
	"hospital-hms/internal/adapters/persistence/repositories"
	"hospital-hms/internal/config"
	"hospital-hms/internal/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *routes.Deps) {
	t.Helper()

	deps := &routes.Deps{
		Cfg:          &config.Config{AppMode: "dev", JWT: config.JWTConfig{Secret: "test-secret", ExpiryHours: 1}},
		Users:        repositories.NewMemoryUserRepository(),
		Patients:     repositories.NewMemoryPatientRepository(),
		Admissions:   repositories.NewMemoryAdmissionRepository(),
		Appointments: repositories.NewMemoryAppointmentRepository(),
		Doctors:      repositories.NewMemoryDoctorRepository(),
		Sequences:    repositories.NewMemorySequenceRepository(),
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	routes.Setup(app, deps)
	return app, deps
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// registerUser creates a staff identity through the public register endpoint
// and returns its session token and user id.
func registerUser(t *testing.T, app *fiber.App, name, email, role string) (string, uint) {
	t.Helper()

	status, body := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": name, "email": email, "password": "secret123", "role": role,
	})
	require.Equal(t, http.StatusCreated, status, "register %s: %v", email, body)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	user, _ := body["user"].(map[string]interface{})
	require.NotNil(t, user)
	return token, uint(user["id"].(float64))
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return d
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body["status"])
}

func TestAuthEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	token, _ := registerUser(t, app, "Admin", "admin@hospital.com", domain.RoleAdmin)

	status, body := doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "admin@hospital.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["token"])

	status, body = doRequest(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	user, _ := body["user"].(map[string]interface{})
	require.NotNil(t, user)
	assert.Equal(t, "admin@hospital.com", user["email"])
	// The password hash never leaves the server
	_, leaked := user["password"]
	assert.False(t, leaked)
}

func TestAuthDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "First", "nurse@hospital.com", domain.RoleNurse)

	status, body := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Second", "email": "Nurse@Hospital.com", "password": "secret123", "role": domain.RoleNurse,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User already exists", body["error"])
}

func TestLoginDoesNotRevealAccounts(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "Clerk", "clerk@hospital.com", domain.RoleClerk)

	unknownStatus, unknownBody := doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "nobody@hospital.com", "password": "secret123",
	})
	wrongStatus, wrongBody := doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "clerk@hospital.com", "password": "wrong-pass",
	})

	assert.Equal(t, http.StatusUnauthorized, unknownStatus)
	assert.Equal(t, http.StatusUnauthorized, wrongStatus)
	assert.Equal(t, unknownBody["error"], wrongBody["error"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, deps := newTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/patients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Not authorized to access this route", body["error"])

	status, body = doRequest(t, app, http.MethodGet, "/api/patients", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", body["error"])

	// A rejected mutation leaves the store untouched
	status, _ = doRequest(t, app, http.MethodPost, "/api/patients", "", fiber.Map{
		"name": "Jane Doe", "age": 34, "gender": "female", "contactNumber": "555-0101",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	patients, err := deps.Patients.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patients)
}

func TestRoleMatrix(t *testing.T) {
	app, deps := newTestApp(t)

	allRoles := []string{domain.RoleAdmin, domain.RoleDoctor, domain.RoleNurse, domain.RoleClerk}
	tokens := make(map[string]string, len(allRoles))
	for _, role := range allRoles {
		token, _ := registerUser(t, app, role, role+"@hospital.com", role)
		tokens[role] = token
	}

	tests := []struct {
		name    string
		method  string
		path    string
		allowed []string
	}{
		{"register patient", http.MethodPost, "/api/patients", []string{domain.RoleClerk, domain.RoleDoctor, domain.RoleNurse}},
		{"update patient", http.MethodPut, "/api/patients/PAT000001", []string{domain.RoleDoctor, domain.RoleNurse}},
		{"delete patient", http.MethodDelete, "/api/patients/PAT000001", []string{domain.RoleAdmin}},
		{"admit patient", http.MethodPost, "/api/admissions", []string{domain.RoleDoctor, domain.RoleNurse}},
		{"record vitals", http.MethodPut, "/api/admissions/ADM000001/vitals", []string{domain.RoleDoctor, domain.RoleNurse}},
		{"discharge patient", http.MethodPut, "/api/admissions/ADM000001/discharge", []string{domain.RoleDoctor}},
		{"book appointment", http.MethodPost, "/api/appointments", []string{domain.RoleClerk, domain.RoleDoctor, domain.RoleNurse}},
		{"update appointment", http.MethodPut, "/api/appointments/APT000001", []string{domain.RoleDoctor, domain.RoleNurse, domain.RoleClerk}},
		{"cancel appointment", http.MethodPut, "/api/appointments/APT000001/cancel", allRoles},
		{"register doctor", http.MethodPost, "/api/doctors", []string{domain.RoleAdmin}},
		{"update doctor", http.MethodPut, "/api/doctors/DOC000001", []string{domain.RoleAdmin, domain.RoleDoctor}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, role := range allRoles {
				status, body := doRequest(t, app, tt.method, tt.path, tokens[role], fiber.Map{})

				if domain.OneOf(role, tt.allowed) {
					assert.NotEqual(t, http.StatusForbidden, status, "%s should pass the guard for %s", role, tt.name)
					assert.NotEqual(t, http.StatusUnauthorized, status)
				} else {
					assert.Equal(t, http.StatusForbidden, status, "%s should be forbidden for %s", role, tt.name)
					assert.Equal(t,
						fmt.Sprintf("User role %s is not authorized to access this route", role),
						body["error"])
				}
			}
		})
	}

	// The guard rejected every disallowed call before the handler ran, and
	// every allowed call failed validation or lookup, so nothing persisted.
	patients, err := deps.Patients.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patients)
	admissions, err := deps.Admissions.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, admissions)
}

func TestDoctorDirectoryFlow(t *testing.T) {
	app, _ := newTestApp(t)

	adminToken, _ := registerUser(t, app, "Admin", "admin@hospital.com", domain.RoleAdmin)
	_, doctorUserID := registerUser(t, app, "Dr. Heart", "heart@hospital.com", domain.RoleDoctor)

	status, body := doRequest(t, app, http.MethodPost, "/api/doctors", adminToken, fiber.Map{
		"userId":          doctorUserID,
		"specialization":  "Cardiology",
		"department":      "Medicine",
		"qualification":   "MD, DM Cardiology",
		"experience":      12,
		"contactNumber":   "555-0404",
		"consultationFee": 200,
		"availability": fiber.Map{
			"days":      []string{"Monday", "Thursday"},
			"startTime": "09:00",
			"endTime":   "13:00",
		},
	})
	require.Equal(t, http.StatusCreated, status, "register doctor: %v", body)
	doctor := data(t, body)
	assert.Equal(t, "DOC000001", doctor["doctorId"])
	assert.Equal(t, "active", doctor["status"])

	// Directory reads are public
	status, body = doRequest(t, app, http.MethodGet, "/api/doctors/specialization/Cardiology", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = doRequest(t, app, http.MethodGet, "/api/doctors/DOC000001", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cardiology", data(t, body)["specialization"])

	// Profiles only reference doctor-role identities
	status, body = doRequest(t, app, http.MethodPost, "/api/doctors", adminToken, fiber.Map{
		"userId":          9999,
		"specialization":  "Cardiology",
		"department":      "Medicine",
		"qualification":   "MD",
		"experience":      5,
		"contactNumber":   "555-0405",
		"consultationFee": 100,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "userId")
}

func TestInpatientFlow(t *testing.T) {
	app, _ := newTestApp(t)

	clerkToken, _ := registerUser(t, app, "Clerk", "clerk@hospital.com", domain.RoleClerk)
	nurseToken, _ := registerUser(t, app, "Nurse", "nurse@hospital.com", domain.RoleNurse)
	doctorToken, _ := registerUser(t, app, "Doctor", "doctor@hospital.com", domain.RoleDoctor)

	status, body := doRequest(t, app, http.MethodPost, "/api/patients", clerkToken, fiber.Map{
		"name":          "Jane Doe",
		"age":           34,
		"gender":        "female",
		"contactNumber": "555-0101",
		"bloodGroup":    "O+",
		"allergies":     []string{"penicillin"},
	})
	require.Equal(t, http.StatusCreated, status, "register patient: %v", body)
	patient := data(t, body)
	require.Equal(t, "PAT000001", patient["patientId"])
	assert.Equal(t, "active", patient["status"])

	status, body = doRequest(t, app, http.MethodPost, "/api/admissions", nurseToken, fiber.Map{
		"patientId":          "PAT000001",
		"department":         "Medicine",
		"ward":               "Ward A",
		"bedNumber":          "A-12",
		"reasonForAdmission": "High fever and dehydration",
	})
	require.Equal(t, http.StatusCreated, status, "admit: %v", body)
	admission := data(t, body)
	require.Equal(t, "ADM000001", admission["admissionId"])
	assert.Equal(t, "active", admission["status"])

	for _, temp := range []float64{38.5, 37.2} {
		status, body = doRequest(t, app, http.MethodPut, "/api/admissions/ADM000001/vitals", nurseToken, fiber.Map{
			"temperature":   temp,
			"bloodPressure": fiber.Map{"systolic": 120, "diastolic": 80},
			"pulseRate":     80,
		})
		require.Equal(t, http.StatusOK, status, "record vitals: %v", body)
	}
	vitals, _ := data(t, body)["vitalSigns"].([]interface{})
	require.Len(t, vitals, 2)
	first, _ := vitals[0].(map[string]interface{})
	assert.Equal(t, 38.5, first["temperature"])

	status, body = doRequest(t, app, http.MethodPut, "/api/admissions/ADM000001/discharge", doctorToken, fiber.Map{
		"dischargeSummary": "Recovered, follow up in two weeks",
	})
	require.Equal(t, http.StatusOK, status, "discharge: %v", body)
	discharged := data(t, body)
	assert.Equal(t, "discharged", discharged["status"])
	assert.NotEmpty(t, discharged["dischargeDate"])
	assert.Equal(t, "Recovered, follow up in two weeks", discharged["dischargeSummary"])

	// Nurses cannot discharge
	status, body = doRequest(t, app, http.MethodPut, "/api/admissions/ADM000001/discharge", nurseToken, fiber.Map{
		"dischargeSummary": "overwritten",
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, body = doRequest(t, app, http.MethodGet, "/api/admissions/ADM000001", clerkToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Recovered, follow up in two weeks", data(t, body)["dischargeSummary"])
}

func TestAppointmentFlow(t *testing.T) {
	app, _ := newTestApp(t)

	adminToken, _ := registerUser(t, app, "Admin", "admin@hospital.com", domain.RoleAdmin)
	clerkToken, _ := registerUser(t, app, "Clerk", "clerk@hospital.com", domain.RoleClerk)
	_, doctorUserID := registerUser(t, app, "Dr. Heart", "heart@hospital.com", domain.RoleDoctor)

	status, body := doRequest(t, app, http.MethodPost, "/api/patients", clerkToken, fiber.Map{
		"name": "Jane Doe", "age": 34, "gender": "female", "contactNumber": "555-0101",
	})
	require.Equal(t, http.StatusCreated, status, "register patient: %v", body)

	status, body = doRequest(t, app, http.MethodPost, "/api/doctors", adminToken, fiber.Map{
		"userId":          doctorUserID,
		"specialization":  "Cardiology",
		"department":      "Medicine",
		"qualification":   "MD",
		"experience":      10,
		"contactNumber":   "555-0404",
		"consultationFee": 150,
	})
	require.Equal(t, http.StatusCreated, status, "register doctor: %v", body)

	status, body = doRequest(t, app, http.MethodPost, "/api/appointments", clerkToken, fiber.Map{
		"patientId":       "PAT000001",
		"doctorId":        "DOC000001",
		"appointmentDate": "2026-09-10",
		"appointmentTime": "10:30",
		"reason":          "Chest pain follow-up",
	})
	require.Equal(t, http.StatusCreated, status, "book: %v", body)
	appointment := data(t, body)
	require.Equal(t, "APT000001", appointment["appointmentId"])
	assert.Equal(t, "scheduled", appointment["status"])

	// Booking against a missing reference is a 404
	status, body = doRequest(t, app, http.MethodPost, "/api/appointments", clerkToken, fiber.Map{
		"patientId":       "PAT999999",
		"doctorId":        "DOC000001",
		"appointmentDate": "2026-09-10",
		"appointmentTime": "11:00",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Patient not found", body["error"])

	status, body = doRequest(t, app, http.MethodGet, "/api/appointments/patient/PAT000001", clerkToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	// Any authenticated identity may cancel, and cancelling is idempotent
	status, body = doRequest(t, app, http.MethodPut, "/api/appointments/APT000001/cancel", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "cancelled", data(t, body)["status"])

	status, body = doRequest(t, app, http.MethodPut, "/api/appointments/APT000001/cancel", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "cancelled", data(t, body)["status"])
}
