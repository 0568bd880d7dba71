package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-hms/internal/adapters/persistence/models"
	"hospital-hms/internal/adapters/persistence/repositories"
	"hospital-hms/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPatientService() *PatientService {
	return NewPatientService(repositories.NewMemoryPatientRepository(), repositories.NewMemorySequenceRepository())
}

func intPtr(n int) *int           { return &n }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func validPatientInput() *RegisterPatientInput {
	return &RegisterPatientInput{
		Name:          "Jane Doe",
		Age:           intPtr(34),
		Gender:        "female",
		ContactNumber: "555-0101",
		BloodGroup:    "O+",
		Allergies:     []string{"penicillin"},
	}
}

func TestPatientRegister(t *testing.T) {
	svc := newTestPatientService()
	actor := &models.User{ID: 7, Name: "Clerk", Role: domain.RoleClerk}

	registeredAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return registeredAt }

	patient, err := svc.Register(context.Background(), validPatientInput(), actor)
	require.NoError(t, err)

	assert.Equal(t, "PAT000001", patient.PatientID)
	assert.Equal(t, domain.PatientActive, patient.Status)
	assert.Equal(t, uint(7), patient.RegisteredByID)
	assert.Equal(t, actor, patient.RegisteredBy)
	assert.Equal(t, registeredAt, patient.RegistrationDate)
}

func TestPatientRegisterSequentialIdentifiers(t *testing.T) {
	svc := newTestPatientService()
	actor := &models.User{ID: 1, Role: domain.RoleClerk}
	ctx := context.Background()

	first, err := svc.Register(ctx, validPatientInput(), actor)
	require.NoError(t, err)
	second, err := svc.Register(ctx, validPatientInput(), actor)
	require.NoError(t, err)

	assert.Equal(t, "PAT000001", first.PatientID)
	assert.Equal(t, "PAT000002", second.PatientID)
}

func TestPatientRegisterCollectsAllViolations(t *testing.T) {
	svc := newTestPatientService()

	_, err := svc.Register(context.Background(), &RegisterPatientInput{
		Age:        intPtr(200),
		Gender:     "unknown",
		BloodGroup: "Z+",
	}, &models.User{ID: 1})
	require.Error(t, err)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.KindValidation, domainErr.Kind)

	fields := make([]string, 0, len(domainErr.Fields))
	for _, f := range domainErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "age", "gender", "contactNumber", "bloodGroup"}, fields)
}

func TestPatientUpdate(t *testing.T) {
	svc := newTestPatientService()
	ctx := context.Background()

	patient, err := svc.Register(ctx, validPatientInput(), &models.User{ID: 1})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, patient.PatientID, &UpdatePatientInput{
		ContactNumber: strPtr("555-0202"),
		Status:        strPtr(domain.PatientReferred),
	})
	require.NoError(t, err)

	assert.Equal(t, "555-0202", updated.ContactNumber)
	assert.Equal(t, domain.PatientReferred, updated.Status)
	// Untouched fields survive the partial update
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, 34, updated.Age)
}

func TestPatientUpdateInvalidStatus(t *testing.T) {
	svc := newTestPatientService()
	ctx := context.Background()

	patient, err := svc.Register(ctx, validPatientInput(), &models.User{ID: 1})
	require.NoError(t, err)

	_, err = svc.Update(ctx, patient.PatientID, &UpdatePatientInput{Status: strPtr("deceased")})
	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.KindValidation, domainErr.Kind)
}

func TestPatientUpdateNotFound(t *testing.T) {
	svc := newTestPatientService()

	_, err := svc.Update(context.Background(), "PAT999999", &UpdatePatientInput{Name: strPtr("New Name")})
	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.KindNotFound, domainErr.Kind)
	assert.Equal(t, "Patient not found", domainErr.Message)
}

func TestPatientDelete(t *testing.T) {
	svc := newTestPatientService()
	ctx := context.Background()

	patient, err := svc.Register(ctx, validPatientInput(), &models.User{ID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, patient.PatientID))

	_, err = svc.Get(ctx, patient.PatientID)
	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.KindNotFound, domainErr.Kind)

	err = svc.Delete(ctx, patient.PatientID)
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.KindNotFound, domainErr.Kind)
}

func TestPatientList(t *testing.T) {
	svc := newTestPatientService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Register(ctx, validPatientInput(), &models.User{ID: 1})
		require.NoError(t, err)
	}

	patients, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, patients, 3)
}
