package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"hospital-hms/internal/adapters/persistence/models"
)

// In-memory repository implementations. They back the test suites and
// let the HTTP stack be wired without a database.

// memoryUserRepository implements UserRepository in memory
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[uint]*models.User
	nextID uint
}

// NewMemoryUserRepository creates an in-memory user repository
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[uint]*models.User)}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// memoryPatientRepository implements PatientRepository in memory
type memoryPatientRepository struct {
	mu       sync.RWMutex
	patients map[string]*models.Patient
	order    []string
	nextID   uint
}

// NewMemoryPatientRepository creates an in-memory patient repository
func NewMemoryPatientRepository() PatientRepository {
	return &memoryPatientRepository{patients: make(map[string]*models.Patient)}
}

func (r *memoryPatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	patient.ID = r.nextID
	stored := *patient
	r.patients[patient.PatientID] = &stored
	r.order = append(r.order, patient.PatientID)
	return nil
}

func (r *memoryPatientRepository) GetByPatientID(ctx context.Context, patientID string) (*models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.patients[patientID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *patient
	return &copied, nil
}

func (r *memoryPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patients[patient.PatientID]; !ok {
		return ErrNotFound
	}
	stored := *patient
	r.patients[patient.PatientID] = &stored
	return nil
}

func (r *memoryPatientRepository) Delete(ctx context.Context, patientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patients[patientID]; !ok {
		return ErrNotFound
	}
	delete(r.patients, patientID)
	for i, id := range r.order {
		if id == patientID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryPatientRepository) List(ctx context.Context) ([]*models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patients := make([]*models.Patient, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.patients[id]
		patients = append(patients, &copied)
	}
	return patients, nil
}

// memoryAdmissionRepository implements AdmissionRepository in memory
type memoryAdmissionRepository struct {
	mu          sync.RWMutex
	admissions  map[string]*models.Admission
	byPK        map[uint]string
	order       []string
	nextID      uint
	nextVitalID uint
}

// NewMemoryAdmissionRepository creates an in-memory admission repository
func NewMemoryAdmissionRepository() AdmissionRepository {
	return &memoryAdmissionRepository{
		admissions: make(map[string]*models.Admission),
		byPK:       make(map[uint]string),
	}
}

func (r *memoryAdmissionRepository) Create(ctx context.Context, admission *models.Admission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	admission.ID = r.nextID
	stored := *admission
	stored.VitalSigns = nil
	r.admissions[admission.AdmissionID] = &stored
	r.byPK[admission.ID] = admission.AdmissionID
	r.order = append(r.order, admission.AdmissionID)
	return nil
}

func (r *memoryAdmissionRepository) GetByAdmissionID(ctx context.Context, admissionID string) (*models.Admission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admission, ok := r.admissions[admissionID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *admission
	copied.VitalSigns = append([]models.VitalSign(nil), admission.VitalSigns...)
	return &copied, nil
}

func (r *memoryAdmissionRepository) Update(ctx context.Context, admission *models.Admission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.admissions[admission.AdmissionID]
	if !ok {
		return ErrNotFound
	}
	stored := *admission
	stored.VitalSigns = current.VitalSigns
	r.admissions[admission.AdmissionID] = &stored
	return nil
}

func (r *memoryAdmissionRepository) AppendVital(ctx context.Context, vital *models.VitalSign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	admissionID, ok := r.byPK[vital.AdmissionID]
	if !ok {
		return ErrNotFound
	}
	r.nextVitalID++
	vital.ID = r.nextVitalID
	admission := r.admissions[admissionID]
	admission.VitalSigns = append(admission.VitalSigns, *vital)
	return nil
}

func (r *memoryAdmissionRepository) List(ctx context.Context) ([]*models.Admission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admissions := make([]*models.Admission, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.admissions[id]
		admissions = append(admissions, &copied)
	}
	return admissions, nil
}

// memoryAppointmentRepository implements AppointmentRepository in memory
type memoryAppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[string]*models.Appointment
	order        []string
	nextID       uint
}

// NewMemoryAppointmentRepository creates an in-memory appointment repository
func NewMemoryAppointmentRepository() AppointmentRepository {
	return &memoryAppointmentRepository{appointments: make(map[string]*models.Appointment)}
}

func (r *memoryAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	appointment.ID = r.nextID
	stored := *appointment
	r.appointments[appointment.AppointmentID] = &stored
	r.order = append(r.order, appointment.AppointmentID)
	return nil
}

func (r *memoryAppointmentRepository) GetByAppointmentID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointment, ok := r.appointments[appointmentID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (r *memoryAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[appointment.AppointmentID]; !ok {
		return ErrNotFound
	}
	stored := *appointment
	r.appointments[appointment.AppointmentID] = &stored
	return nil
}

func (r *memoryAppointmentRepository) List(ctx context.Context, filter AppointmentFilter) ([]*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var appointments []*models.Appointment
	for _, id := range r.order {
		a := r.appointments[id]
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Date != nil {
			start := filter.Date.Truncate(24 * time.Hour)
			end := start.Add(24 * time.Hour)
			if a.AppointmentDate.Before(start) || !a.AppointmentDate.Before(end) {
				continue
			}
		}
		copied := *a
		appointments = append(appointments, &copied)
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		if !appointments[i].AppointmentDate.Equal(appointments[j].AppointmentDate) {
			return appointments[i].AppointmentDate.Before(appointments[j].AppointmentDate)
		}
		return appointments[i].AppointmentTime < appointments[j].AppointmentTime
	})

	return appointments, nil
}

func (r *memoryAppointmentRepository) ListByPatient(ctx context.Context, patientPK uint) ([]*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var appointments []*models.Appointment
	for _, id := range r.order {
		a := r.appointments[id]
		if a.PatientID != patientPK {
			continue
		}
		copied := *a
		appointments = append(appointments, &copied)
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].AppointmentDate.After(appointments[j].AppointmentDate)
	})

	return appointments, nil
}

// memoryDoctorRepository implements DoctorRepository in memory
type memoryDoctorRepository struct {
	mu      sync.RWMutex
	doctors map[string]*models.Doctor
	order   []string
	nextID  uint
}

// NewMemoryDoctorRepository creates an in-memory doctor repository
func NewMemoryDoctorRepository() DoctorRepository {
	return &memoryDoctorRepository{doctors: make(map[string]*models.Doctor)}
}

func (r *memoryDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	doctor.ID = r.nextID
	stored := *doctor
	r.doctors[doctor.DoctorID] = &stored
	r.order = append(r.order, doctor.DoctorID)
	return nil
}

func (r *memoryDoctorRepository) GetByDoctorID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctor, ok := r.doctors[doctorID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *doctor
	return &copied, nil
}

func (r *memoryDoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.doctors[doctor.DoctorID]; !ok {
		return ErrNotFound
	}
	stored := *doctor
	r.doctors[doctor.DoctorID] = &stored
	return nil
}

func (r *memoryDoctorRepository) List(ctx context.Context, filter DoctorFilter) ([]*models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var doctors []*models.Doctor
	for _, id := range r.order {
		d := r.doctors[id]
		if filter.Specialization != "" && d.Specialization != filter.Specialization {
			continue
		}
		if filter.Department != "" && d.Department != filter.Department {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		copied := *d
		doctors = append(doctors, &copied)
	}
	return doctors, nil
}

// memorySequenceRepository implements SequenceRepository in memory
type memorySequenceRepository struct {
	mu     sync.Mutex
	values map[string]uint64
}

// NewMemorySequenceRepository creates an in-memory sequence repository
func NewMemorySequenceRepository() SequenceRepository {
	return &memorySequenceRepository{values: make(map[string]uint64)}
}

func (r *memorySequenceRepository) Next(ctx context.Context, name string) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[name]++
	return r.values[name], nil
}
