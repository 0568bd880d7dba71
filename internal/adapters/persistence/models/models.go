package models

import (
	"time"

	"gorm.io/gorm"
)

// StringList is a set of strings stored as a JSON column.
type StringList []string

// User represents the users table: a staff identity with a role tag.
// The password hash is never serialized in responses.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:30;not null" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// Address is the patient's postal address.
type Address struct {
	Street  string `gorm:"size:100" json:"street"`
	City    string `gorm:"size:50" json:"city"`
	State   string `gorm:"size:50" json:"state"`
	ZipCode string `gorm:"size:20" json:"zipCode"`
}

// Patient represents the patients table.
type Patient struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	PatientID         string     `gorm:"uniqueIndex;size:10;not null" json:"patientId"`
	Name              string     `gorm:"size:100;not null" json:"name"`
	Age               int        `gorm:"not null" json:"age"`
	Gender            string     `gorm:"size:10;not null" json:"gender"`
	ContactNumber     string     `gorm:"size:20;not null" json:"contactNumber"`
	Address           Address    `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	BloodGroup        string     `gorm:"size:10" json:"bloodGroup"`
	KnownDiseases     StringList `gorm:"serializer:json" json:"knownDiseases"`
	Allergies         StringList `gorm:"serializer:json" json:"allergies"`
	CurrentComplaints string     `gorm:"type:text" json:"currentComplaints"`
	RegisteredByID    uint       `gorm:"index;not null" json:"-"`
	RegisteredBy      *User      `gorm:"foreignKey:RegisteredByID" json:"registeredBy,omitempty"`
	RegistrationDate  time.Time  `gorm:"not null" json:"registrationDate"`
	Status            string     `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Patient) TableName() string {
	return "patients"
}

// BloodPressure is a systolic/diastolic reading pair.
type BloodPressure struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

// VitalSign is one row of an admission's append-only vitals log.
// Rows are never updated or deleted.
type VitalSign struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	AdmissionID   uint          `gorm:"index;not null" json:"-"`
	Temperature   float64       `json:"temperature"`
	BloodPressure BloodPressure `gorm:"embedded;embeddedPrefix:bp_" json:"bloodPressure"`
	PulseRate     int           `json:"pulseRate"`
	RecordedAt    time.Time     `gorm:"not null" json:"recordedAt"`
	RecordedByID  uint          `gorm:"index;not null" json:"-"`
	RecordedBy    *User         `gorm:"foreignKey:RecordedByID" json:"recordedBy,omitempty"`
}

func (VitalSign) TableName() string {
	return "vital_signs"
}

// Admission represents the admissions table: one inpatient stay.
type Admission struct {
	ID                 uint        `gorm:"primaryKey" json:"id"`
	AdmissionID        string      `gorm:"uniqueIndex;size:10;not null" json:"admissionId"`
	PatientID          uint        `gorm:"index;not null" json:"-"`
	Patient            *Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Department         string      `gorm:"size:30;not null" json:"department"`
	Ward               string      `gorm:"size:30;not null" json:"ward"`
	BedNumber          string      `gorm:"size:20;not null" json:"bedNumber"`
	AdmissionDate      time.Time   `gorm:"not null" json:"admissionDate"`
	AdmittedByID       uint        `gorm:"index;not null" json:"-"`
	AdmittedBy         *User       `gorm:"foreignKey:AdmittedByID" json:"admittedBy,omitempty"`
	ReasonForAdmission string      `gorm:"type:text;not null" json:"reasonForAdmission"`
	VitalSigns         []VitalSign `gorm:"foreignKey:AdmissionID;references:ID" json:"vitalSigns"`
	Status             string      `gorm:"size:20;default:'active'" json:"status"`
	DischargeDate      *time.Time  `json:"dischargeDate,omitempty"`
	DischargeSummary   string      `gorm:"type:text" json:"dischargeSummary,omitempty"`
	CreatedAt          time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Admission) TableName() string {
	return "admissions"
}

// Availability is a doctor's weekly consultation window.
type Availability struct {
	Days      StringList `gorm:"serializer:json" json:"days"`
	StartTime string     `gorm:"size:10" json:"startTime"`
	EndTime   string     `gorm:"size:10" json:"endTime"`
}

// Doctor represents the doctors table: a profile referencing a
// doctor-role identity.
type Doctor struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	DoctorID        string       `gorm:"uniqueIndex;size:10;not null" json:"doctorId"`
	UserID          uint         `gorm:"index;not null" json:"-"`
	User            *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialization  string       `gorm:"size:30;not null" json:"specialization"`
	Department      string       `gorm:"size:50;not null" json:"department"`
	Qualification   string       `gorm:"size:100;not null" json:"qualification"`
	Experience      int          `gorm:"not null" json:"experience"`
	ContactNumber   string       `gorm:"size:20;not null" json:"contactNumber"`
	Availability    Availability `gorm:"embedded;embeddedPrefix:availability_" json:"availability"`
	ConsultationFee float64      `gorm:"not null" json:"consultationFee"`
	Status          string       `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt       time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Appointment represents the appointments table: one scheduled visit.
type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AppointmentID   string    `gorm:"uniqueIndex;size:10;not null" json:"appointmentId"`
	PatientID       uint      `gorm:"index;not null" json:"-"`
	Patient         *Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	DoctorID        uint      `gorm:"index;not null" json:"-"`
	Doctor          *Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	AppointmentDate time.Time `gorm:"index;not null" json:"appointmentDate"`
	AppointmentTime string    `gorm:"size:10;not null" json:"appointmentTime"`
	Reason          string    `gorm:"type:text" json:"reason"`
	Type            string    `gorm:"size:30" json:"type"`
	BookedByID      uint      `gorm:"index;not null" json:"-"`
	BookedBy        *User     `gorm:"foreignKey:BookedByID" json:"bookedBy,omitempty"`
	Status          string    `gorm:"size:20;default:'scheduled'" json:"status"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Sequence backs the identifier generator: one atomically incremented
// counter row per entity type.
type Sequence struct {
	Name  string `gorm:"primaryKey;size:30" json:"name"`
	Value uint64 `gorm:"not null" json:"value"`
}

func (Sequence) TableName() string {
	return "sequences"
}

// AutoMigrate creates all tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Sequence{},
		&Patient{},
		&Admission{},
		&VitalSign{},
		&Doctor{},
		&Appointment{},
	)
}
