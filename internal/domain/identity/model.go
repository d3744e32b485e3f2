// Package identity holds the patient and doctor registries plus their login
// flows. Registration is an admin operation; patients log in with their
// national id, doctors with their mobile number.
package identity

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Mobile       string     `json:"mobile"`
	NationalID   string     `json:"national_id"`
	Email        string     `json:"email,omitempty"`
	Address      string     `json:"address,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Gender       string     `json:"gender,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Doctor struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Specialty    string     `json:"specialty"`
	Mobile       string     `json:"mobile"`
	Email        string     `json:"email,omitempty"`
	Address      string     `json:"address,omitempty"`
	HospitalID   *uuid.UUID `json:"hospital_id,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// RegisterPatientInput is the payload for patient registration.
type RegisterPatientInput struct {
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	NationalID  string `json:"national_id"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Password    string `json:"password"`
}

// RegisterDoctorInput is the payload for doctor registration.
type RegisterDoctorInput struct {
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	HospitalID string `json:"hospital_id"`
	Password   string `json:"password"`
}

// LoginResult carries the signed session token and the profile the client
// keeps as its session record.
type LoginResult struct {
	Token   string      `json:"token"`
	Role    string      `json:"role"`
	Profile interface{} `json:"profile"`
}
