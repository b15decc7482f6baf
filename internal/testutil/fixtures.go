package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/garagem-inteligente/server/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@test.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        domain.NormalizeEmail(b.email),
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndAuthenticate creates a user via the API and returns it with a
// bearer token obtained through login.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": b.password,
	})

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register returned status %d", resp.StatusCode)
	}

	resp, err = http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	defer resp.Body.Close()

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	var user domain.User
	if err := ts.DB.DB.First(&user, "email = ?", domain.NormalizeEmail(b.email)).Error; err != nil {
		t.Fatalf("failed to load registered user: %v", err)
	}

	return &user, loginResp.Token
}

// VehicleBuilder creates test vehicles
type VehicleBuilder struct {
	plate    string
	makeName string
	model    string
	year     int
	color    string
	vtype    domain.VehicleType
	ownerID  uuid.UUID
	shared   []*domain.User
}

func NewVehicleBuilder(ownerID uuid.UUID) *VehicleBuilder {
	return &VehicleBuilder{
		plate:    fmt.Sprintf("TST-%s", uuid.New().String()[:4]),
		makeName: "Fiat",
		model:    "Uno",
		year:     2020,
		vtype:    domain.VehicleTypeCar,
		ownerID:  ownerID,
	}
}

func (b *VehicleBuilder) WithPlate(plate string) *VehicleBuilder {
	b.plate = plate
	return b
}

func (b *VehicleBuilder) WithYear(year int) *VehicleBuilder {
	b.year = year
	return b
}

func (b *VehicleBuilder) SharedWith(users ...*domain.User) *VehicleBuilder {
	b.shared = append(b.shared, users...)
	return b
}

func (b *VehicleBuilder) Build(t *testing.T, db *gorm.DB) *domain.Vehicle {
	t.Helper()

	vehicle := &domain.Vehicle{
		ID:        uuid.New(),
		Plate:     domain.NormalizePlate(b.plate),
		Make:      b.makeName,
		Model:     b.model,
		Year:      b.year,
		Color:     b.color,
		Type:      b.vtype,
		OwnerID:   b.ownerID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Omit("Owner", "SharedWith").Create(vehicle).Error; err != nil {
		t.Fatalf("failed to create vehicle: %v", err)
	}

	for _, u := range b.shared {
		if err := db.Model(vehicle).Association("SharedWith").Append(u); err != nil {
			t.Fatalf("failed to share vehicle: %v", err)
		}
	}

	return vehicle
}

// MaintenanceBuilder creates test maintenance records
type MaintenanceBuilder struct {
	description string
	date        time.Time
	cost        float64
	vehicleID   uuid.UUID
}

func NewMaintenanceBuilder(vehicleID uuid.UUID) *MaintenanceBuilder {
	return &MaintenanceBuilder{
		description: "Troca de óleo",
		date:        time.Now(),
		cost:        150,
		vehicleID:   vehicleID,
	}
}

func (b *MaintenanceBuilder) WithDescription(description string) *MaintenanceBuilder {
	b.description = description
	return b
}

func (b *MaintenanceBuilder) WithDate(date time.Time) *MaintenanceBuilder {
	b.date = date
	return b
}

func (b *MaintenanceBuilder) Build(t *testing.T, db *gorm.DB) *domain.MaintenanceRecord {
	t.Helper()

	record := &domain.MaintenanceRecord{
		ID:          uuid.New(),
		Description: b.description,
		Date:        b.date,
		Cost:        b.cost,
		VehicleID:   b.vehicleID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create maintenance record: %v", err)
	}

	return record
}
