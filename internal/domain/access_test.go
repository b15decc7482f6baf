package domain_test

import (
	"testing"

	"github.com/garagem-inteligente/server/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	ownerID := uuid.New()
	viewerID := uuid.New()
	strangerID := uuid.New()

	vehicle := &domain.Vehicle{
		ID:      uuid.New(),
		OwnerID: ownerID,
		SharedWith: []domain.User{
			{ID: viewerID, Email: "viewer@test.com"},
		},
	}

	tests := []struct {
		name   string
		userID uuid.UUID
		mode   domain.AccessMode
		want   bool
	}{
		{"owner can read", ownerID, domain.AccessRead, true},
		{"owner can write", ownerID, domain.AccessWrite, true},
		{"owner can share", ownerID, domain.AccessShare, true},
		{"owner can delete", ownerID, domain.AccessDelete, true},
		{"shared viewer can read", viewerID, domain.AccessRead, true},
		{"shared viewer can write", viewerID, domain.AccessWrite, true},
		{"shared viewer cannot share", viewerID, domain.AccessShare, false},
		{"shared viewer cannot delete", viewerID, domain.AccessDelete, false},
		{"stranger cannot read", strangerID, domain.AccessRead, false},
		{"stranger cannot write", strangerID, domain.AccessWrite, false},
		{"stranger cannot share", strangerID, domain.AccessShare, false},
		{"stranger cannot delete", strangerID, domain.AccessDelete, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanAccess(vehicle, tt.userID, tt.mode))
		})
	}
}

func TestVehicle_IsSharedWith(t *testing.T) {
	viewerID := uuid.New()

	vehicle := &domain.Vehicle{
		OwnerID:    uuid.New(),
		SharedWith: []domain.User{{ID: viewerID}},
	}

	assert.True(t, vehicle.IsSharedWith(viewerID))
	assert.False(t, vehicle.IsSharedWith(uuid.New()))
	assert.False(t, vehicle.IsSharedWith(vehicle.OwnerID))
}
