package postgres_test

import (
	"context"
	"testing"

	"github.com/garagem-inteligente/server/internal/domain"
	"github.com/garagem-inteligente/server/internal/repository/postgres"
	"github.com/garagem-inteligente/server/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewVehicleRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	vehicle := &domain.Vehicle{
		ID:      uuid.New(),
		Plate:   "DBU-0001",
		Make:    "Fiat",
		Model:   "Uno",
		Year:    2020,
		Type:    domain.VehicleTypeCar,
		OwnerID: owner.ID,
	}
	require.NoError(t, repo.Create(ctx, vehicle))

	t.Run("unique index rejects duplicate plate", func(t *testing.T) {
		dup := &domain.Vehicle{
			ID:      uuid.New(),
			Plate:   "DBU-0001",
			Make:    "VW",
			Model:   "Gol",
			Year:    2021,
			Type:    domain.VehicleTypeCar,
			OwnerID: owner.ID,
		}
		assert.Error(t, repo.Create(ctx, dup))
	})

	t.Run("GetByPlate finds it", func(t *testing.T) {
		got, err := repo.GetByPlate(ctx, "DBU-0001")
		require.NoError(t, err)
		assert.Equal(t, vehicle.ID, got.ID)
	})
}

func TestVehicleRepository_ListVisibleTo(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewVehicleRepository(testDB.DB)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	aliceCar := testutil.NewVehicleBuilder(alice.ID).Build(t, testDB.DB)
	bobSharedCar := testutil.NewVehicleBuilder(bob.ID).SharedWith(alice).Build(t, testDB.DB)
	testutil.NewVehicleBuilder(bob.ID).Build(t, testDB.DB) // bob only

	visible, err := repo.ListVisibleTo(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, visible, 2)

	ids := []uuid.UUID{visible[0].ID, visible[1].ID}
	assert.Contains(t, ids, aliceCar.ID)
	assert.Contains(t, ids, bobSharedCar.ID)

	for _, v := range visible {
		assert.NotEmpty(t, v.Owner.Email, "owner must be preloaded")
	}

	bobVisible, err := repo.ListVisibleTo(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobVisible, 2)
}

func TestVehicleRepository_AddShare(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewVehicleRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	friend, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	vehicle := testutil.NewVehicleBuilder(owner.ID).Build(t, testDB.DB)

	require.NoError(t, repo.AddShare(ctx, vehicle, friend))
	// Appending the same user again must not create a second join row.
	require.NoError(t, repo.AddShare(ctx, vehicle, friend))

	got, err := repo.GetByID(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Len(t, got.SharedWith, 1)
	assert.True(t, got.IsSharedWith(friend.ID))
}

func TestVehicleRepository_DeleteCascade(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewVehicleRepository(testDB.DB)
	maintenanceRepo := postgres.NewMaintenanceRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	friend, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	vehicle := testutil.NewVehicleBuilder(owner.ID).SharedWith(friend).Build(t, testDB.DB)

	for i := 0; i < 4; i++ {
		testutil.NewMaintenanceBuilder(vehicle.ID).Build(t, testDB.DB)
	}

	require.NoError(t, repo.DeleteCascade(ctx, vehicle.ID))

	count, err := maintenanceRepo.CountByVehicleID(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count, "no records may reference the deleted vehicle")

	_, err = repo.GetByID(ctx, vehicle.ID)
	assert.Error(t, err)

	var shareRows int64
	require.NoError(t, testDB.DB.Table("vehicle_shares").Where("vehicle_id = ?", vehicle.ID).Count(&shareRows).Error)
	assert.EqualValues(t, 0, shareRows)
}
