package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"voltride-booking/internal/data/entity"
	"voltride-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedContract(env *testEnv, fix *fixture, number string, createdAt time.Time) *entity.RentalContract {
	contract := &entity.RentalContract{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		ContractNumber: number,
		BookingID:      uuid.New(),
		FleetVehicleID: fix.fleet.ID,
		AgencyID:       fix.agency.ID,
		CustomerID:     fix.booking.CustomerID,
		Status:         entity.ContractStatusActive,
	}
	env.contracts.contracts[contract.ID] = contract
	return contract
}

func TestListContractsPaginates(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedContract(env, fix, fmt.Sprintf("BCN-%05d", i+1), base.Add(time.Duration(i)*time.Hour))
	}
	ctx := context.Background()

	resp, err := env.service.ListContracts(ctx, &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)

	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(5), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)

	// Newest first.
	assert.Equal(t, "BCN-00005", resp.Data[0].ContractNumber)
	assert.Equal(t, "BCN-00004", resp.Data[1].ContractNumber)

	resp, err = env.service.ListContracts(ctx, &request.PaginatedRequest{Page: 3, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "BCN-00001", resp.Data[0].ContractNumber)
}

func TestGetContractByID(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	contract := seedContract(env, fix, "BCN-00001", time.Now())
	ctx := context.Background()

	resp, err := env.service.GetContractByID(ctx, contract.ID.String())
	require.NoError(t, err)
	assert.Equal(t, contract.ID.String(), resp.ID)
	assert.Equal(t, "BCN-00001", resp.ContractNumber)

	// References expand from the seeded fixture data.
	require.NotNil(t, resp.Agency)
	assert.Equal(t, "BCN", resp.Agency.Code)

	_, err = env.service.GetContractByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrContractNotFound)
}
