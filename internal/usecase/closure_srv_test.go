package usecase

import (
	"context"
	"testing"

	"voltride-booking/internal/data/entity"
	"voltride-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// activateFixture runs a check-out so the closure tests start from a real
// active contract.
func activateFixture(t *testing.T, env *testEnv, fix *fixture) uuid.UUID {
	t.Helper()
	resp, err := env.service.Activate(context.Background(), fix.booking.ID.String(), checkOutRequest(fix))
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	return id
}

func TestMissingDocumentsForPlatedVehicle(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	contractID := activateFixture(t, env, fix)
	ctx := context.Background()

	resp, err := env.service.MissingDocuments(ctx, contractID.String())
	require.NoError(t, err)

	assert.Equal(t, contractID.String(), resp.ContractID)
	assert.Equal(t, []string{
		"ID_CARD_FRONT",
		"ID_CARD_BACK",
		"LICENSE_FRONT",
		"LICENSE_BACK",
	}, resp.Missing)
}

func TestMissingDocumentsForUnplatedVehicle(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	fix.vehicle.HasPlate = false
	contractID := activateFixture(t, env, fix)
	ctx := context.Background()

	resp, err := env.service.MissingDocuments(ctx, contractID.String())
	require.NoError(t, err)

	assert.Equal(t, []string{"ID_CARD_FRONT", "ID_CARD_BACK"}, resp.Missing)
}

func TestMissingDocumentsContractNotFound(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.MissingDocuments(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrContractNotFound)

	_, err = env.service.MissingDocuments(ctx, "nope")
	assert.ErrorIs(t, err, ErrContractNotFound)
}

func TestAttachDocumentShrinksMissingSet(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	fix.vehicle.HasPlate = false
	contractID := activateFixture(t, env, fix)
	ctx := context.Background()

	resp, err := env.service.AttachDocument(ctx, contractID.String(), &request.AttachDocumentRequest{
		Kind: "ID_CARD_FRONT",
		URL:  "https://cdn.example.com/id-front.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ID_CARD_BACK"}, resp.Missing)

	// The write is persisted, not just reflected in the response.
	contract := env.contracts.contracts[contractID]
	require.NotNil(t, contract.IDCardFrontURL)
	assert.Equal(t, "https://cdn.example.com/id-front.jpg", *contract.IDCardFrontURL)
}

func TestAttachDocumentAlreadyCaptured(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	fix.vehicle.HasPlate = false
	contractID := activateFixture(t, env, fix)
	ctx := context.Background()

	first := "https://cdn.example.com/original.jpg"
	env.contracts.contracts[contractID].IDCardFrontURL = &first

	resp, err := env.service.AttachDocument(ctx, contractID.String(), &request.AttachDocumentRequest{
		Kind: "ID_CARD_FRONT",
		URL:  "https://cdn.example.com/replacement.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ID_CARD_BACK"}, resp.Missing)

	// The original capture is kept.
	assert.Equal(t, first, *env.contracts.contracts[contractID].IDCardFrontURL)
}

func TestAttachDocumentRejectsInvalidKind(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	contractID := activateFixture(t, env, fix)
	ctx := context.Background()

	_, err := env.service.AttachDocument(ctx, contractID.String(), &request.AttachDocumentRequest{
		Kind: "PASSPORT",
		URL:  "https://cdn.example.com/passport.jpg",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestFinalizeRefusedWhileDocumentsMissing(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	contractID := activateFixture(t, env, fix)
	ctx := context.Background()

	_, err := env.service.Finalize(ctx, contractID.String())
	require.Error(t, err)

	var missingErr *MissingDocumentsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []entity.DocumentKind{
		entity.DocumentIDCardFront,
		entity.DocumentIDCardBack,
		entity.DocumentLicenseFront,
		entity.DocumentLicenseBack,
	}, missingErr.Missing)

	// The refusal leaves the contract untouched.
	assert.Equal(t, entity.ContractStatusActive, env.contracts.contracts[contractID].Status)
}

func TestFinalizeCompletesContract(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	fix.vehicle.HasPlate = false
	contractID := activateFixture(t, env, fix)
	ctx := context.Background()

	url := "https://cdn.example.com/doc.jpg"
	contract := env.contracts.contracts[contractID]
	contract.IDCardFrontURL = &url
	contract.IDCardBackURL = &url

	resp, err := env.service.Finalize(ctx, contractID.String())
	require.NoError(t, err)

	assert.Equal(t, "COMPLETED", resp.Status)
	assert.Equal(t, entity.ContractStatusCompleted, env.contracts.contracts[contractID].Status)
}

func TestFinalizeReleasesCapturedDeposit(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	fix.vehicle.HasPlate = false
	contractID := activateFixture(t, env, fix)
	ctx := context.Background()

	url := "https://cdn.example.com/doc.jpg"
	contract := env.contracts.contracts[contractID]
	contract.IDCardFrontURL = &url
	contract.IDCardBackURL = &url
	contract.DepositStatus = entity.DepositStatusCaptured

	resp, err := env.service.Finalize(ctx, contractID.String())
	require.NoError(t, err)

	assert.Equal(t, "RELEASED", resp.DepositStatus)
	assert.Equal(t, entity.DepositStatusReleased, env.contracts.contracts[contractID].DepositStatus)
}

func TestFinalizeKeepsPendingDeposit(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	fix.vehicle.HasPlate = false
	contractID := activateFixture(t, env, fix)
	ctx := context.Background()

	url := "https://cdn.example.com/doc.jpg"
	contract := env.contracts.contracts[contractID]
	contract.IDCardFrontURL = &url
	contract.IDCardBackURL = &url

	resp, err := env.service.Finalize(ctx, contractID.String())
	require.NoError(t, err)

	// A deposit never captured has nothing to release.
	assert.Equal(t, "PENDING", resp.DepositStatus)
}

func TestFinalizeAlreadyCompleted(t *testing.T) {
	env := newTestEnv()
	fix := seedFixture(env)
	fix.vehicle.HasPlate = false
	contractID := activateFixture(t, env, fix)
	ctx := context.Background()

	url := "https://cdn.example.com/doc.jpg"
	contract := env.contracts.contracts[contractID]
	contract.IDCardFrontURL = &url
	contract.IDCardBackURL = &url
	contract.Status = entity.ContractStatusCompleted

	_, err := env.service.Finalize(ctx, contractID.String())
	require.Error(t, err)

	var transitionErr *entity.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "contract", transitionErr.Entity)
}
