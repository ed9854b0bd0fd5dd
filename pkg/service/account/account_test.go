package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amirasaad/ebanking/internal/fixtures/mocks"
	infraaccount "github.com/amirasaad/ebanking/infra/repository/account"
	infratx "github.com/amirasaad/ebanking/infra/repository/transaction"
	"github.com/amirasaad/ebanking/pkg/domain/account"
	"github.com/amirasaad/ebanking/pkg/dto"
	accountsvc "github.com/amirasaad/ebanking/pkg/service/account"
	txsvc "github.com/amirasaad/ebanking/pkg/service/transaction"
	"github.com/amirasaad/ebanking/pkg/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	discard = testutils.DiscardLogger()
	seed    = testutils.WriteFile
	read    = testutils.ReadFile
)

const accountsPath = "data/accounts_file.txt"

func newService(t *testing.T, fs afero.Fs) *accountsvc.Service {
	t.Helper()
	return accountsvc.New(context.Background(), infraaccount.New(fs, accountsPath, discard), discard)
}

func TestNew_LoadsStore(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	seed(t, fs, accountsPath, "U1,RO01,savings,100.0\nU2,RO02,current,5\nU1,RO03,current,-1.5\n")

	svc := newService(t, fs)
	require.NoError(t, svc.LoadErr())
	assert.Len(t, svc.GetAllAccounts(), 3)

	mine := svc.GetAccountsByUserID("U1")
	require.Len(t, mine, 2)
	assert.Equal(t, "RO01", mine[0].IBAN)
	assert.Equal(t, "RO03", mine[1].IBAN)
	assert.Empty(t, svc.GetAccountsByUserID("U9"))
}

func TestNew_SkipsMalformedLines(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	seed(t, fs, accountsPath, "U1,RO01,savings,100.0\nU1,RO02\nU2,RO03,current,x\n")

	svc := newService(t, fs)
	require.NoError(t, svc.LoadErr())
	accounts := svc.GetAllAccounts()
	require.Len(t, accounts, 1)
	assert.Equal(t, "RO01", accounts[0].IBAN)
}

func TestNew_MissingStoreStartsEmpty(t *testing.T) {
	t.Parallel()
	svc := newService(t, afero.NewMemMapFs())
	assert.NoError(t, svc.LoadErr())
	assert.Empty(t, svc.GetAllAccounts())
}

func TestNew_StoreErrorIsKept(t *testing.T) {
	t.Parallel()
	repo := &mocks.MockAccountRepository{}
	repo.On("LoadAll", mock.Anything).Return(nil, errors.New("permission denied")).Once()

	svc := accountsvc.New(context.Background(), repo, discard)
	assert.EqualError(t, svc.LoadErr(), "permission denied")
	assert.Empty(t, svc.GetAllAccounts())
	repo.AssertExpectations(t)
}

func TestAddAccount_CacheOnly(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	seed(t, fs, accountsPath, "U1,RO01,savings,100\n")
	svc := newService(t, fs)

	svc.AddAccount(account.New().WithUserID("U1").WithIBAN("RO09").WithType("current").Build())
	svc.AddAccount(nil)

	assert.Len(t, svc.GetAccountsByUserID("U1"), 2)
	assert.Equal(t, "U1,RO01,savings,100\n", read(t, fs, accountsPath))
}

func TestSaveAccounts(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	svc := newService(t, fs)
	svc.AddAccount(account.New().WithUserID("U1").WithIBAN("RO01").WithType("savings").WithBalance(100).Build())

	require.NoError(t, svc.SaveAccounts(context.Background(), svc.GetAllAccounts()))
	assert.Equal(t, "U1,RO01,savings,100\n", read(t, fs, accountsPath))
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	seed(t, fs, accountsPath, "U1,RO01,savings,100\nU2,RO02,current,5\n")
	svc := newService(t, fs)

	deleted, err := svc.DeleteAccount(context.Background(), "RO01")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Len(t, svc.GetAllAccounts(), 1)
	assert.Equal(t, "U2,RO02,current,5\n", read(t, fs, accountsPath))
}

func TestDeleteAccount_RemovesDuplicates(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	seed(t, fs, accountsPath, "U1,RO01,savings,100\nU2,RO02,current,5\nU3,RO01,current,7\n")
	svc := newService(t, fs)

	deleted, err := svc.DeleteAccount(context.Background(), "RO01")
	require.NoError(t, err)
	assert.True(t, deleted)
	require.Len(t, svc.GetAllAccounts(), 1)
	assert.Equal(t, "RO02", svc.GetAllAccounts()[0].IBAN)
	assert.Equal(t, "U2,RO02,current,5\n", read(t, fs, accountsPath))
}

func TestDeleteAccount_UnknownIBANLeavesEverythingUnchanged(t *testing.T) {
	t.Parallel()
	repo := &mocks.MockAccountRepository{}
	repo.On("LoadAll", mock.Anything).Return([]dto.AccountRecord{
		{UserID: "U1", IBAN: "RO01", Type: "savings", Balance: 100},
	}, nil).Once()
	svc := accountsvc.New(context.Background(), repo, discard)
	before := svc.GetAllAccounts()

	deleted, err := svc.DeleteAccount(context.Background(), "RO99")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, before, svc.GetAllAccounts())
	repo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestDeleteAccount_PersistFailureKeepsCache(t *testing.T) {
	t.Parallel()
	repo := &mocks.MockAccountRepository{}
	repo.On("LoadAll", mock.Anything).Return([]dto.AccountRecord{
		{UserID: "U1", IBAN: "RO01", Type: "savings", Balance: 100},
	}, nil).Once()
	repo.On("SaveAll", mock.Anything, []dto.AccountRecord{}).Return(errors.New("disk full")).Once()
	svc := accountsvc.New(context.Background(), repo, discard)

	deleted, err := svc.DeleteAccount(context.Background(), "RO01")
	require.Error(t, err)
	assert.False(t, deleted)
	assert.Len(t, svc.GetAllAccounts(), 1)
	repo.AssertExpectations(t)
}

func TestDeleteAccount_OrphanedTransactionsStayReadable(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	seed(t, fs, accountsPath, "U1,RO01,savings,100\n")
	seed(t, fs, "data/transactions_file.txt", "RO01,-50,2024-01-15\n")
	svc := newService(t, fs)
	txs := txsvc.New(infratx.New(fs, "data/transactions_file.txt", discard), discard)

	deleted, err := svc.DeleteAccount(context.Background(), "RO01")
	require.NoError(t, err)
	require.True(t, deleted)

	history, err := txs.GetTransactionsByAccountIBAN(context.Background(), "RO01")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, -50.0, history[0].Amount)
}

func TestFinalize_DiscardsCacheOnlyAdditions(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	seed(t, fs, accountsPath, "U1,RO01,savings,100.0\nbroken line\n")
	svc := newService(t, fs)
	svc.AddAccount(account.New().WithUserID("U1").WithIBAN("RO09").Build())

	require.NoError(t, svc.Finalize(context.Background()))
	assert.Equal(t, "U1,RO01,savings,100\n", read(t, fs, accountsPath))
	assert.Len(t, svc.GetAllAccounts(), 1)
}

func TestFinalize_StoreErrorSkipsWrite(t *testing.T) {
	t.Parallel()
	repo := &mocks.MockAccountRepository{}
	repo.On("LoadAll", mock.Anything).Return([]dto.AccountRecord{}, nil).Once()
	repo.On("LoadAll", mock.Anything).Return(nil, errors.New("io error")).Once()
	svc := accountsvc.New(context.Background(), repo, discard)

	require.Error(t, svc.Finalize(context.Background()))
	repo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}
