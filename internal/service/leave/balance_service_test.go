package leave

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLeaveTypeRepo struct {
	mu    sync.Mutex
	seq   int
	types map[string]leave.LeaveType
}

func newFakeLeaveTypeRepo() *fakeLeaveTypeRepo {
	return &fakeLeaveTypeRepo{types: make(map[string]leave.LeaveType)}
}

func (f *fakeLeaveTypeRepo) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.types {
		if existing.Name == lt.Name {
			return leave.LeaveType{}, leave.ErrLeaveTypeExists
		}
	}
	f.seq++
	lt.ID = fmt.Sprintf("lt-%d", f.seq)
	f.types[lt.ID] = lt
	return lt, nil
}

func (f *fakeLeaveTypeRepo) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lt, ok := f.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (f *fakeLeaveTypeRepo) List(ctx context.Context) ([]leave.LeaveType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []leave.LeaveType
	for _, lt := range f.types {
		result = append(result, lt)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

type balanceKey struct {
	employeeID  string
	leaveTypeID string
	year        int
}

type fakeBalanceRepo struct {
	mu       sync.Mutex
	seq      int
	balances map[balanceKey]leave.LeaveBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[balanceKey]leave.LeaveBalance)}
}

func (f *fakeBalanceRepo) Get(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	balance, ok := f.balances[balanceKey{employeeID, leaveTypeID, year}]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}
	return balance, nil
}

func (f *fakeBalanceRepo) GetForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	return f.Get(ctx, employeeID, leaveTypeID, year)
}

func (f *fakeBalanceRepo) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	balance.ID = fmt.Sprintf("bal-%d", f.seq)
	f.balances[balanceKey{balance.EmployeeID, balance.LeaveTypeID, balance.Year}] = balance
	return balance, nil
}

func (f *fakeBalanceRepo) UpdateBalance(ctx context.Context, id string, amount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, balance := range f.balances {
		if balance.ID == id {
			balance.Balance = amount
			f.balances[key] = balance
			return nil
		}
	}
	return leave.ErrLeaveBalanceNotFound
}

func (f *fakeBalanceRepo) rowCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.balances)
}

func floatPtr(v float64) *float64 { return &v }

func newTestBalanceService(typeRepo *fakeLeaveTypeRepo, balanceRepo *fakeBalanceRepo) leave.BalanceService {
	return NewBalanceService(fakeTxManager{}, typeRepo, balanceRepo)
}

// ===== LEAVE TYPE TESTS =====

func TestBalanceService_CreateLeaveType_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestBalanceService(newFakeLeaveTypeRepo(), newFakeBalanceRepo())

	created, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{
		Name:           "Annual Leave",
		DefaultBalance: floatPtr(12),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Annual Leave", created.Name)
	require.NotNil(t, created.DefaultBalance)
	assert.Equal(t, 12.0, *created.DefaultBalance)
}

func TestBalanceService_CreateLeaveType_DuplicateName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestBalanceService(newFakeLeaveTypeRepo(), newFakeBalanceRepo())

	_, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{Name: "Sick Leave"})
	require.NoError(t, err)

	_, err = svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{Name: "Sick Leave"})

	assert.ErrorIs(t, err, leave.ErrLeaveTypeExists)
}

func TestBalanceService_ListLeaveTypes_OrderedByName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestBalanceService(newFakeLeaveTypeRepo(), newFakeBalanceRepo())

	for _, name := range []string{"Unpaid Leave", "Annual Leave", "Sick Leave"} {
		_, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{Name: name})
		require.NoError(t, err)
	}

	types, err := svc.ListLeaveTypes(ctx)

	require.NoError(t, err)
	require.Len(t, types, 3)
	assert.Equal(t, "Annual Leave", types[0].Name)
	assert.Equal(t, "Sick Leave", types[1].Name)
	assert.Equal(t, "Unpaid Leave", types[2].Name)
}

// ===== BALANCE TESTS =====

func TestBalanceService_GetBalance_ExplicitRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	typeRepo := newFakeLeaveTypeRepo()
	balanceRepo := newFakeBalanceRepo()
	svc := newTestBalanceService(typeRepo, balanceRepo)

	created, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{Name: "Annual", DefaultBalance: floatPtr(12)})
	require.NoError(t, err)
	_, err = balanceRepo.Create(ctx, leave.LeaveBalance{
		EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2026, Balance: 7,
	})
	require.NoError(t, err)

	balance, err := svc.GetBalance(ctx, leave.BalanceQuery{EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2026})

	require.NoError(t, err)
	assert.Equal(t, 7.0, balance.Balance)
}

func TestBalanceService_GetBalance_DefaultProjection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	typeRepo := newFakeLeaveTypeRepo()
	balanceRepo := newFakeBalanceRepo()
	svc := newTestBalanceService(typeRepo, balanceRepo)

	created, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{Name: "Annual", DefaultBalance: floatPtr(12)})
	require.NoError(t, err)

	// Act
	balance, err := svc.GetBalance(ctx, leave.BalanceQuery{EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2026})

	// Assert: default is projected but no row is written
	require.NoError(t, err)
	assert.Equal(t, 12.0, balance.Balance)
	assert.Equal(t, 0, balanceRepo.rowCount())
}

func TestBalanceService_GetBalance_ZeroFallback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	typeRepo := newFakeLeaveTypeRepo()
	svc := newTestBalanceService(typeRepo, newFakeBalanceRepo())

	created, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{Name: "Unpaid"})
	require.NoError(t, err)

	balance, err := svc.GetBalance(ctx, leave.BalanceQuery{EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2026})

	require.NoError(t, err)
	assert.Equal(t, 0.0, balance.Balance)
}

func TestBalanceService_ApplyDelta_InitialSetIsAbsolute(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	typeRepo := newFakeLeaveTypeRepo()
	svc := newTestBalanceService(typeRepo, newFakeBalanceRepo())

	created, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{Name: "Annual", DefaultBalance: floatPtr(12)})
	require.NoError(t, err)

	req := leave.ApplyDeltaRequest{
		EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2026,
		Amount: 15, IsInitial: true,
	}

	first, err := svc.ApplyDelta(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 15.0, first.Balance)

	// Same call again yields the same final balance
	second, err := svc.ApplyDelta(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 15.0, second.Balance)
}

func TestBalanceService_ApplyDelta_Composes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	typeRepo := newFakeLeaveTypeRepo()
	svc := newTestBalanceService(typeRepo, newFakeBalanceRepo())

	created, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{Name: "Annual"})
	require.NoError(t, err)

	base := leave.ApplyDeltaRequest{EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2026, Amount: 10, IsInitial: true}
	_, err = svc.ApplyDelta(ctx, base)
	require.NoError(t, err)

	// Two deltas compose to the same result as their sum
	_, err = svc.ApplyDelta(ctx, leave.ApplyDeltaRequest{EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2026, Amount: -2})
	require.NoError(t, err)
	after, err := svc.ApplyDelta(ctx, leave.ApplyDeltaRequest{EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2026, Amount: -3})
	require.NoError(t, err)
	assert.Equal(t, 5.0, after.Balance)
}

func TestBalanceService_ApplyDelta_FoldsDefaultOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	typeRepo := newFakeLeaveTypeRepo()
	svc := newTestBalanceService(typeRepo, newFakeBalanceRepo())

	created, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{Name: "Annual", DefaultBalance: floatPtr(12)})
	require.NoError(t, err)

	// First mutation starts from the default
	first, err := svc.ApplyDelta(ctx, leave.ApplyDeltaRequest{EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2026, Amount: -2})
	require.NoError(t, err)
	assert.Equal(t, 10.0, first.Balance)

	// Later mutations start from the stored row, not the default again
	second, err := svc.ApplyDelta(ctx, leave.ApplyDeltaRequest{EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2026, Amount: -3})
	require.NoError(t, err)
	assert.Equal(t, 7.0, second.Balance)
}

func TestBalanceService_ApplyDelta_YearsAreIndependent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	typeRepo := newFakeLeaveTypeRepo()
	svc := newTestBalanceService(typeRepo, newFakeBalanceRepo())

	created, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{Name: "Annual"})
	require.NoError(t, err)

	_, err = svc.ApplyDelta(ctx, leave.ApplyDeltaRequest{EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2025, Amount: 10, IsInitial: true})
	require.NoError(t, err)
	_, err = svc.ApplyDelta(ctx, leave.ApplyDeltaRequest{EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2026, Amount: 3, IsInitial: true})
	require.NoError(t, err)

	prev, err := svc.GetBalance(ctx, leave.BalanceQuery{EmployeeID: "emp-1", LeaveTypeID: created.ID, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 10.0, prev.Balance)
}
