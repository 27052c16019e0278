package attendance

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/dawami-hr/dawami-backend-go/internal/config"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/attendance"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAttendanceRepo struct {
	mu      sync.Mutex
	seq     int
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	att.ID = fmt.Sprintf("att-%d", f.seq)
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetOpenSession(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.openSessionLocked(employeeID)
}

func (f *fakeAttendanceRepo) GetOpenSessionForUpdate(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	return f.GetOpenSession(ctx, employeeID)
}

func (f *fakeAttendanceRepo) openSessionLocked(employeeID string) (attendance.Attendance, error) {
	var open *attendance.Attendance
	for id := range f.records {
		att := f.records[id]
		if att.EmployeeID != employeeID || att.ClockOut != nil {
			continue
		}
		if open == nil || att.ClockIn.After(open.ClockIn) {
			copied := att
			open = &copied
		}
	}
	if open == nil {
		return attendance.Attendance{}, attendance.ErrNoOpenSession
	}
	return *open, nil
}

func (f *fakeAttendanceRepo) CloseSession(ctx context.Context, id string, clockOut time.Time, notes *string) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	att.ClockOut = &clockOut
	att.Notes = notes
	f.records[id] = att
	return att, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []attendance.Attendance
	for _, att := range f.records {
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.StartDate != nil && att.AttendanceDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && att.AttendanceDate.After(*filter.EndDate) {
			continue
		}
		result = append(result, att)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].AttendanceDate.Equal(result[j].AttendanceDate) {
			return result[i].AttendanceDate.After(result[j].AttendanceDate)
		}
		return result[i].ClockIn.After(result[j].ClockIn)
	})
	return result, nil
}

type fakeDirectory struct {
	employees map[string]employee.Employee
}

func newFakeDirectory(ids ...string) *fakeDirectory {
	d := &fakeDirectory{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		d.employees[id] = employee.Employee{ID: id, FirstName: "Test", LastName: id, EmployeeCode: "EMP-" + id}
	}
	return d
}

func (f *fakeDirectory) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.employees[id]
	return ok, nil
}

func (f *fakeDirectory) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeDirectory) List(ctx context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		result = append(result, emp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LastName < result[j].LastName })
	return result, nil
}

func strPtr(s string) *string { return &s }

func defaultPolicy() config.PolicyConfig {
	return config.PolicyConfig{VerifyEmployee: true, AllowStatusOverride: true}
}

func newTestService(repo *fakeAttendanceRepo, dir *fakeDirectory) attendance.AttendanceService {
	return NewAttendanceService(fakeTxManager{}, repo, dir, defaultPolicy())
}

// ===== ATTENDANCE SERVICE TESTS =====

func TestAttendanceService_ClockIn_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeDirectory("emp-1"))

	// Act
	record, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		At:         strPtr("2026-06-15 09:00:00"),
		Notes:      strPtr("Starting the day"),
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "emp-1", record.EmployeeID)
	assert.Equal(t, "2026-06-15 09:00:00", record.ClockInTime)
	assert.Equal(t, "2026-06-15", record.AttendanceDate)
	assert.Nil(t, record.ClockOutTime)
	assert.Equal(t, "manual", record.Source)
}

func TestAttendanceService_ClockIn_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeDirectory())

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "ghost"})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_ClockIn_InvalidTimestamp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeDirectory("emp-1"))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		At:         strPtr("15/06/2026 09:00"),
	})

	assert.Error(t, err)
}

func TestAttendanceService_ClockIn_AllowsMultiplePerDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, newFakeDirectory("emp-1"))

	// Morning session, closed before lunch
	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-1", At: strPtr("2026-06-15 09:00:00")})
	require.NoError(t, err)
	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "emp-1", At: strPtr("2026-06-15 12:00:00")})
	require.NoError(t, err)

	// Afternoon session on the same date
	second, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-1", At: strPtr("2026-06-15 13:00:00")})
	require.NoError(t, err)

	open, err := svc.GetOpenSession(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, open.ID)
}

func TestAttendanceService_ClockOut_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeDirectory("emp-1"))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		At:         strPtr("2026-06-15 09:00:00"),
		Notes:      strPtr("Starting the day"),
	})
	require.NoError(t, err)

	// Act
	closed, err := svc.ClockOut(ctx, attendance.ClockOutRequest{
		EmployeeID: "emp-1",
		At:         strPtr("2026-06-15 17:30:00"),
		Notes:      strPtr("Ending the day"),
	})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, closed.ClockOutTime)
	assert.Equal(t, "2026-06-15 17:30:00", *closed.ClockOutTime)
	require.NotNil(t, closed.Notes)
	assert.Equal(t, "Starting the day\nClock-out: Ending the day", *closed.Notes)

	// Session is closed now
	_, err = svc.GetOpenSession(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNoOpenSession)
}

func TestAttendanceService_ClockOut_NotesWithoutClockInNotes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeDirectory("emp-1"))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-1", At: strPtr("2026-06-15 09:00:00")})
	require.NoError(t, err)

	closed, err := svc.ClockOut(ctx, attendance.ClockOutRequest{
		EmployeeID: "emp-1",
		At:         strPtr("2026-06-15 17:00:00"),
		Notes:      strPtr("Done"),
	})

	require.NoError(t, err)
	require.NotNil(t, closed.Notes)
	assert.Equal(t, "Clock-out: Done", *closed.Notes)
}

func TestAttendanceService_ClockOut_NoOpenSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeDirectory("emp-1"))

	_, err := svc.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "emp-1"})

	assert.ErrorIs(t, err, attendance.ErrNoOpenSession)
}

func TestAttendanceService_ClockOut_BeforeClockIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeDirectory("emp-1"))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-1", At: strPtr("2026-06-15 09:00:00")})
	require.NoError(t, err)

	// Act
	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{
		EmployeeID: "emp-1",
		At:         strPtr("2026-06-15 08:00:00"),
	})

	// Assert
	assert.ErrorIs(t, err, attendance.ErrClockOutBeforeClockIn)

	// Session stays open and can still be closed with a valid time
	open, err := svc.GetOpenSession(ctx, "emp-1")
	require.NoError(t, err)
	assert.Nil(t, open.ClockOutTime)
}

func TestAttendanceService_ListRecords_FilterAndOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeDirectory("emp-1", "emp-2"))

	for _, at := range []string{
		"2026-06-14 09:00:00",
		"2026-06-15 09:00:00",
		"2026-06-15 13:00:00",
	} {
		at := at
		_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-1", At: &at})
		require.NoError(t, err)
	}
	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-2", At: strPtr("2026-06-15 10:00:00")})
	require.NoError(t, err)

	// Act
	records, err := svc.ListRecords(ctx, attendance.ListRecordsRequest{
		EmployeeID: strPtr("emp-1"),
		StartDate:  strPtr("2026-06-15"),
		EndDate:    strPtr("2026-06-15"),
	})

	// Assert: only emp-1 on the 15th, newest clock-in first
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2026-06-15 13:00:00", records[0].ClockInTime)
	assert.Equal(t, "2026-06-15 09:00:00", records[1].ClockInTime)
}
