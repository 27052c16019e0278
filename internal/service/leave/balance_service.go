package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/leave"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/database"
)

type BalanceServiceImpl struct {
	tx database.TxManager
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
}

// NewBalanceService creates a new leave balance service
func NewBalanceService(
	tx database.TxManager,
	leaveTypeRepo leave.LeaveTypeRepository,
	balanceRepo leave.LeaveBalanceRepository,
) leave.BalanceService {
	return &BalanceServiceImpl{
		tx:                     tx,
		LeaveTypeRepository:    leaveTypeRepo,
		LeaveBalanceRepository: balanceRepo,
	}
}

func toLeaveTypeResponse(lt leave.LeaveType) leave.LeaveTypeResponse {
	return leave.LeaveTypeResponse{
		ID:             lt.ID,
		Name:           lt.Name,
		DefaultBalance: lt.DefaultBalance,
	}
}

// CreateLeaveType implements leave.BalanceService.
func (b *BalanceServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	created, err := b.LeaveTypeRepository.Create(ctx, leave.LeaveType{
		Name:           req.Name,
		DefaultBalance: req.DefaultBalance,
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return toLeaveTypeResponse(created), nil
}

// ListLeaveTypes implements leave.BalanceService.
func (b *BalanceServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := b.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		responses = append(responses, toLeaveTypeResponse(lt))
	}

	return responses, nil
}

// GetBalance implements leave.BalanceService. Resolution order: the stored
// row, else the leave type default, else zero. The default is only projected
// here, never written.
func (b *BalanceServiceImpl) GetBalance(ctx context.Context, q leave.BalanceQuery) (leave.BalanceResponse, error) {
	if err := q.Validate(); err != nil {
		return leave.BalanceResponse{}, err
	}

	resp := leave.BalanceResponse{
		EmployeeID:  q.EmployeeID,
		LeaveTypeID: q.LeaveTypeID,
		Year:        q.Year,
	}

	balance, err := b.LeaveBalanceRepository.Get(ctx, q.EmployeeID, q.LeaveTypeID, q.Year)
	if err == nil {
		resp.Balance = balance.Balance
		return resp, nil
	}
	if !errors.Is(err, leave.ErrLeaveBalanceNotFound) {
		return leave.BalanceResponse{}, err
	}

	defaultBalance, err := b.resolveDefault(ctx, q.LeaveTypeID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	resp.Balance = defaultBalance
	return resp, nil
}

// ApplyDelta implements leave.BalanceService. Read-modify-write runs inside
// one transaction with the balance row locked, so concurrent deltas for the
// same key serialize instead of losing updates.
func (b *BalanceServiceImpl) ApplyDelta(ctx context.Context, req leave.ApplyDeltaRequest) (leave.BalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.BalanceResponse{}, err
	}

	var newBalance float64
	err := b.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		existing, err := b.LeaveBalanceRepository.GetForUpdate(txCtx, req.EmployeeID, req.LeaveTypeID, req.Year)

		switch {
		case err == nil:
			if req.IsInitial {
				newBalance = req.Amount
			} else {
				newBalance = existing.Balance + req.Amount
			}
			return b.LeaveBalanceRepository.UpdateBalance(txCtx, existing.ID, newBalance)

		case errors.Is(err, leave.ErrLeaveBalanceNotFound):
			if req.IsInitial {
				newBalance = req.Amount
			} else {
				// First mutation folds the leave type default in once.
				base, err := b.resolveDefault(txCtx, req.LeaveTypeID)
				if err != nil {
					return err
				}
				newBalance = base + req.Amount
			}
			_, err = b.LeaveBalanceRepository.Create(txCtx, leave.LeaveBalance{
				EmployeeID:  req.EmployeeID,
				LeaveTypeID: req.LeaveTypeID,
				Year:        req.Year,
				Balance:     newBalance,
			})
			return err

		default:
			return fmt.Errorf("failed to read balance for update: %w", err)
		}
	})
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	return leave.BalanceResponse{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		Year:        req.Year,
		Balance:     newBalance,
	}, nil
}

// resolveDefault returns the leave type default balance, or zero when the
// type has none or does not exist.
func (b *BalanceServiceImpl) resolveDefault(ctx context.Context, leaveTypeID string) (float64, error) {
	lt, err := b.LeaveTypeRepository.GetByID(ctx, leaveTypeID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveTypeNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if lt.DefaultBalance == nil {
		return 0, nil
	}
	return *lt.DefaultBalance, nil
}
