package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"backoffice/infras/otel"
	"backoffice/infras/postgres"
	"backoffice/internal/domains/booking/model"
	inventoryModel "backoffice/internal/domains/inventory/model"
	roomTypeModel "backoffice/internal/domains/roomtype/model"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	"backoffice/shared/logger"
	gRepo "backoffice/shared/repository"
	"backoffice/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	CreateWithLedger(ctx context.Context, booking model.Booking) error
	UpdateStatusWithLedger(ctx context.Context, booking model.Booking, newStatus, user string) error
	DeleteWithLedger(ctx context.Context, booking model.Booking) error
	GetOverlapping(ctx context.Context, hotelID string, start, end time.Time) ([]model.Booking, error)
	RevenueByDateRange(ctx context.Context, start, end time.Time) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// adjustLedger shifts booked/available counts for every existing ledger row
// covering the stay nights [check_in, check_out). Nights without a ledger
// row are skipped on purpose: the ledger only tracks days that were
// generated for sale.
func (repo *repositoryImpl) adjustLedger(ctx context.Context, tx *sqlx.Tx, booking model.Booking, delta int, user string) error {
	query := fmt.Sprintf(`UPDATE %s
		SET booked_rooms = booked_rooms + :delta,
			available_rooms = available_rooms - :delta,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE %s = :room_type_id AND %s >= :check_in AND %s < :check_out`,
		inventoryModel.TableName,
		inventoryModel.FieldRoomTypeID,
		inventoryModel.FieldDate,
		inventoryModel.FieldDate,
	)

	_, err := tx.NamedExecContext(ctx, query, map[string]any{
		"delta":        delta,
		"modified_at":  timezone.Now(),
		"modified_by":  user,
		"room_type_id": booking.RoomTypeID,
		"check_in":     booking.CheckIn,
		"check_out":    booking.CheckOut,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to adjust inventory ledger: %w", err)
	}

	return nil
}

// CreateWithLedger inserts the booking and books its nights on the ledger
// in a single transaction.
func (repo *repositoryImpl) CreateWithLedger(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CreateWithLedger")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err
	}

	if booking.HoldsRooms() {
		if err = repo.adjustLedger(ctx, tx, booking, 1, booking.CreatedBy); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateStatusWithLedger moves the booking to a new status and, when the
// transition releases the stay (cancelled or no_show), returns its nights
// to the ledger in the same transaction.
func (repo *repositoryImpl) UpdateStatusWithLedger(ctx context.Context, booking model.Booking, newStatus, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpdateStatusWithLedger")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	mod := map[string]any{
		model.FieldStatus:        newStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: booking.ID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	if err = repo.UpdateTx(ctx, tx, mod, filter); err != nil {
		return err
	}

	releasing := booking.HoldsRooms() && (newStatus == model.StatusCancelled || newStatus == model.StatusNoShow)
	if releasing {
		if err = repo.adjustLedger(ctx, tx, booking, -1, user); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteWithLedger removes the booking, releasing its nights first when the
// stay still held rooms.
func (repo *repositoryImpl) DeleteWithLedger(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".DeleteWithLedger")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if booking.HoldsRooms() {
		if err = repo.adjustLedger(ctx, tx, booking, -1, booking.ModifiedBy); err != nil {
			return err
		}
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: booking.ID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	if err = repo.DeleteTx(ctx, tx, filter); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetOverlapping returns the active bookings of a hotel whose stay touches
// the [start, end] date range. Cancelled and no-show bookings never count
// toward occupancy.
func (repo *repositoryImpl) GetOverlapping(ctx context.Context, hotelID string, start, end time.Time) (bookings []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetOverlapping")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT b.* FROM %s b
		JOIN %s rt ON rt.%s = b.%s
		WHERE rt.%s = :hotel_id
			AND b.%s <= :end_date
			AND b.%s > :start_date
			AND b.%s NOT IN (:status_cancelled, :status_no_show)`,
		model.TableName,
		roomTypeModel.TableName,
		roomTypeModel.FieldID,
		model.FieldRoomTypeID,
		roomTypeModel.FieldHotelID,
		model.FieldCheckIn,
		model.FieldCheckOut,
		model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &bookings, map[string]any{
		"hotel_id":         hotelID,
		"start_date":       start,
		"end_date":         end,
		"status_cancelled": model.StatusCancelled,
		"status_no_show":   model.StatusNoShow,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	return bookings, nil
}

// RevenueByDateRange sums total_price over bookings created inside the
// range, excluding cancelled ones. Revenue is recognized at creation time,
// not over the stay dates.
func (repo *repositoryImpl) RevenueByDateRange(ctx context.Context, start, end time.Time) (total float64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".RevenueByDateRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT COALESCE(SUM(total_price), 0) FROM %s
		WHERE %s >= :start_date AND %s <= :end_date AND %s != :status_cancelled`,
		model.TableName,
		constant.FieldCreatedAt,
		constant.FieldCreatedAt,
		model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &total, map[string]any{
		"start_date":       start,
		"end_date":         end,
		"status_cancelled": model.StatusCancelled,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to sum booking revenue: %w", err)
	}

	return total, nil
}
