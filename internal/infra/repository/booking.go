package repository

import (
	"context"
	"fmt"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingViewColumns = `
	b.id, b.start_ts, b.end_ts, b.status, b.created_at,
	b.item_id, i.name, i.owner_id,
	b.booker_id, u.name
`

const bookingViewFrom = `
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id
`

// BookingRepository reads through the pool but keeps it at hand so the
// status transition can run inside a transaction.
type BookingRepository struct {
	db   db.DBTX
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: pool, pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*usecase.BookingView, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, item_id, booker_id, start_ts, end_ts, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID(), b.ItemID(), b.BookerID(), b.Period().Start(), b.Period().End(), b.Status().String(), b.CreatedAt())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return r.FindByID(ctx, b.ID())
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.BookingView, error) {
	return findBookingByID(ctx, r.db, id)
}

func findBookingByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*usecase.BookingView, error) {
	row := q.QueryRow(ctx,
		`SELECT `+bookingViewColumns+bookingViewFrom+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

// DecideIfWaiting is the atomic conditional transition: the row only changes
// while its status is still WAITING, so concurrent decisions resolve to a
// single winner. The winner's re-read runs in the same transaction, so the
// returned view cannot observe a later write.
func (r *BookingRepository) DecideIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) (*usecase.BookingView, bool, error) {
	var (
		view    *usecase.BookingView
		changed bool
	)
	err := db.WithinTx(ctx, r.pool, func(ctx context.Context, tx db.DBTX) error {
		tag, err := tx.Exec(ctx,
			`UPDATE bookings SET status = $2 WHERE id = $1 AND status = $3`,
			id, status.String(), booking.StatusWaiting.String())
		if err != nil {
			return infra.WrapRepoErr("failed to update booking status", err)
		}
		if tag.RowsAffected() != 1 {
			return nil
		}
		changed = true

		view, err = findBookingByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return view, changed, nil
}

func (r *BookingRepository) FindByBooker(ctx context.Context, bookerID uuid.UUID, state booking.State, now time.Time) ([]*usecase.BookingView, error) {
	return r.findClassified(ctx, `b.booker_id`, bookerID, state, now)
}

func (r *BookingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State, now time.Time) ([]*usecase.BookingView, error) {
	return r.findClassified(ctx, `i.owner_id`, ownerID, state, now)
}

// findClassified is the single dispatch behind all twelve classification
// query variants: the viewpoint decides the identity column, the state
// decides the predicate. Ordering by start descending is part of the
// contract; paging is sliced by the caller on top of the full result.
func (r *BookingRepository) findClassified(ctx context.Context, idColumn string, id uuid.UUID, state booking.State, now time.Time) ([]*usecase.BookingView, error) {
	clause, args := stateClause(state, now)
	args = append([]any{id}, args...)

	query := `SELECT ` + bookingViewColumns + bookingViewFrom +
		` WHERE ` + idColumn + ` = $1` + clause +
		` ORDER BY b.start_ts DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []*usecase.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return views, nil
}

func stateClause(state booking.State, now time.Time) (string, []any) {
	switch state {
	case booking.StateCurrent:
		return ` AND b.start_ts <= $2 AND b.end_ts >= $2`, []any{now}
	case booking.StatePast:
		return ` AND b.end_ts < $2`, []any{now}
	case booking.StateFuture:
		return ` AND b.start_ts > $2`, []any{now}
	case booking.StateWaiting:
		return ` AND b.status = $2`, []any{booking.StatusWaiting.String()}
	case booking.StateRejected:
		return ` AND b.status = $2`, []any{booking.StatusRejected.String()}
	default: // booking.StateAll
		return ``, nil
	}
}

func (r *BookingRepository) FindLastApproved(ctx context.Context, itemID uuid.UUID, now time.Time) (*usecase.BookingRef, error) {
	return r.findNearestApproved(ctx, itemID, now, `b.start_ts < $3`, `DESC`)
}

func (r *BookingRepository) FindNextApproved(ctx context.Context, itemID uuid.UUID, now time.Time) (*usecase.BookingRef, error) {
	return r.findNearestApproved(ctx, itemID, now, `b.start_ts > $3`, `ASC`)
}

func (r *BookingRepository) findNearestApproved(ctx context.Context, itemID uuid.UUID, now time.Time, predicate, direction string) (*usecase.BookingRef, error) {
	query := fmt.Sprintf(`
		SELECT b.id, b.booker_id
		FROM bookings b
		WHERE b.item_id = $1 AND b.status = $2 AND %s
		ORDER BY b.start_ts %s
		LIMIT 1`, predicate, direction)

	var ref usecase.BookingRef
	err := r.db.QueryRow(ctx, query, itemID, booking.StatusApproved.String(), now).
		Scan(&ref.ID, &ref.BookerID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find nearest approved booking", err)
	}
	return &ref, nil
}

func (r *BookingRepository) ExistsCompleted(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE booker_id = $1 AND item_id = $2 AND status = $3 AND end_ts < $4
		)`, bookerID, itemID, booking.StatusApproved.String(), now).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check completed rental", err)
	}
	return exists, nil
}

type bookingRow interface {
	Scan(dest ...any) error
}

func scanBookingView(row bookingRow) (*usecase.BookingView, error) {
	var view usecase.BookingView
	err := row.Scan(
		&view.ID, &view.Start, &view.End, &view.Status, &view.CreatedAt,
		&view.Item.ID, &view.Item.Name, &view.Item.OwnerID,
		&view.Booker.ID, &view.Booker.Name,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
