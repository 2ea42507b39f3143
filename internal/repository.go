package internal

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"malipo/internal/model"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const orderPaymentFields = "status, subtotal, points_redeemed, user_id"

type IRepository interface {
	ConfirmOrderPayment(ctx context.Context, orderID string, details model.PaymentDetails) (model.ConfirmResult, error)
	MarkOrderFailed(ctx context.Context, orderID string) error
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	return &Repository{Conn: db, Logger: logger}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	err := goose.SetDialect("postgres")
	if err != nil {
		return err
	}

	return goose.Up(db, "migrations")
}

func (r Repository) Close() error {
	return r.Conn.Close()
}

// ConfirmOrderPayment moves an order to Processing and credits the points
// difference to its user inside a single transaction. An order that is
// already Processing commits unchanged and reports PaymentAlreadyProcessed,
// so a duplicate gateway notification never credits points twice. The order
// row is locked before the user row to keep lock ordering consistent.
func (r Repository) ConfirmOrderPayment(ctx context.Context, orderID string, details model.PaymentDetails) (model.ConfirmResult, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return "", mapPgError(err)
	}
	defer tx.Rollback()

	o := model.Order{ID: orderID}
	row := tx.QueryRowContext(ctx, "SELECT "+orderPaymentFields+" FROM orders WHERE id = $1 FOR UPDATE", orderID)
	err = row.Scan(&o.Status, &o.Subtotal, &o.PointsRedeemed, &o.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PaymentTargetNotFound, ErrOrderNotFound
	}
	if err != nil {
		return "", mapPgError(err)
	}

	if o.Status == model.OrderStatusProcessing {
		err = tx.Commit()
		if err != nil {
			return "", mapPgError(err)
		}
		return model.PaymentAlreadyProcessed, nil
	}

	u := model.User{ID: o.UserID}
	var points sql.NullInt64 // users created before the loyalty scheme have no points yet
	row = tx.QueryRowContext(ctx, "SELECT points FROM users WHERE id = $1 FOR UPDATE", u.ID)
	err = row.Scan(&points)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PaymentTargetNotFound, ErrUserNotFound
	}
	if err != nil {
		return "", mapPgError(err)
	}
	u.Points = points.Int64

	o.Status = model.OrderStatusProcessing
	o.PointsEarned = o.Subtotal.Div(decimal.NewFromInt(100)).Floor().IntPart()
	o.Payment = &details
	u.Points += o.PointsEarned - o.PointsRedeemed

	_, err = tx.ExecContext(ctx, "UPDATE orders SET status = $1, points_earned = $2, payment_tracking_id = $3, payment_method = $4, payment_confirmed_at = $5 WHERE id = $6",
		o.Status, o.PointsEarned, o.Payment.TrackingID, o.Payment.PaymentMethod, o.Payment.ConfirmedAt, o.ID)
	if err != nil {
		return "", mapPgError(err)
	}

	_, err = tx.ExecContext(ctx, "UPDATE users SET points = $1 WHERE id = $2", u.Points, u.ID)
	if err != nil {
		return "", mapPgError(err)
	}

	err = tx.Commit()
	if err != nil {
		return "", mapPgError(err)
	}

	r.Logger.Infof("order %s confirmed, user %s credited %d points", o.ID, u.ID, o.PointsEarned)
	return model.PaymentApplied, nil
}

func (r Repository) MarkOrderFailed(ctx context.Context, orderID string) error {
	_, err := r.Conn.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2", model.OrderStatusPaymentFailed, orderID)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected {
			return fmt.Errorf("%w: %s", ErrTransactionConflict, pgErr.Message)
		}
	}
	return err
}
