package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/prepdeck/prepdeck/internal/catalog/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, phone, email, password_hash, otp_code, otp_expires_at, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		otpCode   sql.NullString
		otpExpiry sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Phone, &u.Email, &u.PasswordHash, &otpCode, &otpExpiry, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.OTPCode = mapNullStringPtr(otpCode)
	u.OTPExpiresAt = mapNullTimePtr(otpExpiry)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByPhone(ctx context.Context, phone string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone = ?`, phone)
	return scanUser(row)
}

func (r *usersRepo) GetUserByIdentifier(ctx context.Context, identifier string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone = ? OR email = ?`, identifier, identifier)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, phone, email, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Phone, u.Email, u.PasswordHash, now, now)
	return mapUniqueViolation(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) SetOTP(ctx context.Context, userID string, code string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET otp_code = ?, otp_expires_at = ?, updated_at = ? WHERE id = ?`,
		code, expiresAt.UTC(), time.Now().UTC(), userID)
	return err
}

// ConsumeOTP is a single guarded UPDATE so two callers holding the same code
// cannot both consume it. Zero rows means the code was already gone.
func (r *usersRepo) ConsumeOTP(ctx context.Context, userID, code string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET otp_code = NULL, otp_expires_at = NULL, updated_at = ?
		 WHERE id = ? AND otp_code = ?`,
		time.Now().UTC(), userID, code)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// AddBookmark is a single INSERT OR IGNORE so concurrent adds for the same
// user never lose updates and re-adding is a no-op.
func (r *usersRepo) AddBookmark(ctx context.Context, userID, courseID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO user_bookmarks (user_id, course_id, created_at)
		 VALUES (?, ?, ?)`,
		userID, courseID, time.Now().UTC())
	return err
}

func (r *usersRepo) RemoveBookmark(ctx context.Context, userID, courseID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_bookmarks WHERE user_id = ? AND course_id = ?`,
		userID, courseID)
	return err
}

func (r *usersRepo) ListBookmarks(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_id FROM user_bookmarks WHERE user_id = ? ORDER BY created_at, course_id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *usersRepo) ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET otp_code = NULL, otp_expires_at = NULL, updated_at = ?
		 WHERE otp_expires_at IS NOT NULL AND otp_expires_at < ?`,
		now.UTC(), now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
