package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"naija-barter/internal/data/entity"
	"naija-barter/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `id, image, email, name, phone, username, dob, location,
		       business_name, registration_no, is_business, is_active,
		       is_suspended, is_staff, is_superuser, email_confirmed,
		       password, otp, otp_expiry, otp_tries, created_at, updated_at`

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsID(ctx context.Context, id string) (bool, error)
	FindAll(ctx context.Context, search, orderBy string, limit, offset int) ([]*entity.User, error)
	CountAll(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	Deactivate(ctx context.Context, id string) error

	// OTP state. SetOTP with nil code and expiry clears the challenge;
	// either way the attempt counter resets to zero.
	SetOTP(ctx context.Context, id string, otp *string, expiry *time.Time) error
	IncrementOTPTries(ctx context.Context, id string) (int, error)

	SetEmailConfirmed(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, image, email, name, phone, username, dob, location,
		                   business_name, registration_no, is_business, is_active,
		                   is_suspended, is_staff, is_superuser, email_confirmed,
		                   password, otp, otp_expiry, otp_tries, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Image,
		user.Email,
		user.Name,
		user.Phone,
		user.Username,
		user.DOB,
		user.Location,
		user.BusinessName,
		user.RegistrationNo,
		user.IsBusiness,
		user.IsActive,
		user.IsSuspended,
		user.IsStaff,
		user.IsSuperuser,
		user.EmailConfirmed,
		user.PasswordHash,
		user.OTP,
		user.OTPExpiry,
		user.OTPTries,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id, err)
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (r *userRepository) ExistsID(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check user id", zap.Error(err), zap.String("id", id))
		return false, fmt.Errorf("check user id %s: %w", id, err)
	}

	return exists, nil
}

// FindAll lists active, non-suspended users with optional name search.
// orderBy must come from the usecase whitelist, never from the client.
func (r *userRepository) FindAll(ctx context.Context, search, orderBy string, limit, offset int) ([]*entity.User, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + userColumns + `
		FROM users
		WHERE is_active = true AND is_suspended = false`)

	args := []interface{}{}
	argCount := 1

	if search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argCount))
		args = append(args, "%"+search+"%")
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", orderBy, argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all users",
			zap.Error(err),
			zap.String("search", search),
		)
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		if err := scanUserFields(rows, &user); err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (r *userRepository) CountAll(ctx context.Context, search string) (int64, error) {
	query := `SELECT COUNT(*) FROM users WHERE is_active = true AND is_suspended = false`
	args := []interface{}{}

	if search != "" {
		query += " AND name ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count users: %w", err)
	}

	return total, nil
}

// Update writes profile fields only. Password and OTP state have their own
// targeted statements so unrelated saves cannot touch them.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET image = $2, name = $3, phone = $4, username = $5, dob = $6,
		    location = $7, business_name = $8, registration_no = $9,
		    is_business = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Image,
		user.Name,
		user.Phone,
		user.Username,
		user.DOB,
		user.Location,
		user.BusinessName,
		user.RegistrationNo,
		user.IsBusiness,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID),
		)
		return fmt.Errorf("update user %s: %w", user.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID)
	}

	return nil
}

func (r *userRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE users SET is_active = false, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate user", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("deactivate user %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id)
	}

	r.log.Info("User deactivated", zap.String("id", id))
	return nil
}

func (r *userRepository) SetOTP(ctx context.Context, id string, otp *string, expiry *time.Time) error {
	query := `
		UPDATE users
		SET otp = $2, otp_expiry = $3, otp_tries = 0, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, otp, expiry)
	if err != nil {
		r.log.Error("Failed to set OTP", zap.Error(err), zap.String("user_id", id))
		return fmt.Errorf("set OTP for user %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id)
	}

	return nil
}

// IncrementOTPTries advances the attempt counter in a single conditional
// statement and returns the post-increment value, so two concurrent verify
// calls can never observe the same count.
func (r *userRepository) IncrementOTPTries(ctx context.Context, id string) (int, error) {
	query := `
		UPDATE users
		SET otp_tries = otp_tries + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING otp_tries
	`

	var tries int
	err := r.db.QueryRow(ctx, query, id).Scan(&tries)
	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("user %s not found", id)
	}
	if err != nil {
		r.log.Error("Failed to increment OTP tries", zap.Error(err), zap.String("user_id", id))
		return 0, fmt.Errorf("increment OTP tries for user %s: %w", id, err)
	}

	return tries, nil
}

func (r *userRepository) SetEmailConfirmed(ctx context.Context, id string) error {
	query := `UPDATE users SET email_confirmed = true, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to confirm email", zap.Error(err), zap.String("user_id", id))
		return fmt.Errorf("confirm email for user %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id)
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		r.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", id))
		return fmt.Errorf("update password for user %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id)
	}

	return nil
}

func (r *userRepository) scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := scanUserFields(row, &user)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func scanUserFields(row pgx.Row, user *entity.User) error {
	return row.Scan(
		&user.ID,
		&user.Image,
		&user.Email,
		&user.Name,
		&user.Phone,
		&user.Username,
		&user.DOB,
		&user.Location,
		&user.BusinessName,
		&user.RegistrationNo,
		&user.IsBusiness,
		&user.IsActive,
		&user.IsSuspended,
		&user.IsStaff,
		&user.IsSuperuser,
		&user.EmailConfirmed,
		&user.PasswordHash,
		&user.OTP,
		&user.OTPExpiry,
		&user.OTPTries,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
