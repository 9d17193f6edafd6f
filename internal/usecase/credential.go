package usecase

import (
	"context"
	"fmt"

	"naija-barter/internal/data/entity"
	"naija-barter/internal/data/repository"
	"naija-barter/pkg/utils"
)

// HashNewPassword enforces the password policy and hashes the plaintext for
// an account that does not exist yet.
func HashNewPassword(plaintext string) (string, error) {
	if err := utils.ValidatePasswordPolicy(plaintext); err != nil {
		return "", err
	}

	hash, err := utils.HashPassword(plaintext)
	if err != nil {
		return "", fmt.Errorf("failed to process password")
	}

	return hash, nil
}

// SetPassword enforces the password policy, then re-hashes and stores only
// when the plaintext actually differs from the current password; setting
// the same password again is a no-op.
func SetPassword(ctx context.Context, repo repository.UserRepository, user *entity.User, plaintext string) error {
	if err := utils.ValidatePasswordPolicy(plaintext); err != nil {
		return err
	}

	if user.PasswordHash != "" && utils.CheckPasswordHash(plaintext, user.PasswordHash) {
		return nil
	}

	hash, err := utils.HashPassword(plaintext)
	if err != nil {
		return fmt.Errorf("failed to process password")
	}

	if err := repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to store password")
	}

	user.PasswordHash = hash
	return nil
}
