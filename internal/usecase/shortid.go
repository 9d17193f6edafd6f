package usecase

import (
	"context"
	"fmt"

	"naija-barter/pkg/utils"
)

// maxIDGenerationAttempts bounds the collision-retry loop. The id space is
// 62^6, so more than a couple of collisions in a row means something is
// wrong with the store, not with the dice.
const maxIDGenerationAttempts = 10

// GenerateUniqueShortID rolls 6-character ids until one is free according
// to the supplied existence check, giving up after a bounded number of
// attempts.
func GenerateUniqueShortID(ctx context.Context, exists func(context.Context, string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxIDGenerationAttempts; attempt++ {
		id := utils.GenerateShortID()

		taken, err := exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check id uniqueness: %w", err)
		}
		if !taken {
			return id, nil
		}
	}

	return "", fmt.Errorf("could not allocate a unique id after %d attempts", maxIDGenerationAttempts)
}
