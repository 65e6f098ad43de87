package repository

import (
	"errors"
	"os"

	"supplylink/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(maps ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// asStateCheckConflict converts DynamoDB's conditional-write rejection into
// the repository-level sentinel; other errors pass through unchanged.
func asStateCheckConflict(err error) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrStateCheckConflict
	}
	return err
}
