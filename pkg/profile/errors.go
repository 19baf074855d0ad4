package profile

import (
	"context"
	"errors"

	apperrors "github.com/matzehuels/ghinsight/pkg/errors"
	"github.com/matzehuels/ghinsight/pkg/integrations"
)

// classify converts a fetch-layer failure into a coded error.
func classify(err error, op string) *apperrors.Error {
	var coded *apperrors.Error
	if errors.As(err, &coded) {
		return coded
	}

	var rl *integrations.RateLimitError
	switch {
	case errors.As(err, &rl):
		var reset int64
		if !rl.Reset.IsZero() {
			reset = rl.Reset.Unix()
		}
		return apperrors.Wrap(apperrors.ErrCodeRateLimited, &apperrors.RateLimitedError{ResetAt: reset}, "%s", op)
	case errors.Is(err, integrations.ErrNotFound):
		return apperrors.Wrap(apperrors.ErrCodeNotFound, err, "%s", op)
	case errors.Is(err, integrations.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(apperrors.ErrCodeTimeout, err, "%s", op)
	default:
		return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "%s", op)
	}
}

// validate trims a login and rejects empty input.
func validate(input string) (string, *apperrors.Error) {
	return asCoded(apperrors.ValidateUsername(input))
}

// validateQuery trims search text and rejects empty input.
func validateQuery(input string) (string, *apperrors.Error) {
	return asCoded(apperrors.ValidateQuery(input))
}

func asCoded(v string, err error) (string, *apperrors.Error) {
	if err == nil {
		return v, nil
	}
	var c *apperrors.Error
	if errors.As(err, &c) {
		return "", c
	}
	return "", apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "validate input")
}
