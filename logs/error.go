package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan attaches the context's span to an error so failures can be
// joined back to their log trail.
func WrapSpan(ctx context.Context, err error) error {
	span := spanOf(ctx)
	if span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
