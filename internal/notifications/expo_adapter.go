package notifications

import (
	"context"

	"github.com/9ssi7/exponent"
)

// expoBatchSize is the most messages Expo accepts in one push request.
const expoBatchSize = 100

type expoPublisher interface {
	Publish(ctx context.Context, msgs []*exponent.Message) ([]*exponent.MessageResponse, error)
}

// ExpoAdapter sends spot notifications through the Expo push service,
// splitting large fan-outs into request-sized batches.
type ExpoAdapter struct {
	client expoPublisher
}

func NewExpoAdapter(c *exponent.Client) *ExpoAdapter {
	return &ExpoAdapter{client: c}
}

// Publish sends msgs in batches and stops at the first failed batch. The
// responses of batches already sent are returned alongside the error.
func (a *ExpoAdapter) Publish(ctx context.Context, msgs []*exponent.Message) ([]*exponent.MessageResponse, error) {
	var out []*exponent.MessageResponse
	for start := 0; start < len(msgs); start += expoBatchSize {
		end := min(start+expoBatchSize, len(msgs))

		res, err := a.client.Publish(ctx, msgs[start:end])
		out = append(out, res...)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

func (a *ExpoAdapter) PublishSingle(ctx context.Context, msg *exponent.Message) ([]*exponent.MessageResponse, error) {
	return a.Publish(ctx, []*exponent.Message{msg})
}
