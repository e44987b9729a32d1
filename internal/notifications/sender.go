package notifications

import (
	"context"
	"errors"

	"github.com/9ssi7/exponent"
)

var ErrNoPushTokens = errors.New("no push tokens")

// PushSender is just an abstraction over any push sender,
// but here it's directly tied to the exponent SDK types.
type PushSender interface {
	Publish(ctx context.Context, msgs []*exponent.Message) ([]*exponent.MessageResponse, error)
	PublishSingle(ctx context.Context, msg *exponent.Message) ([]*exponent.MessageResponse, error)
}

// TokenSource looks up the device tokens registered by a user.
type TokenSource interface {
	PushTokens(ctx context.Context, userID string) ([]string, error)
}

func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// publish sends one message per device token of userID.
func publish(ctx context.Context, push PushSender, tokens TokenSource, userID, title, body string, data map[string]string) error {
	list, err := tokens.PushTokens(ctx, userID)
	if err != nil {
		return err
	}
	list = dedupe(list)
	if len(list) == 0 {
		return ErrNoPushTokens
	}

	msgs := make([]*exponent.Message, 0, len(list))
	for _, t := range list {
		//wrap the string token in exponent.Token to satisfy the type
		token := exponent.Token(t)
		msgs = append(msgs, &exponent.Message{
			To:    []*exponent.Token{&token},
			Title: title,
			Body:  body,
			Data:  data,
		})
	}

	_, err = push.Publish(ctx, msgs)
	return err
}
