package sharecode

import (
	"errors"
	"fmt"

	"github.com/speps/go-hashids/v2"
)

var ErrInvalidCode = errors.New("invalid share code")

const minLength = 6

// Codec turns a spot's sequence number into a short, non-guessable code
// for share links, and back.
type Codec struct {
	h *hashids.HashID
}

func New(salt string) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = minLength

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("hashids: %w", err)
	}
	return &Codec{h: h}, nil
}

func (c *Codec) Encode(seq int64) (string, error) {
	if seq <= 0 {
		return "", fmt.Errorf("encode %d: %w", seq, ErrInvalidCode)
	}
	return c.h.EncodeInt64([]int64{seq})
}

func (c *Codec) Decode(code string) (int64, error) {
	nums, err := c.h.DecodeInt64WithError(code)
	if err != nil || len(nums) != 1 || nums[0] <= 0 {
		return 0, ErrInvalidCode
	}
	return nums[0], nil
}
