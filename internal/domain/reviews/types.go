package reviews

import (
	"sort"
	"time"
)

// Review carries the author's name and image as they were when it was posted.
type Review struct {
	ID        string    `json:"reviewId"`
	SpotID    string    `json:"spotId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserImage string    `json:"userImage"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// SortNewest orders reviews freshest first.
func SortNewest(list []Review) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}
