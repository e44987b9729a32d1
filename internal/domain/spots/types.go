package spots

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

var ErrUnknownFoodType = errors.New("unknown food type")

type FoodType string

const (
	Veg        FoodType = "Veg"
	NonVeg     FoodType = "Non-Veg"
	Seafood    FoodType = "Seafood"
	TeaSnacks  FoodType = "Tea and Snacks"
	CoolDrinks FoodType = "Cool Drinks"
)

var FoodTypes = []FoodType{Veg, NonVeg, Seafood, TeaSnacks, CoolDrinks}

// ParseFoodType matches a category label case-insensitively.
func ParseFoodType(s string) (FoodType, error) {
	for _, ft := range FoodTypes {
		if strings.EqualFold(string(ft), strings.TrimSpace(s)) {
			return ft, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFoodType, s)
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// KeralaCentre is used when a contributor does not pin a location.
var KeralaCentre = Location{Lat: 10.8505, Lng: 76.2711}

type FoodSpot struct {
	ID          string     `json:"spotId"`
	Seq         int64      `json:"-"`
	ShareCode   string     `json:"shareCode,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Speciality  string     `json:"speciality"`
	FoodTypes   []FoodType `json:"foodTypes"`
	Location    Location   `json:"location"`
	District    string     `json:"district"`
	Area        string     `json:"area"`
	Address     string     `json:"address"`
	Images      []string   `json:"images"`
	AddedBy     string     `json:"addedBy"`
	IsApproved  bool       `json:"isApproved"`
	ViewsCount  int        `json:"viewsCount"`
	LikesCount  int        `json:"likesCount"`
	Rating      Rating     `json:"-"`
	AvgRating   float64    `json:"avgRating"`
	ReviewCount int        `json:"reviewCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	MapLink     *string    `json:"mapLink,omitempty"`
}

// SyncRating copies the rating aggregate into the published fields.
func (s *FoodSpot) SyncRating() {
	s.AvgRating = s.Rating.Average()
	s.ReviewCount = s.Rating.Count
}

// Clone returns a copy that shares no slices or pointers with s.
func (s *FoodSpot) Clone() *FoodSpot {
	c := *s
	c.FoodTypes = append([]FoodType{}, s.FoodTypes...)
	c.Images = append([]string{}, s.Images...)
	if s.MapLink != nil {
		link := *s.MapLink
		c.MapLink = &link
	}
	return &c
}

// HasFoodType reports whether the spot serves the given category.
func (s *FoodSpot) HasFoodType(ft FoodType) bool {
	for _, t := range s.FoodTypes {
		if t == ft {
			return true
		}
	}
	return false
}

// PlaceholderImage is stored when a spot is submitted without images.
func PlaceholderImage(speciality string) string {
	return "https://source.unsplash.com/featured/?kerala,food," + url.QueryEscape(speciality)
}

// Filter selects spots for the feed. Zero values disable a criterion.
type Filter struct {
	District     string
	FoodType     FoodType
	Search       string
	ApprovedOnly bool
	Limit        int
	Offset       int
}

// Matches applies every criterion except paging.
func (f Filter) Matches(s *FoodSpot) bool {
	if f.ApprovedOnly && !s.IsApproved {
		return false
	}
	if f.District != "" && s.District != f.District {
		return false
	}
	if f.FoodType != "" && !s.HasFoodType(f.FoodType) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Speciality), q) {
			return false
		}
	}
	return true
}

// SortNewest orders spots freshest first, breaking ties by insertion order.
func SortNewest(list []FoodSpot) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].Seq > list[j].Seq
	})
}

// Page slices list by offset and limit. A limit of zero returns the rest.
func Page(list []FoodSpot, offset, limit int) []FoodSpot {
	if offset >= len(list) {
		return []FoodSpot{}
	}
	if offset < 0 {
		offset = 0
	}
	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return list[offset:end]
}
