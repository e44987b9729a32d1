package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"ruchi/internal/domain/reviews"
	"ruchi/internal/domain/spots"
	"ruchi/internal/domain/users"
)

// memoryDB holds session-lifetime state behind one lock. Every exported
// operation is a single critical section, so multi-entity updates (a review
// touching spot and author) are atomic.
type memoryDB struct {
	mu  sync.RWMutex
	now func() time.Time

	users      map[string]*users.User
	emails     map[string]string
	pushTokens map[string][]string

	spots map[string]*spots.FoodSpot
	bySeq map[int64]string
	seq   int64

	reviews   []*reviews.Review
	favorites map[string][]string
	history   map[string][]string
}

// NewMemoryStorage returns a Storage whose state lives only for the life of
// the process.
func NewMemoryStorage() Storage {
	return newMemoryStorage(time.Now)
}

func newMemoryStorage(now func() time.Time) Storage {
	db := &memoryDB{
		now:        now,
		users:      make(map[string]*users.User),
		emails:     make(map[string]string),
		pushTokens: make(map[string][]string),
		spots:      make(map[string]*spots.FoodSpot),
		bySeq:      make(map[int64]string),
		favorites:  make(map[string][]string),
		history:    make(map[string][]string),
	}
	return Storage{
		Users:   &MemoryUsersStore{db},
		Spots:   &MemorySpotsStore{db},
		Reviews: &MemoryReviewsStore{db},
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type MemoryUsersStore struct {
	db *memoryDB
}

func (s *MemoryUsersStore) Create(ctx context.Context, user *users.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	key := emailKey(user.Email)
	if _, exists := s.db.emails[key]; exists {
		return fmt.Errorf("%w: %w", ErrConflict, users.ErrDuplicateEmail)
	}

	if user.ID == "" {
		user.ID = NewID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.db.now()
	}
	if user.SocialLinks == nil {
		user.SocialLinks = []users.SocialLink{}
	}
	user.GuideLevel = users.LevelFor(user.RuchiPoints)

	s.db.users[user.ID] = user.Clone()
	s.db.emails[key] = user.ID
	return nil
}

func (s *MemoryUsersStore) GetByID(ctx context.Context, id string) (*users.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	u, ok := s.db.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u.Clone(), nil
}

func (s *MemoryUsersStore) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	id, ok := s.db.emails[emailKey(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return s.db.users[id].Clone(), nil
}

func (s *MemoryUsersStore) UpdateProfile(ctx context.Context, id string, update users.ProfileUpdate) (*users.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	u, ok := s.db.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	update.Apply(u)
	return u.Clone(), nil
}

func (s *MemoryUsersStore) SavePushToken(ctx context.Context, userID, token string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.users[userID]; !ok {
		return ErrNotFound
	}
	for _, t := range s.db.pushTokens[userID] {
		if t == token {
			return nil
		}
	}
	s.db.pushTokens[userID] = append(s.db.pushTokens[userID], token)
	return nil
}

func (s *MemoryUsersStore) PushTokens(ctx context.Context, userID string) ([]string, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	return append([]string{}, s.db.pushTokens[userID]...), nil
}

type MemorySpotsStore struct {
	db *memoryDB
}

// Create stores a new pending spot and credits its contributor.
func (s *MemorySpotsStore) Create(ctx context.Context, spot *spots.FoodSpot) (*SpotResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	contributor, ok := s.db.users[spot.AddedBy]
	if !ok {
		return nil, fmt.Errorf("contributor %s: %w", spot.AddedBy, ErrNotFound)
	}

	s.db.seq++
	spot.ID = NewID()
	spot.Seq = s.db.seq
	spot.CreatedAt = s.db.now()
	spot.IsApproved = false
	spot.ViewsCount = 0
	spot.LikesCount = 0
	spot.Rating = spots.Rating{}
	spot.SyncRating()

	s.db.spots[spot.ID] = spot.Clone()
	s.db.bySeq[spot.Seq] = spot.ID

	contributor.TotalSpotsAdded++
	contributor.AddPoints(users.PointsAddSpot)

	return &SpotResult{Spot: spot.Clone(), Contributor: contributor.Clone()}, nil
}

func (s *MemorySpotsStore) GetByID(ctx context.Context, id string) (*spots.FoodSpot, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	spot, ok := s.db.spots[id]
	if !ok {
		return nil, ErrNotFound
	}
	return spot.Clone(), nil
}

func (s *MemorySpotsStore) GetBySeq(ctx context.Context, seq int64) (*spots.FoodSpot, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	id, ok := s.db.bySeq[seq]
	if !ok {
		return nil, ErrNotFound
	}
	return s.db.spots[id].Clone(), nil
}

// List returns one page of matching spots, newest first, and the total
// number of matches.
func (s *MemorySpotsStore) List(ctx context.Context, filter spots.Filter) ([]spots.FoodSpot, int, error) {
	s.db.mu.RLock()
	matched := make([]spots.FoodSpot, 0, len(s.db.spots))
	for _, spot := range s.db.spots {
		if filter.Matches(spot) {
			matched = append(matched, *spot.Clone())
		}
	}
	s.db.mu.RUnlock()

	spots.SortNewest(matched)
	return spots.Page(matched, filter.Offset, filter.Limit), len(matched), nil
}

func (s *MemorySpotsStore) ListPending(ctx context.Context) ([]spots.FoodSpot, error) {
	return s.collect(func(spot *spots.FoodSpot) bool { return !spot.IsApproved }), nil
}

func (s *MemorySpotsStore) ListByUser(ctx context.Context, userID string) ([]spots.FoodSpot, error) {
	return s.collect(func(spot *spots.FoodSpot) bool { return spot.AddedBy == userID }), nil
}

func (s *MemorySpotsStore) collect(keep func(*spots.FoodSpot) bool) []spots.FoodSpot {
	s.db.mu.RLock()
	out := []spots.FoodSpot{}
	for _, spot := range s.db.spots {
		if keep(spot) {
			out = append(out, *spot.Clone())
		}
	}
	s.db.mu.RUnlock()

	spots.SortNewest(out)
	return out
}

// RecordView counts a detail view and, for a known viewer, moves the spot to
// the front of their history.
func (s *MemorySpotsStore) RecordView(ctx context.Context, spotID, userID string) (*spots.FoodSpot, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	spot, ok := s.db.spots[spotID]
	if !ok {
		return nil, ErrNotFound
	}
	spot.ViewsCount++

	if userID != "" {
		s.db.history[userID] = pushRecent(s.db.history[userID], spotID, HistoryLimit)
	}
	return spot.Clone(), nil
}

func pushRecent(list []string, id string, limit int) []string {
	out := make([]string, 0, limit)
	out = append(out, id)
	for _, existing := range list {
		if existing == id {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, existing)
	}
	return out
}

// Approve marks a pending spot approved and credits its contributor. A
// second approval changes nothing and awards nothing.
func (s *MemorySpotsStore) Approve(ctx context.Context, spotID string) (*SpotResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	spot, ok := s.db.spots[spotID]
	if !ok {
		return nil, ErrNotFound
	}

	res := &SpotResult{}
	contributor, hasContributor := s.db.users[spot.AddedBy]

	if spot.IsApproved {
		res.AlreadyApproved = true
	} else {
		spot.IsApproved = true
		if hasContributor {
			contributor.AddPoints(users.PointsSpotApproved)
		}
	}

	res.Spot = spot.Clone()
	if hasContributor {
		res.Contributor = contributor.Clone()
	}
	return res, nil
}

// Delete removes a spot. Reviews that reference it are kept.
func (s *MemorySpotsStore) Delete(ctx context.Context, spotID string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	spot, ok := s.db.spots[spotID]
	if !ok {
		return ErrNotFound
	}
	delete(s.db.bySeq, spot.Seq)
	delete(s.db.spots, spotID)
	return nil
}

func (s *MemorySpotsStore) ToggleFavorite(ctx context.Context, userID, spotID string) (*FavoriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	spot, ok := s.db.spots[spotID]
	if !ok {
		return nil, ErrNotFound
	}

	favs := s.db.favorites[userID]
	for i, id := range favs {
		if id == spotID {
			s.db.favorites[userID] = append(favs[:i:i], favs[i+1:]...)
			if spot.LikesCount > 0 {
				spot.LikesCount--
			}
			return &FavoriteResult{Favorite: false, Spot: spot.Clone()}, nil
		}
	}

	s.db.favorites[userID] = append(favs, spotID)
	spot.LikesCount++
	return &FavoriteResult{Favorite: true, Spot: spot.Clone()}, nil
}

func (s *MemorySpotsStore) Favorites(ctx context.Context, userID string) ([]spots.FoodSpot, error) {
	return s.resolve(s.db.favorites, userID), nil
}

func (s *MemorySpotsStore) History(ctx context.Context, userID string) ([]spots.FoodSpot, error) {
	return s.resolve(s.db.history, userID), nil
}

// resolve maps stored ids to spots, skipping any that were deleted.
func (s *MemorySpotsStore) resolve(index map[string][]string, userID string) []spots.FoodSpot {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := []spots.FoodSpot{}
	for _, id := range index[userID] {
		if spot, ok := s.db.spots[id]; ok {
			out = append(out, *spot.Clone())
		}
	}
	return out
}

type MemoryReviewsStore struct {
	db *memoryDB
}

// Add stores a review, folds its rating into the spot average and credits
// the author.
func (s *MemoryReviewsStore) Add(ctx context.Context, review *reviews.Review) (*ReviewResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	spot, ok := s.db.spots[review.SpotID]
	if !ok {
		return nil, fmt.Errorf("spot %s: %w", review.SpotID, ErrNotFound)
	}
	author, ok := s.db.users[review.UserID]
	if !ok {
		return nil, fmt.Errorf("author %s: %w", review.UserID, ErrNotFound)
	}

	rating := spot.Rating
	if err := rating.Add(review.Rating); err != nil {
		return nil, err
	}
	spot.Rating = rating
	spot.SyncRating()

	review.ID = NewID()
	review.UserName = author.Name
	review.UserImage = author.ProfileImage
	review.CreatedAt = s.db.now()

	stored := *review
	s.db.reviews = append(s.db.reviews, &stored)

	author.TotalReviews++
	author.AddPoints(users.PointsAddReview)

	out := *review
	return &ReviewResult{Review: &out, Spot: spot.Clone(), Author: author.Clone()}, nil
}

// ListBySpot never fails for an unknown spot; it returns an empty list.
func (s *MemoryReviewsStore) ListBySpot(ctx context.Context, spotID string) ([]reviews.Review, error) {
	return s.collect(func(r *reviews.Review) bool { return r.SpotID == spotID }), nil
}

func (s *MemoryReviewsStore) ListByUser(ctx context.Context, userID string) ([]reviews.Review, error) {
	return s.collect(func(r *reviews.Review) bool { return r.UserID == userID }), nil
}

func (s *MemoryReviewsStore) collect(keep func(*reviews.Review) bool) []reviews.Review {
	s.db.mu.RLock()
	out := []reviews.Review{}
	for i := len(s.db.reviews) - 1; i >= 0; i-- {
		if r := s.db.reviews[i]; keep(r) {
			out = append(out, *r)
		}
	}
	s.db.mu.RUnlock()

	reviews.SortNewest(out)
	return out
}
