package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"ruchi/internal/domain/reviews"
	"ruchi/internal/domain/spots"
	"ruchi/internal/domain/users"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

// Migrate creates the tables used by the Postgres storage if missing.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func NewPostgresStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Users:   &UsersStore{db},
		Spots:   &SpotsStore{db},
		Reviews: &ReviewStore{db},
	}
}

type txStarter interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// withTx runs fn in a transaction that is committed only if fn succeeds.
// fn receives the timeout-bound context and must use it for its statements.
func withTx(ctx context.Context, db txStarter, fn func(context.Context, pgx.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

const userColumns = `id, name, email, password, profile_image, ruchi_points,
	total_reviews, total_spots_added, is_admin, social_links, created_at`

func scanUser(row pgx.Row) (*users.User, error) {
	var (
		u     users.User
		hash  []byte
		links []byte
	)
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&hash,
		&u.ProfileImage,
		&u.RuchiPoints,
		&u.TotalReviews,
		&u.TotalSpotsAdded,
		&u.IsAdmin,
		&links,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}

	u.Password.SetHash(hash)
	u.GuideLevel = users.LevelFor(u.RuchiPoints)
	u.SocialLinks = []users.SocialLink{}
	if len(links) > 0 {
		if err := json.Unmarshal(links, &u.SocialLinks); err != nil {
			return nil, fmt.Errorf("decode social links: %w", err)
		}
	}
	return &u, nil
}

func spotColumns(prefix string) string {
	cols := []string{
		"id", "seq", "name", "description", "speciality", "food_types",
		"lat", "lng", "district", "area", "address", "images", "added_by",
		"is_approved", "views_count", "likes_count", "review_count",
		"rating_sum", "map_link", "created_at",
	}
	if prefix != "" {
		for i, c := range cols {
			cols[i] = prefix + "." + c
		}
	}
	return strings.Join(cols, ", ")
}

func scanSpot(row pgx.Row) (*spots.FoodSpot, error) {
	var (
		s         spots.FoodSpot
		foodTypes []string
	)
	err := row.Scan(
		&s.ID,
		&s.Seq,
		&s.Name,
		&s.Description,
		&s.Speciality,
		&foodTypes,
		&s.Location.Lat,
		&s.Location.Lng,
		&s.District,
		&s.Area,
		&s.Address,
		&s.Images,
		&s.AddedBy,
		&s.IsApproved,
		&s.ViewsCount,
		&s.LikesCount,
		&s.Rating.Count,
		&s.Rating.Sum,
		&s.MapLink,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}

	s.FoodTypes = make([]spots.FoodType, len(foodTypes))
	for i, ft := range foodTypes {
		s.FoodTypes[i] = spots.FoodType(ft)
	}
	if s.Images == nil {
		s.Images = []string{}
	}
	s.SyncRating()
	return &s, nil
}

func collectSpots(rows pgx.Rows) ([]spots.FoodSpot, error) {
	defer rows.Close()

	out := []spots.FoodSpot{}
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

type UsersStore struct {
	db *pgxpool.Pool
}

func (s *UsersStore) Create(ctx context.Context, user *users.User) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if user.ID == "" {
		user.ID = NewID()
	}
	if user.SocialLinks == nil {
		user.SocialLinks = []users.SocialLink{}
	}
	links, err := json.Marshal(user.SocialLinks)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, name, email, password, profile_image, ruchi_points,
			total_reviews, total_spots_added, is_admin, social_links)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	err = s.db.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Password.Hash(),
		user.ProfileImage,
		user.RuchiPoints,
		user.TotalReviews,
		user.TotalSpotsAdded,
		user.IsAdmin,
		string(links),
	).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %w", ErrConflict, users.ErrDuplicateEmail)
		}
		return err
	}

	user.GuideLevel = users.LevelFor(user.RuchiPoints)
	return nil
}

func (s *UsersStore) GetByID(ctx context.Context, id string) (*users.User, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(s.db.QueryRow(ctx, query, id))
}

func (s *UsersStore) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return scanUser(s.db.QueryRow(ctx, query, strings.TrimSpace(email)))
}

func (s *UsersStore) UpdateProfile(ctx context.Context, id string, update users.ProfileUpdate) (*users.User, error) {
	var out *users.User
	err := withTx(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		u, err := scanUser(tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return err
		}
		update.Apply(u)

		links, err := json.Marshal(u.SocialLinks)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`UPDATE users SET name = $2, profile_image = $3, social_links = $4 WHERE id = $1`,
			u.ID, u.Name, u.ProfileImage, string(links))
		if err != nil {
			return err
		}
		out = u
		return nil
	})
	return out, err
}

func (s *UsersStore) SavePushToken(ctx context.Context, userID, token string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	q := `
	INSERT INTO push_tokens (user_id, expo_push_token, last_updated)
	SELECT id, $2, NOW() FROM users WHERE id = $1
	ON CONFLICT (user_id, expo_push_token)
	DO UPDATE SET last_updated = NOW()`

	tag, err := s.db.Exec(ctx, q, userID, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UsersStore) PushTokens(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx,
		`SELECT expo_push_token FROM push_tokens WHERE user_id = $1 ORDER BY last_updated DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

type SpotsStore struct {
	db *pgxpool.Pool
}

func (s *SpotsStore) Create(ctx context.Context, spot *spots.FoodSpot) (*SpotResult, error) {
	res := &SpotResult{}
	err := withTx(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		foodTypes := make([]string, len(spot.FoodTypes))
		for i, ft := range spot.FoodTypes {
			foodTypes[i] = string(ft)
		}
		if spot.Images == nil {
			spot.Images = []string{}
		}

		id := NewID()
		query := `
			INSERT INTO spots (id, name, description, speciality, food_types, lat, lng,
				district, area, address, images, added_by, map_link)
			SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
			WHERE EXISTS (SELECT 1 FROM users WHERE id = $12)
			RETURNING ` + spotColumns("")

		created, err := scanSpot(tx.QueryRow(ctx, query,
			id,
			spot.Name,
			spot.Description,
			spot.Speciality,
			foodTypes,
			spot.Location.Lat,
			spot.Location.Lng,
			spot.District,
			spot.Area,
			spot.Address,
			spot.Images,
			spot.AddedBy,
			spot.MapLink,
		))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("contributor %s: %w", spot.AddedBy, ErrNotFound)
			}
			return err
		}

		contributor, err := scanUser(tx.QueryRow(ctx, `
			UPDATE users
			SET total_spots_added = total_spots_added + 1, ruchi_points = ruchi_points + $2
			WHERE id = $1
			RETURNING `+userColumns, spot.AddedBy, users.PointsAddSpot))
		if err != nil {
			return err
		}

		*spot = *created.Clone()
		res.Spot = created
		res.Contributor = contributor
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *SpotsStore) GetByID(ctx context.Context, id string) (*spots.FoodSpot, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return scanSpot(s.db.QueryRow(ctx, `SELECT `+spotColumns("")+` FROM spots WHERE id = $1`, id))
}

func (s *SpotsStore) GetBySeq(ctx context.Context, seq int64) (*spots.FoodSpot, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return scanSpot(s.db.QueryRow(ctx, `SELECT `+spotColumns("")+` FROM spots WHERE seq = $1`, seq))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type spotListQuery struct {
	count     string
	countArgs []any
	page      string
	pageArgs  []any
}

// buildSpotListQuery turns a feed filter into the total count query and the
// paged select. Both share the same WHERE clause and placeholders.
func buildSpotListQuery(filter spots.Filter) spotListQuery {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ApprovedOnly {
		conds = append(conds, "is_approved")
	}
	if filter.District != "" {
		conds = append(conds, "district = "+arg(filter.District))
	}
	if filter.FoodType != "" {
		conds = append(conds, arg(string(filter.FoodType))+" = ANY(food_types)")
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		p := arg("%" + likeEscaper.Replace(q) + "%")
		conds = append(conds, "(name ILIKE "+p+" OR speciality ILIKE "+p+")")
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	q := spotListQuery{
		count:     `SELECT COUNT(*) FROM spots` + where,
		countArgs: slices.Clone(args),
	}

	page := `SELECT ` + spotColumns("") + ` FROM spots` + where + ` ORDER BY created_at DESC, seq DESC`
	if filter.Limit > 0 {
		page += " LIMIT " + arg(filter.Limit)
	}
	if filter.Offset > 0 {
		page += " OFFSET " + arg(filter.Offset)
	}
	q.page, q.pageArgs = page, args
	return q
}

func (s *SpotsStore) List(ctx context.Context, filter spots.Filter) ([]spots.FoodSpot, int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	q := buildSpotListQuery(filter)

	var total int
	if err := s.db.QueryRow(ctx, q.count, q.countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(ctx, q.page, q.pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	list, err := collectSpots(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *SpotsStore) ListPending(ctx context.Context) ([]spots.FoodSpot, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, `SELECT `+spotColumns("")+` FROM spots WHERE NOT is_approved ORDER BY created_at DESC, seq DESC`)
	if err != nil {
		return nil, err
	}
	return collectSpots(rows)
}

func (s *SpotsStore) ListByUser(ctx context.Context, userID string) ([]spots.FoodSpot, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, `SELECT `+spotColumns("")+` FROM spots WHERE added_by = $1 ORDER BY created_at DESC, seq DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collectSpots(rows)
}

func (s *SpotsStore) RecordView(ctx context.Context, spotID, userID string) (*spots.FoodSpot, error) {
	var out *spots.FoodSpot
	err := withTx(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		spot, err := scanSpot(tx.QueryRow(ctx,
			`UPDATE spots SET views_count = views_count + 1 WHERE id = $1 RETURNING `+spotColumns(""), spotID))
		if err != nil {
			return err
		}
		out = spot

		if userID == "" {
			return nil
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO view_history (user_id, spot_id, viewed_at)
			VALUES ($1, $2, clock_timestamp())
			ON CONFLICT (user_id, spot_id) DO UPDATE SET viewed_at = EXCLUDED.viewed_at`,
			userID, spotID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			DELETE FROM view_history
			WHERE user_id = $1 AND spot_id NOT IN (
				SELECT spot_id FROM view_history WHERE user_id = $1
				ORDER BY viewed_at DESC LIMIT $2
			)`, userID, HistoryLimit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SpotsStore) Approve(ctx context.Context, spotID string) (*SpotResult, error) {
	res := &SpotResult{}
	err := withTx(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		spot, err := scanSpot(tx.QueryRow(ctx,
			`SELECT `+spotColumns("")+` FROM spots WHERE id = $1 FOR UPDATE`, spotID))
		if err != nil {
			return err
		}

		var contributorQuery string
		var args []any
		if spot.IsApproved {
			res.AlreadyApproved = true
			contributorQuery = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
			args = []any{spot.AddedBy}
		} else {
			if _, err := tx.Exec(ctx, `UPDATE spots SET is_approved = TRUE WHERE id = $1`, spotID); err != nil {
				return err
			}
			spot.IsApproved = true
			contributorQuery = `UPDATE users SET ruchi_points = ruchi_points + $2 WHERE id = $1 RETURNING ` + userColumns
			args = []any{spot.AddedBy, users.PointsSpotApproved}
		}
		res.Spot = spot

		contributor, err := scanUser(tx.QueryRow(ctx, contributorQuery, args...))
		switch {
		case errors.Is(err, ErrNotFound):
			// addedBy is a weak reference; the spot still gets approved.
		case err != nil:
			return err
		default:
			res.Contributor = contributor
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *SpotsStore) Delete(ctx context.Context, spotID string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := s.db.Exec(ctx, `DELETE FROM spots WHERE id = $1`, spotID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SpotsStore) ToggleFavorite(ctx context.Context, userID, spotID string) (*FavoriteResult, error) {
	res := &FavoriteResult{}
	err := withTx(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := scanSpot(tx.QueryRow(ctx,
			`SELECT `+spotColumns("")+` FROM spots WHERE id = $1 FOR UPDATE`, spotID)); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND spot_id = $2`, userID, spotID)
		if err != nil {
			return err
		}

		update := `UPDATE spots SET likes_count = GREATEST(likes_count - 1, 0) WHERE id = $1 RETURNING `
		if tag.RowsAffected() == 0 {
			if _, err := tx.Exec(ctx,
				`INSERT INTO favorites (user_id, spot_id) VALUES ($1, $2)`, userID, spotID); err != nil {
				return err
			}
			res.Favorite = true
			update = `UPDATE spots SET likes_count = likes_count + 1 WHERE id = $1 RETURNING `
		}

		spot, err := scanSpot(tx.QueryRow(ctx, update+spotColumns(""), spotID))
		if err != nil {
			return err
		}
		res.Spot = spot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *SpotsStore) Favorites(ctx context.Context, userID string) ([]spots.FoodSpot, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, `
		SELECT `+spotColumns("s")+`
		FROM favorites f
		JOIN spots s ON s.id = f.spot_id
		WHERE f.user_id = $1
		ORDER BY f.created_at`, userID)
	if err != nil {
		return nil, err
	}
	return collectSpots(rows)
}

func (s *SpotsStore) History(ctx context.Context, userID string) ([]spots.FoodSpot, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, `
		SELECT `+spotColumns("s")+`
		FROM view_history h
		JOIN spots s ON s.id = h.spot_id
		WHERE h.user_id = $1
		ORDER BY h.viewed_at DESC
		LIMIT $2`, userID, HistoryLimit)
	if err != nil {
		return nil, err
	}
	return collectSpots(rows)
}

type ReviewStore struct {
	db *pgxpool.Pool
}

const reviewColumns = `id, spot_id, user_id, user_name, user_image, rating, comment, created_at`

func (s *ReviewStore) Add(ctx context.Context, review *reviews.Review) (*ReviewResult, error) {
	if review.Rating < spots.MinRating || review.Rating > spots.MaxRating {
		return nil, spots.ErrInvalidRating
	}

	res := &ReviewResult{}
	err := withTx(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := scanSpot(tx.QueryRow(ctx,
			`SELECT `+spotColumns("")+` FROM spots WHERE id = $1 FOR UPDATE`, review.SpotID)); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("spot %s: %w", review.SpotID, ErrNotFound)
			}
			return err
		}

		author, err := scanUser(tx.QueryRow(ctx, `
			UPDATE users
			SET total_reviews = total_reviews + 1, ruchi_points = ruchi_points + $2
			WHERE id = $1
			RETURNING `+userColumns, review.UserID, users.PointsAddReview))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("author %s: %w", review.UserID, ErrNotFound)
			}
			return err
		}

		review.ID = NewID()
		review.UserName = author.Name
		review.UserImage = author.ProfileImage
		err = tx.QueryRow(ctx, `
			INSERT INTO reviews (id, spot_id, user_id, user_name, user_image, rating, comment)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at`,
			review.ID,
			review.SpotID,
			review.UserID,
			review.UserName,
			review.UserImage,
			review.Rating,
			review.Comment,
		).Scan(&review.CreatedAt)
		if err != nil {
			return err
		}

		spot, err := scanSpot(tx.QueryRow(ctx, `
			UPDATE spots
			SET review_count = review_count + 1, rating_sum = rating_sum + $2
			WHERE id = $1
			RETURNING `+spotColumns(""), review.SpotID, review.Rating))
		if err != nil {
			return err
		}

		out := *review
		res.Review = &out
		res.Spot = spot
		res.Author = author
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReviewStore) ListBySpot(ctx context.Context, spotID string) ([]reviews.Review, error) {
	return s.list(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE spot_id = $1 ORDER BY created_at DESC`, spotID)
}

func (s *ReviewStore) ListByUser(ctx context.Context, userID string) ([]reviews.Review, error) {
	return s.list(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (s *ReviewStore) list(ctx context.Context, query string, id string) ([]reviews.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []reviews.Review{}
	for rows.Next() {
		var r reviews.Review
		err := rows.Scan(
			&r.ID,
			&r.SpotID,
			&r.UserID,
			&r.UserName,
			&r.UserImage,
			&r.Rating,
			&r.Comment,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
