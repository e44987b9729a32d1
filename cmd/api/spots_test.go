package main

import (
	"context"
	"net/http"
	"testing"

	"ruchi/internal/domain/spots"
	"ruchi/internal/domain/users"
	"ruchi/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotLifecycle(t *testing.T) {
	app := newTestApplication(t, config{})
	mux := app.mount()

	contributor := signUp(t, mux, "Anu", "anu@example.com")
	admin := signUp(t, mux, "Admin", testAdminEmail)
	reviewer := signUp(t, mux, "Biju", "biju@example.com")

	// submit
	rr := doJSON(t, mux, http.MethodPost, "/v1/spots", contributor.AccessToken, validSpot())
	checkResponseCode(t, http.StatusCreated, rr)
	created := decodeData[store.SpotResult](t, rr)
	spotID := created.Spot.ID

	assert.False(t, created.Spot.IsApproved)
	assert.NotEmpty(t, created.Spot.ShareCode)
	assert.Equal(t, spots.KeralaCentre, created.Spot.Location)
	require.Len(t, created.Spot.Images, 1)
	assert.Contains(t, created.Spot.Images[0], "Beef+Biryani")
	assert.Equal(t, users.PointsAddSpot, created.Contributor.RuchiPoints)
	assert.Equal(t, 1, created.Contributor.TotalSpotsAdded)

	// pending spots stay out of the feed and are hidden from strangers
	rr = doJSON(t, mux, http.MethodGet, "/v1/spots", "", nil)
	checkResponseCode(t, http.StatusOK, rr)
	assert.Empty(t, decodeData[SpotListResponse](t, rr).Spots)

	rr = doJSON(t, mux, http.MethodGet, "/v1/spots/"+spotID, "", nil)
	checkResponseCode(t, http.StatusNotFound, rr)

	rr = doJSON(t, mux, http.MethodGet, "/v1/spots/"+spotID, contributor.AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)

	// moderation
	rr = doJSON(t, mux, http.MethodGet, "/v1/admin/spots/pending", contributor.AccessToken, nil)
	checkResponseCode(t, http.StatusForbidden, rr)

	rr = doJSON(t, mux, http.MethodGet, "/v1/admin/spots/pending", admin.AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)
	assert.Len(t, decodeData[[]spots.FoodSpot](t, rr), 1)

	rr = doJSON(t, mux, http.MethodPost, "/v1/admin/spots/"+spotID+"/approve", admin.AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)
	approved := decodeData[store.SpotResult](t, rr)
	assert.True(t, approved.Spot.IsApproved)
	assert.False(t, approved.AlreadyApproved)
	assert.Equal(t, users.PointsAddSpot+users.PointsSpotApproved, approved.Contributor.RuchiPoints)

	rr = doJSON(t, mux, http.MethodPost, "/v1/admin/spots/"+spotID+"/approve", admin.AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)
	again := decodeData[store.SpotResult](t, rr)
	assert.True(t, again.AlreadyApproved)
	assert.Equal(t, users.PointsAddSpot+users.PointsSpotApproved, again.Contributor.RuchiPoints)

	// public now
	rr = doJSON(t, mux, http.MethodGet, "/v1/spots", "", nil)
	checkResponseCode(t, http.StatusOK, rr)
	feed := decodeData[SpotListResponse](t, rr)
	require.Len(t, feed.Spots, 1)
	assert.Equal(t, 1, feed.Pagination.Total)

	rr = doJSON(t, mux, http.MethodGet, "/v1/s/"+feed.Spots[0].ShareCode, "", nil)
	checkResponseCode(t, http.StatusOK, rr)
	assert.Equal(t, spotID, decodeData[spots.FoodSpot](t, rr).ID)

	// reviews
	for _, rating := range []int{4, 5} {
		rr = doJSON(t, mux, http.MethodPost, "/v1/spots/"+spotID+"/reviews", reviewer.AccessToken, map[string]any{
			"rating": rating, "comment": "Superb biryani",
		})
		checkResponseCode(t, http.StatusCreated, rr)
	}
	added := decodeData[store.ReviewResult](t, rr)
	assert.Equal(t, 4.5, added.Spot.AvgRating)
	assert.Equal(t, 2, added.Spot.ReviewCount)
	assert.Equal(t, 2*users.PointsAddReview, added.Author.RuchiPoints)
	assert.Equal(t, "Biju", added.Review.UserName)

	// detail counts views and fills history
	rr = doJSON(t, mux, http.MethodGet, "/v1/spots/"+spotID, reviewer.AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)
	detail := decodeData[SpotDetailResponse](t, rr)
	assert.Len(t, detail.Reviews, 2)
	assert.False(t, detail.IsFavorite)
	assert.Equal(t, 2, detail.Spot.ViewsCount)

	rr = doJSON(t, mux, http.MethodGet, "/v1/users/me/history", reviewer.AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)
	assert.Len(t, decodeData[[]spots.FoodSpot](t, rr), 1)

	// favorites toggle
	rr = doJSON(t, mux, http.MethodPut, "/v1/spots/"+spotID+"/favorite", reviewer.AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)
	fav := decodeData[FavoriteResponse](t, rr)
	assert.True(t, fav.Favorite)
	assert.Equal(t, 1, fav.LikesCount)

	rr = doJSON(t, mux, http.MethodGet, "/v1/users/me/favorites", reviewer.AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)
	assert.Len(t, decodeData[[]spots.FoodSpot](t, rr), 1)

	rr = doJSON(t, mux, http.MethodPut, "/v1/spots/"+spotID+"/favorite", reviewer.AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)
	fav = decodeData[FavoriteResponse](t, rr)
	assert.False(t, fav.Favorite)
	assert.Equal(t, 0, fav.LikesCount)

	// delete keeps reviews reachable
	rr = doJSON(t, mux, http.MethodDelete, "/v1/admin/spots/"+spotID, admin.AccessToken, nil)
	checkResponseCode(t, http.StatusNoContent, rr)

	rr = doJSON(t, mux, http.MethodGet, "/v1/spots/"+spotID, reviewer.AccessToken, nil)
	checkResponseCode(t, http.StatusNotFound, rr)

	rr = doJSON(t, mux, http.MethodGet, "/v1/spots/"+spotID+"/reviews", "", nil)
	checkResponseCode(t, http.StatusOK, rr)
	assert.Len(t, decodeData[ReviewListResponse](t, rr).Reviews, 2)

	rr = doJSON(t, mux, http.MethodGet, "/v1/users/me", reviewer.AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)
	profile := decodeData[ProfileResponse](t, rr)
	assert.Len(t, profile.Reviews, 2)
	assert.Equal(t, 2, profile.User.TotalReviews)

	rr = doJSON(t, mux, http.MethodDelete, "/v1/admin/spots/"+spotID, admin.AccessToken, nil)
	checkResponseCode(t, http.StatusNotFound, rr)
}

func TestCreateSpotValidation(t *testing.T) {
	app := newTestApplication(t, config{})
	mux := app.mount()
	user := signUp(t, mux, "Anu", "anu@example.com")

	cases := map[string]func(p map[string]any){
		"blank name":        func(p map[string]any) { p["name"] = "   " },
		"missing area":      func(p map[string]any) { delete(p, "area") },
		"no food types":     func(p map[string]any) { p["foodTypes"] = []string{} },
		"unknown food type": func(p map[string]any) { p["foodTypes"] = []string{"Desserts"} },
		"unknown district":  func(p map[string]any) { p["district"] = "Atlantis" },
		"bad latitude":      func(p map[string]any) { p["location"] = map[string]float64{"lat": 123, "lng": 76} },
		"unknown field":     func(p map[string]any) { p["rating"] = 5 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := validSpot()
			mutate(p)
			rr := doJSON(t, mux, http.MethodPost, "/v1/spots", user.AccessToken, p)
			checkResponseCode(t, http.StatusBadRequest, rr)
		})
	}

	// nothing was stored and no points were handed out
	rr := doJSON(t, mux, http.MethodGet, "/v1/users/me", user.AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)
	profile := decodeData[ProfileResponse](t, rr)
	assert.Equal(t, 0, profile.User.RuchiPoints)
	assert.Empty(t, profile.Spots)
}

func TestReviewValidation(t *testing.T) {
	app := newTestApplication(t, config{})
	mux := app.mount()
	user := signUp(t, mux, "Anu", "anu@example.com")

	rr := doJSON(t, mux, http.MethodPost, "/v1/spots", user.AccessToken, validSpot())
	checkResponseCode(t, http.StatusCreated, rr)
	spotID := decodeData[store.SpotResult](t, rr).Spot.ID

	for _, body := range []map[string]any{
		{"rating": 0, "comment": "ok"},
		{"rating": 6, "comment": "ok"},
		{"rating": 3, "comment": "   "},
	} {
		rr = doJSON(t, mux, http.MethodPost, "/v1/spots/"+spotID+"/reviews", user.AccessToken, body)
		checkResponseCode(t, http.StatusBadRequest, rr)
	}

	rr = doJSON(t, mux, http.MethodPost, "/v1/spots/missing/reviews", user.AccessToken, map[string]any{
		"rating": 5, "comment": "ok",
	})
	checkResponseCode(t, http.StatusNotFound, rr)
}

func TestFeedFilters(t *testing.T) {
	app := newTestApplication(t, config{})
	mux := app.mount()
	ctx := context.Background()

	owner := &users.User{Name: "Owner", Email: "owner@example.com"}
	require.NoError(t, app.store.Users.Create(ctx, owner))

	seed := []spots.FoodSpot{
		{Name: "Paragon", Speciality: "Fish Curry", FoodTypes: []spots.FoodType{spots.Seafood, spots.NonVeg}, District: "Kozhikode"},
		{Name: "Villa Maya", Speciality: "Karimeen Pollichathu", FoodTypes: []spots.FoodType{spots.Seafood}, District: "Thiruvananthapuram"},
		{Name: "Brahmins Cafe", Speciality: "Masala Dosa", FoodTypes: []spots.FoodType{spots.Veg}, District: "Ernakulam"},
		{Name: "Pending Place", Speciality: "Dosa", FoodTypes: []spots.FoodType{spots.Veg}, District: "Ernakulam"},
	}
	for i := range seed {
		seed[i].AddedBy = owner.ID
		res, err := app.store.Spots.Create(ctx, &seed[i])
		require.NoError(t, err)
		if seed[i].Name != "Pending Place" {
			_, err = app.store.Spots.Approve(ctx, res.Spot.ID)
			require.NoError(t, err)
		}
	}

	cases := []struct {
		query string
		want  []string
	}{
		{"", []string{"Brahmins Cafe", "Villa Maya", "Paragon"}},
		{"?district=All&category=All", []string{"Brahmins Cafe", "Villa Maya", "Paragon"}},
		{"?district=Kozhikode", []string{"Paragon"}},
		{"?category=seafood", []string{"Villa Maya", "Paragon"}},
		{"?q=DOSA", []string{"Brahmins Cafe"}},
		{"?q=maya&category=Seafood", []string{"Villa Maya"}},
		{"?limit=2&page=2", []string{"Paragon"}},
	}

	for _, c := range cases {
		rr := doJSON(t, mux, http.MethodGet, "/v1/spots"+c.query, "", nil)
		checkResponseCode(t, http.StatusOK, rr)

		var names []string
		for _, s := range decodeData[SpotListResponse](t, rr).Spots {
			names = append(names, s.Name)
		}
		assert.Equal(t, c.want, names, c.query)
	}

	rr := doJSON(t, mux, http.MethodGet, "/v1/spots?category=Desserts", "", nil)
	checkResponseCode(t, http.StatusBadRequest, rr)

	rr = doJSON(t, mux, http.MethodGet, "/v1/spots?district=Goa", "", nil)
	checkResponseCode(t, http.StatusBadRequest, rr)
}

func TestShareLinkRejectsUnknownCodes(t *testing.T) {
	app := newTestApplication(t, config{})
	mux := app.mount()

	rr := doJSON(t, mux, http.MethodGet, "/v1/s/zzzzzz", "", nil)
	checkResponseCode(t, http.StatusNotFound, rr)

	code, err := app.shareCodes.Encode(42)
	require.NoError(t, err)
	rr = doJSON(t, mux, http.MethodGet, "/v1/s/"+code, "", nil)
	checkResponseCode(t, http.StatusNotFound, rr)
}

func TestProfileUpdate(t *testing.T) {
	app := newTestApplication(t, config{})
	mux := app.mount()
	user := signUp(t, mux, "Anu", "anu@example.com")

	rr := doJSON(t, mux, http.MethodPatch, "/v1/users/me", user.AccessToken, map[string]any{
		"name": "Anu Menon",
		"socialLinks": []map[string]string{
			{"platform": "Instagram", "url": "https://instagram.com/anu"},
		},
	})
	checkResponseCode(t, http.StatusOK, rr)
	updated := decodeData[users.User](t, rr)
	assert.Equal(t, "Anu Menon", updated.Name)
	require.Len(t, updated.SocialLinks, 1)
	assert.Equal(t, users.Instagram, updated.SocialLinks[0].Platform)

	rr = doJSON(t, mux, http.MethodPatch, "/v1/users/me", user.AccessToken, map[string]any{
		"socialLinks": []map[string]string{{"platform": "MySpace", "url": "https://myspace.com/anu"}},
	})
	checkResponseCode(t, http.StatusBadRequest, rr)

	rr = doJSON(t, mux, http.MethodPatch, "/v1/users/me", user.AccessToken, map[string]any{"name": "  "})
	checkResponseCode(t, http.StatusBadRequest, rr)

	rr = doJSON(t, mux, http.MethodGet, "/v1/users/me", user.AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)
	profile := decodeData[ProfileResponse](t, rr)
	assert.Equal(t, "Anu Menon", profile.User.Name)
	assert.Equal(t, users.NewExplorer, profile.Progress.Level)
	assert.Equal(t, 100, profile.Progress.PointsToNext)

	rr = doJSON(t, mux, http.MethodPut, "/v1/users/me/push-token", user.AccessToken, map[string]string{
		"token": "ExponentPushToken[abc]",
	})
	checkResponseCode(t, http.StatusNoContent, rr)

	tokens, err := app.store.Users.PushTokens(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, []string{"ExponentPushToken[abc]"}, tokens)
}

func TestListsAreNeverNull(t *testing.T) {
	app := newTestApplication(t, config{})
	mux := app.mount()

	rr := doJSON(t, mux, http.MethodGet, "/v1/spots/unknown/reviews", "", nil)
	checkResponseCode(t, http.StatusOK, rr)
	assert.JSONEq(t, `{"data":{"reviews":[],"total_reviews":0}}`, rr.Body.String())

	rr = doJSON(t, mux, http.MethodGet, "/v1/users/me/favorites", signUp(t, mux, "Anu", "anu@example.com").AccessToken, nil)
	checkResponseCode(t, http.StatusOK, rr)
	assert.JSONEq(t, `{"data":[]}`, rr.Body.String())
}

func TestPendingSpotHiddenFromOthers(t *testing.T) {
	app := newTestApplication(t, config{})
	mux := app.mount()
	ctx := context.Background()

	owner := signUp(t, mux, "Anu", "anu@example.com")
	admin := signUp(t, mux, "Admin", testAdminEmail)
	stranger := signUp(t, mux, "Biju", "biju@example.com")

	rr := doJSON(t, mux, http.MethodPost, "/v1/spots", owner.AccessToken, validSpot())
	checkResponseCode(t, http.StatusCreated, rr)
	spotID := decodeData[store.SpotResult](t, rr).Spot.ID
	review := map[string]any{"rating": 5, "comment": "Superb biryani"}

	t.Run("strangers get 404 on every route", func(t *testing.T) {
		for _, tc := range []struct {
			method, path, token string
			body                any
		}{
			{http.MethodGet, "/v1/spots/" + spotID, stranger.AccessToken, nil},
			{http.MethodGet, "/v1/spots/" + spotID + "/reviews", "", nil},
			{http.MethodGet, "/v1/spots/" + spotID + "/reviews", stranger.AccessToken, nil},
			{http.MethodPost, "/v1/spots/" + spotID + "/reviews", stranger.AccessToken, review},
			{http.MethodPut, "/v1/spots/" + spotID + "/favorite", stranger.AccessToken, nil},
		} {
			rr := doJSON(t, mux, tc.method, tc.path, tc.token, tc.body)
			checkResponseCode(t, http.StatusNotFound, rr)
		}

		rr := doJSON(t, mux, http.MethodGet, "/v1/users/me", stranger.AccessToken, nil)
		checkResponseCode(t, http.StatusOK, rr)
		assert.Equal(t, 0, decodeData[ProfileResponse](t, rr).User.RuchiPoints)
	})

	t.Run("contributor and admin still reach it", func(t *testing.T) {
		for _, token := range []string{owner.AccessToken, admin.AccessToken} {
			rr := doJSON(t, mux, http.MethodGet, "/v1/spots/"+spotID+"/reviews", token, nil)
			checkResponseCode(t, http.StatusOK, rr)
		}

		rr := doJSON(t, mux, http.MethodPut, "/v1/spots/"+spotID+"/favorite", owner.AccessToken, nil)
		checkResponseCode(t, http.StatusOK, rr)
		rr = doJSON(t, mux, http.MethodGet, "/v1/users/me/favorites", owner.AccessToken, nil)
		checkResponseCode(t, http.StatusOK, rr)
		assert.Len(t, decodeData[[]spots.FoodSpot](t, rr), 1)
	})

	t.Run("favorites and history filter it out", func(t *testing.T) {
		_, err := app.store.Spots.ToggleFavorite(ctx, stranger.UserID, spotID)
		require.NoError(t, err)
		_, err = app.store.Spots.RecordView(ctx, spotID, stranger.UserID)
		require.NoError(t, err)

		for _, path := range []string{"/v1/users/me/favorites", "/v1/users/me/history"} {
			rr := doJSON(t, mux, http.MethodGet, path, stranger.AccessToken, nil)
			checkResponseCode(t, http.StatusOK, rr)
			assert.JSONEq(t, `{"data":[]}`, rr.Body.String(), path)
		}
	})

	t.Run("approval opens it up", func(t *testing.T) {
		rr := doJSON(t, mux, http.MethodPost, "/v1/admin/spots/"+spotID+"/approve", admin.AccessToken, nil)
		checkResponseCode(t, http.StatusOK, rr)

		rr = doJSON(t, mux, http.MethodPost, "/v1/spots/"+spotID+"/reviews", stranger.AccessToken, review)
		checkResponseCode(t, http.StatusCreated, rr)

		rr = doJSON(t, mux, http.MethodGet, "/v1/users/me/favorites", stranger.AccessToken, nil)
		checkResponseCode(t, http.StatusOK, rr)
		assert.Len(t, decodeData[[]spots.FoodSpot](t, rr), 1)
	})
}
