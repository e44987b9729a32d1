package notifications

import (
	"context"
	"fmt"

	"ruchi/internal/domain/spots"
	"ruchi/internal/domain/users"
)

// SendSpotApproved tells the contributor their spot is now public.
func SendSpotApproved(ctx context.Context, push PushSender, tokens TokenSource, spot *spots.FoodSpot) error {
	title := "Your spot is live! 🎉"
	body := fmt.Sprintf("%s was approved. You earned %d Ruchi Points.", spot.Name, users.PointsSpotApproved)

	return publish(ctx, push, tokens, spot.AddedBy, title, body, map[string]string{
		"type":   "spot_approved",
		"spotId": spot.ID,
		//in client we do router.push(`/${data.screen}`)
		"screen": "spots/" + spot.ID,
	})
}

// SendNewReview tells the contributor someone reviewed their spot. Reviews
// on one's own spot are not announced.
func SendNewReview(ctx context.Context, push PushSender, tokens TokenSource, spot *spots.FoodSpot, reviewerID, reviewerName string, rating int) error {
	if spot.AddedBy == reviewerID {
		return nil
	}

	title := "New review on " + spot.Name
	body := fmt.Sprintf("%s rated it %d★", reviewerName, rating)

	return publish(ctx, push, tokens, spot.AddedBy, title, body, map[string]string{
		"type":   "new_review",
		"spotId": spot.ID,
		"screen": "spots/" + spot.ID,
	})
}

// SendLevelUp congratulates a user who reached a new guide level.
func SendLevelUp(ctx context.Context, push PushSender, tokens TokenSource, user *users.User) error {
	title := "Level up!"
	body := fmt.Sprintf("You are now a %s with %d Ruchi Points.", user.GuideLevel, user.RuchiPoints)

	return publish(ctx, push, tokens, user.ID, title, body, map[string]string{
		"type":   "level_up",
		"level":  string(user.GuideLevel),
		"screen": "profile",
	})
}
