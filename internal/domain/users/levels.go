package users

type GuideLevel string

const (
	NewExplorer     GuideLevel = "New Explorer"
	LocalFoodie     GuideLevel = "Local Foodie"
	TasteGuide      GuideLevel = "Taste Guide"
	RuchiExpert     GuideLevel = "Ruchi Expert"
	MasterFoodGuide GuideLevel = "Master Food Guide"
)

// Points awarded per contribution.
const (
	PointsAddSpot      = 50
	PointsSpotApproved = 25
	PointsAddReview    = 10
)

type Threshold struct {
	Level  GuideLevel `json:"level"`
	Points int        `json:"points"`
}

// Thresholds is ordered from the highest tier down.
var Thresholds = []Threshold{
	{MasterFoodGuide, 1500},
	{RuchiExpert, 700},
	{TasteGuide, 300},
	{LocalFoodie, 100},
	{NewExplorer, 0},
}

// LevelFor returns the highest tier whose threshold the points meet.
func LevelFor(points int) GuideLevel {
	for _, t := range Thresholds {
		if points >= t.Points {
			return t.Level
		}
	}
	return NewExplorer
}

type Progress struct {
	Level        GuideLevel  `json:"level"`
	Points       int         `json:"points"`
	NextLevel    *GuideLevel `json:"nextLevel,omitempty"`
	NextAt       int         `json:"nextAt,omitempty"`
	PointsToNext int         `json:"pointsToNext"`
	Percent      float64     `json:"percent"`
}

// ProgressFor describes how far points are towards the next tier. Percent is
// points over the next threshold, capped at 100; the top tier is always 100.
func ProgressFor(points int) Progress {
	level := LevelFor(points)
	p := Progress{Level: level, Points: points, Percent: 100}

	for i, t := range Thresholds {
		if t.Level != level {
			continue
		}
		if i == 0 {
			return p
		}
		next := Thresholds[i-1]
		p.NextLevel = &next.Level
		p.NextAt = next.Points
		p.PointsToNext = next.Points - points
		p.Percent = float64(points) / float64(next.Points) * 100
		if p.Percent < 0 {
			p.Percent = 0
		}
		if p.Percent > 100 {
			p.Percent = 100
		}
		break
	}
	return p
}
