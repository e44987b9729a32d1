package users

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail  = errors.New("a user with that email already exists")
	ErrUnknownPlatform = errors.New("unknown social platform")
)

type Platform string

const (
	Instagram Platform = "Instagram"
	Facebook  Platform = "Facebook"
	Twitter   Platform = "Twitter"
	YouTube   Platform = "YouTube"
	Website   Platform = "Website"
)

var Platforms = []Platform{Instagram, Facebook, Twitter, YouTube, Website}

// ParsePlatform matches a platform name exactly.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range Platforms {
		if string(p) == s {
			return p, nil
		}
	}
	return "", ErrUnknownPlatform
}

type SocialLink struct {
	Platform Platform `json:"platform" validate:"required,platform"`
	URL      string   `json:"url" validate:"required,url,max=500"`
}

type User struct {
	ID              string       `json:"userId"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Password        password     `json:"-"`
	ProfileImage    string       `json:"profileImage"`
	RuchiPoints     int          `json:"ruchiPoints"`
	GuideLevel      GuideLevel   `json:"guideLevel"`
	TotalReviews    int          `json:"totalReviews"`
	TotalSpotsAdded int          `json:"totalSpotsAdded"`
	IsAdmin         bool         `json:"isAdmin"`
	SocialLinks     []SocialLink `json:"socialLinks"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// AddPoints credits points and re-evaluates the guide level.
func (u *User) AddPoints(delta int) {
	u.RuchiPoints += delta
	u.GuideLevel = LevelFor(u.RuchiPoints)
}

// ProfileUpdate carries the editable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	Name         *string
	ProfileImage *string
	SocialLinks  *[]SocialLink
}

func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.ProfileImage != nil {
		u.ProfileImage = *p.ProfileImage
	}
	if p.SocialLinks != nil {
		u.SocialLinks = append([]SocialLink(nil), (*p.SocialLinks)...)
	}
}

// Clone returns a copy that shares no slices with u.
func (u *User) Clone() *User {
	c := *u
	c.SocialLinks = append([]SocialLink{}, u.SocialLinks...)
	return &c
}

type password struct {
	text *string
	hash []byte
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.text = &text
	p.hash = hash

	return nil
}

func (p *password) Compare(text string) error {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}

// Hash exposes the stored bcrypt hash for persistence.
func (p *password) Hash() []byte {
	return p.hash
}

// SetHash restores a hash loaded from storage.
func (p *password) SetHash(hash []byte) {
	p.text = nil
	p.hash = hash
}

// IsSet reports whether a password hash is present.
func (p *password) IsSet() bool {
	return len(p.hash) > 0
}
