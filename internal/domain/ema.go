package domain

import (
	"time"

	"github.com/google/uuid"
)

// BaselineMinSleepHours is the sleep threshold separating "good" from "poor" sleep.
const BaselineMinSleepHours = 6.0

// AlcoholUse is the self-reported alcohol intake since the last check-in.
type AlcoholUse string

const (
	AlcoholNone     AlcoholUse = "NONE"
	AlcoholSmall    AlcoholUse = "SMALL"
	AlcoholModerate AlcoholUse = "MODERATE"
	AlcoholHigh     AlcoholUse = "HIGH"
)

func (a AlcoholUse) Valid() bool {
	switch a {
	case AlcoholNone, AlcoholSmall, AlcoholModerate, AlcoholHigh:
		return true
	}
	return false
}

// SubstanceType is the kind of substance taken recently, if any.
type SubstanceType string

const (
	SubstanceNone         SubstanceType = "NONE"
	SubstancePrescribed   SubstanceType = "PRESCRIBED"
	SubstanceOTC          SubstanceType = "OTC"
	SubstanceRecreational SubstanceType = "RECREATIONAL"
)

func (s SubstanceType) Valid() bool {
	switch s {
	case SubstanceNone, SubstancePrescribed, SubstanceOTC, SubstanceRecreational:
		return true
	}
	return false
}

// PreSessionActivity is what the user was doing right before the check-in.
type PreSessionActivity string

const (
	ActivityResting     PreSessionActivity = "RESTING"
	ActivityWorking     PreSessionActivity = "WORKING"
	ActivityStudying    PreSessionActivity = "STUDYING"
	ActivityExercising  PreSessionActivity = "EXERCISING"
	ActivityCommuting   PreSessionActivity = "COMMUTING"
	ActivitySocializing PreSessionActivity = "SOCIALIZING"
	ActivityScreenTime  PreSessionActivity = "SCREEN_TIME"
	ActivityOther       PreSessionActivity = "OTHER"
)

func (a PreSessionActivity) Valid() bool {
	switch a {
	case ActivityResting, ActivityWorking, ActivityStudying, ActivityExercising,
		ActivityCommuting, ActivitySocializing, ActivityScreenTime, ActivityOther:
		return true
	}
	return false
}

// SocialContext describes who the user is with.
type SocialContext string

const (
	SocialAlone     SocialContext = "ALONE"
	SocialFamily    SocialContext = "WITH_FAMILY"
	SocialFriends   SocialContext = "WITH_FRIENDS"
	SocialCoworkers SocialContext = "WITH_COWORKERS"
	SocialPublic    SocialContext = "IN_PUBLIC"
)

func (s SocialContext) Valid() bool {
	switch s {
	case SocialAlone, SocialFamily, SocialFriends, SocialCoworkers, SocialPublic:
		return true
	}
	return false
}

// NoiseLevel is the ambient noise of the environment.
type NoiseLevel string

const (
	NoiseQuiet    NoiseLevel = "QUIET"
	NoiseModerate NoiseLevel = "MODERATE"
	NoiseLoud     NoiseLevel = "LOUD"
)

func (n NoiseLevel) Valid() bool {
	switch n {
	case NoiseQuiet, NoiseModerate, NoiseLoud:
		return true
	}
	return false
}

// EMA is an ecological momentary assessment: a short mood, sleep and context
// check-in. Records are append-only.
type EMA struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_emas_user_ts" json:"-"`
	Timestamp time.Time `gorm:"not null;index:idx_emas_user_ts" json:"timestamp"`

	Anger     int `gorm:"type:smallint;not null" json:"anger"`
	Anxiety   int `gorm:"type:smallint;not null" json:"anxiety"`
	Sadness   int `gorm:"type:smallint;not null" json:"sadness"`
	Happiness int `gorm:"type:smallint;not null" json:"happiness"`

	RecentStressfulEvent bool          `gorm:"not null" json:"recentStressfulEvent"`
	SleepHours           float64       `gorm:"not null" json:"sleepHours"`
	SleepQuality         int           `gorm:"type:smallint;not null" json:"sleepQuality"`
	CaffeineRecent       bool          `gorm:"not null" json:"caffeineRecent"`
	AlcoholUse           AlcoholUse    `gorm:"type:varchar(16);not null" json:"alcoholUse"`
	SubstanceType        SubstanceType `gorm:"type:varchar(16);not null" json:"substanceType"`
	SubstanceDescription *string       `gorm:"type:text" json:"substanceDescription,omitempty"`

	HasPositiveEvent         bool    `gorm:"not null" json:"hasPositiveEvent"`
	PositiveEventIntensity   *int    `gorm:"type:smallint" json:"positiveEventIntensity,omitempty"`
	PositiveEventDescription *string `gorm:"type:text" json:"positiveEventDescription,omitempty"`
	HasNegativeEvent         bool    `gorm:"not null" json:"hasNegativeEvent"`
	NegativeEventIntensity   *int    `gorm:"type:smallint" json:"negativeEventIntensity,omitempty"`
	NegativeEventDescription *string `gorm:"type:text" json:"negativeEventDescription,omitempty"`

	PreSessionActivity *PreSessionActivity `gorm:"type:varchar(16)" json:"preSessionActivity,omitempty"`
	SocialContext      *SocialContext      `gorm:"type:varchar(16)" json:"socialContext,omitempty"`
	NoiseLevel         *NoiseLevel         `gorm:"type:varchar(16)" json:"noiseLevel,omitempty"`
}

func (EMA) TableName() string {
	return "emas"
}

// IsBaseline reports whether the check-in describes a low-stress, rested state.
// It is always derived from the other fields.
func (e *EMA) IsBaseline() bool {
	return !e.RecentStressfulEvent && e.SleepHours >= BaselineMinSleepHours && e.AlcoholUse == AlcoholNone
}

// IsTired reports whether the check-in reports less than six hours of sleep.
func (e *EMA) IsTired() bool {
	return e.SleepHours < BaselineMinSleepHours
}

// IsDistressed reports elevated anxiety or sadness.
func (e *EMA) IsDistressed() bool {
	return e.Anxiety >= 4 || e.Sadness >= 4
}

// Validate checks ranges and enum values of a decoded record.
func (e *EMA) Validate() error {
	if e.ID == "" || e.Timestamp.IsZero() {
		return ErrMalformedRecord
	}
	for _, v := range []int{e.Anger, e.Anxiety, e.Sadness, e.Happiness, e.SleepQuality} {
		if v < 1 || v > 5 {
			return ErrMalformedRecord
		}
	}
	if e.SleepHours < 0 || e.SleepHours > 24 {
		return ErrMalformedRecord
	}
	if !e.AlcoholUse.Valid() || !e.SubstanceType.Valid() {
		return ErrMalformedRecord
	}
	for _, p := range []*int{e.PositiveEventIntensity, e.NegativeEventIntensity} {
		if p != nil && (*p < 1 || *p > 5) {
			return ErrMalformedRecord
		}
	}
	if e.PreSessionActivity != nil && !e.PreSessionActivity.Valid() {
		return ErrMalformedRecord
	}
	if e.SocialContext != nil && !e.SocialContext.Valid() {
		return ErrMalformedRecord
	}
	if e.NoiseLevel != nil && !e.NoiseLevel.Valid() {
		return ErrMalformedRecord
	}
	return nil
}

// CreateEMARequest is the request body for recording a check-in.
// @Description Mood, sleep and context check-in.
type CreateEMARequest struct {
	// Optional client-generated ID (generated when empty)
	ID *string `json:"id,omitempty" validate:"omitempty,max=64" example:"ema-2024-01-15-0800"`
	// Check-in time (defaults to now)
	Timestamp *time.Time `json:"timestamp,omitempty" example:"2024-01-15T08:00:00Z"`

	Anger     int `json:"anger" validate:"required,min=1,max=5" example:"1"`
	Anxiety   int `json:"anxiety" validate:"required,min=1,max=5" example:"2"`
	Sadness   int `json:"sadness" validate:"required,min=1,max=5" example:"1"`
	Happiness int `json:"happiness" validate:"required,min=1,max=5" example:"4"`

	RecentStressfulEvent bool          `json:"recentStressfulEvent" example:"false"`
	SleepHours           *float64      `json:"sleepHours" validate:"required,min=0,max=24" example:"7.5"`
	SleepQuality         int           `json:"sleepQuality" validate:"required,min=1,max=5" example:"4"`
	CaffeineRecent       bool          `json:"caffeineRecent" example:"true"`
	AlcoholUse           AlcoholUse    `json:"alcoholUse" validate:"required,alcohol" example:"NONE" enums:"NONE,SMALL,MODERATE,HIGH"`
	SubstanceType        SubstanceType `json:"substanceType" validate:"required,substance" example:"NONE" enums:"NONE,PRESCRIBED,OTC,RECREATIONAL"`
	SubstanceDescription *string       `json:"substanceDescription,omitempty" validate:"omitempty,max=500"`

	HasPositiveEvent         bool    `json:"hasPositiveEvent"`
	PositiveEventIntensity   *int    `json:"positiveEventIntensity,omitempty" validate:"omitempty,min=1,max=5"`
	PositiveEventDescription *string `json:"positiveEventDescription,omitempty" validate:"omitempty,max=500"`
	HasNegativeEvent         bool    `json:"hasNegativeEvent"`
	NegativeEventIntensity   *int    `json:"negativeEventIntensity,omitempty" validate:"omitempty,min=1,max=5"`
	NegativeEventDescription *string `json:"negativeEventDescription,omitempty" validate:"omitempty,max=500"`

	PreSessionActivity *PreSessionActivity `json:"preSessionActivity,omitempty" validate:"omitempty,activity"`
	SocialContext      *SocialContext      `json:"socialContext,omitempty" validate:"omitempty,social"`
	NoiseLevel         *NoiseLevel         `json:"noiseLevel,omitempty" validate:"omitempty,noise"`
}

// EMAResponse is an EMA record with its derived baseline flag.
// @Description Stored check-in with derived baseline flag.
type EMAResponse struct {
	EMA
	IsBaseline bool `json:"isBaseline"`
}

func (e *EMA) ToResponse() EMAResponse {
	return EMAResponse{EMA: *e, IsBaseline: e.IsBaseline()}
}
