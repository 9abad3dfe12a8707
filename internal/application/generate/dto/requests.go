// Package dto holds the request shapes for the generation tools. Every shape
// is closed: unknown keys are rejected at decode time, and optional fields are
// pointers so an omitted field is distinguishable from a present zero value.
// Defaults apply only to omitted fields, after validation.
package dto

import "strings"

func defaultString(p **string, v string) {
	if *p == nil {
		s := v
		*p = &s
	}
}

func defaultBool(p **bool, v bool) {
	if *p == nil {
		b := v
		*p = &b
	}
}

func defaultInt(p **int, v int) {
	if *p == nil {
		n := v
		*p = &n
	}
}

func trimPtr(p *string) {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
}

// BioRequest is the input for the bio generator.
type BioRequest struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Niche string  `json:"niche" validate:"required,max=200"`
	Tone  *string `json:"tone" validate:"omitnil,oneof=professional casual witty minimal"`
}

func (r *BioRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Niche = strings.TrimSpace(r.Niche)
	trimPtr(r.Tone)
}

func (r *BioRequest) ApplyDefaults() {
	defaultString(&r.Tone, "professional")
}

// CaptionRequest is the input for the caption generator.
type CaptionRequest struct {
	Topic               string  `json:"topic" validate:"required,max=1000"`
	Platform            *string `json:"platform" validate:"omitnil,oneof=instagram tiktok facebook twitter"`
	Tone                *string `json:"tone" validate:"omitnil,oneof=casual professional humorous inspirational storytelling"`
	IncludeHashtags     *bool   `json:"includeHashtags"`
	IncludeEmoji        *bool   `json:"includeEmoji"`
	IncludeCallToAction *bool   `json:"includeCallToAction"`
}

func (r *CaptionRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	trimPtr(r.Platform)
	trimPtr(r.Tone)
}

func (r *CaptionRequest) ApplyDefaults() {
	defaultString(&r.Platform, "instagram")
	defaultString(&r.Tone, "casual")
	defaultBool(&r.IncludeHashtags, true)
	defaultBool(&r.IncludeEmoji, true)
	defaultBool(&r.IncludeCallToAction, false)
}

// HashtagsRequest is the input for the hashtag generator.
type HashtagsRequest struct {
	Topic    string  `json:"topic" validate:"required,max=500"`
	Platform *string `json:"platform" validate:"omitnil,oneof=all instagram tiktok twitter facebook"`
	Style    *string `json:"style" validate:"omitnil,oneof=balanced trending niche viral"`
	Count    *int    `json:"count" validate:"omitnil,min=1,max=30"`
}

func (r *HashtagsRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	trimPtr(r.Platform)
	trimPtr(r.Style)
}

func (r *HashtagsRequest) ApplyDefaults() {
	defaultString(&r.Platform, "all")
	defaultString(&r.Style, "balanced")
	defaultInt(&r.Count, 15)
}

// TweetRequest is the input for the tweet generator.
type TweetRequest struct {
	Topic           string  `json:"topic" validate:"required,max=500"`
	Tone            *string `json:"tone" validate:"omitnil,oneof=informative witty controversial inspirational promotional"`
	IncludeHashtags *bool   `json:"includeHashtags"`
	IncludeEmoji    *bool   `json:"includeEmoji"`
}

func (r *TweetRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	trimPtr(r.Tone)
}

func (r *TweetRequest) ApplyDefaults() {
	defaultString(&r.Tone, "informative")
	defaultBool(&r.IncludeHashtags, true)
	defaultBool(&r.IncludeEmoji, true)
}

// LinkedInPostRequest is the input for the LinkedIn post generator.
type LinkedInPostRequest struct {
	Topic        string  `json:"topic" validate:"required,max=1000"`
	PostType     *string `json:"postType" validate:"omitnil,oneof=thought_leadership story tips announcement engagement"`
	Tone         *string `json:"tone" validate:"omitnil,oneof=professional conversational inspirational educational"`
	IncludeEmoji *bool   `json:"includeEmoji"`
}

func (r *LinkedInPostRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	trimPtr(r.PostType)
	trimPtr(r.Tone)
}

func (r *LinkedInPostRequest) ApplyDefaults() {
	defaultString(&r.PostType, "thought_leadership")
	defaultString(&r.Tone, "professional")
	defaultBool(&r.IncludeEmoji, false)
}
