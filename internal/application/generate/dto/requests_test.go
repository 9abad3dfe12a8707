package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timedpost/internal/shared/utils"
)

func TestBioRequest_DefaultsOnlyOnOmission(t *testing.T) {
	req := BioRequest{Name: "Ana", Niche: "fitness"}
	req.ApplyDefaults()
	require.NotNil(t, req.Tone)
	assert.Equal(t, "professional", *req.Tone)

	tone := "witty"
	req = BioRequest{Name: "Ana", Niche: "fitness", Tone: &tone}
	req.ApplyDefaults()
	assert.Equal(t, "witty", *req.Tone)
}

func TestBioRequest_InvalidToneFailsInsteadOfDefaulting(t *testing.T) {
	tone := "sarcastic"
	req := BioRequest{Name: "Ana", Niche: "fitness", Tone: &tone}
	fields := utils.ValidateStruct(&req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "tone")
}

func TestCaptionRequest_Defaults(t *testing.T) {
	req := CaptionRequest{Topic: "launch day"}
	req.ApplyDefaults()
	assert.Equal(t, "instagram", *req.Platform)
	assert.Equal(t, "casual", *req.Tone)
	assert.True(t, *req.IncludeHashtags)
	assert.True(t, *req.IncludeEmoji)
	assert.False(t, *req.IncludeCallToAction)
}

func TestCaptionRequest_PresentFalseIsKept(t *testing.T) {
	f := false
	req := CaptionRequest{Topic: "launch day", IncludeHashtags: &f}
	req.ApplyDefaults()
	assert.False(t, *req.IncludeHashtags)
}

func TestHashtagsRequest_CountBounds(t *testing.T) {
	cases := []struct {
		name  string
		count *int
		valid bool
	}{
		{"omitted", nil, true},
		{"lower bound", ptr(1), true},
		{"upper bound", ptr(30), true},
		{"zero", ptr(0), false},
		{"over limit", ptr(31), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := HashtagsRequest{Topic: "coffee", Count: tc.count}
			fields := utils.ValidateStruct(&req)
			if tc.valid {
				assert.Nil(t, fields)
			} else {
				require.NotNil(t, fields)
				assert.Contains(t, fields, "count")
			}
		})
	}
}

func TestHashtagsRequest_Defaults(t *testing.T) {
	req := HashtagsRequest{Topic: "coffee"}
	req.ApplyDefaults()
	assert.Equal(t, "all", *req.Platform)
	assert.Equal(t, "balanced", *req.Style)
	assert.Equal(t, 15, *req.Count)
}

func TestNormalize_TrimsBeforeValidation(t *testing.T) {
	req := BioRequest{Name: "  Ana  ", Niche: "   "}
	req.Normalize()
	assert.Equal(t, "Ana", req.Name)

	fields := utils.ValidateStruct(&req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "niche")
}

func TestLinkedInPostRequest_Defaults(t *testing.T) {
	req := LinkedInPostRequest{Topic: "hiring"}
	req.ApplyDefaults()
	assert.Equal(t, "thought_leadership", *req.PostType)
	assert.Equal(t, "professional", *req.Tone)
	assert.False(t, *req.IncludeEmoji)
}

func ptr[T any](v T) *T { return &v }
