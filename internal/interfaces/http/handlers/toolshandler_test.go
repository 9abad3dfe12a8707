package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timedpost/internal/application/generate/usecases"
	"timedpost/internal/infrastructure/openai"
	"timedpost/internal/interfaces/http/handlers/testutil"
	"timedpost/internal/shared/logger"
)

type stubCompletionClient struct {
	content string
	err     error
}

func (s *stubCompletionClient) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	return s.content, s.err
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newToolsHandler(client usecases.CompletionClient) *ToolsHandler {
	log := testLogger()
	return NewToolsHandler(
		usecases.NewGenerateBioUseCase(client, log),
		usecases.NewGenerateCaptionUseCase(client, log),
		usecases.NewGenerateHashtagsUseCase(client, log),
		usecases.NewGenerateTweetUseCase(client, log),
		usecases.NewGenerateLinkedInPostUseCase(client, log),
		log,
	)
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func TestGenerateBio_Success(t *testing.T) {
	client := &stubCompletionClient{content: `["Bio one", "Bio two"]`}
	handler := newToolsHandler(client)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/generate-bio", map[string]any{
		"name":  "Ana",
		"niche": "fitness",
	})
	handler.GenerateBio(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Bios []string `json:"bios"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, []string{"Bio one", "Bio two"}, body.Bios)
}

func TestGenerateBio_MalformedJSON(t *testing.T) {
	handler := newToolsHandler(&stubCompletionClient{})

	c, w := testutil.NewRawBodyContext(http.MethodPost, "/api/generate-bio", `{"name": "Ana",`)
	handler.GenerateBio(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "Invalid JSON", body.Error)
	assert.Nil(t, body.Fields)
}

func TestGenerateBio_UnknownFieldRejected(t *testing.T) {
	handler := newToolsHandler(&stubCompletionClient{content: `["x"]`})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/generate-bio", map[string]any{
		"name":  "Ana",
		"niche": "fitness",
		"extra": "nope",
	})
	handler.GenerateBio(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "Invalid input", body.Error)
	assert.Equal(t, "unknown field", body.Fields["extra"])
}

func TestGenerateBio_MissingRequiredField(t *testing.T) {
	handler := newToolsHandler(&stubCompletionClient{content: `["x"]`})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/generate-bio", map[string]any{
		"niche": "fitness",
	})
	handler.GenerateBio(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Contains(t, body.Fields, "name")
}

func TestGenerateBio_WhitespaceOnlyFieldRejected(t *testing.T) {
	handler := newToolsHandler(&stubCompletionClient{content: `["x"]`})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/generate-bio", map[string]any{
		"name":  "   ",
		"niche": "fitness",
	})
	handler.GenerateBio(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateBio_OversizedFieldRejected(t *testing.T) {
	handler := newToolsHandler(&stubCompletionClient{content: `["x"]`})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/generate-bio", map[string]any{
		"name":  strings.Repeat("a", 101),
		"niche": "fitness",
	})
	handler.GenerateBio(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Contains(t, body.Fields, "name")
}

func TestGenerateBio_UpstreamErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"not configured", openai.ErrNotConfigured, http.StatusInternalServerError, "API key not configured"},
		{"upstream failure", &openai.UpstreamError{StatusCode: 500}, http.StatusBadGateway, "Failed to generate bios. Please try again."},
		{"no content", openai.ErrNoContent, http.StatusInternalServerError, "No response from AI"},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError, "Something went wrong. Please try again."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := newToolsHandler(&stubCompletionClient{err: tc.err})

			c, w := testutil.NewTestContext(http.MethodPost, "/api/generate-bio", map[string]any{
				"name":  "Ana",
				"niche": "fitness",
			})
			handler.GenerateBio(c)

			require.Equal(t, tc.wantStatus, w.Code)
			var body errorBody
			require.NoError(t, testutil.ParseResponse(w, &body))
			assert.Equal(t, tc.wantError, body.Error)
		})
	}
}

func TestGenerateHashtags_NonIntegerCount(t *testing.T) {
	handler := newToolsHandler(&stubCompletionClient{content: `["x"]`})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/generate-hashtags", map[string]any{
		"topic": "coffee",
		"count": "fifteen",
	})
	handler.GenerateHashtags(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "Invalid input", body.Error)
	assert.Contains(t, body.Fields, "count")
}

func TestGenerateHashtags_DefaultCountIsFifteen(t *testing.T) {
	tags := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		tags = append(tags, fmt.Sprintf(`"tag%d"`, i))
	}
	client := &stubCompletionClient{content: "[" + strings.Join(tags, ",") + "]"}
	handler := newToolsHandler(client)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/generate-hashtags", map[string]any{
		"topic": "coffee",
	})
	handler.GenerateHashtags(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Hashtags []string `json:"hashtags"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Len(t, body.Hashtags, 15)
	assert.Equal(t, "#tag0", body.Hashtags[0])
}

func TestGenerateHashtags_CountZeroRejected(t *testing.T) {
	handler := newToolsHandler(&stubCompletionClient{content: `["x"]`})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/generate-hashtags", map[string]any{
		"topic": "coffee",
		"count": 0,
	})
	handler.GenerateHashtags(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Contains(t, body.Fields, "count")
}

func TestGenerateCaption_InvalidEnumRejected(t *testing.T) {
	handler := newToolsHandler(&stubCompletionClient{content: `["x"]`})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/generate-caption", map[string]any{
		"topic":    "launch",
		"platform": "myspace",
	})
	handler.GenerateCaption(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Contains(t, body.Fields, "platform")
}

func TestGenerateTweet_Success(t *testing.T) {
	handler := newToolsHandler(&stubCompletionClient{content: `["Tweet a", "Tweet b"]`})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/generate-tweet", map[string]any{
		"topic": "remote work",
	})
	handler.GenerateTweet(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Tweets []string `json:"tweets"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, []string{"Tweet a", "Tweet b"}, body.Tweets)
}

func TestGenerateLinkedInPost_Success(t *testing.T) {
	handler := newToolsHandler(&stubCompletionClient{content: `["Post 1", "Post 2", "Post 3", "Post 4"]`})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/generate-linkedin-post", map[string]any{
		"topic": "hiring",
	})
	handler.GenerateLinkedInPost(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Posts []string `json:"posts"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Len(t, body.Posts, 3)
}
