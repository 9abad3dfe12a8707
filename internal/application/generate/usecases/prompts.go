package usecases

import "fmt"

// Phrase tables that steer the model per option. Keys match the validated
// enum values, so lookups never miss after ApplyDefaults.

var bioToneGuides = map[string]string{
	"professional": "Professional and polished, suitable for business networking. Credible and authoritative.",
	"casual":       "Friendly and approachable, like talking to a friend. Uses emojis sparingly.",
	"witty":        "Clever and humorous, with wordplay and personality. Memorable and fun.",
	"minimal":      "Ultra-concise and clean. Maximum impact in minimum words.",
}

var captionPlatformGuides = map[string]string{
	"instagram": "Instagram captions can be up to 2,200 characters but best performing are 138-150 characters. Use line breaks for readability.",
	"tiktok":    "TikTok captions should be short and punchy, under 150 characters. Focus on hooks and trends.",
	"facebook":  "Facebook allows longer posts. Aim for 40-80 characters for best engagement.",
	"twitter":   "Twitter/X allows 280 characters. Be concise and impactful.",
}

var captionToneGuides = map[string]string{
	"casual":        "Friendly, conversational, and relatable.",
	"professional":  "Polished and credible while still being engaging.",
	"humorous":      "Funny, witty, with clever wordplay or observations.",
	"inspirational": "Uplifting, motivational, and positive.",
	"storytelling":  "Narrative-driven, personal, and engaging.",
}

var hashtagStyleGuides = map[string]string{
	"balanced": "Mix popular broad hashtags with specific niche ones. Balance discoverability with relevance.",
	"trending": "Focus on currently trending, viral, and popular hashtags that maximize reach.",
	"niche":    "Focus on specific, targeted hashtags with lower competition that attract a dedicated audience.",
	"viral":    "Use high-energy, attention-grabbing hashtags designed for maximum viral potential.",
}

var tweetToneGuides = map[string]string{
	"informative":   "Educational and helpful, sharing valuable insights or tips.",
	"witty":         "Clever, humorous, and attention-grabbing with wordplay.",
	"controversial": "Bold and thought-provoking, sparks discussion.",
	"inspirational": "Uplifting, motivational, and positive.",
	"promotional":   "Highlights value and includes a subtle call-to-action.",
}

var linkedinPostTypeGuides = map[string]string{
	"thought_leadership": "Share expert insights, industry trends, or unique perspectives. Position the author as a knowledgeable leader.",
	"story":              "Tell a personal or professional story with a lesson or insight. Use 'I' statements and be vulnerable.",
	"tips":               "Share actionable tips or advice in a clear, numbered format. Make it practical and implementable.",
	"announcement":       "Share news about achievements, launches, or updates. Be excited but professional.",
	"engagement":         "Ask thought-provoking questions or share opinions to spark discussion.",
}

var linkedinToneGuides = map[string]string{
	"professional":   "Polished, credible, and authoritative while remaining approachable.",
	"conversational": "Friendly and relatable while maintaining professionalism.",
	"inspirational":  "Uplifting, motivational, and encouraging.",
	"educational":    "Informative, clear, and focused on teaching.",
}

const noEmDashRule = "- Do NOT use em dashes. Use regular dashes, commas, or periods instead."

func buildBioPrompts(name, niche, tone string) (string, string) {
	system := `You are an expert social media bio writer. Create unique, engaging bios that:
- Feel authentic and personal to the individual
- Capture attention in the first few words
- Are optimized for social media character limits (under 150 characters each)
- Match the requested tone exactly
- Avoid cliches and overused phrases
` + noEmDashRule + `
- Include relevant emojis when appropriate for the tone

IMPORTANT: Return ONLY a JSON array of 5 bio strings, nothing else. Example: ["Bio 1", "Bio 2", "Bio 3", "Bio 4", "Bio 5"]`

	user := fmt.Sprintf(`Generate 5 unique social media bios for:

Name: %s
Niche/Industry: %s
Tone: %s - %s

Each bio should be different in structure and approach. Return only a JSON array of 5 bio strings.`, name, niche, tone, bioToneGuides[tone])

	return system, user
}

func buildCaptionPrompts(topic, platform, tone string, includeHashtags, includeEmoji, includeCallToAction bool) (string, string) {
	hashtagRule := "- Do NOT include hashtags"
	if includeHashtags {
		hashtagRule = "- Include 3-5 relevant hashtags at the end"
	}
	emojiRule := "- Do NOT use emojis"
	if includeEmoji {
		emojiRule = "- Use relevant emojis naturally throughout"
	}
	ctaRule := ""
	if includeCallToAction {
		ctaRule = "- End with a clear call-to-action (question, instruction, etc.)\n"
	}

	system := fmt.Sprintf(`You are an expert social media copywriter specializing in %s. Create engaging captions that:
- Follow platform best practices: %s
- Match the requested tone exactly: %s
- Hook readers in the first line
- Feel authentic and relatable
%s
%s
%s`+noEmDashRule+`

IMPORTANT: Return ONLY a JSON array of 5 caption strings, nothing else. Example: ["Caption 1", "Caption 2", "Caption 3", "Caption 4", "Caption 5"]`,
		platform, captionPlatformGuides[platform], captionToneGuides[tone], hashtagRule, emojiRule, ctaRule)

	user := fmt.Sprintf(`Generate 5 unique %s captions for:

Topic/Description: %s
Tone: %s

Each caption should be different in structure and approach. Return only a JSON array of 5 caption strings.`, platform, topic, tone)

	return system, user
}

func buildHashtagPrompts(topic, platform, style string, count int) (string, string) {
	platformContext := fmt.Sprintf("is optimized for %s", platform)
	if platform == "all" {
		platformContext = "works across all social media platforms"
	}

	system := `You are a social media hashtag expert. Generate hashtags that are:
- Relevant to the user's topic
- Appropriate for the specified platform
- A mix based on the requested style
- Without the # symbol (you'll add it in the response format)
- Real hashtags that people actually use
- Not generic filler hashtags

IMPORTANT: Return ONLY a JSON array of hashtags as strings, nothing else. Example: ["fitness", "workout", "gymlife"]`

	user := fmt.Sprintf(`Generate %d hashtags for the topic: "%s"

Platform: %s (%s)
Style: %s - %s

Return only a JSON array of hashtag words without the # symbol.`, count, topic, platform, platformContext, style, hashtagStyleGuides[style])

	return system, user
}

func buildTweetPrompts(topic, tone string, includeHashtags, includeEmoji bool) (string, string) {
	hashtagRule := "- Do NOT include hashtags"
	if includeHashtags {
		hashtagRule = "- Include 1-2 relevant hashtags at the end"
	}
	emojiRule := "- Do NOT use emojis"
	if includeEmoji {
		emojiRule = "- Use 1-2 relevant emojis naturally"
	}

	system := fmt.Sprintf(`You are an expert Twitter/X copywriter. Create engaging tweets that:
- Are under 280 characters each
- Grab attention in the first few words
- Feel authentic and conversational
- Match the requested tone exactly
- Encourage engagement (likes, retweets, replies)
%s
%s
`+noEmDashRule+`

IMPORTANT: Return ONLY a JSON array of 5 tweet strings, nothing else. Example: ["Tweet 1", "Tweet 2", "Tweet 3", "Tweet 4", "Tweet 5"]`,
		hashtagRule, emojiRule)

	user := fmt.Sprintf(`Generate 5 unique tweets about:

Topic: %s
Tone: %s - %s

Each tweet should be different in structure and approach. Return only a JSON array of 5 tweet strings.`, topic, tone, tweetToneGuides[tone])

	return system, user
}

func buildLinkedInPostPrompts(topic, postType, tone string, includeEmoji bool) (string, string) {
	emojiRule := "- Do NOT use emojis"
	if includeEmoji {
		emojiRule = "- Use 1-2 relevant emojis sparingly"
	}

	system := fmt.Sprintf(`You are an expert LinkedIn content creator. Create engaging posts that:
- Follow LinkedIn best practices (hook in first line, line breaks for readability)
- Are 150-300 words for optimal engagement
- Start with a compelling hook (question, bold statement, or story opener)
- Use short paragraphs and line breaks
- %s
- Match the tone: %s
%s
- End with a call-to-action or question to encourage engagement
- Do NOT use hashtags (LinkedIn's algorithm doesn't favor them)
`+noEmDashRule+`

IMPORTANT: Return ONLY a JSON array of 3 post strings, nothing else. Each post should be a complete LinkedIn post ready to publish.`,
		linkedinPostTypeGuides[postType], linkedinToneGuides[tone], emojiRule)

	user := fmt.Sprintf(`Generate 3 unique LinkedIn posts about:

Topic: %s
Post Type: %s
Tone: %s

Each post should be different in structure and approach. Return only a JSON array of 3 post strings.`, topic, postType, tone)

	return system, user
}
