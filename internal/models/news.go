package models

// NewsConfig is the single-slot credential for the news provider
type NewsConfig struct {
	APIKey string `json:"apiKey"`
}

// NewsAPIKeyPlaceholder is the sample value shipped in documentation; a key
// equal to it is treated the same as no key at all.
const NewsAPIKeyPlaceholder = "YOUR_GNEWS_API_KEY"

// IsUsable reports whether the configured key can be sent to the provider
func (c NewsConfig) IsUsable() bool {
	return c.APIKey != "" && c.APIKey != NewsAPIKeyPlaceholder
}

// NewsSource identifies where an article came from
type NewsSource struct {
	Name string `json:"name"`
}

// NewsArticle is one article summary returned by the news provider
type NewsArticle struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Source      NewsSource `json:"source"`
	PublishedAt string     `json:"publishedAt"`
	Image       string     `json:"image,omitempty"`
	Content     string     `json:"content,omitempty"`
}
