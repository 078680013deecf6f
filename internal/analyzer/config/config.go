package config

import (
	"time"

	"gaus-thesis/pkg/common"
	"gaus-thesis/pkg/config"

	"github.com/spf13/viper"
)

// Analysis holds the limits and timeouts of one analysis request.
type Analysis struct {
	DefaultDays       int           `mapstructure:"default_days"`
	MaxDays           int           `mapstructure:"max_days"`
	NewsLimit         int           `mapstructure:"news_limit"`
	CatalystNewsLimit int           `mapstructure:"catalyst_news_limit"`
	CatalystPostLimit int           `mapstructure:"catalyst_post_limit"`
	SocialMaxResults  int           `mapstructure:"social_max_results"`
	FetchTimeout      time.Duration `mapstructure:"fetch_timeout"`
	CompletionTimeout time.Duration `mapstructure:"completion_timeout"`
}

// AI selects the completion provider.
type AI struct {
	Provider string `mapstructure:"provider"`
}

// Anthropic holds the configuration for the Anthropic Messages API.
type Anthropic struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// YahooFinance holds the configuration for the Yahoo Finance API.
type YahooFinance struct {
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// GoogleNews holds the configuration for the Google News RSS search feed.
type GoogleNews struct {
	BaseURL  string `mapstructure:"base_url"`
	Language string `mapstructure:"language"`
	Region   string `mapstructure:"region"`
}

// CuratedFeeds lists general feeds filtered locally by ticker and company name.
type CuratedFeeds struct {
	URLs        []string `mapstructure:"urls"`
	SourceLabel string   `mapstructure:"source_label"`
}

// Twitter holds the configuration for the X/Twitter v2 recent search API.
type Twitter struct {
	BaseURL     string `mapstructure:"base_url"`
	BearerToken string `mapstructure:"bearer_token"`
}

// Config holds the full configuration for the analysis service.
type Config struct {
	App          config.App    `mapstructure:"app"`
	Logger       config.Logger `mapstructure:"logger"`
	API          config.API    `mapstructure:"api"`
	Analysis     Analysis      `mapstructure:"analysis"`
	AI           AI            `mapstructure:"ai"`
	Anthropic    Anthropic     `mapstructure:"anthropic"`
	Gemini       Gemini        `mapstructure:"gemini"`
	YahooFinance YahooFinance  `mapstructure:"yahoo_finance"`
	GoogleNews   GoogleNews    `mapstructure:"google_news"`
	CuratedFeeds CuratedFeeds  `mapstructure:"curated_feeds"`
	Twitter      Twitter       `mapstructure:"twitter"`
}

// CompletionAPIKey returns the key of the selected provider and the setting
// name to report when it is missing.
func (c *Config) CompletionAPIKey() (key string, setting string) {
	switch c.AI.Provider {
	case common.ProviderGemini:
		return c.Gemini.APIKey, "GEMINI_API_KEY"
	default:
		return c.Anthropic.APIKey, "ANTHROPIC_API_KEY"
	}
}

func setDefaults(v *viper.Viper) {
	config.SetDefaults(v)

	v.SetDefault("analysis.default_days", 7)
	v.SetDefault("analysis.max_days", 365)
	v.SetDefault("analysis.news_limit", 15)
	v.SetDefault("analysis.catalyst_news_limit", 10)
	v.SetDefault("analysis.catalyst_post_limit", 1)
	v.SetDefault("analysis.social_max_results", 1)
	v.SetDefault("analysis.fetch_timeout", 20*time.Second)
	v.SetDefault("analysis.completion_timeout", 60*time.Second)

	v.SetDefault("ai.provider", common.ProviderAnthropic)
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "claude-3-5-sonnet-20241022")
	v.SetDefault("anthropic.max_request_per_minute", 50)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.max_request_per_minute", 15)

	v.SetDefault("yahoo_finance.base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("yahoo_finance.max_request_per_minute", 60)

	v.SetDefault("google_news.base_url", "https://news.google.com")
	v.SetDefault("google_news.language", "en-US")
	v.SetDefault("google_news.region", "US")

	v.SetDefault("curated_feeds.urls", []string{
		"https://www.reutersagency.com/feed/?taxonomy=best-topics&post_type=best",
		"https://www.reuters.com/rssFeed/businessNews",
		"https://www.reuters.com/rssFeed/technologyNews",
	})
	v.SetDefault("curated_feeds.source_label", "Reuters")

	v.SetDefault("twitter.base_url", "https://api.twitter.com")
	v.SetDefault("twitter.bearer_token", "")
}

// Load loads the analysis service configuration from the given path.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	// X_BEARER is the historical name of the social search credential.
	if err := v.BindEnv("twitter.bearer_token", "TWITTER_BEARER_TOKEN", "X_BEARER"); err != nil {
		return nil, err
	}

	var cfg Config
	if err := config.Load(v, path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
