package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gaus-thesis/internal/analyzer/dto"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// BuildCatalystPrompt asks for 3-5 bullets explaining the price move. When news or
// posts are present the model must cite news items by their [n] position.
func BuildCatalystPrompt(input dto.CatalystInput) string {
	if len(input.News) == 0 && len(input.Posts) == 0 {
		return fmt.Sprintf(`You are a sell-side analyst. %s moved %+.2f%% over the last %d days.

No recent news articles were found. Based on general market knowledge, provide 3-5 bullet points explaining possible reasons for this price movement.

Be specific and concrete. Mention macro factors, sector trends, or typical catalysts for this company.

Output format: Return ONLY 3-5 bullet points, one per line.

Catalyst Thesis (3-5 bullets):`, input.Ticker, input.PriceChangePct, input.Days)
	}

	var newsBuilder strings.Builder
	for i, news := range input.News {
		newsBuilder.WriteString(fmt.Sprintf("[%d] [%s] %s - Published: %s\n",
			i+1, news.Source, news.Title, news.Published.UTC().Format(time.RFC3339)))
	}
	newsText := strings.TrimSuffix(newsBuilder.String(), "\n")
	if newsText == "" {
		newsText = "No recent news found."
	}

	var postBuilder strings.Builder
	for _, post := range input.Posts {
		postBuilder.WriteString(fmt.Sprintf("- [Likes: %d, Retweets: %d] %s\n", post.Likes, post.Reposts, post.Text))
	}
	postText := strings.TrimSuffix(postBuilder.String(), "\n")
	if postText == "" {
		postText = "No recent tweets found."
	}

	promptTemplate := `You are a sell-side analyst. %s moved %+.2f%% over the last %d days.

Based ONLY on the news articles and tweets below, extract 3-5 key bullet points that explain this price movement.

IMPORTANT: Cite sources by their numbers (e.g., [1], [2]) after each relevant point.

Be concrete: mention specific events, actors, and timing from the articles.

Output format: Return ONLY 3-5 bullet points with source citations, one per line.
Example: "Product launch announced driving investor optimism [1][3]"

News Articles:
%s

Notable Tweets:
%s

Catalyst Thesis (3-5 bullets with citations):`

	return fmt.Sprintf(promptTemplate, input.Ticker, input.PriceChangePct, input.Days, newsText, postText)
}

// BuildRiskPrompt asks for the 3-5 most important risks given valuation and crowding context.
func BuildRiskPrompt(input dto.RiskInput) string {
	v := input.Valuation
	valuationText := fmt.Sprintf(`Forward P/E: %s
Trailing P/E: %s
Price-to-Book: %s
Beta: %s
Market Cap: %s
Recent %d-day change: %+.2f%%`,
		formatOptional(v.ForwardPE),
		formatOptional(v.TrailingPE),
		formatOptional(v.PriceToBook),
		formatOptional(v.Beta),
		FormatMarketCap(v.MarketCap),
		input.Days, input.PriceChangePct,
	)

	sentimentNote := fmt.Sprintf("Social media activity: %d tweets, %d total engagement (likes + retweets)",
		input.Social.PostCount, input.Social.TotalEngagement)

	promptTemplate := `You are a portfolio risk analyst considering a position in %s.

Given the valuation and risk context below, identify the 3-5 most important risks to be aware of.

Be specific and data-backed. Mention valuation stretch, macro sensitivity, crowding, or any red flags.

Output format: Return ONLY 3-5 bullet points, one per line. No preamble, no conclusion.

Valuation & Risk Metrics:
%s

Sentiment/Crowding Proxy:
%s

Risk Thesis (3-5 bullets):`

	return fmt.Sprintf(promptTemplate, input.Ticker, valuationText, sentimentNote)
}

// FormatMarketCap renders a market cap as $1,234,567, or N/A when absent or zero.
func FormatMarketCap(marketCap *int64) string {
	if marketCap == nil || *marketCap == 0 {
		return "N/A"
	}
	return numberPrinter.Sprintf("$%d", *marketCap)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
