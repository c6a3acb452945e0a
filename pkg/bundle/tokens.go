// File: pkg/bundle/tokens.go
package bundle

// EstimateTokens returns a coarse token estimate for text: one token per
// four characters, rounded up. This is the only size measurement used
// anywhere in the pipeline; exact tokenization is deliberately out of scope.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}
