package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/bullish-design/templateer/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/bullish-design/templateer/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/bullish-design/templateer/internal/version.Date={{.Date}}
)
