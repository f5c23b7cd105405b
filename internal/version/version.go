package version

// BuildVersion is set at build time through -ldflags "-X github.com/clambin/ledhub/internal/version.BuildVersion=..."
var BuildVersion = "change-me"
