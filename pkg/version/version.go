package version

// Version is set at build time with
// -ldflags "-X github.com/cloudposse/countdown/pkg/version.Version=v1.2.3".
var Version = "test"
