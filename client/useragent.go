package client

import "regexp"

// Version is the SDK release carried in the User-Agent string.
const Version = "1.0.0"

var userAgentUnsafe = regexp.MustCompile(`[^A-Za-z0-9\-_. ]`)

// BuildUserAgent formats the User-Agent / RC-User-Agent header value as
// "<appName>_<appVersion>.RCCSSDK_<version>", or "RCCSSDK_<version>" alone
// when no app name is given. Characters outside [A-Za-z0-9-_. ] are stripped
// from the app name and version.
func BuildUserAgent(appName, appVersion string) string {
	sdk := "RCCSSDK_" + Version
	name := userAgentUnsafe.ReplaceAllString(appName, "")
	if name == "" {
		return sdk
	}
	version := userAgentUnsafe.ReplaceAllString(appVersion, "")
	if version != "" {
		name += "_" + version
	}
	return name + "." + sdk
}
