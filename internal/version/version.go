// ABOUTME: Version constants for the application
// ABOUTME: Defines product name, manufacturer, and version string
package version

const (
	Product      = "VoiceScope"
	Manufacturer = "VoiceScope Project"
	Version      = "0.2.0"
)
