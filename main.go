// ABOUTME: Entry point for the voicescope binary
// ABOUTME: Delegates to the cobra root command
package main

import "github.com/VoiceScope/voicescope-go/cmd"

func main() {
	cmd.Execute()
}
