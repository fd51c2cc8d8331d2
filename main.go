package main

import "github.com/killallgit/transcript-api/cmd"

// @title           Transcript API
// @version         1.0.0
// @description     An API for fetching and cleaning YouTube video transcripts
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/transcript-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
