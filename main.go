package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/meeplebook/api/cmd/app"
)

// @contact.name   API Support
// @contact.url    https://github.com/meeplebook/api/issues
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
