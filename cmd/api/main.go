package main

import (
	"fmt"
	"log"
	"os"

	_ "construction_quote/docs"
	"construction_quote/internal/adapter/http/routes"
	"construction_quote/internal/infrastructure/auth"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Construction Quote API
// @version         1.0
// @description     Preliminary price and duration ranges for construction projects, lead intake and the calculator configuration editor.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the administrator token.

func main() {
	// `api hash-token <token>` prints the value to put in ADMIN_TOKEN_HASH.
	if len(os.Args) == 3 && os.Args[1] == "hash-token" {
		hash, err := auth.HashToken(os.Args[2])
		if err != nil {
			log.Fatalf("Failed to hash token: %v", err)
		}
		fmt.Println(hash)
		return
	}

	routes.Run()
}
