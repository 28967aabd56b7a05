package main

import (
	_ "revolux/docs"
	"revolux/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Revolux Orders API
// @version         1.0
// @description     Procurement order workflow: registration, analyst and strategy review, quotation, payment and delivery.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserEmail
// @in header
// @name X-User-Email
// @description E-mail of the caller, set by the identity provider.

func main() {
	routes.Run()
}
