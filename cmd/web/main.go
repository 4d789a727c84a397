package main

import "crm_backend/internal/app"

func main() {
	app.Run()
}
