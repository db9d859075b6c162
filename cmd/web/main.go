package main

import "unibridge_backend/internal/app"

func main() {
	app.Run()
}
