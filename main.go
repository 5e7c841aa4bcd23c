package main

import "agromarket-api/app"

func main() {
	app.Run()
}
