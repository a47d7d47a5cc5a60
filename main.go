package main

import "ideathon-registration-api/app"

func main() {
	app.Run()
}
