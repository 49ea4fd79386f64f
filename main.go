package main

import "github.com/gandarasa/goantar/app"

func main() {
	app.Run()
}
