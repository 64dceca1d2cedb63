package main

import "github.com/Deepanshu41008/Yapassio-platform/internal/app"

func main() {
	app.Run()
}
