// cmd/kmerscan/main.go
package main

import (
	"kmerscan/internal/app"
	"kmerscan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
