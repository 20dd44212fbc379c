// cmd/aln-replace-headers/main.go
package main

import (
	"alnheaders/internal/app"
	"alnheaders/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
