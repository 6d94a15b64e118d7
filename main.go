/*
Copyright © 2025 tieubaoca
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/tieubaoca/csbot-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional; deployments may set variables directly.
	godotenv.Load()
}
