/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/killallgit/recipe-search/cmd"

// @title           Recipe Search API
// @version         1.0
// @description     Recipe search with filters, recipe details and image-aware result grids
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/recipe-search
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
func main() {
	cmd.Execute()
}
