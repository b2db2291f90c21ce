/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/eve-task/eve-cli/cmd"

func main() {
	cmd.Execute()
}
