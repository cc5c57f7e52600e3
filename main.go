/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/Sabnaj-42/BookStore-CLI/cmd"

func main() {
	cmd.Execute()
}
