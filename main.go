package main

import "github.com/tharindu/fitlog/cmd/fitlog"

func main() {
	fitlog.Execute()
}
