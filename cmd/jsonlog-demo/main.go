package main

import "github.com/oshokin/jsonlog/cmd/jsonlog-demo/cmd"

func main() {
	cmd.Execute()
}
