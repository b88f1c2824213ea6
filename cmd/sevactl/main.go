package main

import "github.com/nfrund/sevahub/cmd/sevactl/cmd"

func main() {
	cmd.Execute()
}
