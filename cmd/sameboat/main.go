package main

import "github.com/nfrund/sameboat/cmd/sameboat/cmd"

func main() {
	cmd.Execute()
}
