package main

import "github.com/frahmantamala/recruitment-service/cmd"

func main() {
	cmd.Execute()
}
