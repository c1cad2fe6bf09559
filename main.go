package main

import "github.com/tahsinmert/sveltekit-webgl-experience/cmd"

func main() {
	cmd.Execute()
}
