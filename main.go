package main

import "github.com/xiaomi388/empmanag/cmd"

func main() {
	cmd.Execute()
}
