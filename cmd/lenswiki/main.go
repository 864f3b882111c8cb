package main

import (
	"lenswiki/cmd/lenswiki/commands"
	"lenswiki/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
