// cardxlsx renders an exported Trello card as a formatted xlsx sheet.
package main

import (
	_ "time/tzdata" // zone names must resolve without a system zoneinfo

	"github.com/javajack/cardxlsx/internal/cli"
)

func main() {
	cli.Execute()
}
