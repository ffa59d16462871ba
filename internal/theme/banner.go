package theme

import (
	"fmt"
)

// Banner returns the stage-light banner shown by init and help.
func Banner() string {
	const yellow = "\033[33m"
	const cyan = "\033[36m"
	const dim = "\033[2m"
	const reset = "\033[0m"

	art := "" +
		yellow + "      .--.\n" + reset +
		yellow + "     ( (  ) )   " + reset + "L I M E L I G H T\n" +
		yellow + "      '--'\n" + reset +
		cyan + "     //||\\\\\n" + reset +
		dim + "   who is worth the spotlight?\n" + reset

	return art
}

// PrintBanner prints the banner to stdout.
func PrintBanner() {
	fmt.Print(Banner())
}
