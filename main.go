// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/selcolors/selcolors/cmd/selcolors"

func main() {
	cmd.Execute()
}
