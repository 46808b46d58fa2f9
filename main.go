// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "gitscope-cli/cmd/gitscope"
)

func main() {
	cmd.Execute()
}
