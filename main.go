// SPDX-License-Identifier: GPL-3.0-only
package main

import "github.com/bascanada/awsgetlogs/cmd"

func main() {
	cmd.Execute()
}
