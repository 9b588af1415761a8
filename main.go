// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/lootmix/lootmix/cmd/lootmix"

func main() {
	cmd.Execute()
}
